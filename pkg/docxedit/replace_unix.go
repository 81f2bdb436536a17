//go:build !windows

package docxedit

import (
	"github.com/google/renameio/v2"
)

type renamePending struct {
	*renameio.PendingFile
}

// newPendingFile creates the temporary file in the target's directory so the
// final rename never crosses a filesystem. An existing target keeps its mode.
func newPendingFile(target string) (pendingFile, error) {
	pf, err := renameio.NewPendingFile(target,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return nil, err
	}
	return renamePending{pf}, nil
}

func (p renamePending) commit() error {
	return p.CloseAtomicallyReplace()
}

func (p renamePending) cleanup() error {
	return p.Cleanup()
}

func (p renamePending) name() string {
	return p.Name()
}
