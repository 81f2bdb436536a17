//go:build windows

package docxedit

import (
	"os"
	"path/filepath"
)

// tempPending relies on os.Rename, which uses MoveFileEx with
// MOVEFILE_REPLACE_EXISTING on Windows.
type tempPending struct {
	*os.File
	target string
	done   bool
}

func newPendingFile(target string) (pendingFile, error) {
	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &tempPending{File: f, target: target}, nil
}

func (p *tempPending) commit() error {
	if err := p.Sync(); err != nil {
		return err
	}
	if err := p.Close(); err != nil {
		return err
	}
	if err := os.Rename(p.File.Name(), p.target); err != nil {
		return err
	}
	p.done = true
	return nil
}

func (p *tempPending) cleanup() error {
	if p.done {
		return nil
	}
	p.Close()
	return os.Remove(p.File.Name())
}

func (p *tempPending) name() string {
	return p.File.Name()
}
