package docxedit

import "io"

// pendingFile is a temporary file beside its target that either replaces
// the target atomically or is removed.
type pendingFile interface {
	io.Writer
	// commit flushes the file and renames it over the target
	commit() error
	// cleanup removes the file if commit did not happen; safe after commit
	cleanup() error
	// name is the temporary path
	name() string
}
