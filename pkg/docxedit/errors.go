package docxedit

import (
	"errors"
	"fmt"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit/xml"
)

// Error kinds. Every failure returned by this package wraps exactly one of
// them, so callers can branch with errors.Is.
var (
	// ErrArchiveOpen means the path is missing, unreadable or not a zip container
	ErrArchiveOpen = errors.New("archive open failed")
	// ErrPartNotFound means the body part, or an entry being copied, is absent
	ErrPartNotFound = errors.New("part not found")
	// ErrMalformedDocument means the body part is not a well-formed w:document
	ErrMalformedDocument = errors.New("malformed document")
	// ErrWrite means building the replacement archive, or adding to the
	// body tree, failed
	ErrWrite = xml.ErrWrite
	// ErrReplace means the replacement archive could not be moved into place
	ErrReplace = errors.New("replace failed")
	// ErrNotOpen is returned by operations that need an open document
	ErrNotOpen = errors.New("document is not open")

	// ErrTextSet is returned when a run has no text node to write into
	ErrTextSet = xml.ErrTextSet
	// ErrNoPosition is returned by mutations on an exhausted cursor
	ErrNoPosition = xml.ErrNoPosition
)

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	Path      string
	Kind      error
	Cause     error
}

func (e *DocumentError) Error() string {
	msg := fmt.Sprintf("document error during %s", e.Operation)
	if e.Path != "" {
		msg += fmt.Sprintf(" of '%s'", e.Path)
	}
	if e.Kind != nil {
		msg += ": " + e.Kind.Error()
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause
func (e *DocumentError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, kind, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Kind:      kind,
		Cause:     cause,
	}
}

// IsDocumentError checks if an error is a document error
func IsDocumentError(err error) bool {
	var de *DocumentError
	return errors.As(err, &de)
}

// KindOf returns the error kind carried by err, or nil if it has none
func KindOf(err error) error {
	var de *DocumentError
	if errors.As(err, &de) {
		return de.Kind
	}
	switch {
	case errors.Is(err, ErrTextSet):
		return ErrTextSet
	case errors.Is(err, ErrWrite), errors.Is(err, ErrNoPosition):
		return ErrWrite
	}
	return nil
}
