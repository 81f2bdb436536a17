package xml

import (
	"errors"
	"iter"

	"github.com/beevik/etree"
)

// NamespaceMain is the WordprocessingML main namespace
const NamespaceMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Local names of the elements the cursors walk.
const (
	TagDocument      = "document"
	TagBody          = "body"
	TagParagraph     = "p"
	TagRun           = "r"
	TagRunProperties = "rPr"
	TagText          = "t"
	TagTable         = "tbl"
	TagTableRow      = "tr"
	TagTableCell     = "tc"
	TagSection       = "sectPr"
)

var (
	// ErrTextSet is returned when a run has no text node to write into
	ErrTextSet = errors.New("text set failed")
	// ErrNoPosition is returned by mutations on a cursor that is past the end
	ErrNoPosition = errors.New("cursor has no position")
	// ErrWrite is returned when a paragraph or run cannot be added to the tree
	ErrWrite = errors.New("write failed")
)

// Iterator is the forward-iteration contract shared by every cursor kind.
// Next advances and returns the cursor itself.
type Iterator[T any] interface {
	HasNext() bool
	Next() T
}

// Each returns a single-pass sequence over the remaining positions of it.
// The yielded value is the cursor itself, so it must not be retained across
// iterations.
func Each[T Iterator[T]](it T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			if !yield(it) {
				return
			}
			it.Next()
		}
	}
}

// cursor holds the container/position pair shared by every kind
type cursor struct {
	container *etree.Element
	position  *etree.Element
}

func (c *cursor) bind(container *etree.Element, tag string) {
	c.container = container
	c.position = firstChild(container, tag)
}

func (c *cursor) set(container, position *etree.Element) {
	c.container = container
	c.position = position
}

func (c *cursor) advance(tag string) {
	if c.position == nil {
		return
	}
	c.position = childFrom(c.position.Parent(), tag, c.position.Index()+1)
}

// HasNext reports whether the cursor points at an element
func (c *cursor) HasNext() bool {
	return c.position != nil
}

// Element returns the element the cursor points at, or nil past the end
func (c *cursor) Element() *etree.Element {
	return c.position
}

// Container returns the element the cursor was bound into
func (c *cursor) Container() *etree.Element {
	return c.container
}

// IsWordElement reports whether el is the WordprocessingML element with the
// given local name.
func IsWordElement(el *etree.Element, local string) bool {
	if el == nil || el.Tag != local {
		return false
	}
	ns := el.NamespaceURI()
	if ns == "" {
		return el.Space == "w"
	}
	return ns == NamespaceMain
}

// FindBody returns the w:body element of a parsed document part, or nil if the
// root is not w:document or has no body.
func FindBody(doc *etree.Document) *etree.Element {
	if doc == nil {
		return nil
	}
	root := doc.Root()
	if !IsWordElement(root, TagDocument) {
		return nil
	}
	return firstChild(root, TagBody)
}

func firstChild(parent *etree.Element, tag string) *etree.Element {
	return childFrom(parent, tag, 0)
}

// childFrom returns the first matching element at or after index start
func childFrom(parent *etree.Element, tag string, start int) *etree.Element {
	if parent == nil || start < 0 {
		return nil
	}
	for _, tok := range parent.Child[start:] {
		if el, ok := tok.(*etree.Element); ok && IsWordElement(el, tag) {
			return el
		}
	}
	return nil
}

// newWordElement creates a detached element in the namespace form used by scope
func newWordElement(scope *etree.Element, local string) *etree.Element {
	return etree.NewElement(wordTag(scope, local))
}

func createWordChild(parent *etree.Element, local string) *etree.Element {
	return parent.CreateElement(wordTag(parent, local))
}

// wordTag keeps the document's spelling: a default-namespace body gets
// unprefixed children, anything else gets the scope's prefix (w: if none).
func wordTag(scope *etree.Element, local string) string {
	if scope == nil {
		return "w:" + local
	}
	if scope.Space == "" {
		if scope.NamespaceURI() == NamespaceMain {
			return local
		}
		return "w:" + local
	}
	return scope.Space + ":" + local
}
