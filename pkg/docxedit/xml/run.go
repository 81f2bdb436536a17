package xml

import (
	"fmt"
	"iter"
	"strings"

	"github.com/beevik/etree"
)

// Run is a cursor over the w:r children of a paragraph
type Run struct {
	cursor
}

// NewRun returns a run cursor bound to paragraph
func NewRun(paragraph *etree.Element) *Run {
	r := &Run{}
	r.Bind(paragraph)
	return r
}

// runAt returns a run cursor positioned on an existing w:r element
func runAt(paragraph, run *etree.Element) *Run {
	r := &Run{}
	r.set(paragraph, run)
	return r
}

// Bind points the cursor at the first run of paragraph. A nil paragraph
// yields an exhausted cursor.
func (r *Run) Bind(paragraph *etree.Element) {
	r.bind(paragraph, TagRun)
}

// Next moves to the following run and returns the cursor
func (r *Run) Next() *Run {
	r.advance(TagRun)
	return r
}

// All iterates the remaining runs
func (r *Run) All() iter.Seq[*Run] {
	return Each(r)
}

// Text returns the content of the run's text node, or "" if there is none
func (r *Run) Text() string {
	t := r.textNode()
	if t == nil {
		return ""
	}
	return t.Text()
}

// SetText replaces the content of the run's text node
func (r *Run) SetText(text string) error {
	if r.position == nil {
		return fmt.Errorf("%w: %w", ErrTextSet, ErrNoPosition)
	}
	t := r.textNode()
	if t == nil {
		return fmt.Errorf("%w: run has no %s element", ErrTextSet, TagText)
	}
	setText(t, text)
	return nil
}

func (r *Run) textNode() *etree.Element {
	return firstChild(r.position, TagText)
}

// setText writes text and keeps xml:space in step with it, Word drops
// leading and trailing blanks otherwise.
func setText(t *etree.Element, text string) {
	t.SetText(text)
	if text != strings.TrimSpace(text) {
		t.CreateAttr("xml:space", "preserve")
	} else {
		t.RemoveAttr("xml:space")
	}
}
