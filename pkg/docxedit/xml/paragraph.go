package xml

import (
	"fmt"
	"iter"
	"strings"

	"github.com/beevik/etree"
)

// Paragraph is a cursor over the w:p children of a body or table cell.
// It owns a Run cursor that always follows the current paragraph.
type Paragraph struct {
	cursor
	run Run
}

// NewParagraph returns a paragraph cursor bound to container
func NewParagraph(container *etree.Element) *Paragraph {
	p := &Paragraph{}
	p.Bind(container)
	return p
}

// ParagraphAt returns a cursor positioned on an existing w:p element. The
// container is the element's parent.
func ParagraphAt(el *etree.Element) *Paragraph {
	p := &Paragraph{}
	if el != nil {
		p.set(el.Parent(), el)
	}
	p.run.Bind(p.position)
	return p
}

// Bind points the cursor at the first paragraph of container
func (p *Paragraph) Bind(container *etree.Element) {
	p.bind(container, TagParagraph)
	p.run.Bind(p.position)
}

// Next moves to the following paragraph and returns the cursor
func (p *Paragraph) Next() *Paragraph {
	p.advance(TagParagraph)
	p.run.Bind(p.position)
	return p
}

// All iterates the remaining paragraphs
func (p *Paragraph) All() iter.Seq[*Paragraph] {
	return Each(p)
}

// Runs rebinds the owned run cursor to the current paragraph and returns it
func (p *Paragraph) Runs() *Run {
	p.run.Bind(p.position)
	return &p.run
}

// Text returns the concatenated text of every run in the current paragraph
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for r := range NewRun(p.position).All() {
		sb.WriteString(r.Text())
	}
	return sb.String()
}

// AddRun appends a run holding text to the current paragraph. The returned
// cursor is independent of Runs().
func (p *Paragraph) AddRun(text string) (*Run, error) {
	if p.position == nil {
		return nil, fmt.Errorf("add run: %w: %w", ErrWrite, ErrNoPosition)
	}
	run := createWordChild(p.position, TagRun)
	createWordChild(run, TagRunProperties)
	setText(createWordChild(run, TagText), text)
	return runAt(p.position, run), nil
}

// InsertParagraphAfter inserts a new paragraph holding text directly after
// the current one and returns a cursor on it. The receiver does not move.
func (p *Paragraph) InsertParagraphAfter(text string) (*Paragraph, error) {
	if p.position == nil {
		return nil, fmt.Errorf("insert paragraph: %w: %w", ErrWrite, ErrNoPosition)
	}
	parent := p.position.Parent()
	if parent == nil {
		return nil, fmt.Errorf("insert paragraph: %w: %w: paragraph is detached", ErrWrite, ErrNoPosition)
	}
	return InsertParagraphAt(parent, p.position.Index()+1, text)
}

// InsertParagraphAt inserts a new paragraph holding text into container at
// child token index and returns a cursor on it.
func InsertParagraphAt(container *etree.Element, index int, text string) (*Paragraph, error) {
	if container == nil {
		return nil, fmt.Errorf("insert paragraph: %w: %w: no container", ErrWrite, ErrNoPosition)
	}
	el := newWordElement(container, TagParagraph)
	container.InsertChildAt(index, el)

	np := ParagraphAt(el)
	if _, err := np.AddRun(text); err != nil {
		return nil, err
	}
	return np, nil
}
