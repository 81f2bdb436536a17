package docxedit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit/xml"
)

// Document is a DOCX file opened for editing. It owns the parsed body tree;
// cursors returned by Paragraphs and Tables are views into that tree and are
// only valid until the next Open.
//
// A Document is not safe for concurrent use.
type Document struct {
	path   string
	config *Config
	logger *Logger

	tree  *etree.Document
	body  *etree.Element
	parts []string

	paragraph xml.Paragraph
	table     xml.Table
}

// Option configures a Document
type Option func(*Document)

// WithConfig overrides the global configuration for one document
func WithConfig(config *Config) Option {
	return func(d *Document) {
		if config != nil {
			c := *config
			d.config = &c
		}
	}
}

// WithLogger overrides the global logger for one document
func WithLogger(logger *Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New returns a closed document for path
func New(path string, opts ...Option) *Document {
	d := &Document{path: path}
	for _, opt := range opts {
		opt(d)
	}
	if d.config == nil {
		d.config = GetGlobalConfig()
	}
	if d.logger == nil {
		d.logger = GetLogger()
	}
	return d
}

// Open is a shorthand for New followed by Document.Open
func Open(path string, opts ...Option) (*Document, error) {
	d := New(path, opts...)
	if err := d.Open(); err != nil {
		return nil, err
	}
	return d, nil
}

// SetPath retargets the document. The loaded tree, if any, is kept, so the
// next Save copies the untouched parts from the new path.
func (d *Document) SetPath(path string) {
	d.path = path
}

// Path returns the archive path
func (d *Document) Path() string {
	return d.path
}

// IsOpen reports whether a body tree is loaded
func (d *Document) IsOpen() bool {
	return d.tree != nil
}

// Parts lists the archive entries seen by the last successful Open
func (d *Document) Parts() []string {
	return append([]string(nil), d.parts...)
}

// Open loads the body part and binds the root cursors. On failure the
// document keeps whatever state it had before the call.
func (d *Document) Open() error {
	log := d.logger.WithField("path", d.path)

	snap, err := readArchive(d.path, d.config.MaxBodySize)
	if err != nil {
		log.Debug("open failed: %v", err)
		return err
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(snap.body); err != nil {
		log.Debug("body part does not parse: %v", err)
		return NewDocumentError("open", d.path, ErrMalformedDocument, err)
	}
	if err := checkProlog(tree); err != nil {
		log.Debug("body part is not well-formed: %v", err)
		return NewDocumentError("open", d.path, ErrMalformedDocument, err)
	}
	body := xml.FindBody(tree)
	if body == nil {
		return NewDocumentError("open", d.path, ErrMalformedDocument,
			errors.New("no w:document/w:body element"))
	}

	d.tree = tree
	d.body = body
	d.parts = snap.parts
	d.paragraph.Bind(body)
	d.table.Bind(body)

	log.Debug("opened document: %d parts, %d body bytes", len(snap.parts), len(snap.body))
	return nil
}

// checkProlog rejects trees with other than one root element or with text
// outside of it, which etree accepts.
func checkProlog(tree *etree.Document) error {
	if n := len(tree.ChildElements()); n != 1 {
		return fmt.Errorf("%d top-level elements", n)
	}
	for _, tok := range tree.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return errors.New("text outside the root element")
		}
	}
	return nil
}

// Save rewrites the archive at Path
func (d *Document) Save() error {
	return d.SaveAs(d.path)
}

// SaveAs writes the current body tree to target. Every entry other than the
// body part is copied unchanged from the archive at Path. The new archive is
// built in a temporary file beside target and renamed over it in one step,
// so a failed save leaves target as it was.
func (d *Document) SaveAs(target string) (err error) {
	if !d.IsOpen() {
		return NewDocumentError("save", target, ErrNotOpen, nil)
	}
	log := d.logger.WithFields(Fields{"path": d.path, "target": target})

	body, err := d.tree.WriteToBytes()
	if err != nil {
		return NewDocumentError("save", target, ErrWrite, fmt.Errorf("failed to serialize body: %w", err))
	}

	pf, err := newPendingFile(target)
	if err != nil {
		return NewDocumentError("save", target, ErrWrite, err)
	}
	defer func() {
		if err != nil {
			if cerr := pf.cleanup(); cerr != nil {
				log.Warn("failed to remove temporary file %s: %v", pf.name(), cerr)
			}
		}
	}()

	if err = rewriteArchive(pf, d.path, target, body, d.config.CompressionLevel); err != nil {
		log.Debug("save failed: %v", err)
		return err
	}
	if err = pf.commit(); err != nil {
		return NewDocumentError("save", target, ErrReplace, err)
	}

	log.Info("saved document")
	return nil
}

// Paragraphs rebinds and returns the root paragraph cursor. On a closed
// document the cursor is empty.
func (d *Document) Paragraphs() *xml.Paragraph {
	d.paragraph.Bind(d.body)
	return &d.paragraph
}

// Tables rebinds and returns the root table cursor
func (d *Document) Tables() *xml.Table {
	d.table.Bind(d.body)
	return &d.table
}

// AppendParagraph adds a paragraph holding text at the end of the body,
// ahead of the trailing section properties.
func (d *Document) AppendParagraph(text string) (*xml.Paragraph, error) {
	if !d.IsOpen() {
		return nil, NewDocumentError("append", d.path, ErrNotOpen, nil)
	}
	var last *etree.Element
	for _, child := range d.body.ChildElements() {
		if !xml.IsWordElement(child, xml.TagSection) {
			last = child
		}
	}

	p, err := xml.InsertParagraphAt(d.body, insertIndex(d.body, last), text)
	if err != nil {
		return nil, NewDocumentError("append", d.path, ErrWrite, err)
	}
	return p, nil
}

func insertIndex(body, last *etree.Element) int {
	if last != nil {
		return last.Index() + 1
	}
	if children := body.ChildElements(); len(children) > 0 {
		return children[0].Index()
	}
	return len(body.Child)
}

// Text returns the text of every body paragraph, one per line. Tables are
// not included.
func (d *Document) Text() string {
	var lines []string
	for p := range d.Paragraphs().All() {
		lines = append(lines, p.Text())
	}
	return strings.Join(lines, "\n")
}

// ReplaceText replaces old with replacement inside every run of the body, including
// the paragraphs of table cells, and returns the number of runs changed.
// Matches that span several runs are not found.
func (d *Document) ReplaceText(old, replacement string) (int, error) {
	if !d.IsOpen() {
		return 0, NewDocumentError("replace text", d.path, ErrNotOpen, nil)
	}
	if old == "" {
		return 0, nil
	}

	changed := 0
	replaceIn := func(p *xml.Paragraph) error {
		for ; p.HasNext(); p.Next() {
			for r := range p.Runs().All() {
				text := r.Text()
				if !strings.Contains(text, old) {
					continue
				}
				if err := r.SetText(strings.ReplaceAll(text, old, replacement)); err != nil {
					return err
				}
				changed++
			}
		}
		return nil
	}

	if err := replaceIn(xml.NewParagraph(d.body)); err != nil {
		return changed, err
	}
	for table := range xml.NewTable(d.body).All() {
		for row := range table.Rows().All() {
			for cell := range row.Cells().All() {
				if err := replaceIn(cell.Paragraphs()); err != nil {
					return changed, err
				}
			}
		}
	}
	return changed, nil
}
