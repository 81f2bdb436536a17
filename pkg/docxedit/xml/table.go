package xml

import (
	"iter"

	"github.com/beevik/etree"
)

// Table is a cursor over the w:tbl children of a body
type Table struct {
	cursor
	row TableRow
}

// NewTable returns a table cursor bound to container
func NewTable(container *etree.Element) *Table {
	t := &Table{}
	t.Bind(container)
	return t
}

// Bind points the cursor at the first table of container
func (t *Table) Bind(container *etree.Element) {
	t.bind(container, TagTable)
	t.row.Bind(t.position)
}

// Next moves to the following table and returns the cursor
func (t *Table) Next() *Table {
	t.advance(TagTable)
	t.row.Bind(t.position)
	return t
}

// All iterates the remaining tables
func (t *Table) All() iter.Seq[*Table] {
	return Each(t)
}

// Rows rebinds the owned row cursor to the current table and returns it
func (t *Table) Rows() *TableRow {
	t.row.Bind(t.position)
	return &t.row
}

// TableRow is a cursor over the w:tr children of a table
type TableRow struct {
	cursor
	cell TableCell
}

// Bind points the cursor at the first row of table
func (r *TableRow) Bind(table *etree.Element) {
	r.bind(table, TagTableRow)
	r.cell.Bind(r.position)
}

// Next moves to the following row and returns the cursor
func (r *TableRow) Next() *TableRow {
	r.advance(TagTableRow)
	r.cell.Bind(r.position)
	return r
}

// All iterates the remaining rows
func (r *TableRow) All() iter.Seq[*TableRow] {
	return Each(r)
}

// Cells rebinds the owned cell cursor to the current row and returns it
func (r *TableRow) Cells() *TableCell {
	r.cell.Bind(r.position)
	return &r.cell
}

// TableCell is a cursor over the w:tc children of a row. Its paragraphs
// behave exactly like the document's root paragraphs.
type TableCell struct {
	cursor
	paragraph Paragraph
}

// Bind points the cursor at the first cell of row
func (c *TableCell) Bind(row *etree.Element) {
	c.bind(row, TagTableCell)
	c.paragraph.Bind(c.position)
}

// Next moves to the following cell and returns the cursor
func (c *TableCell) Next() *TableCell {
	c.advance(TagTableCell)
	c.paragraph.Bind(c.position)
	return c
}

// All iterates the remaining cells
func (c *TableCell) All() iter.Seq[*TableCell] {
	return Each(c)
}

// Paragraphs rebinds the owned paragraph cursor to the current cell and
// returns it
func (c *TableCell) Paragraphs() *Paragraph {
	c.paragraph.Bind(c.position)
	return &c.paragraph
}
