// Package xml provides forward-only cursors over the body of a DOCX document.
//
// A DOCX body (word/document.xml) is held in memory as a github.com/beevik/etree
// tree. The cursors in this package never own that tree: each one stores the
// container element it was bound into and the element it currently points at.
//
// # Cursor Kinds
//
//   - Paragraph: w:p children of a body or table cell. Owns a Run cursor.
//   - Run: w:r children of a paragraph. Reads and writes the w:t payload.
//   - Table: w:tbl children of a body. Owns a TableRow cursor.
//   - TableRow: w:tr children of a table. Owns a TableCell cursor.
//   - TableCell: w:tc children of a row. Owns a Paragraph cursor.
//
// Every kind implements Iterator, so the same loop shape works at every level:
//
//	for p := range doc.Paragraphs().All() {
//	    for r := range p.Runs().All() {
//	        fmt.Println(r.Text())
//	    }
//	}
//
// Owned child cursors are rebound whenever the parent moves, so p.Runs() always
// reflects the paragraph p currently points at. A cursor that has moved past the
// last sibling reports HasNext() == false; calling Next() again keeps it there.
// The only way to rewind is to Bind the cursor to a container again.
//
// # XML Namespaces
//
// Elements are matched by local name within the WordprocessingML main namespace
// (http://schemas.openxmlformats.org/wordprocessingml/2006/main). Fragments that
// use the conventional w: prefix without declaring it are accepted as well.
package xml
