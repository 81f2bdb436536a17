// Package docxedit reads and edits the text of Microsoft Word documents (DOCX)
// in place.
//
// Only the body part (word/document.xml) is parsed. Saving rewrites that one
// part and copies every other archive entry (styles, media, relationships,
// metadata) through byte for byte, so parts this package does not understand
// survive an edit cycle.
//
// Basic Usage:
//
//	doc, err := docxedit.Open("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for p := range doc.Paragraphs().All() {
//	    for r := range p.Runs().All() {
//	        fmt.Println(r.Text())
//	    }
//	}
//
//	p := doc.Paragraphs()
//	if _, err := p.InsertParagraphAfter("Inserted after the first paragraph"); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := doc.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// Tables nest the same way: Tables().Rows().Cells().Paragraphs().
//
// Errors:
//
// Failures wrap one of ErrArchiveOpen, ErrPartNotFound, ErrMalformedDocument,
// ErrWrite, ErrReplace, ErrTextSet or ErrNotOpen; test them with errors.Is.
// Moving a cursor never fails: reaching the end is reported by HasNext.
//
// Saving is atomic with respect to the target path. The replacement archive
// is written to a temporary file in the same directory and renamed over the
// original in one step.
package docxedit
