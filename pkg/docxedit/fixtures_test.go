package docxedit

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:style w:type="paragraph" w:styleId="Normal"/></w:styles>`

// mediaBytes is not valid UTF-8 and is stored uncompressed
var mediaBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff, 0xfe, 0x01}

type entry struct {
	name   string
	data   []byte
	method uint16
}

func bodyXML(inner string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		inner + `<w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr></w:body></w:document>`
}

// paragraphs builds one w:p per row, one run per text
func paragraphs(rows ...[]string) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString("<w:p>")
		for _, text := range row {
			sb.WriteString("<w:r><w:rPr/><w:t>" + text + "</w:t></w:r>")
		}
		sb.WriteString("</w:p>")
	}
	return sb.String()
}

func table(cells [][]string) string {
	var sb strings.Builder
	sb.WriteString("<w:tbl>")
	for _, row := range cells {
		sb.WriteString("<w:tr>")
		for _, text := range row {
			sb.WriteString("<w:tc>" + paragraphs([]string{text}) + "</w:tc>")
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>")
	return sb.String()
}

// docxEntries returns the entries of a small but complete package
func docxEntries(body string) []entry {
	return []entry{
		{name: "[Content_Types].xml", data: []byte(contentTypesXML), method: zip.Deflate},
		{name: "_rels/.rels", data: []byte(relsXML), method: zip.Deflate},
		{name: BodyPartName, data: []byte(body), method: zip.Deflate},
		{name: "word/styles.xml", data: []byte(stylesXML), method: zip.Deflate},
		{name: "word/media/image1.png", data: mediaBytes, method: zip.Store},
	}
}

func buildZip(t *testing.T, entries []entry) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for _, e := range entries {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: e.name, Method: e.method})
		require.NoError(t, err)
		_, err = fw.Write(e.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func writeDocx(t *testing.T, entries []entry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.docx")
	require.NoError(t, os.WriteFile(path, buildZip(t, entries), 0o644))
	return path
}

// readEntries returns name -> uncompressed bytes, plus the entry order
func readEntries(t *testing.T, path string) (map[string][]byte, []string) {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	out := make(map[string][]byte)
	var order []string
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data := new(bytes.Buffer)
		_, err = data.ReadFrom(rc)
		rc.Close()
		require.NoError(t, err)
		out[f.Name] = data.Bytes()
		order = append(order, f.Name)
	}
	return out, order
}

func quietDocument(path string, opts ...Option) *Document {
	return New(path, append([]Option{WithLogger(NewLogger(nil, LogOff))}, opts...)...)
}

func runTexts(d *Document) []string {
	var texts []string
	for p := range d.Paragraphs().All() {
		for r := range p.Runs().All() {
			texts = append(texts, r.Text())
		}
	}
	return texts
}
