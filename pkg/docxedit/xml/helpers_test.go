package xml

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

const documentOpen = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const documentClose = `<w:sectPr/></w:body></w:document>`

// paragraphXML builds a w:p holding one run per text
func paragraphXML(texts ...string) string {
	var sb strings.Builder
	sb.WriteString("<w:p>")
	for _, t := range texts {
		sb.WriteString("<w:r><w:rPr/><w:t>" + t + "</w:t></w:r>")
	}
	sb.WriteString("</w:p>")
	return sb.String()
}

// tableXML builds a rows x cols table whose cells hold one paragraph each
func tableXML(cells [][]string) string {
	var sb strings.Builder
	sb.WriteString("<w:tbl><w:tblPr/>")
	for _, row := range cells {
		sb.WriteString("<w:tr>")
		for _, c := range row {
			sb.WriteString("<w:tc><w:tcPr/>" + paragraphXML(c) + "</w:tc>")
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>")
	return sb.String()
}

func parseBody(t *testing.T, inner string) (*etree.Document, *etree.Element) {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(documentOpen+inner+documentClose))
	body := FindBody(doc)
	require.NotNil(t, body, "fixture has no body")
	return doc, body
}

func collectRuns(p *Paragraph) []string {
	var texts []string
	for r := range p.Runs().All() {
		texts = append(texts, r.Text())
	}
	return texts
}
