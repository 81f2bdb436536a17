package xml

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParagraphOrder(t *testing.T) {
	const n, m = 4, 3
	var inner strings.Builder
	var want []string
	for i := 0; i < n; i++ {
		var texts []string
		for j := 0; j < m; j++ {
			s := string(rune('a'+i)) + string(rune('0'+j))
			texts = append(texts, s)
			want = append(want, s)
		}
		inner.WriteString(paragraphXML(texts...))
	}
	_, body := parseBody(t, inner.String())

	var got []string
	for p := range NewParagraph(body).All() {
		got = append(got, collectRuns(p)...)
	}
	assert.Equal(t, want, got)
}

func TestParagraphRunsFollowPosition(t *testing.T) {
	_, body := parseBody(t, paragraphXML("a1", "a2")+paragraphXML("b1"))
	p := NewParagraph(body)

	runs := p.Runs()
	runs.Next()
	require.Equal(t, "a2", runs.Text())

	// Advancing the paragraph rebinds the owned run cursor.
	p.Next()
	assert.Equal(t, "b1", runs.Text())
	assert.Equal(t, []string{"b1"}, collectRuns(p))

	p.Next()
	assert.False(t, p.HasNext())
	assert.False(t, p.Runs().HasNext())
	assert.Equal(t, "", p.Text())
}

func TestParagraphText(t *testing.T) {
	_, body := parseBody(t, paragraphXML("Hello, ", "world", "!"))
	assert.Equal(t, "Hello, world!", NewParagraph(body).Text())
}

func TestAddRun(t *testing.T) {
	doc, body := parseBody(t, paragraphXML("a", "b")+paragraphXML("c"))
	p := NewParagraph(body)

	owned := p.Runs()
	r, err := p.AddRun("X")
	require.NoError(t, err)
	assert.Equal(t, "X", r.Text())
	assert.NotSame(t, owned, r)
	// The owned cursor has not moved.
	assert.Equal(t, "a", owned.Text())

	assert.Equal(t, []string{"a", "b", "X"}, collectRuns(p))

	rpr := firstChild(r.Element(), TagRunProperties)
	assert.NotNil(t, rpr, "new run carries an empty rPr placeholder")

	// The returned cursor is live: writes land in the tree.
	require.NoError(t, r.SetText("Y"))
	out, err := doc.WriteToString()
	require.NoError(t, err)
	assert.Contains(t, out, "<w:r><w:rPr/><w:t>Y</w:t></w:r></w:p>")

	// Independent cursor advances past the end on its own.
	assert.False(t, r.Next().HasNext())
}

func TestAddRunPastEnd(t *testing.T) {
	_, body := parseBody(t, paragraphXML("a"))
	p := NewParagraph(body)
	p.Next()

	r, err := p.AddRun("x")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrNoPosition)
	assert.ErrorIs(t, err, ErrWrite)
}

func TestInsertParagraphAfter(t *testing.T) {
	_, body := parseBody(t, paragraphXML("first")+paragraphXML("second"))
	p := NewParagraph(body)

	np, err := p.InsertParagraphAfter("Y")
	require.NoError(t, err)
	assert.Equal(t, "Y", np.Text())
	assert.Same(t, body, np.Container())

	// The receiver stays put.
	assert.Equal(t, "first", p.Text())

	p.Next()
	require.True(t, p.HasNext())
	assert.Equal(t, "Y", p.Runs().Text())

	p.Next()
	require.True(t, p.HasNext())
	assert.Equal(t, "second", p.Text())

	assert.False(t, p.Next().HasNext())
}

func TestInsertParagraphAfterChains(t *testing.T) {
	_, body := parseBody(t, paragraphXML("a"))

	np, err := NewParagraph(body).InsertParagraphAfter("b")
	require.NoError(t, err)
	_, err = np.InsertParagraphAfter("c")
	require.NoError(t, err)

	var texts []string
	for p := range NewParagraph(body).All() {
		texts = append(texts, p.Text())
	}
	assert.Equal(t, []string{"a", "b", "c"}, texts)
}

func TestInsertParagraphAfterFailures(t *testing.T) {
	_, body := parseBody(t, "")
	p := NewParagraph(body)
	_, err := p.InsertParagraphAfter("x")
	assert.ErrorIs(t, err, ErrNoPosition)
	assert.ErrorIs(t, err, ErrWrite)

	detached := ParagraphAt(etree.NewElement("w:p"))
	_, err = detached.InsertParagraphAfter("x")
	assert.ErrorIs(t, err, ErrNoPosition)
	assert.ErrorIs(t, err, ErrWrite)

	_, err = InsertParagraphAt(nil, 0, "x")
	assert.ErrorIs(t, err, ErrWrite)
}

func TestParagraphAt(t *testing.T) {
	_, body := parseBody(t, paragraphXML("a")+paragraphXML("b"))
	second := body.ChildElements()[1]

	p := ParagraphAt(second)
	assert.Same(t, body, p.Container())
	assert.Equal(t, "b", p.Text())
	assert.False(t, p.Next().HasNext())

	assert.False(t, ParagraphAt(nil).HasNext())
}
