package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const article = `# Inteligência Artificial revoluciona o diagnóstico

A inteligência artificial está transformando a forma como os **médicos** diagnosticam doenças.

## Resultados impressionantes

Estudos recentes mostram precisão de 94%.

### Detalhes *técnicos*

<script>alert(1)</script>
`

func TestOutline(t *testing.T) {
	got := Outline(article)

	assert.Equal(t, []Heading{
		{Level: "H1", Title: "Inteligência Artificial revoluciona o diagnóstico"},
		{Level: "H2", Title: "Resultados impressionantes"},
		{Level: "H3", Title: "Detalhes técnicos"},
	}, got)
}

func TestOutlineEmpty(t *testing.T) {
	got := Outline("just a paragraph")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "A inteligência artificial está transformando a forma como os médicos diagnosticam doenças.", Excerpt(article, 0))
	assert.Equal(t, "A inteligência", Excerpt(article, 14))
	assert.Equal(t, "", Excerpt("# only a heading", 10))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Inteligência Artificial revoluciona o diagnóstico", Title("\n\n"+article))
	assert.Equal(t, "Untitled", Title("  \n \n"))
	assert.Equal(t, 255, len([]rune(Title(strings.Repeat("é", 300)))))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, ReadingTime("   "))
	assert.Equal(t, 1, ReadingTime("one two three"))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("word ", 201)))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Title with bold and code", PlainText("## Title with **bold** and `code`"))
}

func TestRenderHTMLSanitizes(t *testing.T) {
	html, err := RenderHTML(article)
	require.NoError(t, err)

	assert.Contains(t, html, "<h2")
	assert.Contains(t, html, "<strong>médicos</strong>")
	assert.NotContains(t, html, "<script>")
}
