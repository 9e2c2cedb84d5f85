package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply     string
	err       error
	prompt    string
	maxTokens int
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, maxTokens int) (string, error) {
	f.prompt = prompt
	f.maxTokens = maxTokens

	return f.reply, f.err
}

const article = "# Título\n\nPrimeiro parágrafo com **negrito**.\n\n\n## Segundo\n\nTerceiro parágrafo."

func TestSummarize(t *testing.T) {
	gen := &fakeGenerator{reply: "  ## Resumo\n\n- ponto  "}

	summary, err := NewAssistant(gen).Summarize(context.Background(), article)
	require.NoError(t, err)

	assert.Equal(t, "## Resumo\n\n- ponto", summary)
	assert.Contains(t, gen.prompt, article)
	assert.Contains(t, gen.prompt, "português brasileiro")
	assert.Equal(t, summaryMaxTokens, gen.maxTokens)
}

func TestSummarizeError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("overloaded")}

	_, err := NewAssistant(gen).Summarize(context.Background(), article)
	assert.ErrorContains(t, err, "overloaded")
}

func TestInsights(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  int
	}{
		{"bare array", `[{"title":"Imagem","description":"Adicione uma foto"}]`, 1},
		{"fenced", "```json\n[{\"title\":\"A\",\"description\":\"a\"},{\"title\":\"B\",\"description\":\"b\"}]\n```", 2},
		{"wrapped object", `{"suggestions":[{"title":"A","description":"a"}]}`, 1},
		{"empty", `[]`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewAssistant(&fakeGenerator{reply: tc.reply}).Insights(context.Background(), article)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestInsightsRejectsProse(t *testing.T) {
	_, err := NewAssistant(&fakeGenerator{reply: "Não consegui."}).Insights(context.Background(), article)
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestSlideshowScriptTruncatesAndPads(t *testing.T) {
	reply := `Aqui está: {"sections":[
		{"section_time":4,"section_text":"Um","section_transcription":"Narração um"},
		{"section_time":5.5,"section_text":"Dois","section_transcription":"Narração dois"},
		{"section_time":6,"section_text":"Três","section_transcription":"Narração três"}
	]} fim`
	a := NewAssistant(&fakeGenerator{reply: reply})

	script, err := a.SlideshowScript(context.Background(), article, 2)
	require.NoError(t, err)
	assert.False(t, script.Fallback)
	require.Len(t, script.Sections, 2)
	assert.Equal(t, 5.5, script.Sections[1].Time)

	script, err = a.SlideshowScript(context.Background(), article, 5)
	require.NoError(t, err)
	require.Len(t, script.Sections, 5)
	assert.Equal(t, "Três", script.Sections[4].Text)
}

func TestSlideshowScriptEmptySectionsPadsWithEstimate(t *testing.T) {
	script, err := NewAssistant(&fakeGenerator{reply: `{"sections":[]}`}).SlideshowScript(context.Background(), article, 2)
	require.NoError(t, err)

	require.Len(t, script.Sections, 2)
	assert.Equal(t, float64(minSectionTime), script.Sections[0].Time)
	assert.Empty(t, script.Sections[0].Text)
}

func TestSlideshowScriptFallsBackOnGarbage(t *testing.T) {
	for _, gen := range []*fakeGenerator{
		{reply: "sem json"},
		{err: errors.New("quota")},
	} {
		script, err := NewAssistant(gen).SlideshowScript(context.Background(), article, 4)
		require.NoError(t, err)
		assert.True(t, script.Fallback)
		require.Len(t, script.Sections, 4)
		assert.Equal(t, "Título", script.Sections[0].Text)
		assert.Equal(t, "Primeiro parágrafo com negrito.", script.Sections[1].Transcription)
		assert.Equal(t, "Segundo", script.Sections[2].Text)
		assert.Equal(t, "Terceiro parágrafo.", script.Sections[3].Text)
	}
}

func TestSlideshowScriptCanceled(t *testing.T) {
	_, err := NewAssistant(&fakeGenerator{err: context.Canceled}).SlideshowScript(context.Background(), article, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewAssistant(&fakeGenerator{}).SlideshowScript(context.Background(), article, 0)
	assert.Error(t, err)
}

func TestFallbackSectionsRepeatsLastParagraph(t *testing.T) {
	long := strings.Repeat("palavra ", 60)

	got := FallbackSections("intro\n\n"+long, 3)

	require.Len(t, got, 3)
	assert.Equal(t, got[1], got[2])
	assert.Len(t, []rune(got[1].Text), maxCaptionChars)
	assert.Equal(t, float64(4), got[1].Time)
}

func TestEstimateSeconds(t *testing.T) {
	assert.Equal(t, 3, EstimateSeconds(""))
	assert.Equal(t, 3, EstimateSeconds(strings.Repeat("a", 420)))
	assert.Equal(t, 4, EstimateSeconds(strings.Repeat("a", 421)))
}

func TestParagraphs(t *testing.T) {
	script, err := Paragraphs{}.SlideshowScript(context.Background(), article, 2)
	require.NoError(t, err)

	assert.True(t, script.Fallback)
	assert.Equal(t, FallbackSections(article, 2), script.Sections)

	_, err = Paragraphs{}.SlideshowScript(context.Background(), article, 0)
	assert.Error(t, err)
}
