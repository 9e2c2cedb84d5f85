// Package ai wraps the generative models used by the editor: article
// summaries, layout suggestions, slideshow scripts and narration.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/SergeyParamoshkin/newsdesk/internal/markdown"
)

const (
	summaryMaxTokens  = 500
	insightsMaxTokens = 800
	scriptMaxTokens   = 2048

	charsPerSecond  = 140
	minSectionTime  = 3
	maxCaptionChars = 200
	seedTextChars   = 120
)

// ErrNoJSON is returned when a reply contains no decodable JSON.
var ErrNoJSON = errors.New("no JSON in model reply")

// Insight is one layout or content suggestion for an article.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Section is one slide of a narrated slideshow.
type Section struct {
	Time          float64 `json:"section_time"`
	Text          string  `json:"section_text"`
	Transcription string  `json:"section_transcription"`
}

// Script is the ordered slide plan for a slideshow.
type Script struct {
	Sections []Section `json:"sections"`
	// Fallback is set when the sections were derived from the article
	// paragraphs instead of the model reply.
	Fallback bool `json:"-"`
}

// Assistant runs the editorial prompts against a TextGenerator.
type Assistant struct {
	gen TextGenerator
}

func NewAssistant(gen TextGenerator) *Assistant {
	return &Assistant{gen: gen}
}

// Summarize writes a Brazilian Portuguese markdown summary of an article.
func (a *Assistant) Summarize(ctx context.Context, article string) (string, error) {
	summary, err := a.gen.Generate(ctx, summaryPrompt(article), summaryMaxTokens)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	return strings.TrimSpace(summary), nil
}

// Insights asks for layout and content suggestions.
func (a *Assistant) Insights(ctx context.Context, article string) ([]Insight, error) {
	reply, err := a.gen.Generate(ctx, insightsPrompt(article), insightsMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("insights: %w", err)
	}

	var insights []Insight
	if err := decodeJSON(reply, '[', ']', &insights); err != nil {
		return nil, fmt.Errorf("insights: %w", err)
	}
	if insights == nil {
		insights = []Insight{}
	}

	return insights, nil
}

// SlideshowScript plans exactly n slides for an article. When the model
// fails or replies with something unusable the plan is derived from the
// article paragraphs.
func (a *Assistant) SlideshowScript(ctx context.Context, article string, n int) (Script, error) {
	if n <= 0 {
		return Script{}, fmt.Errorf("slideshow script: need at least one slide")
	}

	reply, err := a.gen.Generate(ctx, scriptPrompt(article, n), scriptMaxTokens)
	if err == nil {
		var parsed struct {
			Sections []Section `json:"sections"`
		}
		if decodeJSON(reply, '{', '}', &parsed) == nil && parsed.Sections != nil {
			return Script{Sections: fitSections(parsed.Sections, n, article)}, nil
		}
	}
	if errors.Is(err, context.Canceled) {
		return Script{}, err
	}

	return Script{Sections: FallbackSections(article, n), Fallback: true}, nil
}

// Paragraphs plans slides from the article paragraphs alone. It stands in
// for the Assistant when no model is configured.
type Paragraphs struct{}

func (Paragraphs) SlideshowScript(_ context.Context, article string, n int) (Script, error) {
	if n <= 0 {
		return Script{}, fmt.Errorf("slideshow script: need at least one slide")
	}

	return Script{Sections: FallbackSections(article, n), Fallback: true}, nil
}

func fitSections(sections []Section, n int, article string) []Section {
	if len(sections) >= n {
		return sections[:n]
	}

	last := Section{Time: float64(EstimateSeconds(article))}
	if len(sections) > 0 {
		last = sections[len(sections)-1]
	}
	for len(sections) < n {
		sections = append(sections, last)
	}

	return sections
}

var paragraphBreak = regexp.MustCompile(`\n\n+`)

// FallbackSections splits an article into n slides by paragraph.
func FallbackSections(article string, n int) []Section {
	var parts []string
	for _, p := range paragraphBreak.Split(article, -1) {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}

	out := make([]Section, 0, n)
	for i := 0; i < n; i++ {
		var t string
		switch {
		case i < len(parts):
			t = parts[i]
		case len(parts) > 0:
			t = parts[len(parts)-1]
		default:
			t = prefix(article, seedTextChars)
		}

		cleaned := markdown.PlainText(t)
		out = append(out, Section{
			Time:          float64(EstimateSeconds(cleaned)),
			Text:          prefix(cleaned, maxCaptionChars),
			Transcription: cleaned,
		})
	}

	return out
}

// EstimateSeconds is the comfortable reading time of s, at least 3s.
func EstimateSeconds(s string) int {
	secs := int(math.Ceil(float64(utf8.RuneCountInString(s)) / charsPerSecond))
	if secs < minSectionTime {
		return minSectionTime
	}

	return secs
}

// decodeJSON decodes the whole reply, or else the span between the first
// open and the last close delimiter.
func decodeJSON(reply string, opening, closing byte, v any) error {
	reply = strings.TrimSpace(reply)
	if json.Unmarshal([]byte(reply), v) == nil {
		return nil
	}

	start := strings.IndexByte(reply, opening)
	end := strings.LastIndexByte(reply, closing)
	if start < 0 || end <= start {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), v); err != nil {
		return fmt.Errorf("%w: %v", ErrNoJSON, err)
	}

	return nil
}

func prefix(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}
