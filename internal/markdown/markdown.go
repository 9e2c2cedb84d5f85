// Package markdown extracts structure from article bodies and renders them
// to sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

const (
	wordsPerMinute = 200
	maxTitleLength = 255
	untitled       = "Untitled"
)

var (
	md     = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy = bluemonday.UGCPolicy()

	emphasisMarks = regexp.MustCompile("[#*_`]")
)

// Heading is one entry of an article outline.
type Heading struct {
	Level string `json:"level"` // H1..H6
	Title string `json:"title"`
}

func parse(src []byte) ast.Node {
	return md.Parser().Parse(text.NewReader(src))
}

// Outline lists the headings of a markdown document in order.
func Outline(content string) []Heading {
	src := []byte(content)
	out := []Heading{}

	_ = ast.Walk(parse(src), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := strings.TrimSpace(nodeText(h, src))
		if title == "" {
			title = "Sem título"
		}
		out = append(out, Heading{Level: fmt.Sprintf("H%d", h.Level), Title: title})

		return ast.WalkSkipChildren, nil
	})

	return out
}

// Excerpt returns the text of the first paragraph, cut to max runes.
func Excerpt(content string, max int) string {
	src := []byte(content)
	var excerpt string

	_ = ast.Walk(parse(src), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if p, ok := n.(*ast.Paragraph); ok {
			excerpt = strings.Join(strings.Fields(nodeText(p, src)), " ")
			if excerpt != "" {
				return ast.WalkStop, nil
			}
		}

		return ast.WalkContinue, nil
	})

	return truncate(excerpt, max)
}

// Title derives a title from the first non-empty line.
func Title(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line != "" {
			return truncate(line, maxTitleLength)
		}
	}

	return untitled
}

// ReadingTime estimates minutes to read at 200 words per minute.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}

	return int(math.Ceil(float64(words) / wordsPerMinute))
}

// PlainText drops markdown emphasis and heading marks.
func PlainText(s string) string {
	return strings.TrimSpace(emphasisMarks.ReplaceAllString(s, ""))
}

// RenderHTML converts markdown to HTML safe for embedding in a page.
func RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return policy.Sanitize(buf.String()), nil
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, src))
		}
	}

	return b.String()
}

func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}

	return string([]rune(s)[:max])
}
