package ai

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
)

var errMissingMarkdown = errors.New("Missing markdown")

// MarkdownRequest carries the article being edited.
type MarkdownRequest struct {
	Markdown *string `json:"markdown"`
}

func (m *MarkdownRequest) Bind(r *http.Request) error {
	if m.Markdown == nil || strings.TrimSpace(*m.Markdown) == "" {
		return errMissingMarkdown
	}

	return nil
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

func (rd *SummaryResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type InsightsResponse struct {
	Suggestions []Insight `json:"suggestions"`
}

func (rd *InsightsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// API serves the editor assistant. A nil assistant answers 503.
type API struct {
	assistant *Assistant
}

func NewAPI(a *Assistant) *API {
	return &API{assistant: a}
}

func (a *API) bind(w http.ResponseWriter, r *http.Request) (string, bool) {
	if a.assistant == nil {
		renderError(w, r, errresponse.ErrUnavailable("AI assistant is not configured"))

		return "", false
	}

	data := &MarkdownRequest{}
	if err := render.Bind(r, data); err != nil {
		renderError(w, r, errresponse.ErrInvalidRequest(errMissingMarkdown))

		return "", false
	}

	return *data.Markdown, true
}

// Summary writes a short summary of the posted markdown.
func (a *API) Summary(w http.ResponseWriter, r *http.Request) {
	md, ok := a.bind(w, r)
	if !ok {
		return
	}

	summary, err := a.assistant.Summarize(r.Context(), md)
	if err != nil {
		logging.FromContext(r.Context()).Errorw("generate summary", "err", err)
		renderError(w, r, errresponse.ErrInternal("Failed to generate summary"))

		return
	}

	if err := render.Render(w, r, &SummaryResponse{Summary: summary}); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

// Insights suggests layout and content improvements for the posted markdown.
func (a *API) Insights(w http.ResponseWriter, r *http.Request) {
	md, ok := a.bind(w, r)
	if !ok {
		return
	}

	suggestions, err := a.assistant.Insights(r.Context(), md)
	if err != nil {
		logging.FromContext(r.Context()).Errorw("generate insights", "err", err)
		renderError(w, r, errresponse.ErrInternal("Failed to generate insights"))

		return
	}

	if err := render.Render(w, r, &InsightsResponse{Suggestions: suggestions}); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

func renderError(w http.ResponseWriter, r *http.Request, e render.Renderer) {
	if err := render.Render(w, r, e); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
