package articleresponse

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/newsdesk/internal/markdown"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

// ArticleResponse is the response payload for the Article data model.
//
// Render is called in top-down order, like a http handler middleware chain,
// so computed fields are filled right before the payload is marshalled.
type ArticleResponse struct {
	*model.Article

	ReadingTime int    `json:"readingTime"`
	HTML        string `json:"html,omitempty"`
}

func NewArticleResponse(article *model.Article) *ArticleResponse {
	return &ArticleResponse{Article: article}
}

// WithHTML adds the sanitized HTML rendering of the content.
func (rd *ArticleResponse) WithHTML() (*ArticleResponse, error) {
	html, err := markdown.RenderHTML(rd.Content)
	if err != nil {
		return nil, err
	}
	rd.HTML = html

	return rd, nil
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	rd.ReadingTime = markdown.ReadingTime(rd.Content)

	return nil
}

// SummaryResponse is one entry of an article listing.
type SummaryResponse struct {
	model.ArticleSummary
}

func (rd *SummaryResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func NewArticleListResponse(articles []model.ArticleSummary) []render.Renderer {
	list := []render.Renderer{}
	for _, article := range articles {
		list = append(list, &SummaryResponse{ArticleSummary: article})
	}

	return list
}

// OutlineResponse lists the headings of an article.
type OutlineResponse struct {
	ArticleID string             `json:"articleId"`
	Headings  []markdown.Heading `json:"headings"`
}

func NewOutlineResponse(article *model.Article) *OutlineResponse {
	headings := markdown.Outline(article.Content)
	if headings == nil {
		headings = []markdown.Heading{}
	}

	return &OutlineResponse{ArticleID: article.ID, Headings: headings}
}

func (rd *OutlineResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

func (rd *CategoriesResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if rd.Categories == nil {
		rd.Categories = []string{}
	}

	return nil
}

// ViewsResponse acknowledges an article view.
type ViewsResponse struct {
	Success bool `json:"success"`
	Views   int  `json:"views"`
}

func (rd *ViewsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	rd.Success = true

	return nil
}
