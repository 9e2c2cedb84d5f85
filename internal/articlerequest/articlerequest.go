package articlerequest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SergeyParamoshkin/newsdesk/internal/markdown"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
	"github.com/SergeyParamoshkin/newsdesk/internal/validate"
)

const excerptLength = 200

// ArticleRequest is the request payload for Article data model.
//
// The same payload serves create and update: on update the handler
// pre-populates Article with the stored row, so omitted fields keep their
// values.
type ArticleRequest struct {
	*model.Article

	ProtectedID string `json:"id"` // override 'id' json so clients can't pick it
}

func (a *ArticleRequest) Bind(r *http.Request) error {
	// a.Article is nil if no Article fields are sent in the request. Return an
	// error to avoid a nil pointer dereference.
	if a.Article == nil {
		return errors.New("missing required Article fields")
	}

	a.ProtectedID = ""
	a.Article.Title = strings.TrimSpace(a.Article.Title)
	if err := validate.Struct(a.Article); err != nil {
		return err
	}

	if a.Article.Title == "" {
		a.Article.Title = markdown.Title(a.Article.Content)
	}
	if a.Article.Excerpt == nil {
		if e := markdown.Excerpt(a.Article.Content, excerptLength); e != "" {
			a.Article.Excerpt = &e
		}
	}

	return nil
}

// ViewRequest is the body of an article view beacon.
type ViewRequest struct {
	ArticleID string `json:"articleId" validate:"required"`
}

func (v *ViewRequest) Bind(r *http.Request) error {
	return validate.Struct(v)
}
