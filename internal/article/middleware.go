package article

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
	"github.com/SergeyParamoshkin/newsdesk/internal/store"
)

type ctxKey int

const (
	ctxKeyArticle ctxKey = iota
	ctxKeyLimit
)

// ArticleCtx middleware is used to load an Article object from
// the URL parameters passed through as the request. In case
// the Article could not be found, we stop here and return a 404.
func (a *API) ArticleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		articleID := chi.URLParam(r, "articleID")
		if articleID == "" {
			renderError(w, r, errresponse.ErrNotFound)

			return
		}

		article, err := a.store.GetArticle(r.Context(), articleID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			renderError(w, r, errresponse.ErrNotFound)

			return
		case err != nil:
			logging.FromContext(r.Context()).Errorw("load article", "article_id", articleID, "err", err)
			renderError(w, r, errresponse.ErrInternal("could not load article"))

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyArticle, article)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the article loaded by ArticleCtx.
func FromContext(ctx context.Context) *model.Article {
	article, _ := ctx.Value(ctxKeyArticle).(*model.Article)

	return article
}

// Paginate reads the ?limit= query parameter. Out of range values are
// clamped by the store; non-numeric ones are rejected.
func Paginate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				renderError(w, r, errresponse.ErrInvalidRequest(fmt.Errorf("limit must be a number")))

				return
			}
			limit = n
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyLimit, limit)))
	})
}

func limitFromContext(ctx context.Context) int {
	limit, _ := ctx.Value(ctxKeyLimit).(int)

	return limit
}

func renderError(w http.ResponseWriter, r *http.Request, e render.Renderer) {
	if err := render.Render(w, r, e); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
