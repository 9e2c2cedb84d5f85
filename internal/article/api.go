// Package article serves the article resource.
package article

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/newsdesk/internal/articlerequest"
	"github.com/SergeyParamoshkin/newsdesk/internal/articleresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
	"github.com/SergeyParamoshkin/newsdesk/internal/store"
)

type API struct {
	store Store
}

func NewAPI(s Store) *API {
	return &API{store: s}
}

// Routes registers the RESTy routes for the "articles" resource.
func (a *API) Routes(r chi.Router) {
	r.With(Paginate).Get("/", a.ListArticles)
	r.Post("/", a.CreateArticle)                      // POST /articles
	r.With(Paginate).Get("/search", a.SearchArticles) // GET /articles/search?q=
	r.Get("/categories", a.ListCategories)            // GET /articles/categories

	r.Route("/{articleID}", func(r chi.Router) {
		r.Use(a.ArticleCtx)             // Load the *Article on the request context
		r.Get("/", a.GetArticle)        // GET /articles/123
		r.Put("/", a.UpdateArticle)     // PUT /articles/123
		r.Delete("/", a.DeleteArticle)  // DELETE /articles/123
		r.Get("/outline", a.GetOutline) // GET /articles/123/outline
	})
}

func (a *API) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := a.store.ListArticles(r.Context(), store.ListOptions{
		Category: r.URL.Query().Get("category"),
		Limit:    limitFromContext(r.Context()),
	})
	if err != nil {
		logging.FromContext(r.Context()).Errorw("list articles", "err", err)
		renderError(w, r, errresponse.ErrInternal("could not list articles"))

		return
	}

	if err := render.RenderList(w, r, articleresponse.NewArticleListResponse(articles)); err != nil {
		renderError(w, r, errresponse.ErrRender(err))
	}
}

// SearchArticles matches the query against titles and bodies.
func (a *API) SearchArticles(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		renderError(w, r, errresponse.ErrInvalidRequest(errors.New("q is required")))

		return
	}

	articles, err := a.store.SearchArticles(r.Context(), q, limitFromContext(r.Context()))
	if err != nil {
		logging.FromContext(r.Context()).Errorw("search articles", "q", q, "err", err)
		renderError(w, r, errresponse.ErrInternal("could not search articles"))

		return
	}

	if err := render.RenderList(w, r, articleresponse.NewArticleListResponse(articles)); err != nil {
		renderError(w, r, errresponse.ErrRender(err))
	}
}

func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.store.ListCategories(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Errorw("list categories", "err", err)
		renderError(w, r, errresponse.ErrInternal("could not list categories"))

		return
	}

	if err := render.Render(w, r, &articleresponse.CategoriesResponse{Categories: categories}); err != nil {
		renderError(w, r, errresponse.ErrRender(err))
	}
}

// CreateArticle persists the posted Article and returns it
// back to the client as an acknowledgement.
func (a *API) CreateArticle(w http.ResponseWriter, r *http.Request) {
	data := &articlerequest.ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		renderError(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	article := data.Article
	if err := a.store.CreateArticle(r.Context(), article); err != nil {
		logging.FromContext(r.Context()).Errorw("create article", "err", err)
		renderError(w, r, errresponse.ErrInternal("could not create article"))

		return
	}

	render.Status(r, http.StatusCreated)
	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

// GetArticle returns the Article loaded by ArticleCtx. With ?format=html
// (or an .html URL suffix) the response carries rendered HTML as well.
func (a *API) GetArticle(w http.ResponseWriter, r *http.Request) {
	resp := articleresponse.NewArticleResponse(FromContext(r.Context()))

	format, _ := r.Context().Value(middleware.URLFormatCtxKey).(string)
	if r.URL.Query().Get("format") == "html" || format == "html" {
		var err error
		if resp, err = resp.WithHTML(); err != nil {
			logging.FromContext(r.Context()).Errorw("render article html", "err", err)
			renderError(w, r, errresponse.ErrRender(err))

			return
		}
	}

	if err := render.Render(w, r, resp); err != nil {
		renderError(w, r, errresponse.ErrRender(err))
	}
}

func (a *API) GetOutline(w http.ResponseWriter, r *http.Request) {
	if err := render.Render(w, r, articleresponse.NewOutlineResponse(FromContext(r.Context()))); err != nil {
		renderError(w, r, errresponse.ErrRender(err))
	}
}

// UpdateArticle updates an existing Article in our persistent store.
func (a *API) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	article := FromContext(r.Context())

	data := &articlerequest.ArticleRequest{Article: article}
	if err := render.Bind(r, data); err != nil {
		renderError(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	article = data.Article
	err := a.store.UpdateArticle(r.Context(), article)
	switch {
	case errors.Is(err, store.ErrNotFound):
		renderError(w, r, errresponse.ErrNotFound)

		return
	case err != nil:
		logging.FromContext(r.Context()).Errorw("update article", "article_id", article.ID, "err", err)
		renderError(w, r, errresponse.ErrInternal("could not update article"))

		return
	}

	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

// DeleteArticle removes an existing Article from our persistent store.
func (a *API) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	article, err := a.store.DeleteArticle(r.Context(), FromContext(r.Context()).ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		renderError(w, r, errresponse.ErrNotFound)

		return
	case err != nil:
		logging.FromContext(r.Context()).Errorw("delete article", "err", err)
		renderError(w, r, errresponse.ErrInternal("could not delete article"))

		return
	}

	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

// CountView increments the view counter of the posted article.
func (a *API) CountView(w http.ResponseWriter, r *http.Request) {
	data := &articlerequest.ViewRequest{}
	if err := render.Bind(r, data); err != nil {
		renderError(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	views, err := a.store.IncrementViews(r.Context(), data.ArticleID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		renderError(w, r, errresponse.ErrNotFound)

		return
	case err != nil:
		logging.FromContext(r.Context()).Errorw("increment views", "article_id", data.ArticleID, "err", err)
		renderError(w, r, errresponse.ErrInternal("could not count view"))

		return
	}

	if err := render.Render(w, r, &articleresponse.ViewsResponse{Views: views}); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
