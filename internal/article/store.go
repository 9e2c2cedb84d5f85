package article

import (
	"context"

	"github.com/SergeyParamoshkin/newsdesk/internal/model"
	"github.com/SergeyParamoshkin/newsdesk/internal/store"
)

// Store is the persistence the article API needs. *store.Store implements it.
type Store interface {
	ListArticles(ctx context.Context, opts store.ListOptions) ([]model.ArticleSummary, error)
	SearchArticles(ctx context.Context, q string, limit int) ([]model.ArticleSummary, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetArticle(ctx context.Context, id string) (*model.Article, error)
	CreateArticle(ctx context.Context, a *model.Article) error
	UpdateArticle(ctx context.Context, a *model.Article) error
	DeleteArticle(ctx context.Context, id string) (*model.Article, error)
	IncrementViews(ctx context.Context, id string) (int, error)
}

var _ Store = (*store.Store)(nil)
