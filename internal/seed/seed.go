// Package seed loads sample articles into an empty newsroom.
package seed

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/newsdesk/internal/markdown"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

const author = "Sistema de Seed"

type Creator interface {
	CreateArticle(ctx context.Context, a *model.Article) error
}

// Categories lists the sections the sample articles cover.
func Categories() []string {
	return slices.Clone(categories)
}

// Articles builds fresh copies of the sample articles.
func Articles() []*model.Article {
	out := make([]*model.Article, 0, len(samples))
	for _, s := range samples {
		a := &model.Article{
			Title:    markdown.Title(s.content),
			Content:  s.content,
			Author:   strPtr(author),
			Category: strPtr(s.category),
			Excerpt:  strPtr(s.excerpt),
			ImageURL: strPtr(s.image),
		}
		out = append(out, a)
	}

	return out
}

// Seed inserts every sample article. A failed insert is logged and the
// rest still go in; the failures are returned joined.
func Seed(ctx context.Context, c Creator, logger *zap.SugaredLogger) ([]*model.Article, error) {
	var (
		created []*model.Article
		errs    []error
	)

	for _, a := range Articles() {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		if err := c.CreateArticle(ctx, a); err != nil {
			logger.Errorw("seed article", "title", a.Title, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", a.Title, err))

			continue
		}
		logger.Infow("seeded article", "id", a.ID, "title", a.Title)
		created = append(created, a)
	}

	return created, errors.Join(errs...)
}

func strPtr(s string) *string {
	return &s
}
