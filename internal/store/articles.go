package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

const (
	DefaultListLimit = 12
	MaxListLimit     = 100
)

// ListOptions filters the article listing.
type ListOptions struct {
	Category string
	Limit    int
}

func (o ListOptions) limit() int {
	switch {
	case o.Limit <= 0:
		return DefaultListLimit
	case o.Limit > MaxListLimit:
		return MaxListLimit
	}

	return o.Limit
}

const articleColumns = `id, title, content, author, category, excerpt, image_url, views, created_at, updated_at`

// ListArticles returns the newest articles first.
func (s *Store) ListArticles(ctx context.Context, opts ListOptions) ([]model.ArticleSummary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, excerpt, category, image_url, views, created_at
		FROM articles
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC, id
		LIMIT $2`, opts.Category, opts.limit())
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return collectSummaries(rows)
}

// SearchArticles matches q case-insensitively against title and content.
func (s *Store) SearchArticles(ctx context.Context, q string, limit int) ([]model.ArticleSummary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, excerpt, category, image_url, views, created_at
		FROM articles
		WHERE title ILIKE $1 OR content ILIKE $1
		ORDER BY created_at DESC, id
		LIMIT $2`, likePattern(q), ListOptions{Limit: limit}.limit())
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}

	return collectSummaries(rows)
}

// ListCategories returns the distinct non-empty categories, sorted.
func (s *Store) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT category
		FROM articles
		WHERE category IS NOT NULL AND category <> ''
		ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}

	return categories, nil
}

func (s *Store) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	row := s.db.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)

	a, err := scanArticle(row)
	if err != nil {
		return nil, notFound(err, "get article")
	}

	return a, nil
}

// CreateArticle assigns an ID when the article has none.
func (s *Store) CreateArticle(ctx context.Context, a *model.Article) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	err := s.db.QueryRow(ctx, `
		INSERT INTO articles (id, title, content, author, category, excerpt, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING views, created_at, updated_at`,
		a.ID, a.Title, a.Content, a.Author, a.Category, a.Excerpt, a.ImageURL,
	).Scan(&a.Views, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}

	return nil
}

func (s *Store) UpdateArticle(ctx context.Context, a *model.Article) error {
	err := s.db.QueryRow(ctx, `
		UPDATE articles
		SET title = $2, content = $3, author = $4, category = $5, excerpt = $6, image_url = $7, updated_at = now()
		WHERE id = $1
		RETURNING views, created_at, updated_at`,
		a.ID, a.Title, a.Content, a.Author, a.Category, a.Excerpt, a.ImageURL,
	).Scan(&a.Views, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return notFound(err, "update article")
	}

	return nil
}

// DeleteArticle removes the article and returns the deleted row.
func (s *Store) DeleteArticle(ctx context.Context, id string) (*model.Article, error) {
	row := s.db.QueryRow(ctx, `DELETE FROM articles WHERE id = $1 RETURNING `+articleColumns, id)

	a, err := scanArticle(row)
	if err != nil {
		return nil, notFound(err, "delete article")
	}

	return a, nil
}

// IncrementViews bumps the view counter in one statement and returns the new value.
func (s *Store) IncrementViews(ctx context.Context, id string) (int, error) {
	var views int
	err := s.db.QueryRow(ctx, `UPDATE articles SET views = views + 1 WHERE id = $1 RETURNING views`, id).Scan(&views)
	if err != nil {
		return 0, notFound(err, "increment views")
	}

	return views, nil
}

func scanArticle(row pgx.Row) (*model.Article, error) {
	var a model.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.Category, &a.Excerpt, &a.ImageURL,
		&a.Views, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func collectSummaries(rows pgx.Rows) ([]model.ArticleSummary, error) {
	defer rows.Close()

	out := []model.ArticleSummary{}
	for rows.Next() {
		var a model.ArticleSummary
		if err := rows.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Category, &a.ImageURL, &a.Views, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(q string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(q)) + "%"
}
