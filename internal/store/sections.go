package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

// TrackAction tells whether a section view created a row or bumped one.
type TrackAction string

const (
	ActionInserted TrackAction = "inserted"
	ActionUpdated  TrackAction = "updated"
)

// SectionKey identifies one visitor's view of one heading.
type SectionKey struct {
	ArticleID    string
	UserID       string
	SectionTitle string
	SectionLevel string
}

// TrackSectionView records a view in a single upsert so concurrent beacons
// for the same key never create duplicate rows.
func (s *Store) TrackSectionView(ctx context.Context, k SectionKey) (TrackAction, error) {
	var inserted bool
	err := s.db.QueryRow(ctx, `
		INSERT INTO article_sections (id, article_id, user_id, section_title, section_level, view_count)
		VALUES ($1, $2, $3, $4, $5, 1)
		ON CONFLICT (article_id, user_id, section_title, section_level)
		DO UPDATE SET view_count = article_sections.view_count + 1, updated_at = now()
		RETURNING (xmax = 0)`,
		uuid.NewString(), k.ArticleID, k.UserID, k.SectionTitle, k.SectionLevel,
	).Scan(&inserted)
	if err != nil {
		return "", fmt.Errorf("track section view: %w", err)
	}

	if inserted {
		return ActionInserted, nil
	}

	return ActionUpdated, nil
}

// ListSectionViews returns every view row of an article, shallow headings
// first and the most viewed first within a level.
func (s *Store) ListSectionViews(ctx context.Context, articleID string) ([]model.SectionView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, article_id, user_id, section_title, section_level, view_count, created_at, updated_at
		FROM article_sections
		WHERE article_id = $1
		ORDER BY section_level ASC, view_count DESC`, articleID)
	if err != nil {
		return nil, fmt.Errorf("list section views: %w", err)
	}
	defer rows.Close()

	views := []model.SectionView{}
	for rows.Next() {
		var v model.SectionView
		if err := rows.Scan(&v.ID, &v.ArticleID, &v.UserID, &v.SectionTitle, &v.SectionLevel,
			&v.ViewCount, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan section view: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate section views: %w", err)
	}

	return views, nil
}
