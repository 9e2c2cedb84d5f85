package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

// AnonymousUserExists reports whether nanoid was issued by this service.
func (s *Store) AnonymousUserExists(ctx context.Context, nanoid string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM anonymous_users WHERE nanoid = $1)`, nanoid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("lookup anonymous user: %w", err)
	}

	return exists, nil
}

func (s *Store) CreateAnonymousUser(ctx context.Context, nanoid string) (*model.AnonymousUser, error) {
	u := &model.AnonymousUser{ID: uuid.NewString(), Nanoid: nanoid}

	err := s.db.QueryRow(ctx, `
		INSERT INTO anonymous_users (id, nanoid)
		VALUES ($1, $2)
		RETURNING created_at`, u.ID, u.Nanoid).Scan(&u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create anonymous user: %w", err)
	}

	return u, nil
}

// InsertUserLog stores one visit. ID and timestamp are assigned here.
func (s *Store) InsertUserLog(ctx context.Context, l *model.UserLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	err := s.db.QueryRow(ctx, `
		INSERT INTO user_logs (id, user_id, article_id, location, ip_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING "timestamp"`,
		l.ID, l.UserID, l.ArticleID, l.Location, l.IPAddress,
	).Scan(&l.Timestamp)
	if err != nil {
		return fmt.Errorf("insert user log: %w", err)
	}

	return nil
}

func (s *Store) ListUserLogs(ctx context.Context, articleID string) ([]model.UserLog, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, article_id, location, ip_address, "timestamp"
		FROM user_logs
		WHERE article_id = $1
		ORDER BY "timestamp", id`, articleID)
	if err != nil {
		return nil, fmt.Errorf("list user logs: %w", err)
	}
	defer rows.Close()

	logs := []model.UserLog{}
	for rows.Next() {
		var l model.UserLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.ArticleID, &l.Location, &l.IPAddress, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("scan user log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user logs: %w", err)
	}

	return logs, nil
}
