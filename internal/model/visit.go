package model

import "time"

// AnonymousUser is a cookie-backed visitor identity.
type AnonymousUser struct {
	ID        string    `json:"id"`
	Nanoid    string    `json:"nanoid"`
	CreatedAt time.Time `json:"createdAt"`
}

// Location is the geolocation document attached to a visit. It is kept
// as returned by the lookup service.
type Location map[string]any

func (l Location) Text(key string) string {
	if v, ok := l[key].(string); ok {
		return v
	}

	return ""
}

func (l Location) Number(key string) *float64 {
	switch v := l[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}

	return nil
}

// UserLog records one article visit.
type UserLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ArticleID string    `json:"articleId"`
	Location  Location  `json:"location"`
	IPAddress string    `json:"ipAddress"`
	Timestamp time.Time `json:"timestamp"`
}

// SectionView counts how often one visitor saw one heading of an article.
type SectionView struct {
	ID           string    `json:"id"`
	ArticleID    string    `json:"articleId"`
	UserID       string    `json:"userId"`
	SectionTitle string    `json:"sectionTitle"`
	SectionLevel string    `json:"sectionLevel"`
	ViewCount    int       `json:"viewCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
