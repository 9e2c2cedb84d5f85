package model

import "time"

// Article is a stored markdown news article.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"max=255"`
	Content   string    `json:"content" validate:"required"`
	Author    *string   `json:"author,omitempty"`
	Category  *string   `json:"category,omitempty" validate:"omitempty,max=64"`
	Excerpt   *string   `json:"excerpt,omitempty"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleSummary is the listing projection of an Article.
type ArticleSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   *string   `json:"excerpt,omitempty"`
	Category  *string   `json:"category,omitempty"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
}
