package tracking

import (
	"net/http"

	"github.com/SergeyParamoshkin/newsdesk/internal/model"
	"github.com/SergeyParamoshkin/newsdesk/internal/store"
	"github.com/SergeyParamoshkin/newsdesk/internal/validate"
)

// UserLogRequest is a visit beacon.
type UserLogRequest struct {
	UserID    string         `json:"userId" validate:"required"`
	ArticleID string         `json:"articleId" validate:"required"`
	Location  model.Location `json:"location" validate:"required"`
	IPAddress string         `json:"ipAddress" validate:"required"`
}

func (u *UserLogRequest) Bind(r *http.Request) error {
	return validate.Struct(u)
}

// SectionRequest is a section view beacon.
type SectionRequest struct {
	ArticleID    string `json:"articleId" validate:"required"`
	UserID       string `json:"userId" validate:"required"`
	SectionTitle string `json:"sectionTitle" validate:"required,max=500"`
	SectionLevel string `json:"sectionLevel" validate:"required,max=8"`
}

func (s *SectionRequest) Bind(r *http.Request) error {
	return validate.Struct(s)
}

func (s *SectionRequest) key() store.SectionKey {
	return store.SectionKey{
		ArticleID:    s.ArticleID,
		UserID:       s.UserID,
		SectionTitle: s.SectionTitle,
		SectionLevel: s.SectionLevel,
	}
}

type UserLogResponse struct {
	Success bool           `json:"success"`
	Data    *model.UserLog `json:"data"`
}

func (rd *UserLogResponse) Render(w http.ResponseWriter, r *http.Request) error {
	rd.Success = true

	return nil
}

type SectionResponse struct {
	Success bool              `json:"success"`
	Action  store.TrackAction `json:"action"`
}

func (rd *SectionResponse) Render(w http.ResponseWriter, r *http.Request) error {
	rd.Success = true

	return nil
}
