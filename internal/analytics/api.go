package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

type Store interface {
	ListUserLogs(ctx context.Context, articleID string) ([]model.UserLog, error)
	ListSectionViews(ctx context.Context, articleID string) ([]model.SectionView, error)
}

// Service builds reports straight from the store.
type Service struct {
	store Store
	loc   *time.Location
}

// NewService buckets hours of day in loc.
func NewService(s Store, loc *time.Location) *Service {
	return &Service{store: s, loc: loc}
}

func (s *Service) Visits(ctx context.Context, articleID string) (Report, error) {
	logs, err := s.store.ListUserLogs(ctx, articleID)
	if err != nil {
		return Report{}, err
	}

	return Aggregate(logs, s.loc), nil
}

func (s *Service) Sections(ctx context.Context, articleID string) (SectionReport, error) {
	views, err := s.store.ListSectionViews(ctx, articleID)
	if err != nil {
		return SectionReport{}, err
	}

	return Sections(articleID, views), nil
}

func (r *Report) Render(w http.ResponseWriter, req *http.Request) error {
	return nil
}

func (r *SectionReport) Render(w http.ResponseWriter, req *http.Request) error {
	return nil
}

// GetVisits serves the visit report of {articleID}.
func (s *Service) GetVisits(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	report, err := s.Visits(r.Context(), articleID)
	if err != nil {
		logging.FromContext(r.Context()).Errorw("visit analytics", "article_id", articleID, "err", err)
		renderError(w, r, errresponse.ErrInternal("Failed to fetch analytics"))

		return
	}

	if err := render.Render(w, r, &report); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

// GetSections serves the section reading report of {articleID}.
func (s *Service) GetSections(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	report, err := s.Sections(r.Context(), articleID)
	if err != nil {
		logging.FromContext(r.Context()).Errorw("section statistics", "article_id", articleID, "err", err)
		renderError(w, r, errresponse.ErrInternal("Failed to fetch section statistics"))

		return
	}

	if err := render.Render(w, r, &report); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

func renderError(w http.ResponseWriter, r *http.Request, e render.Renderer) {
	if err := render.Render(w, r, e); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
