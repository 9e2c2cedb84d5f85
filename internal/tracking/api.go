// Package tracking receives visit, geolocation and section view beacons.
package tracking

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/geo"
	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
	"github.com/SergeyParamoshkin/newsdesk/internal/store"
)

var errMissingFields = errors.New("Missing required fields")

type Store interface {
	InsertUserLog(ctx context.Context, l *model.UserLog) error
	TrackSectionView(ctx context.Context, k store.SectionKey) (store.TrackAction, error)
}

// Locator resolves an IP address to a location document.
type Locator interface {
	Lookup(ctx context.Context, ip string) (model.Location, error)
}

type API struct {
	store        Store
	geo          Locator
	sectionViews metric.Int64Counter
}

type Option func(*API)

// WithSectionCounter counts tracked section views by action.
func WithSectionCounter(c metric.Int64Counter) Option {
	return func(a *API) { a.sectionViews = c }
}

func NewAPI(s Store, geo Locator, opts ...Option) *API {
	a := &API{store: s, geo: geo}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Geolocation returns the location document of the calling client.
func (a *API) Geolocation(w http.ResponseWriter, r *http.Request) {
	ip, err := geo.ClientIP(r)
	if err != nil {
		renderError(w, r, errresponse.ErrInvalidRequest(errors.New("Could not determine IP address")))

		return
	}

	loc, err := a.geo.Lookup(r.Context(), ip)
	if err != nil {
		logging.FromContext(r.Context()).Errorw("geolocation lookup", "ip", ip, "err", err)
		renderError(w, r, errresponse.ErrInternal("Failed to fetch geolocation"))

		return
	}

	render.JSON(w, r, loc)
}

// CreateUserLog stores one article visit.
func (a *API) CreateUserLog(w http.ResponseWriter, r *http.Request) {
	data := &UserLogRequest{}
	if err := render.Bind(r, data); err != nil {
		logging.FromContext(r.Context()).Debugw("rejected user log", "err", err)
		renderError(w, r, errresponse.ErrInvalidRequest(errMissingFields))

		return
	}

	entry := &model.UserLog{
		UserID:    data.UserID,
		ArticleID: data.ArticleID,
		Location:  data.Location,
		IPAddress: data.IPAddress,
	}
	if err := a.store.InsertUserLog(r.Context(), entry); err != nil {
		logging.FromContext(r.Context()).Errorw("insert user log", "article_id", data.ArticleID, "err", err)
		renderError(w, r, errresponse.ErrInternal("Failed to save user log"))

		return
	}

	if err := render.Render(w, r, &UserLogResponse{Data: entry}); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

// TrackSection counts one view of an article heading by a visitor.
func (a *API) TrackSection(w http.ResponseWriter, r *http.Request) {
	data := &SectionRequest{}
	if err := render.Bind(r, data); err != nil {
		logging.FromContext(r.Context()).Debugw("rejected section view", "err", err)
		renderError(w, r, errresponse.ErrInvalidRequest(errMissingFields))

		return
	}

	action, err := a.store.TrackSectionView(r.Context(), data.key())
	if err != nil {
		logging.FromContext(r.Context()).Errorw("track section", "article_id", data.ArticleID, "err", err)
		renderError(w, r, errresponse.ErrInternal("Failed to track section"))

		return
	}
	if a.sectionViews != nil {
		a.sectionViews.Add(r.Context(), 1, metric.WithAttributes(attribute.String("action", string(action))))
	}

	if err := render.Render(w, r, &SectionResponse{Action: action}); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}

func renderError(w http.ResponseWriter, r *http.Request, e render.Renderer) {
	if err := render.Render(w, r, e); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
