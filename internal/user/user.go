// Package user issues and recognises anonymous visitor identities.
package user

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
	"github.com/SergeyParamoshkin/newsdesk/internal/userpayload"
)

const (
	CookieName   = "user_id"
	cookieMaxAge = 365 * 24 * time.Hour
)

type Store interface {
	AnonymousUserExists(ctx context.Context, nanoid string) (bool, error)
	CreateAnonymousUser(ctx context.Context, nanoid string) (*model.AnonymousUser, error)
}

type API struct {
	store        Store
	secureCookie bool
	newID        func() string
}

// NewAPI marks the identity cookie Secure when secureCookie is set.
func NewAPI(s Store, secureCookie bool) *API {
	return &API{store: s, secureCookie: secureCookie, newID: uuid.NewString}
}

// Identify returns the visitor named by the user_id cookie, or issues a new
// identity and sets the cookie.
func (a *API) Identify(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		exists, err := a.store.AnonymousUserExists(r.Context(), c.Value)
		if err != nil {
			logger.Errorw("lookup anonymous user", "err", err)
			renderError(w, r, errresponse.ErrInternal("Failed to process anonymous user"))

			return
		}
		if exists {
			if err := render.Render(w, r, userpayload.NewUserPayloadResponse(c.Value, false)); err != nil {
				logger.Errorw(err.Error())
			}

			return
		}
	}

	u, err := a.store.CreateAnonymousUser(r.Context(), a.newID())
	if err != nil {
		logger.Errorw("create anonymous user", "err", err)
		renderError(w, r, errresponse.ErrInternal("Failed to process anonymous user"))

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    u.Nanoid,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	logger.Infow("issued anonymous user", "nanoid", u.Nanoid)
	if err := render.Render(w, r, userpayload.NewUserPayloadResponse(u.Nanoid, true)); err != nil {
		logger.Errorw(err.Error())
	}
}

func renderError(w http.ResponseWriter, r *http.Request, e render.Renderer) {
	if err := render.Render(w, r, e); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
