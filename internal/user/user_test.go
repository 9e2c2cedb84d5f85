package user

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

type fakeStore struct {
	known   map[string]bool
	created []string
	err     error
}

func (f *fakeStore) AnonymousUserExists(_ context.Context, nanoid string) (bool, error) {
	return f.known[nanoid], f.err
}

func (f *fakeStore) CreateAnonymousUser(_ context.Context, nanoid string) (*model.AnonymousUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, nanoid)

	return &model.AnonymousUser{ID: "row", Nanoid: nanoid}, nil
}

func newTestAPI(s Store, secure bool) *API {
	a := NewAPI(s, secure)
	a.newID = func() string { return "fresh-id" }

	return a
}

func identify(a *API, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/anonymous-user", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	a.Identify(rec, req)

	return rec
}

func TestIdentifyKnownVisitor(t *testing.T) {
	s := &fakeStore{known: map[string]bool{"abc": true}}

	rec := identify(newTestAPI(s, false), "abc")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"nanoid":"abc","isNew":false}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
	assert.Empty(t, s.created)
}

func TestIdentifyIssuesCookie(t *testing.T) {
	for _, cookie := range []string{"", "forged"} {
		s := &fakeStore{known: map[string]bool{}}

		rec := identify(newTestAPI(s, true), cookie)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"nanoid":"fresh-id","isNew":true}`, rec.Body.String())
		assert.Equal(t, []string{"fresh-id"}, s.created)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, CookieName, c.Name)
		assert.Equal(t, "fresh-id", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, 31536000, c.MaxAge)
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	}
}

func TestIdentifyStoreFailure(t *testing.T) {
	rec := identify(newTestAPI(&fakeStore{err: errors.New("db down")}, false), "abc")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to process anonymous user")
}
