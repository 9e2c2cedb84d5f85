package errresponse

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrResponseStatus(t *testing.T) {
	cases := []struct {
		name   string
		r      render.Renderer
		status int
		body   string
	}{
		{"invalid", ErrInvalidRequest(errors.New("missing articleId")), http.StatusBadRequest, `"error":"missing articleId"`},
		{"not found", ErrNotFound, http.StatusNotFound, `"status":"Resource not found."`},
		{"internal", ErrInternal("Failed to log user visit"), http.StatusInternalServerError, `"error":"Failed to log user visit"`},
		{"throttled", ErrTooManyRequests, http.StatusTooManyRequests, `"status":"Too many requests."`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			require.NoError(t, render.Render(w, r, tc.r))
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
		})
	}
}
