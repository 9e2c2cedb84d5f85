package server

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
)

var errNotFound = fs.ErrNotExist

// Error values handed to render.Respond are logged and replaced by a
// generic payload so internals never leak to clients.
func init() {
	render.Respond = func(w http.ResponseWriter, r *http.Request, v interface{}) {
		if err, ok := v.(error); ok {
			if _, ok := r.Context().Value(render.StatusCtxKey).(int); !ok {
				render.Status(r, http.StatusBadRequest)
			}

			logging.FromContext(r.Context()).Errorw("responding with error", "err", err)
			render.DefaultResponder(w, r, render.M{"status": "error"})

			return
		}

		render.DefaultResponder(w, r, v)
	}
}
