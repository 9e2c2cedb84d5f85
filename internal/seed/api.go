package seed

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

type Response struct {
	Success  bool             `json:"success"`
	Inserted int              `json:"inserted"`
	Articles []*model.Article `json:"articles"`
}

func (rd *Response) Render(w http.ResponseWriter, r *http.Request) error {
	rd.Success = true

	return nil
}

// Handler seeds the sample articles on POST.
func Handler(c Creator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := logging.FromContext(r.Context())

		created, err := Seed(r.Context(), c, logger)
		if err != nil && len(created) == 0 {
			if rerr := render.Render(w, r, errresponse.ErrInternal("Failed to seed articles")); rerr != nil {
				logger.Errorw(rerr.Error())
			}

			return
		}

		render.Status(r, http.StatusCreated)
		if err := render.Render(w, r, &Response{Inserted: len(created), Articles: created}); err != nil {
			logger.Errorw(err.Error())
		}
	}
}
