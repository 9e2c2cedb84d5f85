package video

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
)

const (
	maxUploadBytes = 100 << 20
	formMemory     = 32 << 20
)

// Response wraps a Result the way the editor expects it.
type Response struct {
	OK bool `json:"ok"`
	*Result
}

func (rd *Response) Render(w http.ResponseWriter, r *http.Request) error {
	rd.OK = true

	return nil
}

// ErrorResponse is the failure shape of the video endpoint.
type ErrorResponse struct {
	HTTPStatusCode int    `json:"-"`
	OK             bool   `json:"ok"`
	Error          string `json:"error"`
}

func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

type API struct {
	gen *Generator
}

func NewAPI(g *Generator) *API {
	return &API{gen: g}
}

// Generate renders a video from the multipart fields "content" and "images".
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(formMemory); err != nil {
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %v", err))

		return
	}
	defer r.MultipartForm.RemoveAll()

	req := Request{Content: strings.TrimSpace(r.FormValue("content"))}
	for _, fh := range r.MultipartForm.File["images"] {
		data, err := readPart(fh)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, fmt.Sprintf("read image %q: %v", fh.Filename, err))

			return
		}
		req.Images = append(req.Images, Image{Name: fh.Filename, Data: data})
	}

	res, err := a.gen.Generate(r.Context(), req)
	if err != nil {
		var invalid *InvalidImageError
		switch {
		case errors.Is(err, ErrNoContent), errors.Is(err, ErrNoImages), errors.Is(err, ErrEmptyImage):
			renderError(w, r, http.StatusBadRequest, err.Error())
		case errors.As(err, &invalid):
			renderError(w, r, http.StatusBadRequest, invalid.Error())
		default:
			logger.Errorw("generate video", "images", len(req.Images), "err", err)
			renderError(w, r, http.StatusInternalServerError, "Failed to generate video")
		}

		return
	}

	if err := render.Render(w, r, &Response{Result: &res}); err != nil {
		logger.Errorw(err.Error())
	}
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if err := render.Render(w, r, &ErrorResponse{HTTPStatusCode: status, Error: msg}); err != nil {
		logging.FromContext(r.Context()).Errorw(err.Error())
	}
}
