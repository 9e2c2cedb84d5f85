package userpayload

import (
	"net/http"
)

// UserPayload identifies an anonymous visitor.
type UserPayload struct {
	Success bool   `json:"success"`
	Nanoid  string `json:"nanoid"`
	IsNew   bool   `json:"isNew"`
}

func NewUserPayloadResponse(nanoid string, isNew bool) *UserPayload {
	return &UserPayload{Nanoid: nanoid, IsNew: isNew}
}

func (u *UserPayload) Render(w http.ResponseWriter, r *http.Request) error {
	u.Success = true

	return nil
}
