package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devlink/devlink/internal/api/respond"
	"github.com/devlink/devlink/internal/api/validate"
	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/services"
)

type UserHandler struct {
	svc *services.AuthService
}

func NewUserHandler(svc *services.AuthService) *UserHandler { return &UserHandler{svc: svc} }

// Register POST /api/users
// Success carries {token} only.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msgs := validate.Register(in.Name, in.Email, in.Password); len(msgs) > 0 {
		respond.WriteFieldErrors(w, http.StatusBadRequest, fieldErrors(msgs))
		return
	}

	token, err := h.svc.Register(r.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			respond.WriteFieldErrors(w, http.StatusBadRequest, verr.Fields)
			return
		}
		respond.WriteServerError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

func fieldErrors(msgs []string) []model.FieldError {
	fields := make([]model.FieldError, 0, len(msgs))
	for _, m := range msgs {
		fields = append(fields, model.FieldError{Msg: m})
	}
	return fields
}
