package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devlink/devlink/internal/api/respond"
	"github.com/devlink/devlink/internal/api/validate"
	"github.com/devlink/devlink/internal/auth"
	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login POST /api/auth
// Unknown email and wrong password produce the same response; nothing
// discloses which check failed. Success carries {token} only.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msgs := validate.Login(in.Email, in.Password); len(msgs) > 0 {
		respond.WriteFieldErrors(w, http.StatusBadRequest, fieldErrors(msgs))
		return
	}

	token, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respond.WriteFieldErrors(w, http.StatusBadRequest, []model.FieldError{{Msg: "Invalid Credentials"}})
			return
		}
		respond.WriteServerError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Current GET /api/auth
// Returns the authenticated account without the password hash.
func (h *AuthHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	u, err := h.svc.Current(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteMsg(w, http.StatusNotFound, "User not found")
			return
		}
		respond.WriteServerError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}
