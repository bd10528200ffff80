package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/devlink/devlink/internal/api/respond"
	"github.com/devlink/devlink/internal/auth"
	"github.com/devlink/devlink/internal/github"
	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/services"
)

type ProfileHandler struct {
	svc    *services.ProfileService
	github *github.Client
}

func NewProfileHandler(svc *services.ProfileService, gh *github.Client) *ProfileHandler {
	return &ProfileHandler{svc: svc, github: gh}
}

// GetMine GET /api/profile/me
func (h *ProfileHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	p, err := h.svc.GetMine(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		respond.WriteServerError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// Upsert POST /api/profile
// Creates the requester's profile or replaces its scalar and social
// fields whole.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in services.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	p, err := h.svc.Upsert(r.Context(), userID, in)
	if err != nil {
		writeProfileError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// List GET /api/profile
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteServerError(w, err)
		return
	}
	if profiles == nil {
		profiles = []*model.Profile{}
	}
	respond.WriteJSON(w, http.StatusOK, profiles)
}

// GetByUser GET /api/profile/user/{userID}
func (h *ProfileHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetByUser(r.Context(), mux.Vars(r)["userID"])
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteMsg(w, http.StatusBadRequest, "Profile not found")
			return
		}
		respond.WriteServerError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// DeleteAccount DELETE /api/profile
// Cascades: the requester's posts, profile, and account, in that order.
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	if err := h.svc.DeleteAccount(r.Context(), userID); err != nil {
		writeProfileError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"msg": "User deleted"})
}

// AddExperience PUT /api/profile/experience
func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in model.Experience
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	p, err := h.svc.AddExperience(r.Context(), userID, in)
	if err != nil {
		writeProfileError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// RemoveExperience DELETE /api/profile/experience/{expID}
func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	p, err := h.svc.RemoveExperience(r.Context(), userID, mux.Vars(r)["expID"])
	if err != nil {
		writeProfileError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// AddEducation PUT /api/profile/education
func (h *ProfileHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in model.Education
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	p, err := h.svc.AddEducation(r.Context(), userID, in)
	if err != nil {
		writeProfileError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// RemoveEducation DELETE /api/profile/education/{eduID}
func (h *ProfileHandler) RemoveEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	p, err := h.svc.RemoveEducation(r.Context(), userID, mux.Vars(r)["eduID"])
	if err != nil {
		writeProfileError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// GithubRepos GET /api/profile/github/{username}
func (h *ProfileHandler) GithubRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := h.github.Repos(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteMsg(w, http.StatusNotFound, "No Github profile found")
			return
		}
		respond.WriteServerError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, repos)
}

func writeProfileError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.WriteFieldErrors(w, http.StatusBadRequest, verr.Fields)
	case errors.Is(err, model.ErrNotFound):
		respond.WriteMsg(w, http.StatusNotFound, "Not found")
	case errors.Is(err, auth.ErrDenied):
		respond.WriteMsg(w, http.StatusUnauthorized, "User not authorized")
	default:
		respond.WriteServerError(w, err)
	}
}
