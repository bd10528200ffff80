package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/devlink/devlink/internal/api/respond"
	"github.com/devlink/devlink/internal/auth"
	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/services"
)

type PostHandler struct {
	svc *services.PostService
}

func NewPostHandler(svc *services.PostService) *PostHandler { return &PostHandler{svc: svc} }

// Create POST /api/posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	p, err := h.svc.CreatePost(r.Context(), userID, in.Text)
	if err != nil {
		writePostError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// List GET /api/posts
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context())
	if err != nil {
		respond.WriteServerError(w, err)
		return
	}
	if posts == nil {
		posts = []*model.Post{}
	}
	respond.WriteJSON(w, http.StatusOK, posts)
}

// Get GET /api/posts/{id}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writePostError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// Delete DELETE /api/posts/{id}
// Owner only.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	if err := h.svc.DeletePost(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		writePostError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"msg": "Post removed"})
}

// ToggleLike PUT /api/posts/like/{id}
// Returns the post's like sequence after the flip.
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	likes, err := h.svc.ToggleLike(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writePostError(w, err)
		return
	}
	if likes == nil {
		likes = []model.Like{}
	}
	respond.WriteJSON(w, http.StatusOK, likes)
}

// AddComment POST /api/posts/comment/{id}
// Returns the post's comment sequence, newest first.
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	var in struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	comments, err := h.svc.AddComment(r.Context(), userID, mux.Vars(r)["id"], in.Text)
	if err != nil {
		writePostError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, comments)
}

// RemoveComment DELETE /api/posts/comment/{id}/{commentID}
// Allowed for the post owner or the comment author.
func (h *PostHandler) RemoveComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	vars := mux.Vars(r)
	comments, err := h.svc.RemoveComment(r.Context(), userID, vars["id"], vars["commentID"])
	if err != nil {
		writePostError(w, err)
		return
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	respond.WriteJSON(w, http.StatusOK, comments)
}

// writePostError maps domain errors onto the fixed response surface.
// Authorization denials stay generic: the body never says which check
// failed.
func writePostError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.WriteFieldErrors(w, http.StatusBadRequest, verr.Fields)
	case errors.Is(err, model.ErrNotFound):
		respond.WriteMsg(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, auth.ErrDenied):
		respond.WriteMsg(w, http.StatusUnauthorized, "User not authorized")
	default:
		respond.WriteServerError(w, err)
	}
}
