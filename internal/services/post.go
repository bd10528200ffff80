package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/devlink/devlink/internal/auth"
	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/store"
)

// PostService orchestrates post mutations: load the parent document,
// authorize, apply the in-memory mutation, persist the document whole.
type PostService struct {
	store store.Store
}

func NewPostService(s store.Store) *PostService {
	return &PostService{store: s}
}

// CreatePost publishes a new post with the author's name and avatar
// denormalized onto it.
func (s *PostService) CreatePost(ctx context.Context, userID, text string) (*model.Post, error) {
	if text == "" {
		return nil, model.NewValidationError("Text is required")
	}
	u, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := &model.Post{
		ID:       uuid.New().String(),
		UserID:   u.ID,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Text:     text,
		Likes:    []model.Like{},
		Comments: []model.Comment{},
	}
	return s.store.Posts().Create(ctx, p)
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return s.store.Posts().List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, postID string) (*model.Post, error) {
	return s.store.Posts().Get(ctx, postID)
}

// DeletePost removes a post. Only the owner may delete it.
func (s *PostService) DeletePost(ctx context.Context, requester, postID string) error {
	p, err := s.store.Posts().Get(ctx, postID)
	if err != nil {
		return err
	}
	if auth.AuthorizeOwner(requester, p.UserID) != auth.Allow {
		return auth.ErrDenied
	}
	return s.store.Posts().Delete(ctx, postID)
}

// ToggleLike flips the requester's like on the post and returns the
// resulting like sequence.
func (s *PostService) ToggleLike(ctx context.Context, requester, postID string) ([]model.Like, error) {
	p, err := s.store.Posts().Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	p.ToggleLike(requester)
	updated, err := s.store.Posts().Update(ctx, p)
	if err != nil {
		return nil, err
	}
	return updated.Likes, nil
}

// AddComment prepends a comment with a snapshot of the requester's name
// and avatar, and returns the resulting comment sequence.
func (s *PostService) AddComment(ctx context.Context, requester, postID, text string) ([]model.Comment, error) {
	if text == "" {
		return nil, model.NewValidationError("Text is required")
	}
	u, err := s.store.Users().Get(ctx, requester)
	if err != nil {
		return nil, err
	}
	p, err := s.store.Posts().Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if _, err := p.AddComment(u.ID, u.Name, u.Avatar, text); err != nil {
		return nil, err
	}
	updated, err := s.store.Posts().Update(ctx, p)
	if err != nil {
		return nil, err
	}
	return updated.Comments, nil
}

// RemoveComment deletes one comment. Allowed for the post owner or the
// comment author; this is the only disjunctive ownership rule in the
// system. Nothing is persisted on a deny.
func (s *PostService) RemoveComment(ctx context.Context, requester, postID, commentID string) ([]model.Comment, error) {
	p, err := s.store.Posts().Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	c := p.FindComment(commentID)
	if c == nil {
		return nil, model.ErrNotFound
	}
	if auth.AuthorizeCommentRemoval(requester, p.UserID, c.UserID) != auth.Allow {
		return nil, auth.ErrDenied
	}
	if err := p.RemoveComment(commentID); err != nil {
		return nil, err
	}
	updated, err := s.store.Posts().Update(ctx, p)
	if err != nil {
		return nil, err
	}
	return updated.Comments, nil
}
