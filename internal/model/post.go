package model

import (
	"time"

	"github.com/google/uuid"
)

// ToggleLike flips the given user's like on the post. If the user already
// likes the post the like is removed; otherwise a new like is prepended.
// Two toggles by the same user restore the sequence exactly.
// Returns true when the post is liked after the call.
func (p *Post) ToggleLike(userID string) bool {
	for i, l := range p.Likes {
		if l.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false
		}
	}
	p.Likes = append([]Like{{UserID: userID}}, p.Likes...)
	return true
}

// LikedBy reports whether the user currently likes the post.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// AddComment prepends a new comment authored by userID. Name and avatar
// are snapshots of the author at comment time. The comment id is generated
// here and never reused, even after removal.
func (p *Post) AddComment(userID, name, avatar, text string) (*Comment, error) {
	if text == "" {
		return nil, NewValidationError("Text is required")
	}
	c := Comment{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Avatar:    avatar,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	p.Comments = append([]Comment{c}, p.Comments...)
	return &p.Comments[0], nil
}

// FindComment returns the comment with the given id, or nil.
func (p *Post) FindComment(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}

// RemoveComment deletes exactly the comment with the given id, keeping the
// relative order of the rest. A missing id returns ErrNotFound and leaves
// the sequence untouched. Ownership is checked by the caller before this.
func (p *Post) RemoveComment(commentID string) error {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
