package store

import (
	"context"

	"github.com/devlink/devlink/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, memstore).
//
// Posts and profiles are parent documents: their embedded collections
// (likes, comments, experience, education) are read and written with the
// parent as a unit. Update replaces the whole document; concurrent updates
// to the same parent are last-write-wins. There is no optimistic
// concurrency token, so two racing mutations can lose one of the writes.
// That window is accepted for now.
//
// Lookups for absent documents return model.ErrNotFound (possibly
// wrapped); anything else is a storage failure.
type Store interface {
	Users() Users
	Posts() Posts
	Profiles() Profiles
}

type Users interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Delete(ctx context.Context, userID string) error
}

type Posts interface {
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	Get(ctx context.Context, postID string) (*model.Post, error)
	List(ctx context.Context) ([]*model.Post, error)
	Update(ctx context.Context, p *model.Post) (*model.Post, error)
	Delete(ctx context.Context, postID string) error
	DeleteByUser(ctx context.Context, userID string) error
}

type Profiles interface {
	// Upsert inserts the profile or replaces the stored document whole.
	Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error)
	GetByUser(ctx context.Context, userID string) (*model.Profile, error)
	List(ctx context.Context) ([]*model.Profile, error)
	Delete(ctx context.Context, userID string) error
}
