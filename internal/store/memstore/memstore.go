// Package memstore provides an in-memory Store used by tests and the
// "memory" driver for local development. Documents are deep-copied on the
// way in and out so callers never share state with the store.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/store"
)

type memStore struct {
	mu       sync.RWMutex
	users    map[string]*model.User
	posts    map[string]*model.Post
	profiles map[string]*model.Profile
}

// New returns an empty in-memory store.
func New() store.Store {
	return &memStore{
		users:    make(map[string]*model.User),
		posts:    make(map[string]*model.Post),
		profiles: make(map[string]*model.Profile),
	}
}

func (s *memStore) Users() store.Users       { return &users{s} }
func (s *memStore) Posts() store.Posts       { return &posts{s} }
func (s *memStore) Profiles() store.Profiles { return &profiles{s} }

// HealthPing implements health.HealthPinger; the memory store is always up.
func (s *memStore) HealthPing(ctx context.Context) error { return nil }

// --- Users ---

type users struct{ s *memStore }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, existing := range u.s.users {
		if existing.Email == m.Email {
			return nil, model.ErrConflict
		}
	}
	cp := *m
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	u.s.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	m, ok := u.s.users[userID]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *m
	return &out, nil
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, m := range u.s.users {
		if m.Email == email {
			out := *m
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (u *users) Delete(ctx context.Context, userID string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[userID]; !ok {
		return model.ErrNotFound
	}
	delete(u.s.users, userID)
	return nil
}

// --- Posts ---

type posts struct{ s *memStore }

func (p *posts) Create(ctx context.Context, m *model.Post) (*model.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	cp := clonePost(m)
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	p.s.posts[cp.ID] = cp
	return clonePost(cp), nil
}

func (p *posts) Get(ctx context.Context, postID string) (*model.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	m, ok := p.s.posts[postID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return clonePost(m), nil
}

func (p *posts) List(ctx context.Context) ([]*model.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	res := make([]*model.Post, 0, len(p.s.posts))
	for _, m := range p.s.posts {
		res = append(res, clonePost(m))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (p *posts) Update(ctx context.Context, m *model.Post) (*model.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	stored, ok := p.s.posts[m.ID]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := clonePost(m)
	cp.CreatedAt = stored.CreatedAt
	p.s.posts[cp.ID] = cp
	return clonePost(cp), nil
}

func (p *posts) Delete(ctx context.Context, postID string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.posts[postID]; !ok {
		return model.ErrNotFound
	}
	delete(p.s.posts, postID)
	return nil
}

func (p *posts) DeleteByUser(ctx context.Context, userID string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for id, m := range p.s.posts {
		if m.UserID == userID {
			delete(p.s.posts, id)
		}
	}
	return nil
}

// --- Profiles ---

type profiles struct{ s *memStore }

func (p *profiles) Upsert(ctx context.Context, m *model.Profile) (*model.Profile, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	cp := cloneProfile(m)
	if stored, ok := p.s.profiles[m.UserID]; ok {
		cp.CreatedAt = stored.CreatedAt
	} else if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	p.s.profiles[cp.UserID] = cp
	return cloneProfile(cp), nil
}

func (p *profiles) GetByUser(ctx context.Context, userID string) (*model.Profile, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	m, ok := p.s.profiles[userID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return cloneProfile(m), nil
}

func (p *profiles) List(ctx context.Context) ([]*model.Profile, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	res := make([]*model.Profile, 0, len(p.s.profiles))
	for _, m := range p.s.profiles {
		res = append(res, cloneProfile(m))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (p *profiles) Delete(ctx context.Context, userID string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.profiles[userID]; !ok {
		return model.ErrNotFound
	}
	delete(p.s.profiles, userID)
	return nil
}

// The [:0:0] form copies while preserving nil-ness, so an empty-but-set
// collection round-trips as [] rather than null.
func clonePost(m *model.Post) *model.Post {
	cp := *m
	cp.Likes = append(m.Likes[:0:0], m.Likes...)
	cp.Comments = append(m.Comments[:0:0], m.Comments...)
	return &cp
}

func cloneProfile(m *model.Profile) *model.Profile {
	cp := *m
	cp.Skills = append(m.Skills[:0:0], m.Skills...)
	cp.Experience = append(m.Experience[:0:0], m.Experience...)
	cp.Education = append(m.Education[:0:0], m.Education...)
	return &cp
}
