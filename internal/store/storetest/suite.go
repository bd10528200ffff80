// Package storetest holds a compliance suite every store.Store
// implementation must pass. memstore runs it unconditionally; the postgres
// store runs it when a test DSN is configured.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/store"
)

// Run exercises the compliance suite against a store.Store implementation.
// makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	userID := uuid.New().String()
	email := "u-" + userID + "@example.test"

	// Users
	u := &model.User{ID: userID, Name: "Test User", Email: email, Password: "hash", Avatar: "//gravatar/x"}
	if _, err := s.Users().Create(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if got, err := s.Users().Get(ctx, userID); err != nil || got == nil || got.Email != email {
		t.Fatalf("GetUser: got=%v err=%v", got, err)
	}
	if got, err := s.Users().GetByEmail(ctx, email); err != nil || got == nil || got.ID != userID {
		t.Fatalf("GetUserByEmail: got=%v err=%v", got, err)
	}
	if _, err := s.Users().Get(ctx, "missing-"+userID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetUser missing: want ErrNotFound, got %v", err)
	}

	// Posts
	p, err := s.Posts().Create(ctx, &model.Post{ID: uuid.New().String(), UserID: userID, Name: "Test User", Text: "hello"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if got, err := s.Posts().Get(ctx, p.ID); err != nil || got.Text != "hello" {
		t.Fatalf("GetPost: got=%v err=%v", got, err)
	}
	if got, _ := s.Posts().Get(ctx, p.ID); len(got.Likes) != 0 || len(got.Comments) != 0 {
		t.Fatalf("new post should have empty collections: %v", got)
	}

	// Whole-document update carries likes and comments.
	p.ToggleLike(userID)
	if _, err := p.AddComment(userID, "Test User", "", "first"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if _, err := s.Posts().Update(ctx, p); err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	got, err := s.Posts().Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPost after update: %v", err)
	}
	if len(got.Likes) != 1 || got.Likes[0].UserID != userID {
		t.Fatalf("likes not persisted: %v", got.Likes)
	}
	if len(got.Comments) != 1 || got.Comments[0].Text != "first" {
		t.Fatalf("comments not persisted: %v", got.Comments)
	}

	// List is newest-first.
	time.Sleep(5 * time.Millisecond)
	p2, err := s.Posts().Create(ctx, &model.Post{ID: uuid.New().String(), UserID: userID, Text: "second"})
	if err != nil {
		t.Fatalf("CreatePost p2: %v", err)
	}
	lst, err := s.Posts().List(ctx)
	if err != nil || len(lst) < 2 {
		t.Fatalf("ListPosts: n=%d err=%v", len(lst), err)
	}
	if lst[0].ID != p2.ID {
		t.Fatalf("ListPosts: newest post should be first, got %s", lst[0].ID)
	}

	// Profiles: upsert replaces the document whole, created_at sticks.
	prof := &model.Profile{UserID: userID, Status: "Developer", Skills: []string{"Go"}}
	stored, err := s.Profiles().Upsert(ctx, prof)
	if err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	prof.Company = "ACME"
	if _, err := prof.AddExperience(model.Experience{Title: "Engineer", Company: "ACME", From: time.Now().UTC()}); err != nil {
		t.Fatalf("AddExperience: %v", err)
	}
	again, err := s.Profiles().Upsert(ctx, prof)
	if err != nil {
		t.Fatalf("UpsertProfile replace: %v", err)
	}
	if !again.CreatedAt.Equal(stored.CreatedAt) {
		t.Fatalf("upsert must keep original created_at: %v vs %v", again.CreatedAt, stored.CreatedAt)
	}
	if got, err := s.Profiles().GetByUser(ctx, userID); err != nil || got.Company != "ACME" || len(got.Experience) != 1 {
		t.Fatalf("GetProfile after replace: got=%+v err=%v", got, err)
	}
	if lst, err := s.Profiles().List(ctx); err != nil || len(lst) == 0 {
		t.Fatalf("ListProfiles: n=%d err=%v", len(lst), err)
	}
	if _, err := s.Profiles().GetByUser(ctx, "missing-"+userID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetProfile missing: want ErrNotFound, got %v", err)
	}

	// Cascade order used by account deletion: posts, profile, user.
	if err := s.Posts().DeleteByUser(ctx, userID); err != nil {
		t.Fatalf("DeletePostsByUser: %v", err)
	}
	if remaining, err := s.Posts().List(ctx); err == nil {
		for _, rp := range remaining {
			if rp.UserID == userID {
				t.Fatalf("post %s survived DeleteByUser", rp.ID)
			}
		}
	}
	if err := s.Profiles().Delete(ctx, userID); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	if err := s.Users().Delete(ctx, userID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if err := s.Users().Delete(ctx, userID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteUser twice: want ErrNotFound, got %v", err)
	}
}
