package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/devlink/devlink/internal/auth"
	"github.com/devlink/devlink/internal/gravatar"
	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/store"
)

// ErrInvalidCredentials covers both unknown email and wrong password.
// Callers must present the two cases identically.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles registration, login and identity lookup.
type AuthService struct {
	store  store.Store
	tokens *auth.TokenService
}

func NewAuthService(s store.Store, tokens *auth.TokenService) *AuthService {
	return &AuthService{store: s, tokens: tokens}
}

// Register creates an account and returns a signed token for it.
// A duplicate email is rejected with the fixed client-facing message.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.store.Users().GetByEmail(ctx, email); err == nil {
		return "", model.NewValidationError("Email already registered")
	} else if !errors.Is(err, model.ErrNotFound) {
		return "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	u := &model.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: hash,
		Avatar:   gravatar.URL(email),
	}
	if _, err := s.store.Users().Create(ctx, u); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return "", model.NewValidationError("Email already registered")
		}
		return "", err
	}
	return s.tokens.Issue(u.ID)
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password both yield ErrInvalidCredentials; nothing in the result
// discloses which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !auth.CheckPassword(password, u.Password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(u.ID)
}

// Current returns the account bound to a verified token.
func (s *AuthService) Current(ctx context.Context, userID string) (*model.User, error) {
	return s.store.Users().Get(ctx, userID)
}
