package services

import (
	"context"
	"errors"

	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/store"
)

// ProfileInput carries the scalar and social fields of a profile upsert.
// Skills arrives as comma-delimited text exactly as clients send it.
type ProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ProfileService orchestrates profile mutations. A profile is looked up by
// its owner's identity, so ownership of every mutation is structural.
type ProfileService struct {
	store store.Store
}

func NewProfileService(s store.Store) *ProfileService {
	return &ProfileService{store: s}
}

// GetMine returns the requester's profile.
func (s *ProfileService) GetMine(ctx context.Context, userID string) (*model.Profile, error) {
	return s.store.Profiles().GetByUser(ctx, userID)
}

// GetByUser returns another user's profile.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*model.Profile, error) {
	return s.store.Profiles().GetByUser(ctx, userID)
}

// List returns all profiles.
func (s *ProfileService) List(ctx context.Context) ([]*model.Profile, error) {
	return s.store.Profiles().List(ctx)
}

// Upsert creates the requester's profile or replaces its scalar and social
// fields whole. Experience and education sequences are preserved across
// replacement; they have their own mutation operations.
func (s *ProfileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*model.Profile, error) {
	var msgs []string
	if in.Status == "" {
		msgs = append(msgs, "Status is required")
	}
	if in.Skills == "" {
		msgs = append(msgs, "Skills is required")
	}
	if len(msgs) > 0 {
		return nil, model.NewValidationError(msgs...)
	}

	p := &model.Profile{
		UserID:         userID,
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Status:         in.Status,
		Skills:         model.SplitSkills(in.Skills),
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Social: model.Social{
			Youtube:   in.Youtube,
			Twitter:   in.Twitter,
			Facebook:  in.Facebook,
			Linkedin:  in.Linkedin,
			Instagram: in.Instagram,
		},
	}

	existing, err := s.store.Profiles().GetByUser(ctx, userID)
	switch {
	case err == nil:
		p.Experience = existing.Experience
		p.Education = existing.Education
		p.CreatedAt = existing.CreatedAt
	case errors.Is(err, model.ErrNotFound):
		// first profile for this user
		p.Experience = []model.Experience{}
		p.Education = []model.Education{}
	default:
		return nil, err
	}
	return s.store.Profiles().Upsert(ctx, p)
}

// DeleteAccount removes the requester's posts, profile and account, in
// that order. A missing profile is not an error; the account still goes.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.store.Posts().DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.store.Profiles().Delete(ctx, userID); err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}
	return s.store.Users().Delete(ctx, userID)
}

// AddExperience prepends a work history entry to the requester's profile
// and returns the updated profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, e model.Experience) (*model.Profile, error) {
	p, err := s.store.Profiles().GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := p.AddExperience(e); err != nil {
		return nil, err
	}
	return s.store.Profiles().Upsert(ctx, p)
}

// RemoveExperience deletes one entry by id. A missing id is ErrNotFound;
// no other entry is touched.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (*model.Profile, error) {
	p, err := s.store.Profiles().GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := p.RemoveExperience(expID); err != nil {
		return nil, err
	}
	return s.store.Profiles().Upsert(ctx, p)
}

// AddEducation prepends a schooling entry to the requester's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, e model.Education) (*model.Profile, error) {
	p, err := s.store.Profiles().GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := p.AddEducation(e); err != nil {
		return nil, err
	}
	return s.store.Profiles().Upsert(ctx, p)
}

// RemoveEducation deletes one entry by id, with the same not-found rule as
// RemoveExperience.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (*model.Profile, error) {
	p, err := s.store.Profiles().GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := p.RemoveEducation(eduID); err != nil {
		return nil, err
	}
	return s.store.Profiles().Upsert(ctx, p)
}
