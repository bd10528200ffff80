package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/store/memstore"
)

func TestUpsertValidation(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewProfileService(st)
	u := seedUser(t, st, "Ana", "ana@example.com")

	_, err := svc.Upsert(ctx, u.ID, ProfileInput{})
	require.Error(t, err)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	msgs := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		msgs = append(msgs, f.Msg)
	}
	assert.Contains(t, msgs, "Status is required")
	assert.Contains(t, msgs, "Skills is required")
}

func TestUpsertCreatesAndNormalizesSkills(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewProfileService(st)
	u := seedUser(t, st, "Ana", "ana@example.com")

	p, err := svc.Upsert(ctx, u.ID, ProfileInput{
		Status:  "Developer",
		Skills:  " Go , SQL ,, HTML ",
		Company: "Acme",
		Twitter: "https://twitter.com/ana",
	})
	require.NoError(t, err)

	assert.Equal(t, u.ID, p.UserID)
	assert.Equal(t, []string{"Go", "SQL", "HTML"}, p.Skills)
	assert.Equal(t, "https://twitter.com/ana", p.Social.Twitter)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestUpsertReplacesScalarsKeepsCollections(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewProfileService(st)
	u := seedUser(t, st, "Ana", "ana@example.com")

	created, err := svc.Upsert(ctx, u.ID, ProfileInput{Status: "Developer", Skills: "Go", Company: "Acme"})
	require.NoError(t, err)

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.AddExperience(ctx, u.ID, model.Experience{Title: "Dev", Company: "Acme", From: from})
	require.NoError(t, err)

	replaced, err := svc.Upsert(ctx, u.ID, ProfileInput{Status: "Architect", Skills: "Go,SQL"})
	require.NoError(t, err)

	assert.Equal(t, "Architect", replaced.Status)
	assert.Empty(t, replaced.Company, "omitted scalar clears on replacement")
	require.Len(t, replaced.Experience, 1, "experience survives scalar replacement")
	assert.Equal(t, created.CreatedAt, replaced.CreatedAt, "creation time is stable across upserts")
}

func TestExperienceLifecycle(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewProfileService(st)
	u := seedUser(t, st, "Ana", "ana@example.com")

	_, err := svc.Upsert(ctx, u.ID, ProfileInput{Status: "Developer", Skills: "Go"})
	require.NoError(t, err)

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := svc.AddExperience(ctx, u.ID, model.Experience{Title: "Dev", Company: "Acme", From: from})
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)
	expID := p.Experience[0].ID

	// removing an unknown id is rejected without touching the profile
	_, err = svc.RemoveExperience(ctx, u.ID, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
	current, err := svc.GetMine(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, current.Experience, 1)

	p, err = svc.RemoveExperience(ctx, u.ID, expID)
	require.NoError(t, err)
	assert.Empty(t, p.Experience)
}

func TestEducationLifecycle(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewProfileService(st)
	u := seedUser(t, st, "Ana", "ana@example.com")

	_, err := svc.Upsert(ctx, u.ID, ProfileInput{Status: "Developer", Skills: "Go"})
	require.NoError(t, err)

	from := time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC)
	p, err := svc.AddEducation(ctx, u.ID, model.Education{School: "MIT", Degree: "BS", FieldOfStudy: "CS", From: from})
	require.NoError(t, err)
	require.Len(t, p.Education, 1)

	p, err = svc.RemoveEducation(ctx, u.ID, p.Education[0].ID)
	require.NoError(t, err)
	assert.Empty(t, p.Education)
}

func TestExperienceRequiresProfile(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewProfileService(st)
	u := seedUser(t, st, "Ana", "ana@example.com")

	_, err := svc.AddExperience(ctx, u.ID, model.Experience{Title: "Dev", Company: "Acme", From: time.Now()})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteAccountCascades(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	profileSvc := NewProfileService(st)
	postSvc := NewPostService(st)
	u := seedUser(t, st, "Ana", "ana@example.com")
	other := seedUser(t, st, "Ben", "ben@example.com")

	_, err := profileSvc.Upsert(ctx, u.ID, ProfileInput{Status: "Developer", Skills: "Go"})
	require.NoError(t, err)
	_, err = postSvc.CreatePost(ctx, u.ID, "mine")
	require.NoError(t, err)
	keep, err := postSvc.CreatePost(ctx, other.ID, "not mine")
	require.NoError(t, err)

	require.NoError(t, profileSvc.DeleteAccount(ctx, u.ID))

	_, err = st.Users().Get(ctx, u.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = st.Profiles().GetByUser(ctx, u.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	posts, err := postSvc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, keep.ID, posts[0].ID)
}

func TestDeleteAccountWithoutProfile(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewProfileService(st)
	u := seedUser(t, st, "Ana", "ana@example.com")

	require.NoError(t, svc.DeleteAccount(ctx, u.ID))
	_, err := st.Users().Get(ctx, u.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
