package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike(t *testing.T) {
	p := &Post{Likes: []Like{{UserID: "b"}, {UserID: "c"}}}

	liked := p.ToggleLike("a")
	assert.True(t, liked)
	assert.Equal(t, []Like{{UserID: "a"}, {UserID: "b"}, {UserID: "c"}}, p.Likes)
	assert.True(t, p.LikedBy("a"))

	liked = p.ToggleLike("a")
	assert.False(t, liked)
	assert.Equal(t, []Like{{UserID: "b"}, {UserID: "c"}}, p.Likes)
	assert.False(t, p.LikedBy("a"))
}

func TestToggleLikeTwiceRestoresSequence(t *testing.T) {
	p := &Post{Likes: []Like{{UserID: "x"}, {UserID: "y"}, {UserID: "z"}}}
	before := append([]Like(nil), p.Likes...)

	p.ToggleLike("y")
	p.ToggleLike("y")

	// y rejoins at the front, the others keep their relative order
	assert.Equal(t, []Like{{UserID: "y"}, {UserID: "x"}, {UserID: "z"}}, p.Likes)
	assert.Len(t, p.Likes, len(before))
}

func TestAddCommentPrependsNewestFirst(t *testing.T) {
	p := &Post{}

	first, err := p.AddComment("u1", "Ana", "av1", "first")
	require.NoError(t, err)
	second, err := p.AddComment("u2", "Ben", "av2", "second")
	require.NoError(t, err)

	require.Len(t, p.Comments, 2)
	assert.Equal(t, second.ID, p.Comments[0].ID)
	assert.Equal(t, first.ID, p.Comments[1].ID)
	assert.Equal(t, "Ana", p.Comments[1].Name)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestAddCommentRejectsEmptyText(t *testing.T) {
	p := &Post{}
	_, err := p.AddComment("u1", "Ana", "av1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, p.Comments)
}

func TestRemoveCommentKeepsOrder(t *testing.T) {
	p := &Post{}
	a, _ := p.AddComment("u1", "Ana", "", "a")
	b, _ := p.AddComment("u1", "Ana", "", "b")
	c, _ := p.AddComment("u1", "Ana", "", "c")

	require.NoError(t, p.RemoveComment(b.ID))

	require.Len(t, p.Comments, 2)
	assert.Equal(t, c.ID, p.Comments[0].ID)
	assert.Equal(t, a.ID, p.Comments[1].ID)
}

func TestRemoveCommentMissingIsNoOp(t *testing.T) {
	p := &Post{}
	a, _ := p.AddComment("u1", "Ana", "", "only")

	err := p.RemoveComment("does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
	require.Len(t, p.Comments, 1)
	assert.Equal(t, a.ID, p.Comments[0].ID)
}

func TestFindComment(t *testing.T) {
	p := &Post{}
	a, _ := p.AddComment("u1", "Ana", "", "hello")

	got := p.FindComment(a.ID)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Nil(t, p.FindComment("nope"))
}
