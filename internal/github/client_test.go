package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlink/devlink/internal/model"
)

func TestReposFetchesFiveNewest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("direction"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"newest","html_url":"https://github.com/octocat/newest","stargazers_count":3,"forks_count":1},
			{"name":"older","html_url":"https://github.com/octocat/older","description":"old one"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	repos, err := c.Repos(context.Background(), "octocat")
	require.NoError(t, err)

	require.Len(t, repos, 2)
	assert.Equal(t, "newest", repos[0].Name)
	assert.Equal(t, 3, repos[0].Stargazers)
	assert.Equal(t, "old one", repos[1].Description)
}

func TestReposUnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Repos(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReposUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Repos(context.Background(), "octocat")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}

func TestReposSendsAuthTokenWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gh-token")
	repos, err := c.Repos(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, repos)
}
