// Package github proxies public repository listings from the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/devlink/devlink/internal/model"
)

// Repo is the subset of repository fields the profile page renders.
type Repo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stargazers  int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}

// Client fetches public repos for a GitHub username.
type Client struct {
	client *resty.Client
}

// NewClient creates a GitHub client. token is optional; when set it raises
// the unauthenticated rate limit.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/vnd.github+json").
		SetTimeout(10 * time.Second)
	if token != "" {
		c.SetAuthToken(token)
	}
	return &Client{client: c}
}

// Repos returns the user's five most recently created public repositories.
// An unknown username maps to model.ErrNotFound.
func (c *Client) Repos(ctx context.Context, username string) ([]Repo, error) {
	var repos []Repo
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"per_page":  "5",
			"sort":      "created",
			"direction": "desc",
		}).
		SetResult(&repos).
		Get(fmt.Sprintf("/users/%s/repos", username))
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, model.ErrNotFound
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("github responded %d", resp.StatusCode())
	}
	return repos, nil
}
