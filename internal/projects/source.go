package projects

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v71/github"
	"golang.org/x/oauth2"

	"bavatarinee.dev/internal/models"
)

// PerPage is the most repositories one sync asks for.
const PerPage = 100

// Source lists the public repositories of an account
type Source interface {
	ListRepositories(ctx context.Context, account string) ([]models.Repository, error)
}

// SourceConfig configures a GitHubSource
type SourceConfig struct {
	// BaseURL overrides the API root, e.g. for GitHub Enterprise or tests.
	BaseURL string
	// Token is optional; anonymous requests work for public data.
	Token string
	// Timeout bounds one request. Zero leaves it to the transport.
	Timeout time.Duration
}

// GitHubSource reads repositories from the GitHub REST API
type GitHubSource struct {
	client *github.Client
}

// NewGitHubSource creates a Source backed by go-github
func NewGitHubSource(cfg SourceConfig) (*GitHubSource, error) {
	var httpClient *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = cfg.Timeout

	client := github.NewClient(httpClient)
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing api url %q: %w", cfg.BaseURL, err)
		}
		client.BaseURL = u
	}

	return &GitHubSource{client: client}, nil
}

// ListRepositories issues GET /users/{account}/repos sorted by most
// recently updated.
func (s *GitHubSource) ListRepositories(ctx context.Context, account string) ([]models.Repository, error) {
	opts := &github.RepositoryListByUserOptions{
		Type:        "public",
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: PerPage},
	}

	repos, resp, err := s.client.Repositories.ListByUser(ctx, account, opts)
	if err != nil {
		return nil, classify(resp, err)
	}

	out := make([]models.Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, models.Repository{
			ID:          r.GetID(),
			Name:        r.GetName(),
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.GetStargazersCount(),
			URL:         r.GetHTMLURL(),
			Fork:        r.GetFork(),
		})
	}
	return out, nil
}

// classify turns a go-github failure into a SyncError. A response means the
// server answered: either with an error status or with an undecodable body.
func classify(resp *github.Response, err error) error {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return err
	}
	if resp == nil || resp.Response == nil {
		return &SyncError{Kind: ErrNetwork, Err: err}
	}
	if code := resp.StatusCode; code < 200 || code > 299 {
		return &SyncError{Kind: ErrHTTPStatus, StatusCode: code, Err: err}
	}
	return &SyncError{Kind: ErrMalformedResponse, Err: err}
}
