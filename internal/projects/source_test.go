package projects

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reposJSON = `[
	{"id": 1, "name": "eye-disease-classifier", "description": null, "language": "Python", "stargazers_count": 3, "html_url": "https://github.com/Bavatarinee/eye-disease-classifier", "fork": false},
	{"id": 2, "name": "upstream-lib", "description": "a fork", "language": "Go", "stargazers_count": 0, "html_url": "https://github.com/Bavatarinee/upstream-lib", "fork": true}
]`

func newTestSource(t *testing.T, handler http.HandlerFunc) *GitHubSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	src, err := NewGitHubSource(SourceConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return src
}

func TestGitHubSource_ListRepositories(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/Bavatarinee/repos", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "public", r.URL.Query().Get("type"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reposJSON))
	})

	repos, err := src.ListRepositories(context.Background(), "Bavatarinee")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, int64(1), repos[0].ID)
	assert.Equal(t, "eye-disease-classifier", repos[0].Name)
	assert.Nil(t, repos[0].Description)
	require.NotNil(t, repos[0].Language)
	assert.Equal(t, "Python", *repos[0].Language)
	assert.Equal(t, 3, repos[0].Stars)
	assert.False(t, repos[0].Fork)
	assert.True(t, repos[1].Fork)
}

func TestGitHubSource_ErrorStatus(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})

	_, err := src.ListRepositories(context.Background(), "Bavatarinee")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPStatus)

	var syncErr *SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, http.StatusInternalServerError, syncErr.StatusCode)
	assert.Equal(t, "http_status", KindName(err))
}

func TestGitHubSource_NotFound(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := src.ListRepositories(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrHTTPStatus)
}

func TestGitHubSource_MalformedBody(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"not": "an array"`))
	})

	_, err := src.ListRepositories(context.Background(), "Bavatarinee")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGitHubSource_NetworkFailure(t *testing.T) {
	src, err := NewGitHubSource(SourceConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	require.NoError(t, err)

	_, err = src.ListRepositories(context.Background(), "Bavatarinee")
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, "network", KindName(err))
}
