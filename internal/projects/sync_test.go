package projects

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bavatarinee.dev/internal/models"
)

type stubSource struct {
	repos []models.Repository
	err   error
	calls int
}

func (s *stubSource) ListRepositories(ctx context.Context, account string) ([]models.Repository, error) {
	s.calls++
	return s.repos, s.err
}

func TestPipeline_Sync(t *testing.T) {
	src := &stubSource{repos: []models.Repository{
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b", Fork: true},
		{ID: 3, Name: "c"},
		{ID: 4, Name: "site-config"},
		{ID: 5, Name: "d"},
		{ID: 6, Name: "e"},
		{ID: 7, Name: "f"},
	}}
	p := NewPipeline(src, "Bavatarinee")
	fixed := time.Date(2026, 10, 19, 14, 5, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	res, err := p.Sync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, res.Count)
	require.Len(t, res.Projects, 5)
	assert.Equal(t, "proj-gh-1", res.Projects[0].ID)
	assert.Equal(t, "proj-gh-3", res.Projects[1].ID)
	assert.Equal(t, "02", res.Projects[1].Number)
	assert.Equal(t, fixed, res.SyncedAt)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 1, src.calls)
}

func TestPipeline_EmptyAfterFilter(t *testing.T) {
	src := &stubSource{repos: []models.Repository{
		{Name: "fork", Fork: true},
		{Name: "my-config"},
		{Name: "Bavatarinee"},
	}}

	res, err := NewPipeline(src, "Bavatarinee").Sync(context.Background())

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestPipeline_NoRepositories(t *testing.T) {
	res, err := NewPipeline(&stubSource{}, "Bavatarinee").Sync(context.Background())

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestPipeline_SourceErrorsAreWrapped(t *testing.T) {
	src := &stubSource{err: errors.New("connection reset")}

	_, err := NewPipeline(src, "Bavatarinee").Sync(context.Background())

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPipeline_SyncErrorPassesThrough(t *testing.T) {
	src := &stubSource{err: &SyncError{Kind: ErrHTTPStatus, StatusCode: 403}}

	_, err := NewPipeline(src, "Bavatarinee").Sync(context.Background())

	assert.ErrorIs(t, err, ErrHTTPStatus)
	assert.NotErrorIs(t, err, ErrNetwork)
}
