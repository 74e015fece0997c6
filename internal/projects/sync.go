package projects

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"bavatarinee.dev/internal/models"
)

// Result is the outcome of a successful sync
type Result struct {
	RunID    string
	Projects []models.Project
	Count    int
	SyncedAt time.Time
}

// Pipeline fetches, filters and maps an account's repositories into cards
type Pipeline struct {
	source  Source
	account string
	now     func() time.Time
}

// NewPipeline creates a pipeline for one account
func NewPipeline(source Source, account string) *Pipeline {
	return &Pipeline{source: source, account: account, now: time.Now}
}

// Account returns the account the pipeline syncs
func (p *Pipeline) Account() string {
	return p.account
}

// Sync runs one fetch-transform pass. It either returns every card or an
// error; there is no partial result.
func (p *Pipeline) Sync(ctx context.Context) (*Result, error) {
	repos, err := p.source.ListRepositories(ctx, p.account)
	if err != nil {
		var syncErr *SyncError
		if !errors.As(err, &syncErr) {
			err = &SyncError{Kind: ErrNetwork, Err: err}
		}
		return nil, err
	}

	filtered := Filter(repos, p.account)
	if len(filtered) == 0 {
		return nil, &SyncError{Kind: ErrEmptyResult}
	}

	cards := BuildCards(filtered)
	return &Result{
		RunID:    uuid.NewString(),
		Projects: cards,
		Count:    len(cards),
		SyncedAt: p.now(),
	}, nil
}
