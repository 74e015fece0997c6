package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"bavatarinee.dev/internal/models"
	"bavatarinee.dev/internal/projects"
)

const (
	StatusPending = "Syncing from GitHub…"
	StatusFailed  = "Could not sync — see GitHub"
)

// Syncer runs one repository sync
type Syncer interface {
	Sync(ctx context.Context) (*projects.Result, error)
}

// ProjectService owns the project grid state. Sync is its single error
// boundary: every failure collapses into the same degraded state.
type ProjectService struct {
	syncer     Syncer
	profileURL string
	logger     *zap.Logger
	now        func() time.Time

	group singleflight.Group

	mu    sync.RWMutex
	state models.ProjectList
}

// NewProjectService creates a ProjectService in the pending state
func NewProjectService(syncer Syncer, profileURL string, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		syncer:     syncer,
		profileURL: profileURL,
		logger:     logger,
		now:        time.Now,
		state: models.ProjectList{
			Status:     StatusPending,
			ProfileURL: profileURL,
		},
	}
}

// Sync fetches and renders the grid. Concurrent calls share one run, which
// is detached from the caller's cancellation: a caller going away must not
// fail the run for everyone else. The returned error is for diagnostics
// only; the state is already updated.
func (s *ProjectService) Sync(ctx context.Context) (models.ProjectList, error) {
	_, err, _ := s.group.Do("sync", func() (any, error) {
		return nil, s.sync(context.WithoutCancel(ctx))
	})
	return s.GetAll(), err
}

func (s *ProjectService) sync(ctx context.Context) error {
	start := s.now()
	res, err := s.syncer.Sync(ctx)
	if err != nil {
		s.logger.Warn("GitHub sync failed",
			zap.String("kind", projects.KindName(err)),
			zap.Error(err),
			zap.Duration("elapsed", s.now().Sub(start)))

		s.mu.Lock()
		s.state.Projects = nil
		s.state.Status = StatusFailed
		s.state.Synced = false
		s.state.Failed = true
		s.state.SyncedAt = nil
		s.state.RunID = ""
		s.mu.Unlock()
		return err
	}

	syncedAt := res.SyncedAt
	s.mu.Lock()
	s.state = models.ProjectList{
		Projects:   res.Projects,
		Count:      res.Count,
		Status:     LiveStatus(res.Count, syncedAt),
		Synced:     true,
		ProfileURL: s.profileURL,
		SyncedAt:   &syncedAt,
		RunID:      res.RunID,
	}
	s.mu.Unlock()

	s.logger.Info("GitHub sync complete",
		zap.String("run_id", res.RunID),
		zap.Int("repos", res.Count),
		zap.Duration("elapsed", s.now().Sub(start)))
	return nil
}

// LiveStatus is the status text after a successful sync.
func LiveStatus(count int, at time.Time) string {
	return fmt.Sprintf("Live — synced from GitHub · %d repos · updated %s", count, at.Format("15:04"))
}

// GetAll returns a copy of the grid state
func (s *ProjectService) GetAll() models.ProjectList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Projects = make([]models.Project, len(s.state.Projects))
	copy(out.Projects, s.state.Projects)
	if out.SyncedAt != nil {
		out.SyncedAgo = humanize.RelTime(*out.SyncedAt, s.now(), "ago", "from now")
	}
	return out
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.state.Projects {
		if s.state.Projects[i].ID == id {
			p := s.state.Projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", id)
}
