package reveal

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Tracker remembers which elements are still waiting to be revealed.
type Tracker struct {
	delay time.Duration

	mu      sync.Mutex
	pending map[string]struct{}
	visible map[string]struct{}
}

// NewTracker creates a Tracker whose fallback fires after delay. A
// non-positive delay uses FallbackDelay.
func NewTracker(delay time.Duration) *Tracker {
	if delay <= 0 {
		delay = FallbackDelay
	}
	return &Tracker{
		delay:   delay,
		pending: make(map[string]struct{}),
		visible: make(map[string]struct{}),
	}
}

// Observe registers an element. Already visible elements stay visible.
func (t *Tracker) Observe(ids ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range ids {
		if _, ok := t.visible[id]; ok {
			continue
		}
		t.pending[id] = struct{}{}
	}
}

// MarkVisible reveals an element and reports whether it was pending.
// Revealing is one-way.
func (t *Tracker) MarkVisible(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.pending[id]
	delete(t.pending, id)
	t.visible[id] = struct{}{}
	return ok
}

// Visible reports whether an element has been revealed.
func (t *Tracker) Visible(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.visible[id]
	return ok
}

// Pending returns the elements not yet revealed, sorted.
func (t *Tracker) Pending() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]string, 0, len(t.pending))
	for id := range t.pending {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// StartFallback forces every pending element visible once the delay
// elapses, unless ctx is cancelled first. The returned channel receives
// the forced ids and is then closed.
func (t *Tracker) StartFallback(ctx context.Context) <-chan []string {
	out := make(chan []string, 1)
	go func() {
		defer close(out)
		timer := time.NewTimer(t.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		forced := t.Pending()
		for _, id := range forced {
			t.MarkVisible(id)
		}
		out <- forced
	}()
	return out
}
