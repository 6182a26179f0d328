// Package sweep provides the retention sweeper that deletes entries
// older than the one-year horizon.
package sweep

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fitlog/internal/store"
)

// DefaultInterval is how often the background sweeper re-runs.
const DefaultInterval = 24 * time.Hour

// Sweeper deletes entries older than one calendar year. It holds no
// state beyond the in-flight guard; the store owns all data.
type Sweeper struct {
	store    *store.Store
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	running bool
}

// New returns a sweeper over an open store with the default interval.
func New(st *store.Store) *Sweeper {
	return &Sweeper{store: st, interval: DefaultInterval, now: time.Now}
}

// SetInterval overrides the time between background sweeps. Call it
// before Run; it is not safe to change while Run is ticking.
func (s *Sweeper) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// Interval returns the time between background sweeps.
func (s *Sweeper) Interval() time.Duration {
	return s.interval
}

// SweepOnce deletes every entry dated before now minus one calendar year
// and returns how many were removed. Finding nothing to delete is a
// normal outcome. If another sweep is already in flight the call is
// skipped and reports zero deletions.
//
// Deletion is by explicit id set, never a bulk clear, so an entry
// appended while the sweep is reading can never land in the delete set.
func (s *Sweeper) SweepOnce() (int, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return 0, nil
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	cutoff := s.now().AddDate(-1, 0, 0)

	entries, err := s.store.GetAll()
	if err != nil {
		return 0, fmt.Errorf("loading entries: %w", err)
	}

	var ids []int64
	for _, e := range entries {
		if !e.Date.IsZero() && e.Date.Before(cutoff) {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := s.store.DeleteByIDs(ids); err != nil {
		return 0, fmt.Errorf("deleting old entries: %w", err)
	}
	return len(ids), nil
}

// Run sweeps immediately, then once per interval until ctx is canceled.
// Sweep failures are logged, not fatal; the next tick retries.
func (s *Sweeper) Run(ctx context.Context) error {
	s.sweepAndLog()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweepAndLog()
		}
	}
}

func (s *Sweeper) sweepAndLog() {
	start := s.now()
	n, err := s.SweepOnce()
	if err != nil {
		log.Printf("fitlog sweep error: %v", err)
		return
	}
	if n > 0 {
		log.Printf("fitlog sweep removed %d old entries in %s", n, time.Since(start).Round(time.Millisecond))
	}
}
