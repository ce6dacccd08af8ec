package jobs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron"

	"chronopro-api/internal/storage"
)

const runTimeout = 5 * time.Minute

// Maintenance periodically purges expired responses and logs a stats
// snapshot.
type Maintenance struct {
	store         storage.Store
	retentionDays int
	cron          *cron.Cron
	now           func() time.Time

	mu      sync.Mutex
	stopped bool
	running sync.WaitGroup
}

// New returns a Maintenance job. A retentionDays of 0 disables purging.
func New(store storage.Store, retentionDays int) *Maintenance {
	return &Maintenance{
		store:         store,
		retentionDays: retentionDays,
		cron:          cron.New(),
		now:           time.Now,
	}
}

// Start schedules the job using a cron spec such as "@every 1h" and starts
// the scheduler in its own goroutine.
func (m *Maintenance) Start(schedule string) error {
	err := m.cron.AddFunc(schedule, m.tick)
	if err != nil {
		return fmt.Errorf("schedule %q: %w", schedule, err)
	}
	m.cron.Start()
	log.Printf("Maintenance scheduled %s (retention %d days)", schedule, m.retentionDays)
	return nil
}

// Stop halts the scheduler and waits for a run in flight to finish. Once it
// returns the job no longer touches the store.
func (m *Maintenance) Stop() {
	m.cron.Stop()

	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
	m.running.Wait()
}

func (m *Maintenance) tick() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.running.Add(1)
	m.mu.Unlock()
	defer m.running.Done()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	if err := m.Run(ctx); err != nil {
		log.Printf("maintenance: %v", err)
	}
}

// Run performs one maintenance pass.
func (m *Maintenance) Run(ctx context.Context) error {
	now := m.now()

	if m.retentionDays > 0 {
		cutoff := now.AddDate(0, 0, -m.retentionDays)
		n, err := m.store.DeleteBefore(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("purge responses before %s: %w", cutoff.Format(time.RFC3339), err)
		}
		if n > 0 {
			log.Printf("Purged %d responses older than %d days", n, m.retentionDays)
		}
	}

	stats, err := m.store.Stats(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return fmt.Errorf("stats snapshot: %w", err)
	}
	log.Printf("Stats: total=%d last24h=%d byChronotype=%v byDiet=%v",
		stats.Total, stats.Last24h, stats.ByChronotype, stats.ByDiet)
	return nil
}
