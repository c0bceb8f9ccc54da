// Package cascade executes the best-effort dependent deletes issued when a
// user or client is removed. Jobs run concurrently and independently; a
// failed job is logged and counted but never rolled back, so partial failure
// can leave orphaned dependents behind.
package cascade

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/salesflow/crm-api/internal/api/metrics"
)

// Job is a single delete issued during a cascade. Run reports how many
// documents it removed.
type Job struct {
	Name string
	Run  func(ctx context.Context) (int64, error)
}

// Runner fans cascade jobs out to goroutines and waits for all of them.
type Runner struct {
	log zerolog.Logger
}

func NewRunner(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

// Run executes all jobs concurrently and blocks until every job has
// finished. parentKind/parentID identify the record whose deletion triggered
// the cascade, for logging only.
func (r *Runner) Run(ctx context.Context, parentKind, parentID string, jobs ...Job) {
	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			removed, err := job.Run(ctx)
			if err != nil {
				metrics.CascadeFailuresTotal.WithLabelValues(job.Name).Inc()
				r.log.Error().Err(err).
					Str("job", job.Name).
					Str(parentKind, parentID).
					Msg("cascade delete failed, dependents may be orphaned")
				return
			}
			r.log.Debug().
				Str("job", job.Name).
				Str(parentKind, parentID).
				Int64("removed", removed).
				Msg("cascade delete completed")
		}(job)
	}
	wg.Wait()
}
