package app

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/placeholder"
	"github.com/taskdeck/taskdeck/internal/store"
)

const minRefreshInterval = 30 * time.Second

// StartAutoImport launches a background goroutine that re-runs the remote
// import at a fixed cadence. It returns immediately. Re-importing is safe at
// any frequency because the merge deduplicates by remote id, but intervals
// below the minimum are raised to avoid hammering the service.
//
// Failures are not logged here: the store records the error and the UI
// surfaces it.
func StartAutoImport(ctx context.Context, s *store.Store, fetcher placeholder.TodoFetcher, interval time.Duration) {
	if interval < minRefreshInterval {
		interval = minRefreshInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_, _ = s.Import(ctx, fetcher)
			}
		}
	}()
}
