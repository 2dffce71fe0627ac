// Package batch resolves many artist names at once against a rate-limited
// remote API: a fixed pool of workers, per-item failure isolation, and an
// output table that always follows submission order no matter which lookups
// finish first.
package batch

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/avlowe/lineup/cache"
	"github.com/avlowe/lineup/data"
	"github.com/avlowe/lineup/ingest"
	"github.com/avlowe/lineup/resolve"
)

const (
	DefaultConcurrency = 6
	MaxConcurrency     = 16
)

// A ProgressFunc observes batch progress. It is called once per completed
// item with a monotonically increasing done count.
type ProgressFunc func(done, total int)

func New(api resolve.API, c *cache.Cache) *Runner {
	return &Runner{
		resolver: resolve.New(api),
		cache:    c,
	}
}

type Runner struct {
	resolver *resolve.Resolver
	cache    *cache.Cache
}

// ResolveOne is the single-lookup path: the batch pipeline with one query.
// It reads through the cache, so looking the same name up twice within the
// cache TTL costs one network round trip, not two.
func (r *Runner) ResolveOne(ctx context.Context, query string) resolve.Outcome {
	return r.cache.GetOrResolve(query, func() resolve.Outcome {
		return r.resolver.Resolve(ctx, query)
	})
}

// Run resolves every usable query with at most concurrency lookups in flight
// and returns one row per query, in submission order. A query that fails
// produces a row with empty artist fields; it never aborts the rest of the
// batch. onProgress may be nil.
//
// Given the same queries and the same remote answers, Run returns the same
// table every time, however the concurrent lookups happen to interleave.
func (r *Runner) Run(ctx context.Context, queries []string, concurrency int, onProgress ProgressFunc) []data.Row {
	// ingestion already filters blanks and comments, but re-check here so a
	// caller that skipped ingest can't sneak junk into the pool
	var usable []string
	for _, q := range queries {
		if ingest.Usable(q) {
			usable = append(usable, strings.TrimSpace(q))
		}
	}

	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency > MaxConcurrency {
		concurrency = MaxConcurrency
	}

	total := len(usable)
	rows := make([]data.Row, total)

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := range usable {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	// progress counting and delivery share one lock so observers see
	// 1, 2, ... total in order even though completions are concurrent
	var progressMu sync.Mutex
	done := 0
	finished := func() {
		if onProgress == nil {
			return
		}
		progressMu.Lock()
		done++
		onProgress(done, total)
		progressMu.Unlock()
	}

	var g errgroup.Group
	for w := 0; w < concurrency; w++ {
		g.Go(func() error {
			for i := range jobs {
				query := usable[i]
				if ctx.Err() != nil {
					rows[i] = data.Row{SearchTerm: query, Err: "canceled"}
					continue
				}
				outcome := r.ResolveOne(ctx, query)
				rows[i] = outcome.Row(query)
				finished()
			}
			return nil
		})
	}
	g.Wait()

	// a canceled run stops pulling queries; the table still gets a row per
	// query so callers can see exactly what never ran
	for i, row := range rows {
		if row.SearchTerm == "" {
			rows[i] = data.Row{SearchTerm: usable[i], Err: "canceled"}
		}
	}

	return rows
}
