// Package aerodex provides a read-only airport lookup engine.
//
// This file implements the fluent search API and the order-preserving
// filter it is built on.
package aerodex

import (
	"context"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultParallelThreshold is the dataset size below which search stays
// sequential. Spawning goroutines for a handful of records costs more than
// the scan itself.
const defaultParallelThreshold = 4096

// Search creates a new fluent search builder for the given query.
//
// Example:
//
//	page, err := lk.Search("heathrow").
//	    Offset(10).
//	    Limit(20).
//	    Execute(ctx)
func (lk *Lookup) Search(query string) *SearchBuilder {
	return &SearchBuilder{
		lk:    lk,
		query: query,
	}
}

// SearchBuilder is a fluent builder for constructing search queries.
type SearchBuilder struct {
	lk     *Lookup
	query  string
	offset *int
	limit  *int
}

// Offset sets the starting index of the returned window.
func (sb *SearchBuilder) Offset(n int) *SearchBuilder {
	sb.offset = &n
	return sb
}

// Limit sets the maximum window size. Values above MaxPageLimit are
// clamped at execution time.
func (sb *SearchBuilder) Limit(n int) *SearchBuilder {
	sb.limit = &n
	return sb
}

// Window sets offset and limit from optional values, where nil means
// "not provided". Convenience for callers that parse both from a request.
func (sb *SearchBuilder) Window(offset, limit *int) *SearchBuilder {
	sb.offset = offset
	sb.limit = limit
	return sb
}

// Execute runs the search and paginates the filtered result.
func (sb *SearchBuilder) Execute(ctx context.Context) (Page[Record], error) {
	start := time.Now()

	matches, err := sb.lk.Matches(ctx, sb.query)
	if err != nil {
		sb.lk.metricsCollector.RecordSearch(0, time.Since(start), err)
		return Page[Record]{}, err
	}

	page := Paginate(matches, sb.offset, sb.limit)
	sb.lk.metricsCollector.RecordSearch(len(matches), time.Since(start), nil)
	sb.lk.logger.LogSearch(ctx, sb.query, len(matches))
	return page, nil
}

// Count executes the search and returns the number of matching records.
func (sb *SearchBuilder) Count(ctx context.Context) (int, error) {
	matches, err := sb.lk.Matches(ctx, sb.query)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

// Exists checks if at least one record matches the search.
func (sb *SearchBuilder) Exists(ctx context.Context) (bool, error) {
	n, err := sb.Count(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Matches returns every record whose identifier or name contains query,
// ignoring case. An empty query matches all records.
//
// The result order is always a subsequence of the dataset's load order.
// Large datasets are filtered in parallel by partitioning into chunks and
// concatenating chunk results in chunk order, never completion order.
func (lk *Lookup) Matches(ctx context.Context, query string) ([]Record, error) {
	q := strings.ToLower(query)

	if len(lk.records) < lk.parallelThreshold || lk.numWorkers == 1 {
		return filterChunk(lk.records, q), nil
	}

	workers := lk.numWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunkSize := (len(lk.records) + workers - 1) / workers

	chunks := make([][]Record, workers)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		lo := i * chunkSize
		if lo >= len(lk.records) {
			break
		}
		hi := min(lo+chunkSize, len(lk.records))

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			chunks[i] = filterChunk(lk.records[lo:hi], q)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Record
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out, nil
}

// filterChunk is the sequential filter pass over one partition.
func filterChunk(records []Record, q string) []Record {
	var out []Record
	for _, r := range records {
		if strings.Contains(r.lowerICAO, q) || strings.Contains(r.lowerName, q) {
			out = append(out, r)
		}
	}
	return out
}
