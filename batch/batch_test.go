package batch_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avlowe/lineup/batch"
	"github.com/avlowe/lineup/cache"
	"github.com/avlowe/lineup/data"
	"github.com/avlowe/lineup/resolve"
	"github.com/stretchr/testify/assert"
)

// stubAPI resolves each query to an artist of the same name, failing the
// queries listed in fail. It records the concurrent-call high-water mark.
type stubAPI struct {
	mu       sync.Mutex
	fail     map[string]bool
	delay    time.Duration
	inflight int
	peak     int
	searches int
}

func (s *stubAPI) Search(ctx context.Context, query string) ([]data.Hit, error) {
	s.mu.Lock()
	s.searches++
	s.inflight++
	if s.inflight > s.peak {
		s.peak = s.inflight
	}
	s.mu.Unlock()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	s.mu.Lock()
	s.inflight--
	fail := s.fail[query]
	s.mu.Unlock()

	if fail {
		return nil, errors.New("boom")
	}
	return []data.Hit{{ArtistID: int64(len(query)), ArtistName: query}}, nil
}

func (s *stubAPI) FetchArtist(ctx context.Context, id int64) (*data.Artist, error) {
	return &data.Artist{ID: id, Name: "artist", Followers: id * 100}, nil
}

func newRunner(api resolve.API) *batch.Runner {
	return batch.New(api, cache.New(10*time.Minute))
}

func TestRunKeepsSubmissionOrder(t *testing.T) {
	api := &stubAPI{fail: map[string]bool{"B": true}, delay: 10 * time.Millisecond}
	rows := newRunner(api).Run(context.Background(), []string{"A", "B", "C"}, 3, nil)

	assert.Len(t, rows, 3)
	assert.Equal(t, "A", rows[0].SearchTerm)
	assert.Equal(t, "B", rows[1].SearchTerm)
	assert.Equal(t, "C", rows[2].SearchTerm)

	assert.True(t, rows[0].Matched())
	assert.False(t, rows[1].Matched())
	assert.NotEmpty(t, rows[1].Err)
	assert.True(t, rows[2].Matched())
}

func TestRunRespectsConcurrencyBound(t *testing.T) {
	api := &stubAPI{delay: 20 * time.Millisecond}
	queries := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	newRunner(api).Run(context.Background(), queries, 3, nil)

	assert.LessOrEqual(t, api.peak, 3)
	assert.Greater(t, api.peak, 1, "work should actually overlap")
}

func TestRunFiltersBlankAndCommentLines(t *testing.T) {
	api := &stubAPI{}
	rows := newRunner(api).Run(context.Background(), []string{
		"Rihanna", "", "   ", "# a comment", "Tycho",
	}, 2, nil)

	assert.Len(t, rows, 2)
	assert.Equal(t, "Rihanna", rows[0].SearchTerm)
	assert.Equal(t, "Tycho", rows[1].SearchTerm)
}

func TestRunProgressIsMonotone(t *testing.T) {
	api := &stubAPI{delay: 5 * time.Millisecond}

	var mu sync.Mutex
	var seen []int
	total := 0
	newRunner(api).Run(context.Background(), []string{"a", "b", "c", "d"}, 4, func(done, n int) {
		mu.Lock()
		seen = append(seen, done)
		total = n
		mu.Unlock()
	})

	assert.Equal(t, 4, total)
	assert.Len(t, seen, 4)
	for i, done := range seen {
		assert.Equal(t, i+1, done)
	}
}

func TestRunIdempotentWithCacheAndWithout(t *testing.T) {
	api := &stubAPI{fail: map[string]bool{"Seal": true}}
	runner := newRunner(api)
	queries := []string{"U2", "Seal", "Adele"}

	first := runner.Run(context.Background(), queries, 2, nil)
	second := runner.Run(context.Background(), queries, 2, nil)

	assert.Equal(t, first, second)
	// the error outcome for Seal is negatively cached between runs
	assert.Equal(t, 3, api.searches)
}

func TestRunCacheCollapsesDuplicates(t *testing.T) {
	api := &stubAPI{}
	rows := newRunner(api).Run(context.Background(), []string{"Adele", "adele", "ADELE "}, 1, nil)

	assert.Len(t, rows, 3)
	assert.Equal(t, 1, api.searches)
	for _, row := range rows {
		assert.True(t, row.Matched())
	}
}

func TestRunClampsConcurrency(t *testing.T) {
	api := &stubAPI{delay: 5 * time.Millisecond}
	rows := newRunner(api).Run(context.Background(), []string{"a", "b", "c"}, 0, nil)
	assert.Len(t, rows, 3)
	assert.LessOrEqual(t, api.peak, batch.DefaultConcurrency)
}

func TestRunCanceledContextStillYieldsFullTable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	api := &stubAPI{}
	rows := newRunner(api).Run(ctx, []string{"a", "b", "c"}, 2, nil)

	assert.Len(t, rows, 3)
	for i, q := range []string{"a", "b", "c"} {
		assert.Equal(t, q, rows[i].SearchTerm)
		assert.False(t, rows[i].Matched())
	}
}

func TestResolveOneReadsThroughCache(t *testing.T) {
	api := &stubAPI{}
	runner := newRunner(api)

	first := runner.ResolveOne(context.Background(), "Billie Eilish")
	second := runner.ResolveOne(context.Background(), "billie eilish")

	assert.Equal(t, resolve.Found, first.Status)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.searches)
}
