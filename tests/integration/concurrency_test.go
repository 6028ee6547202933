package integration

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentMonthTotals fires parallel reads at a cold cache. Every
// response must carry the same figures however many of them recompute.
func TestConcurrentMonthTotals(t *testing.T) {
	app := newTestApp(t)

	const concurrency = 50
	type result struct {
		code  int
		count int64
		total string
	}
	results := make([]result, concurrency)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			var totals struct {
				Count int64  `json:"count"`
				Total string `json:"total"`
			}
			code, _ := app.get(t, "/api/v1/reports/month-totals", &totals)
			results[i] = result{code: code, count: totals.Count, total: totals.Total}
		}()
	}
	wg.Wait()

	for i, r := range results {
		require.Equal(t, http.StatusOK, r.code, "request %d", i)
		assert.Equal(t, int64(3), r.count, "request %d", i)
		assert.Equal(t, "350.00", r.total, "request %d", i)
	}

	queries := app.repo.monthQueries.Load()
	assert.GreaterOrEqual(t, queries, int64(1))
	assert.LessOrEqual(t, queries, int64(concurrency))
	assert.True(t, app.redis.Exists(cacheKey))
}

// TestConcurrentSummariesAreConsistent checks that the fanned-out summary
// parts stay consistent under parallel load on different scopes.
func TestConcurrentSummariesAreConsistent(t *testing.T) {
	app := newTestApp(t)

	type figures struct{ lifetime, balance string }
	scopes := map[string]figures{
		"store_id=s-1&merchant_id=m-1": {"300.00", "185.00"},
		"store_id=s-2&merchant_id=m-1": {"50.00", "0.00"},
		"store_id=s-9&merchant_id=m-2": {"1000.40", "0.00"},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0
	for round := 0; round < 10; round++ {
		for scope, want := range scopes {
			scope, want := scope, want
			wg.Add(1)
			go func() {
				defer wg.Done()
				var sum map[string]string
				code, _ := app.get(t, "/api/v1/reports/summary?"+scope, &sum)
				if code != http.StatusOK || sum["lifetime_volume"] != want.lifetime || sum["current_balance"] != want.balance {
					mu.Lock()
					failures++
					mu.Unlock()
				}
			}()
		}
	}
	wg.Wait()

	assert.Zero(t, failures)
}
