package services

import (
	"sync"
	"time"
)

// DefaultDailyQuotaLimit is the reference per-product, per-UTC-day cap on
// cumulative ordered quantity.
const DefaultDailyQuotaLimit = 100

type quotaKey struct {
	product string
	day     string // UTC calendar date, "2006-01-02"
}

// DailyQuotaTracker bounds the cumulative quantity ordered per product per
// UTC calendar day. Counters grow monotonically within a day regardless of
// the order's ultimate payment outcome and are not decremented by
// cancellation; expired day buckets are removed by PruneBefore.
//
// WouldExceed and Record are individually synchronized, but the
// check-then-record sequence of order creation must additionally be covered
// by the caller's per-product critical section to stay indivisible.
type DailyQuotaTracker struct {
	limit int
	now   func() time.Time

	mu    sync.Mutex
	usage map[quotaKey]int
}

// NewDailyQuotaTracker creates a tracker with the given daily limit.
func NewDailyQuotaTracker(limit int) *DailyQuotaTracker {
	return NewDailyQuotaTrackerWithClock(limit, time.Now)
}

// NewDailyQuotaTrackerWithClock creates a tracker with an injectable clock.
// The clock determines the UTC day bucket of each request.
func NewDailyQuotaTrackerWithClock(limit int, now func() time.Time) *DailyQuotaTracker {
	return &DailyQuotaTracker{
		limit: limit,
		now:   now,
		usage: make(map[quotaKey]int),
	}
}

// Limit returns the configured daily limit.
func (t *DailyQuotaTracker) Limit() int {
	return t.limit
}

// Used returns the quantity already recorded for the product today.
func (t *DailyQuotaTracker) Used(product string) int {
	key := t.key(product)

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.usage[key]
}

// WouldExceed reports whether recording quantity for the product would push
// today's cumulative total past the limit. A request landing exactly on the
// limit is allowed.
func (t *DailyQuotaTracker) WouldExceed(product string, quantity int) bool {
	key := t.key(product)

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.usage[key]+quantity > t.limit
}

// Record adds quantity to today's cumulative total for the product.
func (t *DailyQuotaTracker) Record(product string, quantity int) {
	key := t.key(product)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.usage[key] += quantity
}

// PruneBefore removes all buckets for days strictly before the given
// instant's UTC calendar day and returns how many were removed.
func (t *DailyQuotaTracker) PruneBefore(day time.Time) int {
	cutoff := day.UTC().Format(time.DateOnly)

	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for key := range t.usage {
		if key.day < cutoff {
			delete(t.usage, key)
			removed++
		}
	}
	return removed
}

func (t *DailyQuotaTracker) key(product string) quotaKey {
	return quotaKey{
		product: product,
		day:     t.now().UTC().Format(time.DateOnly),
	}
}
