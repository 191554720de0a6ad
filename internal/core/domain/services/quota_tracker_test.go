package services_test

import (
	"sync"
	"testing"
	"time"

	"orderflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyQuotaTracker_WouldExceed(t *testing.T) {
	t.Run("should allow up to and including the limit", func(t *testing.T) {
		tracker := services.NewDailyQuotaTracker(100)

		assert.False(t, tracker.WouldExceed("TestProduct", 100))
		assert.True(t, tracker.WouldExceed("TestProduct", 101))
	})

	t.Run("should account for previously recorded quantity", func(t *testing.T) {
		tracker := services.NewDailyQuotaTracker(100)
		tracker.Record("TestProduct", 50)

		assert.False(t, tracker.WouldExceed("TestProduct", 50))
		assert.True(t, tracker.WouldExceed("TestProduct", 55))
		assert.Equal(t, 50, tracker.Used("TestProduct"))
	})

	t.Run("should track products independently", func(t *testing.T) {
		tracker := services.NewDailyQuotaTracker(100)
		tracker.Record("ProductA", 100)

		assert.True(t, tracker.WouldExceed("ProductA", 1))
		assert.False(t, tracker.WouldExceed("ProductB", 100))
	})
}

func TestDailyQuotaTracker_DayBuckets(t *testing.T) {
	t.Run("should reset at UTC midnight", func(t *testing.T) {
		now := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)
		tracker := services.NewDailyQuotaTrackerWithClock(100, func() time.Time { return now })

		tracker.Record("TestProduct", 100)
		assert.True(t, tracker.WouldExceed("TestProduct", 1))

		now = now.Add(2 * time.Minute) // crosses into the next UTC day
		assert.False(t, tracker.WouldExceed("TestProduct", 100))
		assert.Equal(t, 0, tracker.Used("TestProduct"))
	})

	t.Run("should bucket by UTC regardless of the clock zone", func(t *testing.T) {
		// 01:00 UTC+3 on the 29th is still the 28th in UTC.
		zone := time.FixedZone("UTC+3", 3*60*60)
		now := time.Date(2026, 8, 29, 1, 0, 0, 0, zone)
		tracker := services.NewDailyQuotaTrackerWithClock(100, func() time.Time { return now })

		tracker.Record("TestProduct", 60)

		// 23:00 UTC on the 28th: same UTC day, same bucket.
		now = time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)
		assert.Equal(t, 60, tracker.Used("TestProduct"))
		assert.True(t, tracker.WouldExceed("TestProduct", 41))
	})
}

func TestDailyQuotaTracker_PruneBefore(t *testing.T) {
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	tracker := services.NewDailyQuotaTrackerWithClock(100, func() time.Time { return now })

	tracker.Record("TestProduct", 10)
	now = now.AddDate(0, 0, 1)
	tracker.Record("TestProduct", 20)

	removed := tracker.PruneBefore(now)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 20, tracker.Used("TestProduct"))

	t.Run("pruning today's bucket is a no-op", func(t *testing.T) {
		assert.Equal(t, 0, tracker.PruneBefore(now))
		assert.Equal(t, 20, tracker.Used("TestProduct"))
	})
}

func TestDailyQuotaTracker_ConcurrentRecord(t *testing.T) {
	tracker := services.NewDailyQuotaTracker(1000)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Record("TestProduct", 1)
		}()
	}
	wg.Wait()

	require.Equal(t, 100, tracker.Used("TestProduct"))
}
