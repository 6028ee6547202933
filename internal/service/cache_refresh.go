package service

import (
	"context"
	"time"

	"merchant-reporting/internal/core/ports"
	"merchant-reporting/pkg/period"

	"github.com/rs/zerolog"
)

// RunCacheInvalidation drops the cached monthly totals every interval until
// ctx is done. A non-positive interval disables the loop.
func RunCacheInvalidation(ctx context.Context, inv ports.CacheInvalidator, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		log.Debug().Msg("monthly totals: periodic invalidation disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := inv.InvalidateCurrentMonthTotals(ctx); err != nil {
				log.Warn().Err(err).Msg("monthly totals: periodic invalidation failed")
			}
		}
	}
}

// RunMonthRollover drops the cached monthly totals each time the calendar
// month turns over in loc, so the first read of a new month recomputes.
func RunMonthRollover(ctx context.Context, inv ports.CacheInvalidator, clock ports.Clock, loc *time.Location, log zerolog.Logger) {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}

	for {
		timer := time.NewTimer(untilNextMonth(clock().In(loc)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if err := inv.InvalidateCurrentMonthTotals(ctx); err != nil {
				log.Warn().Err(err).Msg("monthly totals: month rollover invalidation failed")
			}
		}
	}
}

// untilNextMonth is the wait from t to the first instant of the following month.
func untilNextMonth(t time.Time) time.Duration {
	return period.ThisMonth(t).To.Add(time.Nanosecond).Sub(t)
}
