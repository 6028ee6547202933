package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"merchant-reporting/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type countingInvalidator struct {
	calls atomic.Int32
	err   error
}

func (c *countingInvalidator) InvalidateCurrentMonthTotals(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestRunCacheInvalidation_Disabled(t *testing.T) {
	inv := &countingInvalidator{}

	done := make(chan struct{})
	go func() {
		RunCacheInvalidation(context.Background(), inv, 0, logger.Nop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled loop did not return")
	}
	assert.Equal(t, int32(0), inv.calls.Load())
}

func TestRunCacheInvalidation_TicksUntilCancelled(t *testing.T) {
	inv := &countingInvalidator{err: errors.New("redis down")}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		RunCacheInvalidation(ctx, inv, 5*time.Millisecond, logger.Nop())
		close(done)
	}()

	assert.Eventually(t, func() bool { return inv.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestUntilNextMonth(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"mid month", time.Date(2026, 10, 31, 12, 0, 0, 0, time.UTC), 12 * time.Hour},
		{"last second of the year", time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC), time.Second},
		{"first instant waits a full month", time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), 30 * 24 * time.Hour},
		{"leap february", time.Date(2028, 2, 28, 0, 0, 0, 0, time.UTC), 48 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, untilNextMonth(tt.now))
		})
	}
}

func TestRunMonthRollover_InvalidatesAtMonthBoundary(t *testing.T) {
	inv := &countingInvalidator{}
	ctx, cancel := context.WithCancel(context.Background())

	start := time.Now()
	boundary := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return boundary.Add(-20 * time.Millisecond).Add(time.Since(start)) }

	done := make(chan struct{})
	go func() {
		RunMonthRollover(ctx, inv, clock, time.UTC, logger.Nop())
		close(done)
	}()

	assert.Eventually(t, func() bool { return inv.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), inv.calls.Load(), "next rollover is a month away")
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("rollover loop did not stop after cancel")
	}
}

func TestRunMonthRollover_StopsBeforeBoundary(t *testing.T) {
	inv := &countingInvalidator{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		RunMonthRollover(ctx, inv, func() time.Time { return fixedNow }, nil, logger.Nop())
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("rollover loop did not stop after cancel")
	}
	assert.Equal(t, int32(0), inv.calls.Load())
}
