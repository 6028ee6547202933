package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"merchant-reporting/internal/core/domain"
	"merchant-reporting/pkg/apperror"
	"merchant-reporting/pkg/period"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// CurrentMonthTotals returns the platform-wide count and rounded total of
// successful transactions this month. The figure is read through the cache;
// any cache failure is logged and answered from the database instead.
func (s *reportingService) CurrentMonthTotals(ctx context.Context) (*domain.MonthlyVolume, error) {
	now := s.now()
	month := period.ThisMonth(now)

	if v, ok := s.cachedMonthTotals(ctx); ok {
		return v, nil
	}

	s.log.Debug().Str("key", s.cacheKey).Msg("monthly totals: cache miss, computing")

	v, err := s.repo.CurrentMonthVolume(ctx, month)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	v.ComputedAt = now

	payload, err := json.Marshal(v)
	if err != nil {
		s.log.Warn().Err(err).Msg("monthly totals: failed to encode for cache")
		return v, nil
	}
	if err := s.cache.Set(ctx, s.cacheKey, payload); err != nil {
		s.log.Warn().Err(err).Str("key", s.cacheKey).Msg("monthly totals: failed to cache in redis")
	}
	return v, nil
}

func (s *reportingService) cachedMonthTotals(ctx context.Context) (*domain.MonthlyVolume, bool) {
	payload, err := s.cache.Get(ctx, s.cacheKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.cacheKey).Msg("monthly totals: redis read failed, falling through to DB")
		return nil, false
	}
	if payload == nil {
		return nil, false
	}

	v, err := decodeMonthlyVolume(payload)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.cacheKey).Msg("monthly totals: unreadable cache entry, recomputing")
		return nil, false
	}
	return v, true
}

// InvalidateCurrentMonthTotals drops the cached monthly totals.
func (s *reportingService) InvalidateCurrentMonthTotals(ctx context.Context) error {
	if err := s.cache.Delete(ctx, s.cacheKey); err != nil {
		return apperror.ErrCacheUnavailable(err)
	}
	s.log.Info().Str("key", s.cacheKey).Msg("monthly totals: cache invalidated")
	return nil
}

// decodeMonthlyVolume accepts the service's own encoding as well as entries
// written by older writers: a one-element array, numeric or string totals,
// and a null total for an empty month.
func decodeMonthlyVolume(payload []byte) (*domain.MonthlyVolume, error) {
	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode monthly volume: %w", err)
	}

	if list, ok := raw.([]any); ok {
		if len(list) == 0 {
			return nil, errors.New("decode monthly volume: empty list")
		}
		raw = list[0]
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode monthly volume: unexpected %T", raw)
	}

	count, err := cast.ToInt64E(fields["count"])
	if err != nil {
		return nil, fmt.Errorf("decode monthly volume count: %w", err)
	}

	total := decimal.Zero
	if s := cast.ToString(fields["total"]); s != "" {
		if total, err = decimal.NewFromString(s); err != nil {
			return nil, fmt.Errorf("decode monthly volume total: %w", err)
		}
	}

	v := &domain.MonthlyVolume{Count: count, Total: total}
	if at := cast.ToString(fields["computed_at"]); at != "" {
		if v.ComputedAt, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("decode monthly volume computed_at: %w", err)
		}
	}
	return v, nil
}
