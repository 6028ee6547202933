package service

import (
	"context"
	"time"

	"merchant-reporting/internal/core/domain"
	"merchant-reporting/internal/core/ports"
	"merchant-reporting/pkg/apperror"
	"merchant-reporting/pkg/period"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultMonthlyCacheKey is the cache key of the current-month totals.
const DefaultMonthlyCacheKey = "this-month-total-trx-volume"

const defaultTopLimit = 10

// ReportingOptions tunes NewReportingService. Zero values select defaults.
type ReportingOptions struct {
	MonthlyCacheKey string
	Location        *time.Location
	Clock           ports.Clock
	TopLimit        int // used when SuccessfulTransactions is called without a positive limit
}

// reportingService implements ports.ReportingService.
type reportingService struct {
	repo     ports.ReportingRepository
	cache    ports.MonthlyVolumeCache
	cacheKey string
	loc      *time.Location
	clock    ports.Clock
	topLimit int
	log      zerolog.Logger
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	repo ports.ReportingRepository,
	cache ports.MonthlyVolumeCache,
	opts ReportingOptions,
	log zerolog.Logger,
) ports.ReportingService {
	s := &reportingService{
		repo:     repo,
		cache:    cache,
		cacheKey: opts.MonthlyCacheKey,
		loc:      opts.Location,
		clock:    opts.Clock,
		topLimit: opts.TopLimit,
		log:      log,
	}
	if s.cacheKey == "" {
		s.cacheKey = DefaultMonthlyCacheKey
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.topLimit <= 0 {
		s.topLimit = defaultTopLimit
	}
	return s
}

func (s *reportingService) now() time.Time {
	return s.clock().In(s.loc)
}

// ---- General aggregations ----

func (s *reportingService) TransactionVolumeWithCommission(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	v, err := s.repo.SumAmountReceived(ctx, f)
	if err != nil {
		return decimal.Zero, apperror.InternalError(err)
	}
	return v, nil
}

func (s *reportingService) TransactionVolumeWithoutCommission(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	v, err := s.repo.SumMerchantPayable(ctx, f)
	if err != nil {
		return decimal.Zero, apperror.InternalError(err)
	}
	return v, nil
}

func (s *reportingService) TransactionCount(ctx context.Context, f domain.ReportFilter) (int64, error) {
	n, err := s.repo.CountTransactions(ctx, f)
	if err != nil {
		return 0, apperror.InternalError(err)
	}
	return n, nil
}

func (s *reportingService) PaidVolume(ctx context.Context, f domain.ReportFilter, settled bool) (decimal.Decimal, error) {
	v, err := s.repo.SumPaidVolume(ctx, f, settled)
	if err != nil {
		return decimal.Zero, apperror.InternalError(err)
	}
	return v, nil
}

// WithdrawalVolume sums settled payouts. A filter without a status counts
// successful transactions.
func (s *reportingService) WithdrawalVolume(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	v, err := s.repo.SumWithdrawalVolume(ctx, f.WithStatus(f.StatusOr(domain.SPCodeSuccess)))
	if err != nil {
		return decimal.Zero, apperror.InternalError(err)
	}
	return v, nil
}

func (s *reportingService) RefundVolume(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	v, err := s.repo.SumRefundVolume(ctx, f)
	if err != nil {
		return decimal.Zero, apperror.InternalError(err)
	}
	return v, nil
}

// TransactionCommission is volume with commission minus volume without it.
func (s *reportingService) TransactionCommission(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	var with, without decimal.Decimal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		with, err = s.TransactionVolumeWithCommission(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		without, err = s.TransactionVolumeWithoutCommission(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return decimal.Zero, err
	}

	return with.Sub(without), nil
}

// CurrentBalanceVolume is volume without commission minus withdrawals and refunds.
func (s *reportingService) CurrentBalanceVolume(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	var payable, withdrawn, refunded decimal.Decimal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		payable, err = s.TransactionVolumeWithoutCommission(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		withdrawn, err = s.WithdrawalVolume(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		refunded, err = s.RefundVolume(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return decimal.Zero, err
	}

	return payable.Sub(withdrawn.Add(refunded)), nil
}

// ---- Convenience periods ----

func (s *reportingService) successful(storeID, merchantID string) domain.ReportFilter {
	return domain.Scope(storeID, merchantID).WithStatus(domain.SPCodeSuccess)
}

func (s *reportingService) volumeIn(ctx context.Context, storeID, merchantID string, w period.Window) (decimal.Decimal, error) {
	return s.TransactionVolumeWithCommission(ctx, s.successful(storeID, merchantID).WithRange(w.From, w.To))
}

// TodayVolume sums successful volume since midnight.
func (s *reportingService) TodayVolume(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error) {
	return s.volumeIn(ctx, storeID, merchantID, period.Today(s.now()))
}

// WeeklyVolume sums successful volume from Saturday through Friday of the current week.
func (s *reportingService) WeeklyVolume(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error) {
	return s.volumeIn(ctx, storeID, merchantID, period.ThisWeek(s.now()))
}

// MonthlyVolume sums successful volume over the current calendar month.
func (s *reportingService) MonthlyVolume(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error) {
	return s.volumeIn(ctx, storeID, merchantID, period.ThisMonth(s.now()))
}

func (s *reportingService) LifetimeVolume(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error) {
	return s.TransactionVolumeWithCommission(ctx, s.successful(storeID, merchantID))
}

func (s *reportingService) LifetimePaidVolume(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error) {
	return s.PaidVolume(ctx, s.successful(storeID, merchantID), true)
}

func (s *reportingService) LifetimeBalance(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error) {
	return s.CurrentBalanceVolume(ctx, s.successful(storeID, merchantID))
}

// DashboardSummary computes every convenience figure concurrently.
func (s *reportingService) DashboardSummary(ctx context.Context, storeID, merchantID string) (*domain.DashboardSummary, error) {
	sum := &domain.DashboardSummary{}

	type part struct {
		dst *decimal.Decimal
		fn  func(context.Context, string, string) (decimal.Decimal, error)
	}
	parts := []part{
		{&sum.TodayVolume, s.TodayVolume},
		{&sum.WeeklyVolume, s.WeeklyVolume},
		{&sum.MonthlyVolume, s.MonthlyVolume},
		{&sum.LifetimeVolume, s.LifetimeVolume},
		{&sum.LifetimePaidVolume, s.LifetimePaidVolume},
		{&sum.CurrentBalance, s.LifetimeBalance},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range parts {
		p := p
		g.Go(func() error {
			v, err := p.fn(gctx, storeID, merchantID)
			if err != nil {
				return err
			}
			*p.dst = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sum, nil
}

// ---- Listings ----

func (s *reportingService) SearchByDate(ctx context.Context, f domain.ReportFilter) ([]domain.TransactionRecord, error) {
	if f.HasRange() && f.From.After(*f.To) {
		return nil, apperror.ErrInvalidFilter("from must not be after to")
	}

	records, err := s.repo.SearchTransactions(ctx, f)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return records, nil
}

// SearchByPeriod searches the trailing days up to now. Any range on f is replaced.
func (s *reportingService) SearchByPeriod(ctx context.Context, days int, f domain.ReportFilter) ([]domain.TransactionRecord, error) {
	if days < 0 {
		return nil, apperror.Validation("days must not be negative")
	}
	w := period.TrailingDays(s.now(), days)
	return s.SearchByDate(ctx, f.WithRange(w.From, w.To))
}

func (s *reportingService) SuccessfulTransactions(ctx context.Context, storeID, merchantID string, limit int) ([]domain.TransactionBrief, error) {
	if limit <= 0 {
		limit = s.topLimit
	}

	briefs, err := s.repo.SuccessfulTransactions(ctx, storeID, merchantID, limit)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return briefs, nil
}

func (s *reportingService) SettledWithdrawals(ctx context.Context, storeID, merchantID string) ([]domain.WithdrawRequest, error) {
	out, err := s.repo.SettledWithdrawals(ctx, storeID, merchantID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return out, nil
}

func (s *reportingService) RefundDetails(ctx context.Context, invoiceNo string) ([]domain.RefundDetail, error) {
	if invoiceNo == "" {
		return nil, apperror.Validation("invoice number is required")
	}

	out, err := s.repo.RefundDetails(ctx, invoiceNo)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if len(out) == 0 {
		return nil, apperror.ErrNotFound("transaction")
	}
	return out, nil
}

func (s *reportingService) DailyVolume(ctx context.Context, days int) ([]domain.DailyVolume, error) {
	if days <= 0 {
		return nil, apperror.Validation("days must be positive")
	}

	out, err := s.repo.DailyVolume(ctx, days)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return out, nil
}

func (s *reportingService) PeakTransactions(ctx context.Context, hours int) ([]domain.PeakTransaction, error) {
	if hours <= 0 {
		return nil, apperror.Validation("hours must be positive")
	}

	out, err := s.repo.PeakTransactions(ctx, hours)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return out, nil
}
