package ports

import (
	"context"
	"time"

	"merchant-reporting/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks . ReportingService

// ReportingService defines dashboard reporting business logic.
type ReportingService interface {
	// General aggregations, parameterized by filter
	TransactionVolumeWithCommission(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error)
	TransactionVolumeWithoutCommission(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error)
	TransactionCount(ctx context.Context, f domain.ReportFilter) (int64, error)
	PaidVolume(ctx context.Context, f domain.ReportFilter, settled bool) (decimal.Decimal, error)
	WithdrawalVolume(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error)
	RefundVolume(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error)
	TransactionCommission(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error)
	CurrentBalanceVolume(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error)

	// Convenience periods for a store/merchant, successful transactions only
	TodayVolume(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error)
	WeeklyVolume(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error)
	MonthlyVolume(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error)
	LifetimeVolume(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error)
	LifetimePaidVolume(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error)
	LifetimeBalance(ctx context.Context, storeID, merchantID string) (decimal.Decimal, error)
	DashboardSummary(ctx context.Context, storeID, merchantID string) (*domain.DashboardSummary, error)

	// Cached platform-wide current-month totals
	CurrentMonthTotals(ctx context.Context) (*domain.MonthlyVolume, error)
	InvalidateCurrentMonthTotals(ctx context.Context) error

	// Listings
	SearchByDate(ctx context.Context, f domain.ReportFilter) ([]domain.TransactionRecord, error)
	SearchByPeriod(ctx context.Context, days int, f domain.ReportFilter) ([]domain.TransactionRecord, error)
	SuccessfulTransactions(ctx context.Context, storeID, merchantID string, limit int) ([]domain.TransactionBrief, error)
	SettledWithdrawals(ctx context.Context, storeID, merchantID string) ([]domain.WithdrawRequest, error)
	RefundDetails(ctx context.Context, invoiceNo string) ([]domain.RefundDetail, error)
	DailyVolume(ctx context.Context, days int) ([]domain.DailyVolume, error)
	PeakTransactions(ctx context.Context, hours int) ([]domain.PeakTransaction, error)
}

// CacheInvalidator is the slice of ReportingService the refresh loop needs.
type CacheInvalidator interface {
	InvalidateCurrentMonthTotals(ctx context.Context) error
}

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis").
	Name() string
}
