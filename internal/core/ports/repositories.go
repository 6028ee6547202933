package ports

import (
	"context"

	"merchant-reporting/internal/core/domain"
	"merchant-reporting/pkg/period"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks . MonthlyVolumeCache,ReportingRepository

// ReportingRepository runs the read-only aggregate and search queries.
// Every sum returns zero, never an error, when no rows match.
type ReportingRepository interface {
	// Volume aggregates over trx_history
	SumAmountReceived(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error)
	SumMerchantPayable(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error)
	CountTransactions(ctx context.Context, f domain.ReportFilter) (int64, error)
	SumPaidVolume(ctx context.Context, f domain.ReportFilter, settled bool) (decimal.Decimal, error)
	// SumWithdrawalVolume requires f.Status; callers default it.
	SumWithdrawalVolume(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error)
	SumRefundVolume(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error)
	CurrentMonthVolume(ctx context.Context, month period.Window) (*domain.MonthlyVolume, error)

	// Listings
	SearchTransactions(ctx context.Context, f domain.ReportFilter) ([]domain.TransactionRecord, error)
	SuccessfulTransactions(ctx context.Context, storeID, merchantID string, limit int) ([]domain.TransactionBrief, error)
	SettledWithdrawals(ctx context.Context, storeID, merchantID string) ([]domain.WithdrawRequest, error)
	RefundDetails(ctx context.Context, invoiceNo string) ([]domain.RefundDetail, error)
	DailyVolume(ctx context.Context, days int) ([]domain.DailyVolume, error)
	PeakTransactions(ctx context.Context, hours int) ([]domain.PeakTransaction, error)
}

// MonthlyVolumeCache stores the serialized current-month aggregate.
// Get returns nil, nil when the key is absent.
type MonthlyVolumeCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
