package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyVolume is the count and rounded sum of successful transactions in
// the current calendar month across all merchants.
type MonthlyVolume struct {
	Count      int64           `json:"count"`
	Total      decimal.Decimal `json:"total"`
	ComputedAt time.Time       `json:"computed_at"`
}

// DailyVolume is one day of successful transaction volume.
type DailyVolume struct {
	Date  time.Time       `json:"date"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// PeakTransaction is the largest amount per merchant order and payment method
// inside a trailing window of hours.
type PeakTransaction struct {
	Count           int64           `json:"count"`
	MaxAmount       decimal.Decimal `json:"max_amount"`
	MerchantName    string          `json:"merchant_name"`
	OrderID         string          `json:"order_id"`
	PaymentMethodID int64           `json:"payment_method_id"`
	MethodName      string          `json:"method_name"`
	CreatedAt       time.Time       `json:"created_at"`
}

// DashboardSummary bundles the convenience-period figures for one store.
type DashboardSummary struct {
	TodayVolume        decimal.Decimal `json:"today_volume"`
	WeeklyVolume       decimal.Decimal `json:"weekly_volume"`
	MonthlyVolume      decimal.Decimal `json:"monthly_volume"`
	LifetimeVolume     decimal.Decimal `json:"lifetime_volume"`
	LifetimePaidVolume decimal.Decimal `json:"lifetime_paid_volume"`
	CurrentBalance     decimal.Decimal `json:"current_balance"`
}
