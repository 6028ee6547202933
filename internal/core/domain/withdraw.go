package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawStatus is the payout state of a withdraw_request row.
type WithdrawStatus int

const (
	WithdrawStatusPending  WithdrawStatus = 1
	WithdrawStatusApproved WithdrawStatus = 2
)

// WithdrawRequest is an aggregated payout covering a date range.
type WithdrawRequest struct {
	TxCount       int64           `json:"tx_count"`
	InvoiceID     string          `json:"invoice_id"`
	Status        WithdrawStatus  `json:"status"`
	PayableAmount decimal.Decimal `json:"payable_amount"`
	DateFrom      time.Time       `json:"date_from"`
	DateTo        time.Time       `json:"date_to"`
	ApprovedAt    *time.Time      `json:"approved_at,omitempty"`
}
