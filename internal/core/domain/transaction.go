package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SPCode is the payment processor outcome code stored in sp_code.
type SPCode int

const (
	SPCodeSuccess    SPCode = 1000
	SPCodeRefundDone SPCode = 1002
)

// TransactionRecord is an enriched trx_history row returned by transaction search.
// Joined columns are nullable because every join is a LEFT JOIN.
type TransactionRecord struct {
	BankTrxID        *string             `json:"bank_trx_id,omitempty"`
	InvoiceNo        string              `json:"invoice_no"`
	CustomerOrderID  *string             `json:"customer_order_id,omitempty"`
	AmountReceived   decimal.Decimal     `json:"amount_received"`
	MerchantPayable  decimal.Decimal     `json:"merchant_payable"`
	CommTotal        decimal.Decimal     `json:"comm_total"`
	CommSurcharge    decimal.Decimal     `json:"comm_surcharge"`
	RateCommission   decimal.Decimal     `json:"rate_commission"`
	RateSurcharge    decimal.Decimal     `json:"rate_surcharge"`
	CommissionAmount decimal.Decimal     `json:"commission_amount"`
	IsAddCommission  *bool               `json:"is_add_commission,omitempty"`
	OrderPayable     decimal.NullDecimal `json:"order_payable"`
	Currency         string              `json:"currency"`
	MethodName       *string             `json:"method_name,omitempty"`
	IsSettled        bool                `json:"is_settled"`
	IsChargeback     bool                `json:"is_chargeback"`
	SPCode           SPCode              `json:"sp_code"`
	SPMessage        *string             `json:"sp_message,omitempty"`
	RefundCode       *string             `json:"refund_code,omitempty"`
	CustomerName     *string             `json:"customer_name,omitempty"`
	CustomerPhone    *string             `json:"customer_phone,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// EffectiveCommission is the surcharge when one was charged, otherwise the
// total commission. The search query computes the same value into
// CommissionAmount.
func (t *TransactionRecord) EffectiveCommission() decimal.Decimal {
	if t.CommSurcharge.IsPositive() {
		return t.CommSurcharge
	}
	return t.CommTotal
}

// IsSuccessful returns true if the processor reported success.
func (t *TransactionRecord) IsSuccessful() bool {
	return t.SPCode == SPCodeSuccess
}

// TransactionBrief is a compact row for "latest successful transactions" lists.
type TransactionBrief struct {
	InvoiceNo      string          `json:"invoice_no"`
	AmountReceived decimal.Decimal `json:"amount_received"`
	Currency       string          `json:"currency"`
	MethodName     *string         `json:"method_name,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
