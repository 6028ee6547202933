package domain

import "github.com/shopspring/decimal"

// RefundDetail gathers what an operator needs to issue a refund for an invoice.
type RefundDetail struct {
	InvoiceNo       string          `json:"invoice_no"`
	BankTrxID       *string         `json:"bank_trx_id,omitempty"`
	AmountReceived  decimal.Decimal `json:"amount_received"`
	Currency        string          `json:"currency"`
	CommTotal       decimal.Decimal `json:"comm_total"`
	CommSurcharge   decimal.Decimal `json:"comm_surcharge"`
	MerchantID      *string         `json:"merchant_id,omitempty"`
	StoreID         *string         `json:"store_id,omitempty"`
	MerchantName    *string         `json:"merchant_name,omitempty"`
	IsAddCommission *bool           `json:"is_add_commission,omitempty"`
	GatewayTypeID   *int64          `json:"gateway_type_id,omitempty"`
	CustomerName    *string         `json:"customer_name,omitempty"`
	CustomerEmail   *string         `json:"customer_email,omitempty"`
	CustomerAddress *string         `json:"customer_address,omitempty"`
	CustomerPhone   *string         `json:"customer_phone,omitempty"`
}
