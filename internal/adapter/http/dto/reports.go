package dto

// Amounts are fixed-point strings: two decimals for money, four for rates.

type AmountResponse struct {
	Amount string `json:"amount"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type SummaryResponse struct {
	TodayVolume        string `json:"today_volume"`
	WeeklyVolume       string `json:"weekly_volume"`
	MonthlyVolume      string `json:"monthly_volume"`
	LifetimeVolume     string `json:"lifetime_volume"`
	LifetimePaidVolume string `json:"lifetime_paid_volume"`
	CurrentBalance     string `json:"current_balance"`
}

type MonthTotalsResponse struct {
	Count int64  `json:"count"`
	Total string `json:"total"`
}

type TransactionResponse struct {
	InvoiceNo        string  `json:"invoice_no"`
	BankTrxID        *string `json:"bank_trx_id,omitempty"`
	CustomerOrderID  *string `json:"customer_order_id,omitempty"`
	AmountReceived   string  `json:"amount_received"`
	MerchantPayable  string  `json:"merchant_payable"`
	CommissionAmount string  `json:"commission_amount"`
	CommTotal        string  `json:"comm_total"`
	CommSurcharge    string  `json:"comm_surcharge"`
	RateCommission   string  `json:"rate_commission"`
	RateSurcharge    string  `json:"rate_surcharge"`
	IsAddCommission  *bool   `json:"is_add_commission,omitempty"`
	OrderPayable     *string `json:"order_payable,omitempty"`
	Currency         string  `json:"currency"`
	MethodName       *string `json:"method_name,omitempty"`
	IsSettled        bool    `json:"is_settled"`
	IsChargeback     bool    `json:"is_chargeback"`
	SPCode           int     `json:"sp_code"`
	SPMessage        *string `json:"sp_message,omitempty"`
	RefundCode       *string `json:"refund_code,omitempty"`
	CustomerName     *string `json:"customer_name,omitempty"`
	CustomerPhone    *string `json:"customer_phone,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

type TransactionBriefResponse struct {
	InvoiceNo      string  `json:"invoice_no"`
	AmountReceived string  `json:"amount_received"`
	Currency       string  `json:"currency"`
	MethodName     *string `json:"method_name,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type WithdrawalResponse struct {
	InvoiceID     string  `json:"invoice_id"`
	TxCount       int64   `json:"tx_count"`
	Status        int     `json:"status"`
	PayableAmount string  `json:"payable_amount"`
	DateFrom      string  `json:"date_from"`
	DateTo        string  `json:"date_to"`
	ApprovedAt    *string `json:"approved_at,omitempty"`
}

type RefundDetailResponse struct {
	InvoiceNo       string  `json:"invoice_no"`
	BankTrxID       *string `json:"bank_trx_id,omitempty"`
	AmountReceived  string  `json:"amount_received"`
	Currency        string  `json:"currency"`
	CommTotal       string  `json:"comm_total"`
	CommSurcharge   string  `json:"comm_surcharge"`
	MerchantID      *string `json:"merchant_id,omitempty"`
	StoreID         *string `json:"store_id,omitempty"`
	MerchantName    *string `json:"merchant_name,omitempty"`
	IsAddCommission *bool   `json:"is_add_commission,omitempty"`
	GatewayTypeID   *int64  `json:"gateway_type_id,omitempty"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
}

type DailyVolumeResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
	Total string `json:"total"`
}

type PeakTransactionResponse struct {
	Count           int64  `json:"count"`
	MaxAmount       string `json:"max_amount"`
	MerchantName    string `json:"merchant_name"`
	OrderID         string `json:"order_id"`
	PaymentMethodID int64  `json:"payment_method_id"`
	MethodName      string `json:"method_name"`
	CreatedAt       string `json:"created_at"`
}
