package handler

import (
	"time"

	"merchant-reporting/internal/adapter/http/dto"
	"merchant-reporting/internal/core/domain"
	"merchant-reporting/pkg/money"

	"github.com/shopspring/decimal"
)

func formatAmount(d decimal.Decimal) string { return money.Format2(d) }

func formatRate(d decimal.Decimal) string { return money.Format4(d) }

func formatTime(t time.Time) string { return t.Format(time.RFC3339) }

func toTransactionList(records []domain.TransactionRecord) dto.TransactionListResponse {
	items := make([]dto.TransactionResponse, 0, len(records))
	for i := range records {
		items = append(items, toTransactionResponse(&records[i]))
	}
	return dto.TransactionListResponse{Items: items, Total: len(items)}
}

func toTransactionResponse(t *domain.TransactionRecord) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		InvoiceNo:        t.InvoiceNo,
		BankTrxID:        t.BankTrxID,
		CustomerOrderID:  t.CustomerOrderID,
		AmountReceived:   formatAmount(t.AmountReceived),
		MerchantPayable:  formatAmount(t.MerchantPayable),
		CommissionAmount: formatAmount(t.CommissionAmount),
		CommTotal:        formatAmount(t.CommTotal),
		CommSurcharge:    formatAmount(t.CommSurcharge),
		RateCommission:   formatRate(t.RateCommission),
		RateSurcharge:    formatRate(t.RateSurcharge),
		IsAddCommission:  t.IsAddCommission,
		Currency:         t.Currency,
		MethodName:       t.MethodName,
		IsSettled:        t.IsSettled,
		IsChargeback:     t.IsChargeback,
		SPCode:           int(t.SPCode),
		SPMessage:        t.SPMessage,
		RefundCode:       t.RefundCode,
		CustomerName:     t.CustomerName,
		CustomerPhone:    t.CustomerPhone,
		CreatedAt:        formatTime(t.CreatedAt),
	}
	if t.OrderPayable.Valid {
		s := formatAmount(t.OrderPayable.Decimal)
		resp.OrderPayable = &s
	}
	return resp
}

func toBriefResponse(b *domain.TransactionBrief) dto.TransactionBriefResponse {
	return dto.TransactionBriefResponse{
		InvoiceNo:      b.InvoiceNo,
		AmountReceived: formatAmount(b.AmountReceived),
		Currency:       b.Currency,
		MethodName:     b.MethodName,
		CreatedAt:      formatTime(b.CreatedAt),
	}
}

func toWithdrawalResponse(w *domain.WithdrawRequest) dto.WithdrawalResponse {
	resp := dto.WithdrawalResponse{
		InvoiceID:     w.InvoiceID,
		TxCount:       w.TxCount,
		Status:        int(w.Status),
		PayableAmount: formatAmount(w.PayableAmount),
		DateFrom:      w.DateFrom.Format(dto.DateLayout),
		DateTo:        w.DateTo.Format(dto.DateLayout),
	}
	if w.ApprovedAt != nil {
		s := formatTime(*w.ApprovedAt)
		resp.ApprovedAt = &s
	}
	return resp
}

func toRefundDetailResponse(d *domain.RefundDetail) dto.RefundDetailResponse {
	return dto.RefundDetailResponse{
		InvoiceNo:       d.InvoiceNo,
		BankTrxID:       d.BankTrxID,
		AmountReceived:  formatAmount(d.AmountReceived),
		Currency:        d.Currency,
		CommTotal:       formatAmount(d.CommTotal),
		CommSurcharge:   formatAmount(d.CommSurcharge),
		MerchantID:      d.MerchantID,
		StoreID:         d.StoreID,
		MerchantName:    d.MerchantName,
		IsAddCommission: d.IsAddCommission,
		GatewayTypeID:   d.GatewayTypeID,
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerAddress: d.CustomerAddress,
		CustomerPhone:   d.CustomerPhone,
	}
}

func toPeakResponse(p *domain.PeakTransaction) dto.PeakTransactionResponse {
	return dto.PeakTransactionResponse{
		Count:           p.Count,
		MaxAmount:       formatAmount(p.MaxAmount),
		MerchantName:    p.MerchantName,
		OrderID:         p.OrderID,
		PaymentMethodID: p.PaymentMethodID,
		MethodName:      p.MethodName,
		CreatedAt:       formatTime(p.CreatedAt),
	}
}
