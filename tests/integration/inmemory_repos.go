package integration

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"merchant-reporting/internal/core/domain"
	"merchant-reporting/pkg/period"

	"github.com/shopspring/decimal"
)

// trxRow is a trx_history row joined to its order.
type trxRow struct {
	InvoiceNo       string
	MerchantID      string
	StoreID         string
	SPCode          domain.SPCode
	AmountReceived  decimal.Decimal
	MerchantPayable decimal.Decimal
	CommTotal       decimal.Decimal
	CommSurcharge   decimal.Decimal
	IsSettled       bool
	Currency        string
	CreatedAt       time.Time
}

type refundRow struct {
	InvoiceNo  string
	MerchantID string
	StoreID    string
	SPCode     domain.SPCode
	PerAmount  decimal.Decimal
	CreatedAt  time.Time
}

type withdrawRow struct {
	MerchantID string
	StoreID    string
	Request    domain.WithdrawRequest
}

// --- In-Memory Reporting Repo ---

// inMemoryReportingRepo evaluates report filters over in-memory rows with the
// same predicate semantics as the SQL repository.
type inMemoryReportingRepo struct {
	mu        sync.RWMutex
	trx       []trxRow
	refunds   []refundRow
	withdraws []withdrawRow

	monthQueries atomic.Int64
	fail         atomic.Bool
}

func newInMemoryReportingRepo() *inMemoryReportingRepo {
	return &inMemoryReportingRepo{}
}

var errStoreDown = errors.New("store unavailable")

func (r *inMemoryReportingRepo) addTrx(rows ...trxRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trx = append(r.trx, rows...)
}

func (r *inMemoryReportingRepo) addRefund(rows ...refundRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refunds = append(r.refunds, rows...)
}

func (r *inMemoryReportingRepo) addWithdraw(rows ...withdrawRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.withdraws = append(r.withdraws, rows...)
}

// matches applies merchant, store, status and range predicates. An empty
// dimension is not constrained.
func matches(f domain.ReportFilter, merchantID, storeID string, status *domain.SPCode, createdAt time.Time) bool {
	if f.MerchantID != "" && f.MerchantID != merchantID {
		return false
	}
	if f.StoreID != "" && f.StoreID != storeID {
		return false
	}
	if f.Status != nil && status != nil && *f.Status != *status {
		return false
	}
	if f.HasRange() {
		w := period.Window{From: period.StartOfDay(*f.From), To: period.EndOfDay(*f.To)}
		if !w.Contains(createdAt) {
			return false
		}
	}
	return true
}

func (r *inMemoryReportingRepo) sumTrx(f domain.ReportFilter, keep func(trxRow) bool, value func(trxRow) decimal.Decimal) (decimal.Decimal, error) {
	if r.fail.Load() {
		return decimal.Zero, errStoreDown
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, row := range r.trx {
		if !matches(f, row.MerchantID, row.StoreID, &row.SPCode, row.CreatedAt) || !keep(row) {
			continue
		}
		total = total.Add(value(row))
	}
	return total, nil
}

func all(trxRow) bool { return true }

func (r *inMemoryReportingRepo) SumAmountReceived(_ context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	return r.sumTrx(f, all, func(row trxRow) decimal.Decimal { return row.AmountReceived })
}

func (r *inMemoryReportingRepo) SumMerchantPayable(_ context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	return r.sumTrx(f, all, func(row trxRow) decimal.Decimal { return row.MerchantPayable })
}

func (r *inMemoryReportingRepo) CountTransactions(_ context.Context, f domain.ReportFilter) (int64, error) {
	n, err := r.sumTrx(f, all, func(trxRow) decimal.Decimal { return decimal.NewFromInt(1) })
	return n.IntPart(), err
}

func (r *inMemoryReportingRepo) SumPaidVolume(_ context.Context, f domain.ReportFilter, settled bool) (decimal.Decimal, error) {
	return r.sumTrx(f,
		func(row trxRow) bool { return row.IsSettled == settled },
		func(row trxRow) decimal.Decimal { return row.MerchantPayable })
}

func (r *inMemoryReportingRepo) SumWithdrawalVolume(_ context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	if f.Status == nil {
		return decimal.Zero, errors.New("sum withdrawal volume: status is required")
	}
	return r.sumTrx(f,
		func(row trxRow) bool { return row.IsSettled },
		func(row trxRow) decimal.Decimal { return row.MerchantPayable })
}

func (r *inMemoryReportingRepo) SumRefundVolume(_ context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	if r.fail.Load() {
		return decimal.Zero, errStoreDown
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, row := range r.refunds {
		if row.SPCode != domain.SPCodeRefundDone || !matches(f, row.MerchantID, row.StoreID, nil, row.CreatedAt) {
			continue
		}
		total = total.Add(row.PerAmount)
	}
	return total, nil
}

func (r *inMemoryReportingRepo) CurrentMonthVolume(_ context.Context, month period.Window) (*domain.MonthlyVolume, error) {
	r.monthQueries.Add(1)
	if r.fail.Load() {
		return nil, errStoreDown
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	v := &domain.MonthlyVolume{Total: decimal.Zero}
	for _, row := range r.trx {
		if row.SPCode == domain.SPCodeSuccess && month.Contains(row.CreatedAt) {
			v.Count++
			v.Total = v.Total.Add(row.AmountReceived)
		}
	}
	v.Total = v.Total.Round(0)
	return v, nil
}

func (r *inMemoryReportingRepo) SearchTransactions(_ context.Context, f domain.ReportFilter) ([]domain.TransactionRecord, error) {
	if r.fail.Load() {
		return nil, errStoreDown
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.TransactionRecord
	for _, row := range r.trx {
		if !matches(f, row.MerchantID, row.StoreID, &row.SPCode, row.CreatedAt) {
			continue
		}
		rec := domain.TransactionRecord{
			InvoiceNo:       row.InvoiceNo,
			AmountReceived:  row.AmountReceived,
			MerchantPayable: row.MerchantPayable,
			CommTotal:       row.CommTotal,
			CommSurcharge:   row.CommSurcharge,
			Currency:        row.Currency,
			IsSettled:       row.IsSettled,
			SPCode:          row.SPCode,
			CreatedAt:       row.CreatedAt,
		}
		rec.CommissionAmount = rec.EffectiveCommission()
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryReportingRepo) SuccessfulTransactions(ctx context.Context, storeID, merchantID string, limit int) ([]domain.TransactionBrief, error) {
	records, err := r.SearchTransactions(ctx, domain.Scope(storeID, merchantID).WithStatus(domain.SPCodeSuccess))
	if err != nil {
		return nil, err
	}
	if len(records) > limit {
		records = records[:limit]
	}
	out := make([]domain.TransactionBrief, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.TransactionBrief{
			InvoiceNo:      rec.InvoiceNo,
			AmountReceived: rec.AmountReceived,
			Currency:       rec.Currency,
			CreatedAt:      rec.CreatedAt,
		})
	}
	return out, nil
}

func (r *inMemoryReportingRepo) SettledWithdrawals(_ context.Context, storeID, merchantID string) ([]domain.WithdrawRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f := domain.Scope(storeID, merchantID)
	var out []domain.WithdrawRequest
	for _, row := range r.withdraws {
		if row.Request.Status == domain.WithdrawStatusApproved && matches(f, row.MerchantID, row.StoreID, nil, time.Time{}) {
			out = append(out, row.Request)
		}
	}
	return out, nil
}

func (r *inMemoryReportingRepo) RefundDetails(_ context.Context, invoiceNo string) ([]domain.RefundDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.RefundDetail
	for _, row := range r.trx {
		if row.InvoiceNo != invoiceNo {
			continue
		}
		merchantID, storeID := row.MerchantID, row.StoreID
		out = append(out, domain.RefundDetail{
			InvoiceNo:      row.InvoiceNo,
			AmountReceived: row.AmountReceived,
			Currency:       row.Currency,
			CommTotal:      row.CommTotal,
			CommSurcharge:  row.CommSurcharge,
			MerchantID:     &merchantID,
			StoreID:        &storeID,
		})
	}
	return out, nil
}

func (r *inMemoryReportingRepo) DailyVolume(context.Context, int) ([]domain.DailyVolume, error) {
	return nil, nil
}

func (r *inMemoryReportingRepo) PeakTransactions(context.Context, int) ([]domain.PeakTransaction, error) {
	return nil, nil
}
