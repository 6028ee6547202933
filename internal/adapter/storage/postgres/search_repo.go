package postgres

import (
	"context"
	"fmt"

	"merchant-reporting/internal/core/domain"

	sq "github.com/Masterminds/squirrel"
)

var searchColumns = []string{
	"th.bank_trx_id",
	"th.invoice_no",
	"th.customer_order_id",
	"th.amount_recived",
	"th.merchant_payable",
	"COALESCE(th.comm_total, 0)",
	"COALESCE(th.comm_surcharge, 0)",
	"COALESCE(th.rate_commission, 0)",
	"COALESCE(th.rate_surcharge, 0)",
	"CASE WHEN COALESCE(th.comm_surcharge, 0) > 0 THEN th.comm_surcharge ELSE COALESCE(th.comm_total, 0) END AS commission_amount",
	"si.is_add_commission",
	"oh.payable_amount",
	"th.currency",
	"pm.method_name",
	"th.is_settled",
	"th.is_chargeback",
	"th.sp_code",
	"th.sp_massage",
	"th.refund_code",
	"ci.cus_name",
	"ci.cus_phone",
	"th.created_at",
}

// SearchTransactions returns enriched transaction rows, newest first.
func (r *ReportingRepo) SearchTransactions(ctx context.Context, f domain.ReportFilter) ([]domain.TransactionRecord, error) {
	q := psql.Select(searchColumns...).
		From("trx_history th").
		LeftJoin("in_order io ON th.invoice_no = io.order_id").
		LeftJoin("payment_method pm ON th.payment_method = pm.id").
		LeftJoin("customer_info ci ON th.invoice_no = ci.order_id").
		LeftJoin("store_info si ON io.store_id = si.id").
		LeftJoin("order_history oh ON th.invoice_no = oh.invoice_no")
	q = applyFilters(q, f, trxColumns).OrderBy("th.created_at DESC")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("search transactions: build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search transactions: %w", err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		t := domain.TransactionRecord{}
		err := rows.Scan(
			&t.BankTrxID, &t.InvoiceNo, &t.CustomerOrderID,
			&t.AmountReceived, &t.MerchantPayable, &t.CommTotal, &t.CommSurcharge,
			&t.RateCommission, &t.RateSurcharge, &t.CommissionAmount,
			&t.IsAddCommission, &t.OrderPayable, &t.Currency, &t.MethodName,
			&t.IsSettled, &t.IsChargeback, &t.SPCode, &t.SPMessage, &t.RefundCode,
			&t.CustomerName, &t.CustomerPhone, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		records = append(records, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return records, nil
}

// SuccessfulTransactions returns the latest limit successful transactions.
func (r *ReportingRepo) SuccessfulTransactions(ctx context.Context, storeID, merchantID string, limit int) ([]domain.TransactionBrief, error) {
	q := psql.Select("th.invoice_no", "th.amount_recived", "th.currency", "pm.method_name", "th.created_at").
		From("trx_history th").
		LeftJoin("payment_method pm ON th.payment_method = pm.id")
	f := domain.Scope(storeID, merchantID).WithStatus(domain.SPCodeSuccess)
	q = applyFilters(q, f, trxColumns).
		OrderBy("th.created_at DESC").
		Limit(uint64(limit))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("successful transactions: build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("successful transactions: %w", err)
	}
	defer rows.Close()

	var briefs []domain.TransactionBrief
	for rows.Next() {
		b := domain.TransactionBrief{}
		if err := rows.Scan(&b.InvoiceNo, &b.AmountReceived, &b.Currency, &b.MethodName, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction brief: %w", err)
		}
		briefs = append(briefs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction briefs: %w", err)
	}
	return briefs, nil
}

// SettledWithdrawals lists approved withdraw requests, latest approval first.
func (r *ReportingRepo) SettledWithdrawals(ctx context.Context, storeID, merchantID string) ([]domain.WithdrawRequest, error) {
	q := psql.Select("wr.tx_count", "wr.invoice_id", "wr.status", "wr.payable_amount", "wr.date_from", "wr.date_to", "wr.approved_at").
		From("withdraw_request wr")
	q = applyFilters(q, domain.Scope(storeID, merchantID), withdrawRequestColumns).
		Where(sq.Eq{"wr.status": domain.WithdrawStatusApproved}).
		OrderBy("wr.approved_at DESC")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("settled withdrawals: build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("settled withdrawals: %w", err)
	}
	defer rows.Close()

	var out []domain.WithdrawRequest
	for rows.Next() {
		w := domain.WithdrawRequest{}
		err := rows.Scan(&w.TxCount, &w.InvoiceID, &w.Status, &w.PayableAmount, &w.DateFrom, &w.DateTo, &w.ApprovedAt)
		if err != nil {
			return nil, fmt.Errorf("scan withdraw request: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate withdraw requests: %w", err)
	}
	return out, nil
}

// RefundDetails gathers customer, merchant and commission data for an invoice.
func (r *ReportingRepo) RefundDetails(ctx context.Context, invoiceNo string) ([]domain.RefundDetail, error) {
	q := psql.Select(
		"th.invoice_no", "th.bank_trx_id", "th.amount_recived", "th.currency",
		"COALESCE(th.comm_total, 0)", "COALESCE(th.comm_surcharge, 0)",
		"io.merchant_id", "io.store_id", "mi.merchant_name",
		"si.is_add_commission", "pm.gateway_type_id",
		"ci.cus_name", "ci.cus_email", "ci.cus_address", "ci.cus_phone",
	).
		From("trx_history th").
		LeftJoin("customer_info ci ON ci.order_id = th.invoice_no").
		LeftJoin("in_order io ON io.order_id = th.invoice_no").
		LeftJoin("merchant_info mi ON mi.id = io.merchant_id").
		LeftJoin("store_info si ON si.id = io.store_id").
		LeftJoin("payment_method pm ON pm.id = th.payment_method").
		Where(sq.Eq{"th.invoice_no": invoiceNo})

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("refund details: build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("refund details: %w", err)
	}
	defer rows.Close()

	var out []domain.RefundDetail
	for rows.Next() {
		d := domain.RefundDetail{}
		err := rows.Scan(
			&d.InvoiceNo, &d.BankTrxID, &d.AmountReceived, &d.Currency,
			&d.CommTotal, &d.CommSurcharge,
			&d.MerchantID, &d.StoreID, &d.MerchantName,
			&d.IsAddCommission, &d.GatewayTypeID,
			&d.CustomerName, &d.CustomerEmail, &d.CustomerAddress, &d.CustomerPhone,
		)
		if err != nil {
			return nil, fmt.Errorf("scan refund detail: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate refund details: %w", err)
	}
	return out, nil
}

// DailyVolume returns up to days per-day successful totals, most recent day first.
func (r *ReportingRepo) DailyVolume(ctx context.Context, days int) ([]domain.DailyVolume, error) {
	q := psql.Select("th.created_at::date AS day", "COUNT(th.inv_id)", "COALESCE(ROUND(SUM(th.amount_recived)), 0)").
		From("trx_history th").
		Where(sq.Eq{"th.sp_code": domain.SPCodeSuccess}).
		Where(sq.Expr("th.created_at >= current_date - make_interval(days => ?::int)", days)).
		GroupBy("day").
		OrderBy("day DESC").
		Limit(uint64(days))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("daily volume: build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("daily volume: %w", err)
	}
	defer rows.Close()

	var out []domain.DailyVolume
	for rows.Next() {
		d := domain.DailyVolume{}
		if err := rows.Scan(&d.Date, &d.Count, &d.Total); err != nil {
			return nil, fmt.Errorf("scan daily volume: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily volume: %w", err)
	}
	return out, nil
}

// PeakTransactions returns the largest successful amounts per merchant order
// and payment method over the trailing hours. At most hours rows are returned.
func (r *ReportingRepo) PeakTransactions(ctx context.Context, hours int) ([]domain.PeakTransaction, error) {
	q := psql.Select(
		"COUNT(th.inv_id)", "MAX(th.amount_recived) AS max_amount",
		"mi.merchant_name", "io.order_id", "pm.id", "pm.method_name", "th.created_at",
	).
		From("trx_history th").
		Join("in_order io ON th.invoice_no = io.order_id").
		Join("merchant_info mi ON io.merchant_id = mi.id").
		Join("payment_method pm ON th.payment_method = pm.id").
		Where(sq.Expr("th.created_at > now() - make_interval(hours => ?::int)", hours)).
		Where(sq.Eq{"th.sp_code": domain.SPCodeSuccess}).
		GroupBy("io.merchant_id", "io.store_id", "mi.merchant_name", "th.created_at", "io.order_id", "pm.id", "pm.method_name").
		OrderBy("max_amount DESC").
		Limit(uint64(hours))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("peak transactions: build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("peak transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.PeakTransaction
	for rows.Next() {
		p := domain.PeakTransaction{}
		err := rows.Scan(&p.Count, &p.MaxAmount, &p.MerchantName, &p.OrderID, &p.PaymentMethodID, &p.MethodName, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan peak transaction: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate peak transactions: %w", err)
	}
	return out, nil
}
