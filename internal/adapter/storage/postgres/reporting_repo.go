package postgres

import (
	"context"
	"fmt"

	"merchant-reporting/internal/core/domain"
	"merchant-reporting/pkg/period"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

// ReportingRepo implements ports.ReportingRepository.
type ReportingRepo struct {
	pool Pool
}

// NewReportingRepo creates a new ReportingRepo.
func NewReportingRepo(pool Pool) *ReportingRepo {
	return &ReportingRepo{pool: pool}
}

// SumAmountReceived sums what customers paid, commission included.
func (r *ReportingRepo) SumAmountReceived(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	q := psql.Select("COALESCE(SUM(th.amount_recived), 0)").From("trx_history th")
	return r.sum(ctx, "sum amount received", applyFilters(q, f, trxColumns))
}

// SumMerchantPayable sums what is owed to merchants after commission.
func (r *ReportingRepo) SumMerchantPayable(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	q := psql.Select("COALESCE(SUM(th.merchant_payable), 0)").From("trx_history th")
	return r.sum(ctx, "sum merchant payable", applyFilters(q, f, trxColumns))
}

// CountTransactions counts matching trx_history rows.
func (r *ReportingRepo) CountTransactions(ctx context.Context, f domain.ReportFilter) (int64, error) {
	q := applyFilters(psql.Select("COUNT(*)").From("trx_history th"), f, trxColumns)

	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("count transactions: build query: %w", err)
	}

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

// SumPaidVolume sums merchant payable restricted to the given settlement flag.
// The settlement predicate is always applied.
func (r *ReportingRepo) SumPaidVolume(ctx context.Context, f domain.ReportFilter, settled bool) (decimal.Decimal, error) {
	q := psql.Select("COALESCE(SUM(th.merchant_payable), 0)").
		From("trx_history th").
		Where(sq.Eq{"th.is_settled": settled})
	return r.sum(ctx, "sum paid volume", applyFilters(q, f, trxColumns))
}

// SumWithdrawalVolume sums settled merchant payable for orders of the
// filtered merchant/store whose transaction status equals f.Status.
func (r *ReportingRepo) SumWithdrawalVolume(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	if f.Status == nil {
		return decimal.Zero, fmt.Errorf("sum withdrawal volume: status is required")
	}

	q := psql.Select("COALESCE(SUM(th.merchant_payable), 0)").
		From("trx_history th").
		LeftJoin("in_order io ON th.invoice_no = io.order_id").
		Where(sq.Eq{"th.sp_code": *f.Status}).
		Where(sq.Eq{"th.is_settled": true})
	return r.sum(ctx, "sum withdrawal volume", applyFilters(q, f, withdrawalColumns))
}

// SumRefundVolume sums completed refunds. The transaction status in f does
// not apply to refund requests and is ignored.
func (r *ReportingRepo) SumRefundVolume(ctx context.Context, f domain.ReportFilter) (decimal.Decimal, error) {
	q := psql.Select("COALESCE(SUM(rr.per_amount), 0)").
		From("refund_request rr").
		Where(sq.Eq{"rr.sp_code": domain.SPCodeRefundDone})
	return r.sum(ctx, "sum refund volume", applyFilters(q, f, refundColumns))
}

// CurrentMonthVolume counts successful transactions in month across all
// merchants and sums their amount rounded to a whole unit.
func (r *ReportingRepo) CurrentMonthVolume(ctx context.Context, month period.Window) (*domain.MonthlyVolume, error) {
	f := domain.ReportFilter{}.WithStatus(domain.SPCodeSuccess).WithRange(month.From, month.To)
	q := psql.Select("COUNT(th.inv_id)", "COALESCE(ROUND(SUM(th.amount_recived)), 0)").From("trx_history th")

	query, args, err := applyFilters(q, f, trxColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("current month volume: build query: %w", err)
	}

	v := &domain.MonthlyVolume{}
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&v.Count, &v.Total); err != nil {
		return nil, fmt.Errorf("current month volume: %w", err)
	}
	return v, nil
}

func (r *ReportingRepo) sum(ctx context.Context, op string, q sq.SelectBuilder) (decimal.Decimal, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: build query: %w", op, err)
	}

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
