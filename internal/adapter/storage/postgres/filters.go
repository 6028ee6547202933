package postgres

import (
	"merchant-reporting/internal/core/domain"
	"merchant-reporting/pkg/period"

	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL-flavoured statements ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// filterColumns names the columns a ReportFilter maps onto for one base query.
// An empty column means that dimension does not exist for the query.
type filterColumns struct {
	merchant  string
	store     string
	status    string
	createdAt string
}

var (
	trxColumns = filterColumns{
		merchant:  "th.mid",
		store:     "th.store_id",
		status:    "th.sp_code",
		createdAt: "th.created_at",
	}
	// Withdrawals match merchant/store through the order and always
	// carry their own status predicate.
	withdrawalColumns = filterColumns{
		merchant:  "io.merchant_id",
		store:     "io.store_id",
		createdAt: "th.created_at",
	}
	refundColumns = filterColumns{
		merchant:  "rr.merchant_id",
		store:     "rr.store_id",
		createdAt: "rr.created_at",
	}
	withdrawRequestColumns = filterColumns{
		merchant: "wr.merchant_id",
		store:    "wr.store_id",
	}
)

type predicate struct {
	present bool
	build   func() sq.Sqlizer
}

// applyFilters adds one conjunctive predicate per present filter field.
// Absent fields are omitted entirely. The base builder is not modified.
func applyFilters(q sq.SelectBuilder, f domain.ReportFilter, cols filterColumns) sq.SelectBuilder {
	preds := []predicate{
		{
			present: cols.merchant != "" && f.MerchantID != "",
			build:   func() sq.Sqlizer { return sq.Eq{cols.merchant: f.MerchantID} },
		},
		{
			present: cols.store != "" && f.StoreID != "",
			build:   func() sq.Sqlizer { return sq.Eq{cols.store: f.StoreID} },
		},
		{
			present: cols.status != "" && f.Status != nil,
			build:   func() sq.Sqlizer { return sq.Eq{cols.status: *f.Status} },
		},
		{
			present: cols.createdAt != "" && f.HasRange(),
			build: func() sq.Sqlizer {
				return sq.Expr(cols.createdAt+" BETWEEN ? AND ?", period.StartOfDay(*f.From), period.EndOfDay(*f.To))
			},
		},
	}

	for _, p := range preds {
		if p.present {
			q = q.Where(p.build())
		}
	}
	return q
}
