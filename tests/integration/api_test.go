package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app.redis.Close()
	resp, err = http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestIntegration_DashboardSummary(t *testing.T) {
	app := newTestApp(t)

	var sum map[string]string
	code, _ := app.get(t, "/api/v1/reports/summary?store_id=s-1&merchant_id=m-1", &sum)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "100.00", sum["today_volume"])
	assert.Equal(t, "300.00", sum["weekly_volume"])
	assert.Equal(t, "300.00", sum["monthly_volume"])
	assert.Equal(t, "300.00", sum["lifetime_volume"])
	assert.Equal(t, "97.50", sum["lifetime_paid_volume"])
	// payable 292.50 - settled withdrawals 97.50 - completed refunds 10
	assert.Equal(t, "185.00", sum["current_balance"])
}

func TestIntegration_StoreVolumesAddUp(t *testing.T) {
	app := newTestApp(t)

	s1 := dec(app.amount(t, "/api/v1/reports/volume?merchant_id=m-1&store_id=s-1&status=1000"))
	s2 := dec(app.amount(t, "/api/v1/reports/volume?merchant_id=m-1&store_id=s-2&status=1000"))
	merchant := dec(app.amount(t, "/api/v1/reports/volume?merchant_id=m-1&status=1000"))

	assert.True(t, s1.Add(s2).Equal(merchant), "%s + %s != %s", s1, s2, merchant)
	assert.Equal(t, "350.00", merchant.StringFixed(2))
}

func TestIntegration_TimeWindowsAddUp(t *testing.T) {
	app := newTestApp(t)

	partitions := [][][2]string{
		{{"2026-10-01", "2026-10-13"}, {"2026-10-14", "2026-10-31"}},
		{{"2026-10-01", "2026-10-10"}, {"2026-10-11", "2026-10-11"}, {"2026-10-12", "2026-10-31"}},
	}
	whole := [2]string{"2026-10-01", "2026-10-31"}

	for _, path := range []string{"/api/v1/reports/volume", "/api/v1/reports/volume/net"} {
		for _, scope := range []string{"merchant_id=m-1", "merchant_id=m-1&status=1000", "store_id=s-1"} {
			window := func(w [2]string) decimal.Decimal {
				return dec(app.amount(t, path+"?"+scope+"&from="+w[0]+"&to="+w[1]))
			}
			total := window(whole)

			for _, parts := range partitions {
				sum := decimal.Zero
				for _, w := range parts {
					sum = sum.Add(window(w))
				}
				assert.True(t, sum.Equal(total), "%s?%s: windows %v sum to %s, whole month is %s", path, scope, parts, sum, total)
			}
		}
	}

	// Oct 1-13 holds INV-2 and INV-3; Oct 14-31 holds INV-1.
	assert.Equal(t, "250.00", app.amount(t, "/api/v1/reports/volume?merchant_id=m-1&status=1000&from=2026-10-01&to=2026-10-13"))
	assert.Equal(t, "100.00", app.amount(t, "/api/v1/reports/volume?merchant_id=m-1&status=1000&from=2026-10-14&to=2026-10-31"))
	assert.Equal(t, "350.00", app.amount(t, "/api/v1/reports/volume?merchant_id=m-1&status=1000&from=2026-10-01&to=2026-10-31"))
}

func TestIntegration_CommissionAndBalanceIdentities(t *testing.T) {
	app := newTestApp(t)

	for _, scope := range []string{"merchant_id=m-1", "merchant_id=m-1&store_id=s-1", "merchant_id=m-2", ""} {
		q := "?" + scope
		with := dec(app.amount(t, "/api/v1/reports/volume"+q))
		without := dec(app.amount(t, "/api/v1/reports/volume/net"+q))
		commission := dec(app.amount(t, "/api/v1/reports/commission"+q))
		withdrawn := dec(app.amount(t, "/api/v1/reports/volume/withdrawn"+q))
		refunded := dec(app.amount(t, "/api/v1/reports/volume/refunded"+q))
		balance := dec(app.amount(t, "/api/v1/reports/balance"+q))

		assert.True(t, with.Sub(without).Equal(commission), "commission identity for %q", scope)
		assert.True(t, without.Sub(withdrawn).Sub(refunded).Equal(balance), "balance identity for %q", scope)
	}
}

func TestIntegration_EmptyScopeIsZero(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, "0.00", app.amount(t, "/api/v1/reports/volume?merchant_id=nobody"))
	assert.Equal(t, "0.00", app.amount(t, "/api/v1/reports/volume/withdrawn?merchant_id=nobody"))
	assert.Equal(t, "0.00", app.amount(t, "/api/v1/reports/balance?merchant_id=nobody"))
}

func TestIntegration_DateRangeIsInclusiveOfWholeDays(t *testing.T) {
	app := newTestApp(t)

	// INV-1 at 10:00 and INV-4 at 11:00 on Oct 14 are both inside a single-day range.
	var count struct {
		Count int64 `json:"count"`
	}
	code, _ := app.get(t, "/api/v1/reports/count?merchant_id=m-1&from=2026-10-14&to=2026-10-14", &count)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), count.Count)

	// A one-sided range is ignored.
	code, _ = app.get(t, "/api/v1/reports/count?merchant_id=m-1&from=2026-10-14", &count)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(4), count.Count)

	code, env := app.get(t, "/api/v1/reports/count?from=2026-10-15&to=2026-10-14", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "RPT_001", env.ErrorCode)
}

func TestIntegration_PaidVolumeBySettlement(t *testing.T) {
	app := newTestApp(t)

	settled := dec(app.amount(t, "/api/v1/reports/volume/paid?merchant_id=m-1&store_id=s-1&status=1000"))
	unsettled := dec(app.amount(t, "/api/v1/reports/volume/paid?merchant_id=m-1&store_id=s-1&status=1000&settled=false"))
	net := dec(app.amount(t, "/api/v1/reports/volume/net?merchant_id=m-1&store_id=s-1&status=1000"))

	assert.Equal(t, "97.50", settled.StringFixed(2))
	assert.True(t, settled.Add(unsettled).Equal(net))
}

func TestIntegration_TransactionSearch(t *testing.T) {
	app := newTestApp(t)

	var list struct {
		Items []struct {
			InvoiceNo        string `json:"invoice_no"`
			CommissionAmount string `json:"commission_amount"`
			CreatedAt        string `json:"created_at"`
		} `json:"items"`
		Total int `json:"total"`
	}
	code, _ := app.get(t, "/api/v1/reports/transactions?merchant_id=m-1&store_id=s-1", &list)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "INV-4", list.Items[0].InvoiceNo, "newest first")
	assert.Equal(t, "INV-2", list.Items[2].InvoiceNo)
	assert.Equal(t, "2.00", list.Items[0].CommissionAmount)

	// Trailing 7 days from Oct 14 starts Oct 7, excluding INV-3 on Oct 2.
	code, _ = app.get(t, "/api/v1/reports/transactions/recent?merchant_id=m-1", &list)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, list.Total)

	code, _ = app.get(t, "/api/v1/reports/transactions/recent?merchant_id=m-1&days=30", &list)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 4, list.Total)
}

func TestIntegration_TopTransactions(t *testing.T) {
	app := newTestApp(t)

	var items []struct {
		InvoiceNo string `json:"invoice_no"`
	}
	code, _ := app.get(t, "/api/v1/reports/transactions/top?merchant_id=m-1&limit=2", &items)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, items, 2)
	assert.Equal(t, "INV-1", items[0].InvoiceNo)
	assert.Equal(t, "INV-2", items[1].InvoiceNo)
}

func TestIntegration_WithdrawalsAndRefunds(t *testing.T) {
	app := newTestApp(t)

	var withdrawals []map[string]interface{}
	code, _ := app.get(t, "/api/v1/reports/withdrawals?merchant_id=m-1", &withdrawals)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, withdrawals, 1)
	assert.Equal(t, "WD-1", withdrawals[0]["invoice_id"])

	var refunds []map[string]interface{}
	code, _ = app.get(t, "/api/v1/reports/refunds/INV-1", &refunds)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, refunds, 1)
	assert.Equal(t, "m-1", refunds[0]["merchant_id"])

	code, env := app.get(t, "/api/v1/reports/refunds/INV-404", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "RPT_003", env.ErrorCode)
}

func TestIntegration_MonthTotalsCacheAside(t *testing.T) {
	app := newTestApp(t)

	var totals struct {
		Count int64  `json:"count"`
		Total string `json:"total"`
	}
	code, env := app.get(t, "/api/v1/reports/month-totals", &totals)
	require.Equal(t, http.StatusOK, code)
	// October successes: 100 + 200 + 50. INV-5 is September.
	assert.Equal(t, int64(3), totals.Count)
	assert.Equal(t, "350.00", totals.Total)
	assert.NotEmpty(t, env.GeneratedAt)
	assert.True(t, app.redis.Exists(cacheKey))
	assert.Equal(t, int64(1), app.repo.monthQueries.Load())

	// New rows do not show up until the entry is invalidated.
	app.repo.addTrx(trxRow{InvoiceNo: "INV-6", MerchantID: "m-2", StoreID: "s-9", SPCode: 1000,
		AmountReceived: dec("25.5"), MerchantPayable: dec("25"), CreatedAt: at(10, 13, 8)})

	code, _ = app.get(t, "/api/v1/reports/month-totals", &totals)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(3), totals.Count)
	assert.Equal(t, int64(1), app.repo.monthQueries.Load())

	code, _ = app.do(t, http.MethodDelete, "/api/v1/reports/month-totals", nil)
	require.Equal(t, http.StatusNoContent, code)
	assert.False(t, app.redis.Exists(cacheKey))

	code, _ = app.get(t, "/api/v1/reports/month-totals", &totals)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(4), totals.Count)
	// 375.5 rounds half-up to a whole unit.
	assert.Equal(t, "376.00", totals.Total)
	assert.Equal(t, int64(2), app.repo.monthQueries.Load())
}

func TestIntegration_MonthTotalsSurviveCacheOutage(t *testing.T) {
	app := newTestApp(t)
	app.redis.Close()

	var totals struct {
		Count int64  `json:"count"`
		Total string `json:"total"`
	}
	code, _ := app.get(t, "/api/v1/reports/month-totals", &totals)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(3), totals.Count)
}

func TestIntegration_LegacyCacheEntryIsServed(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.redis.Set(cacheKey, `[{"count":17,"total":4021}]`))

	var totals struct {
		Count int64  `json:"count"`
		Total string `json:"total"`
	}
	code, _ := app.get(t, "/api/v1/reports/month-totals", &totals)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(17), totals.Count)
	assert.Equal(t, "4021.00", totals.Total)
	assert.Equal(t, int64(0), app.repo.monthQueries.Load())
}

func TestIntegration_StoreFailureIsInternalError(t *testing.T) {
	app := newTestApp(t)
	app.repo.fail.Store(true)

	code, env := app.get(t, "/api/v1/reports/balance?merchant_id=m-1", nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "SYS_001", env.ErrorCode)
}

func TestIntegration_SearchRateLimit(t *testing.T) {
	app := newTestApp(t)

	start := time.Now().Unix() / 60
	var limited int
	for i := 0; i < 35; i++ {
		code, _ := app.get(t, "/api/v1/reports/transactions", nil)
		if code == http.StatusTooManyRequests {
			limited++
		}
	}
	if time.Now().Unix()/60 != start {
		t.Skip("crossed a rate-limit window boundary")
	}
	assert.Equal(t, 5, limited)

	// Other groups keep their own budget.
	assert.Equal(t, decimal.Zero.StringFixed(2), app.amount(t, "/api/v1/reports/volume?merchant_id=nobody"))
}
