package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "merchant-reporting/internal/adapter/http/handler"
	redisStorage "merchant-reporting/internal/adapter/storage/redis"
	"merchant-reporting/internal/core/domain"
	"merchant-reporting/internal/core/ports"
	"merchant-reporting/internal/service"
	"merchant-reporting/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Wednesday; the reporting week runs Saturday Oct 10 through Friday Oct 16.
var fixedNow = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

const cacheKey = "this-month-total-trx-volume"

// testApp wires the real HTTP layer, middleware, service and Redis stores
// (on miniredis) over an in-memory reporting repository.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	repo   *inMemoryReportingRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	repo := newInMemoryReportingRepo()
	seed(repo)

	log := logger.Nop()
	svc := service.NewReportingService(repo, redisStorage.NewMonthlyVolumeCache(rdb), service.ReportingOptions{
		MonthlyCacheKey: cacheKey,
		Location:        time.UTC,
		Clock:           func() time.Time { return fixedNow },
	}, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ReportingSvc:   svc,
		RateLimiter:    redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Location:       time.UTC,
		SearchDays:     7,
		Mode:           gin.TestMode,
		Logger:         log,
	})

	app := &testApp{server: httptest.NewServer(router), redis: mr, repo: repo}
	t.Cleanup(func() {
		app.server.Close()
		_ = rdb.Close()
		mr.Close()
	})
	return app
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func at(month time.Month, day, hour int) time.Time {
	return time.Date(2026, month, day, hour, 0, 0, 0, time.UTC)
}

// seed loads two stores of merchant m-1 and an unrelated merchant m-2.
func seed(repo *inMemoryReportingRepo) {
	repo.addTrx(
		trxRow{InvoiceNo: "INV-1", MerchantID: "m-1", StoreID: "s-1", SPCode: domain.SPCodeSuccess,
			AmountReceived: dec("100"), MerchantPayable: dec("97.5"), CommTotal: dec("2.5"),
			IsSettled: true, Currency: "BDT", CreatedAt: at(time.October, 14, 10)},
		trxRow{InvoiceNo: "INV-2", MerchantID: "m-1", StoreID: "s-1", SPCode: domain.SPCodeSuccess,
			AmountReceived: dec("200"), MerchantPayable: dec("195"), CommTotal: dec("5"),
			Currency: "BDT", CreatedAt: at(time.October, 11, 9)},
		trxRow{InvoiceNo: "INV-3", MerchantID: "m-1", StoreID: "s-2", SPCode: domain.SPCodeSuccess,
			AmountReceived: dec("50"), MerchantPayable: dec("48.75"), CommTotal: dec("1.25"),
			IsSettled: true, Currency: "BDT", CreatedAt: at(time.October, 2, 12)},
		trxRow{InvoiceNo: "INV-4", MerchantID: "m-1", StoreID: "s-1", SPCode: 1001,
			AmountReceived: dec("70"), MerchantPayable: dec("68"), CommTotal: dec("2"),
			Currency: "BDT", CreatedAt: at(time.October, 14, 11)},
		trxRow{InvoiceNo: "INV-5", MerchantID: "m-2", StoreID: "s-9", SPCode: domain.SPCodeSuccess,
			AmountReceived: dec("1000.4"), MerchantPayable: dec("980"), CommTotal: dec("20.4"),
			IsSettled: true, Currency: "BDT", CreatedAt: at(time.September, 20, 8)},
	)
	repo.addRefund(
		refundRow{InvoiceNo: "INV-1", MerchantID: "m-1", StoreID: "s-1", SPCode: domain.SPCodeRefundDone,
			PerAmount: dec("10"), CreatedAt: at(time.October, 12, 8)},
		refundRow{InvoiceNo: "INV-2", MerchantID: "m-1", StoreID: "s-1", SPCode: 1001,
			PerAmount: dec("5"), CreatedAt: at(time.October, 13, 8)},
	)
	approved := at(time.October, 1, 9)
	repo.addWithdraw(withdrawRow{MerchantID: "m-1", StoreID: "s-1", Request: domain.WithdrawRequest{
		InvoiceID: "WD-1", TxCount: 1, Status: domain.WithdrawStatusApproved, PayableAmount: dec("97.5"),
		DateFrom: at(time.September, 1, 0), DateTo: at(time.September, 30, 0), ApprovedAt: &approved,
	}})
}

type envelope struct {
	Data        json.RawMessage `json:"data"`
	ErrorCode   string          `json:"error_code"`
	GeneratedAt string          `json:"generated_at"`
}

// get issues a GET and decodes the envelope, returning the status code.
func (a *testApp) get(t *testing.T, path string, data interface{}) (int, envelope) {
	t.Helper()
	return a.do(t, http.MethodGet, path, data)
}

func (a *testApp) do(t *testing.T, method, path string, data interface{}) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, a.server.URL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, env
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return resp.StatusCode, env
}

func (a *testApp) amount(t *testing.T, path string) string {
	t.Helper()
	var body struct {
		Amount string `json:"amount"`
	}
	code, env := a.get(t, path, &body)
	require.Equal(t, http.StatusOK, code, "%s: %s", path, env.ErrorCode)
	return body.Amount
}
