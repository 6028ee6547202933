package handler

import (
	"time"

	"merchant-reporting/internal/adapter/http/middleware"
	"merchant-reporting/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ReportingSvc   ports.ReportingService
	RateLimiter    middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Location       *time.Location
	SearchDays     int
	Mode           string // gin mode, release when empty
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rules[group], deps.Logger)
	}

	h := NewReportsHandler(deps.ReportingSvc, deps.Location, deps.SearchDays)

	reports := r.Group("/api/v1/reports")
	{
		reports.GET("/summary", rl("reports"), h.Summary)
		reports.GET("/volume", rl("reports"), h.Volume)
		reports.GET("/volume/net", rl("reports"), h.NetVolume)
		reports.GET("/volume/paid", rl("reports"), h.PaidVolume)
		reports.GET("/volume/withdrawn", rl("reports"), h.WithdrawnVolume)
		reports.GET("/volume/refunded", rl("reports"), h.RefundedVolume)
		reports.GET("/commission", rl("reports"), h.Commission)
		reports.GET("/balance", rl("reports"), h.Balance)
		reports.GET("/count", rl("reports"), h.Count)
		reports.GET("/month-totals", rl("reports"), h.MonthTotals)
		reports.DELETE("/month-totals", rl("cache_admin"), h.InvalidateMonthTotals)
		reports.GET("/daily", rl("reports"), h.Daily)
		reports.GET("/peaks", rl("reports"), h.Peaks)
		reports.GET("/withdrawals", rl("reports"), h.Withdrawals)
		reports.GET("/refunds/:invoice", rl("reports"), h.RefundDetails)

		reports.GET("/transactions", rl("search"), h.Transactions)
		reports.GET("/transactions/recent", rl("search"), h.RecentTransactions)
		reports.GET("/transactions/top", rl("search"), h.TopTransactions)
	}

	return r
}
