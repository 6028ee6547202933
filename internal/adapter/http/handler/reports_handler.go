package handler

import (
	"context"
	"time"

	"merchant-reporting/internal/adapter/http/dto"
	"merchant-reporting/internal/core/domain"
	"merchant-reporting/internal/core/ports"
	"merchant-reporting/pkg/apperror"
	"merchant-reporting/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	defaultDailyDays = 7
	defaultPeakHours = 24
)

// ReportsHandler serves the dashboard report endpoints.
type ReportsHandler struct {
	svc        ports.ReportingService
	loc        *time.Location
	searchDays int
}

// NewReportsHandler creates a new ReportsHandler. Dates in queries are read
// in loc; searchDays is the trailing window when days is not given.
func NewReportsHandler(svc ports.ReportingService, loc *time.Location, searchDays int) *ReportsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportsHandler{svc: svc, loc: loc, searchDays: searchDays}
}

func (h *ReportsHandler) bindFilter(c *gin.Context) (domain.ReportFilter, bool) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return domain.ReportFilter{}, false
	}
	f, err := q.Filter(h.loc)
	if err != nil {
		response.Error(c, err)
		return domain.ReportFilter{}, false
	}
	return f, true
}

type amountFunc func(context.Context, domain.ReportFilter) (decimal.Decimal, error)

// amount answers a filtered money aggregate.
func (h *ReportsHandler) amount(fn amountFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok := h.bindFilter(c)
		if !ok {
			return
		}
		v, err := fn(c.Request.Context(), f)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.AmountResponse{Amount: formatAmount(v)})
	}
}

// Volume handles GET /api/v1/reports/volume.
func (h *ReportsHandler) Volume(c *gin.Context) {
	h.amount(h.svc.TransactionVolumeWithCommission)(c)
}

// NetVolume handles GET /api/v1/reports/volume/net.
func (h *ReportsHandler) NetVolume(c *gin.Context) {
	h.amount(h.svc.TransactionVolumeWithoutCommission)(c)
}

// WithdrawnVolume handles GET /api/v1/reports/volume/withdrawn.
func (h *ReportsHandler) WithdrawnVolume(c *gin.Context) {
	h.amount(h.svc.WithdrawalVolume)(c)
}

// RefundedVolume handles GET /api/v1/reports/volume/refunded.
func (h *ReportsHandler) RefundedVolume(c *gin.Context) {
	h.amount(h.svc.RefundVolume)(c)
}

// Commission handles GET /api/v1/reports/commission.
func (h *ReportsHandler) Commission(c *gin.Context) {
	h.amount(h.svc.TransactionCommission)(c)
}

// Balance handles GET /api/v1/reports/balance.
func (h *ReportsHandler) Balance(c *gin.Context) {
	h.amount(h.svc.CurrentBalanceVolume)(c)
}

// PaidVolume handles GET /api/v1/reports/volume/paid. settled defaults to true.
func (h *ReportsHandler) PaidVolume(c *gin.Context) {
	var q dto.PaidQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	f, err := q.Filter(h.loc)
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.svc.PaidVolume(c.Request.Context(), f, q.IsSettled())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AmountResponse{Amount: formatAmount(v)})
}

// Count handles GET /api/v1/reports/count.
func (h *ReportsHandler) Count(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}

	n, err := h.svc.TransactionCount(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CountResponse{Count: n})
}

// Summary handles GET /api/v1/reports/summary.
func (h *ReportsHandler) Summary(c *gin.Context) {
	var q dto.ScopeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sum, err := h.svc.DashboardSummary(c.Request.Context(), q.StoreID, q.MerchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SummaryResponse{
		TodayVolume:        formatAmount(sum.TodayVolume),
		WeeklyVolume:       formatAmount(sum.WeeklyVolume),
		MonthlyVolume:      formatAmount(sum.MonthlyVolume),
		LifetimeVolume:     formatAmount(sum.LifetimeVolume),
		LifetimePaidVolume: formatAmount(sum.LifetimePaidVolume),
		CurrentBalance:     formatAmount(sum.CurrentBalance),
	})
}

// MonthTotals handles GET /api/v1/reports/month-totals.
func (h *ReportsHandler) MonthTotals(c *gin.Context) {
	v, err := h.svc.CurrentMonthTotals(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Report(c, dto.MonthTotalsResponse{Count: v.Count, Total: formatAmount(v.Total)}, v.ComputedAt)
}

// InvalidateMonthTotals handles DELETE /api/v1/reports/month-totals.
func (h *ReportsHandler) InvalidateMonthTotals(c *gin.Context) {
	if err := h.svc.InvalidateCurrentMonthTotals(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
