package handler

import (
	"merchant-reporting/internal/adapter/http/dto"
	"merchant-reporting/pkg/apperror"
	"merchant-reporting/pkg/response"

	"github.com/gin-gonic/gin"
)

// Transactions handles GET /api/v1/reports/transactions.
func (h *ReportsHandler) Transactions(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}

	records, err := h.svc.SearchByDate(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionList(records))
}

// RecentTransactions handles GET /api/v1/reports/transactions/recent.
// Any from/to in the query is replaced by the trailing days window.
func (h *ReportsHandler) RecentTransactions(c *gin.Context) {
	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	q.From, q.To = "", ""
	f, err := q.Filter(h.loc)
	if err != nil {
		response.Error(c, err)
		return
	}

	records, err := h.svc.SearchByPeriod(c.Request.Context(), q.DaysOr(h.searchDays), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionList(records))
}

// TopTransactions handles GET /api/v1/reports/transactions/top.
func (h *ReportsHandler) TopTransactions(c *gin.Context) {
	var q dto.TopQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	briefs, err := h.svc.SuccessfulTransactions(c.Request.Context(), q.StoreID, q.MerchantID, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionBriefResponse, 0, len(briefs))
	for i := range briefs {
		items = append(items, toBriefResponse(&briefs[i]))
	}
	response.OK(c, items)
}

// Withdrawals handles GET /api/v1/reports/withdrawals.
func (h *ReportsHandler) Withdrawals(c *gin.Context) {
	var q dto.ScopeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	out, err := h.svc.SettledWithdrawals(c.Request.Context(), q.StoreID, q.MerchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WithdrawalResponse, 0, len(out))
	for i := range out {
		items = append(items, toWithdrawalResponse(&out[i]))
	}
	response.OK(c, items)
}

// RefundDetails handles GET /api/v1/reports/refunds/:invoice.
func (h *ReportsHandler) RefundDetails(c *gin.Context) {
	out, err := h.svc.RefundDetails(c.Request.Context(), c.Param("invoice"))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.RefundDetailResponse, 0, len(out))
	for i := range out {
		items = append(items, toRefundDetailResponse(&out[i]))
	}
	response.OK(c, items)
}

// Daily handles GET /api/v1/reports/daily.
func (h *ReportsHandler) Daily(c *gin.Context) {
	var q dto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.Days == 0 {
		q.Days = defaultDailyDays
	}

	out, err := h.svc.DailyVolume(c.Request.Context(), q.Days)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.DailyVolumeResponse, 0, len(out))
	for _, d := range out {
		items = append(items, dto.DailyVolumeResponse{
			Date:  d.Date.Format(dto.DateLayout),
			Count: d.Count,
			Total: formatAmount(d.Total),
		})
	}
	response.OK(c, items)
}

// Peaks handles GET /api/v1/reports/peaks.
func (h *ReportsHandler) Peaks(c *gin.Context) {
	var q dto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.Hours == 0 {
		q.Hours = defaultPeakHours
	}

	out, err := h.svc.PeakTransactions(c.Request.Context(), q.Hours)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PeakTransactionResponse, 0, len(out))
	for i := range out {
		items = append(items, toPeakResponse(&out[i]))
	}
	response.OK(c, items)
}
