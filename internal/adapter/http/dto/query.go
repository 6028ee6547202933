package dto

import (
	"time"

	"merchant-reporting/internal/core/domain"
	"merchant-reporting/pkg/apperror"
)

// DateLayout is the accepted format of the from and to query parameters.
const DateLayout = "2006-01-02"

// ScopeQuery selects a merchant and store. Both are optional.
type ScopeQuery struct {
	MerchantID string `form:"merchant_id" binding:"omitempty,max=64,safe_id"`
	StoreID    string `form:"store_id" binding:"omitempty,max=64,safe_id"`
}

// ReportQuery carries the common report filter parameters.
type ReportQuery struct {
	ScopeQuery
	Status *int   `form:"status" binding:"omitempty,min=0"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// Filter converts q into a domain filter, reading dates in loc.
// A range is only applied when both from and to are given.
func (q ReportQuery) Filter(loc *time.Location) (domain.ReportFilter, error) {
	f := domain.Scope(q.StoreID, q.MerchantID)
	if q.Status != nil {
		f = f.WithStatus(domain.SPCode(*q.Status))
	}
	if q.From == "" || q.To == "" {
		return f, nil
	}

	from, err := time.ParseInLocation(DateLayout, q.From, loc)
	if err != nil {
		return f, apperror.ErrInvalidFilter("from")
	}
	to, err := time.ParseInLocation(DateLayout, q.To, loc)
	if err != nil {
		return f, apperror.ErrInvalidFilter("to")
	}
	if from.After(to) {
		return f, apperror.ErrInvalidFilter("from must not be after to")
	}
	return f.WithRange(from, to), nil
}

// PaidQuery adds the settlement flag to a report query.
type PaidQuery struct {
	ReportQuery
	Settled *bool `form:"settled"`
}

// IsSettled defaults to true when the flag is absent.
func (q PaidQuery) IsSettled() bool {
	return q.Settled == nil || *q.Settled
}

// PeriodQuery searches the trailing days.
type PeriodQuery struct {
	ReportQuery
	Days *int `form:"days" binding:"omitempty,min=0,max=3650"`
}

// DaysOr returns the requested days, or def when absent.
func (q PeriodQuery) DaysOr(def int) int {
	if q.Days == nil {
		return def
	}
	return *q.Days
}

// TopQuery lists the latest successful transactions.
type TopQuery struct {
	ScopeQuery
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// WindowQuery sizes the daily and peak reports.
type WindowQuery struct {
	Days  int `form:"days" binding:"omitempty,min=1,max=366"`
	Hours int `form:"hours" binding:"omitempty,min=1,max=720"`
}
