package domain

import "time"

// ReportFilter narrows every aggregation and search. A nil pointer or empty
// string means "no constraint on this dimension". The date range only applies
// when both bounds are present.
type ReportFilter struct {
	From       *time.Time
	To         *time.Time
	StoreID    string
	MerchantID string
	Status     *SPCode
}

// Scope returns a filter limited to a store and merchant, with no status or range.
func Scope(storeID, merchantID string) ReportFilter {
	return ReportFilter{StoreID: storeID, MerchantID: merchantID}
}

// HasRange reports whether both date bounds are set.
func (f ReportFilter) HasRange() bool {
	return f.From != nil && f.To != nil && !f.From.IsZero() && !f.To.IsZero()
}

// WithStatus returns a copy of f constrained to status.
func (f ReportFilter) WithStatus(status SPCode) ReportFilter {
	f.Status = &status
	return f
}

// WithRange returns a copy of f constrained to [from, to].
func (f ReportFilter) WithRange(from, to time.Time) ReportFilter {
	f.From = &from
	f.To = &to
	return f
}

// WithoutRange returns a copy of f with no date constraint.
func (f ReportFilter) WithoutRange() ReportFilter {
	f.From = nil
	f.To = nil
	return f
}

// StatusOr returns the filter status, or def when none is set.
func (f ReportFilter) StatusOr(def SPCode) SPCode {
	if f.Status == nil {
		return def
	}
	return *f.Status
}
