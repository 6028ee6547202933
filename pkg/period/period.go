// Package period computes the reporting windows used by the dashboard.
//
// Weeks run Saturday through Friday regardless of locale. All windows are
// inclusive at both ends: To is the last nanosecond of its day, except for
// Today, whose upper bound is the current instant.
package period

import (
	"time"

	"github.com/jinzhu/now"
)

// Window is an inclusive [From, To] time range.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside w.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

var weekConfig = &now.Config{WeekStartDay: time.Saturday}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return weekConfig.With(t).BeginningOfDay()
}

// EndOfDay returns the last nanosecond of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	return weekConfig.With(t).EndOfDay()
}

// Today spans from midnight up to t.
func Today(t time.Time) Window {
	return Window{From: StartOfDay(t), To: t}
}

// ThisWeek spans the Saturday at or before t through the following Friday.
func ThisWeek(t time.Time) Window {
	n := weekConfig.With(t)
	return Window{From: n.BeginningOfWeek(), To: n.EndOfWeek()}
}

// ThisMonth spans the first through the last calendar day of t's month.
func ThisMonth(t time.Time) Window {
	n := weekConfig.With(t)
	return Window{From: n.BeginningOfMonth(), To: n.EndOfMonth()}
}

// TrailingDays spans from days before t up to t.
func TrailingDays(t time.Time, days int) Window {
	return Window{From: t.AddDate(0, 0, -days), To: t}
}
