// Package calendar provides working-day date arithmetic for the scheduler.
// A working day is any weekday; Saturdays and Sundays are skipped.
package calendar

import (
	"math"
	"time"
)

// IsWorkingDay reports whether date falls on a weekday.
func IsWorkingDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextWorkingDay returns date itself if it is a weekday, otherwise the
// following Monday. Project start dates are normalized through this so a
// schedule never begins on a weekend.
func NextWorkingDay(date time.Time) time.Time {
	for !IsWorkingDay(date) {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// AddWorkingDays advances (n > 0) or recedes (n < 0) date by n working days,
// skipping weekends. For n == 0 the input is returned unchanged; for any
// nonzero n the result is strictly later (or earlier) than the input.
//
// Fractional n rounds its magnitude up to whole days: a task that occupies
// any part of a working day occupies the whole day. This keeps the offset
// strictly monotonic for small fractional durations.
func AddWorkingDays(date time.Time, n float64) time.Time {
	if n == 0 {
		return date
	}
	remaining := int(math.Ceil(math.Abs(n)))
	step := 1
	if n < 0 {
		step = -1
	}
	for remaining > 0 {
		date = date.AddDate(0, 0, step)
		if IsWorkingDay(date) {
			remaining--
		}
	}
	return date
}

// WorkingDaysBetween returns the signed number of working days from a to b,
// counting each weekday landed on when stepping one calendar day at a time.
// It is the inverse of AddWorkingDays over working-day endpoints:
// WorkingDaysBetween(a, AddWorkingDays(a, n)) == n for whole n.
func WorkingDaysBetween(a, b time.Time) float64 {
	if b.Before(a) {
		return -WorkingDaysBetween(b, a)
	}
	days := 0.0
	for d := a; d.Before(b); {
		d = d.AddDate(0, 0, 1)
		if IsWorkingDay(d) {
			days++
		}
	}
	return days
}
