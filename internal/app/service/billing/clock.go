package billing

import (
	"time"

	"github.com/veloweb/subman/pkg/types"
)

// NextBillingDate returns the billing occurrence following t for the given
// frequency. The second return value is false when the frequency is oneTime,
// which has no further occurrences.
//
// Month arithmetic is calendar-based with day clamping: adding a month to
// Jan 31 yields the last valid day of February, never a spillover into March.
func NextBillingDate(t time.Time, f types.PaymentFrequency) (time.Time, bool) {
	months := f.MonthsPerCycle()
	if months == 0 {
		return time.Time{}, false
	}
	return addMonthsClamped(t, months), true
}

// addMonthsClamped adds n calendar months to t, clamping the day of month to
// the last valid day of the target month. time.AddDate normalizes overflow
// (Jan 31 + 1 month = Mar 2/3), which drifts the billing anchor, so the
// target month is computed explicitly.
func addMonthsClamped(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	m := int(month) + n
	year += (m - 1) / 12
	m = (m-1)%12 + 1
	if m <= 0 {
		m += 12
		year--
	}
	if last := daysIn(year, time.Month(m)); day > last {
		day = last
	}
	h, min, sec := t.Clock()
	return time.Date(year, time.Month(m), day, h, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SameMonth reports whether a and b fall in the same calendar month of the
// same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
