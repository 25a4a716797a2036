package entities

import "time"

// CurrentMonthWindow returns the first and last instant of now's calendar month
// in now's location.
func CurrentMonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// IsCurrentStatement reports whether a statement is still "current": either it
// has not been sent, or it was created during the current month.
func IsCurrentStatement(status StatementStatus, createdOn, now time.Time) bool {
	if status != StatementStatusSent {
		return true
	}
	start, end := CurrentMonthWindow(now)
	return !createdOn.Before(start) && !createdOn.After(end)
}
