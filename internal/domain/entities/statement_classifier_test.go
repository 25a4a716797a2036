package entities

import (
	"testing"
	"time"
)

func TestIsCurrentStatement(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    StatementStatus
		createdOn time.Time
		want      bool
	}{
		{"sent today", StatementStatusSent, now, true},
		{"sent last month", StatementStatusSent, lastMonth, false},
		{"needs review last month", StatementStatusNeedsReview, lastMonth, true},
		{"generating last month", StatementStatusGenerating, lastMonth, true},
		{"sent on first instant of month", StatementStatusSent, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"sent on last instant of month", StatementStatusSent, time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC), true},
		{"sent next month", StatementStatusSent, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCurrentStatement(tt.status, tt.createdOn, now); got != tt.want {
				t.Fatalf("IsCurrentStatement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrentMonthWindow(t *testing.T) {
	start, end := CurrentMonthWindow(time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC))

	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC)) {
		t.Fatalf("unexpected end %v", end)
	}
}
