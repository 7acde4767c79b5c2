package dashboard

import (
	"testing"
	"time"
)

func TestIsValidPeriod(t *testing.T) {
	for _, p := range []Period{PeriodDay, PeriodWeek, PeriodMonth} {
		if !IsValidPeriod(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}
	for _, p := range []Period{"", "year", "Day", "weekly"} {
		if IsValidPeriod(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		name      string
		period    Period
		today     string
		wantStart string
		wantEnd   string
	}{
		{name: "day is today only", period: PeriodDay, today: "2025-03-12", wantStart: "2025-03-12", wantEnd: "2025-03-12"},
		{name: "week starts on most recent sunday", period: PeriodWeek, today: "2025-03-12", wantStart: "2025-03-09", wantEnd: "2025-03-12"},
		{name: "week on a sunday is that sunday", period: PeriodWeek, today: "2025-03-09", wantStart: "2025-03-09", wantEnd: "2025-03-09"},
		{name: "week on a saturday spans seven days", period: PeriodWeek, today: "2025-03-15", wantStart: "2025-03-09", wantEnd: "2025-03-15"},
		{name: "week can cross a month boundary", period: PeriodWeek, today: "2025-04-02", wantStart: "2025-03-30", wantEnd: "2025-04-02"},
		{name: "month starts on the first", period: PeriodMonth, today: "2025-03-12", wantStart: "2025-03-01", wantEnd: "2025-03-12"},
		{name: "month on the first is one day", period: PeriodMonth, today: "2025-03-01", wantStart: "2025-03-01", wantEnd: "2025-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PeriodBounds(tt.period, day(tt.today))
			if got := start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("expected start %s, got %s", tt.wantStart, got)
			}
			if got := end.Format("2006-01-02"); got != tt.wantEnd {
				t.Errorf("expected end %s, got %s", tt.wantEnd, got)
			}
		})
	}
}

func TestPeriodBounds_IgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC)
	start, end := PeriodBounds(PeriodDay, late)

	if start.Hour() != 0 || end.Hour() != 0 {
		t.Errorf("expected bounds truncated to midnight, got %s / %s", start, end)
	}
	if start.Format("2006-01-02") != "2025-03-12" {
		t.Errorf("expected date preserved, got %s", start)
	}
}
