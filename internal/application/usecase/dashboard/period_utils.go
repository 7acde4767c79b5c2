package dashboard

import "time"

// Period identifies a dashboard summary preset.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// IsValidPeriod reports whether the given preset is known.
func IsValidPeriod(p Period) bool {
	return p == PeriodDay || p == PeriodWeek || p == PeriodMonth
}

// PeriodBounds returns the inclusive [start, end] date range for a preset,
// computed from the supplied reference date. The reference is a parameter,
// never read from the global clock here, so period boundaries stay
// deterministic under test.
//
// Presets: day is today only; week runs from the most recent Sunday through
// today; month runs from the first calendar day of the current month through
// today.
func PeriodBounds(period Period, today time.Time) (start, end time.Time) {
	day := dateOnly(today)

	switch period {
	case PeriodDay:
		return day, day
	case PeriodMonth:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC), day
	default: // week, also the fallback preset
		return day.AddDate(0, 0, -int(day.Weekday())), day
	}
}
