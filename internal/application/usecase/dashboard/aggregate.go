// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/driverdash/backend/internal/domain/entity"
)

// Totals represents aggregated financial totals over a set of trips.
// Averages are decimal zero when their denominator is zero: an empty period
// legitimately has zero averages, unlike a single zero-duration trip whose
// per-hour rate is undefined.
type Totals struct {
	Earnings      decimal.Decimal
	NetEarnings   decimal.Decimal
	Distance      decimal.Decimal
	FuelCost      decimal.Decimal
	WorkedMinutes int
	TripCount     int

	AvgEarningsPerHour decimal.Decimal
	AvgEarningsPerKm   decimal.Decimal
}

// ChartPoint represents per-day sums of derived trip fields for charting.
type ChartPoint struct {
	Date        time.Time
	Earnings    decimal.Decimal
	Expenses    decimal.Decimal // fuel cost
	NetEarnings decimal.Decimal
	Distance    decimal.Decimal
	Minutes     int
}

// Summarize aggregates the trips whose date falls within [start, end]
// inclusive. It is total: any input, including an empty slice, yields a
// well-defined result and it never errors.
func Summarize(trips []*entity.Trip, start, end time.Time) Totals {
	totals := Totals{
		Earnings:           decimal.Zero,
		NetEarnings:        decimal.Zero,
		Distance:           decimal.Zero,
		FuelCost:           decimal.Zero,
		AvgEarningsPerHour: decimal.Zero,
		AvgEarningsPerKm:   decimal.Zero,
	}

	startDay := dateOnly(start)
	endDay := dateOnly(end)

	for _, t := range trips {
		day := dateOnly(t.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		totals.Earnings = totals.Earnings.Add(t.Earnings)
		totals.NetEarnings = totals.NetEarnings.Add(t.NetEarnings)
		totals.Distance = totals.Distance.Add(t.Distance)
		totals.FuelCost = totals.FuelCost.Add(t.FuelCost)
		totals.WorkedMinutes += t.WorkedMinutes
		totals.TripCount++
	}

	if totals.WorkedMinutes > 0 {
		hours := decimal.NewFromInt(int64(totals.WorkedMinutes)).Div(decimal.NewFromInt(60))
		totals.AvgEarningsPerHour = totals.NetEarnings.Div(hours)
	}
	if totals.Distance.IsPositive() {
		totals.AvgEarningsPerKm = totals.NetEarnings.Div(totals.Distance)
	}

	return totals
}

// BuildTimeSeries groups trips by calendar date and returns one ChartPoint
// per day in [start, end] inclusive, ascending. Days without trips are
// present with all sums zero so charts render a continuous axis.
func BuildTimeSeries(trips []*entity.Trip, start, end time.Time) []ChartPoint {
	startDay := dateOnly(start)
	endDay := dateOnly(end)
	if endDay.Before(startDay) {
		return []ChartPoint{}
	}

	byDay := make(map[string]*ChartPoint)
	for _, t := range trips {
		day := dateOnly(t.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		key := day.Format("2006-01-02")
		point, ok := byDay[key]
		if !ok {
			point = &ChartPoint{
				Date:        day,
				Earnings:    decimal.Zero,
				Expenses:    decimal.Zero,
				NetEarnings: decimal.Zero,
				Distance:    decimal.Zero,
			}
			byDay[key] = point
		}
		point.Earnings = point.Earnings.Add(t.Earnings)
		point.Expenses = point.Expenses.Add(t.FuelCost)
		point.NetEarnings = point.NetEarnings.Add(t.NetEarnings)
		point.Distance = point.Distance.Add(t.Distance)
		point.Minutes += t.WorkedMinutes
	}

	var series []ChartPoint
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if point, ok := byDay[day.Format("2006-01-02")]; ok {
			series = append(series, *point)
		} else {
			series = append(series, ChartPoint{
				Date:        day,
				Earnings:    decimal.Zero,
				Expenses:    decimal.Zero,
				NetEarnings: decimal.Zero,
				Distance:    decimal.Zero,
			})
		}
	}

	return series
}

// MostRecent returns up to n trips sorted latest date first, ties broken by
// most recent creation. The input slice is not modified.
func MostRecent(trips []*entity.Trip, n int) []*entity.Trip {
	if n <= 0 {
		return []*entity.Trip{}
	}

	sorted := make([]*entity.Trip, len(trips))
	copy(sorted, trips)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := dateOnly(sorted[i].Date), dateOnly(sorted[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
