// Package trip contains trip-related use cases.
package trip

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/driverdash/backend/internal/domain/error"
)

const minutesPerDay = 24 * 60

// DeriveInput carries the raw trip fields exactly as entered by the user.
// Numeric fields arrive as strings (form data) and are parsed and validated
// here; no implicit coercion happens anywhere else.
type DeriveInput struct {
	Date            string // YYYY-MM-DD
	Distance        string
	FuelConsumption string // distance per liter
	FuelPrice       string // currency per liter
	StartTime       string // HH:MM
	EndTime         string // HH:MM
	Earnings        string // gross, non-negative
}

// Derivation bundles the parsed raw inputs with every derived financial fact.
// It is produced in one shot: a validation failure yields no partial result.
type Derivation struct {
	Date            time.Time
	Distance        decimal.Decimal
	FuelConsumption decimal.Decimal
	FuelPrice       decimal.Decimal
	StartTime       string
	EndTime         string
	Earnings        decimal.Decimal

	LitersUsed      decimal.Decimal
	FuelCost        decimal.Decimal
	WorkedMinutes   int
	NetEarnings     decimal.Decimal
	EarningsPerKm   decimal.Decimal
	EarningsPerHour *decimal.Decimal // nil when WorkedMinutes == 0
}

// Derive validates raw trip input and computes all derived fields.
//
// Worked time is the difference between end and start time of day; a negative
// difference is taken as a shift crossing midnight once and gets a full day
// added. start == end yields zero worked minutes, in which case the per-hour
// rate is undefined and reported as nil rather than a division result.
func Derive(input DeriveInput) (*Derivation, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeInvalidTripDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidTripDate,
		)
	}

	distance, err := parsePositive(input.Distance)
	if err != nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeInvalidDistance,
			"distance must be a positive number",
			domainerror.ErrInvalidDistance,
		)
	}

	fuelConsumption, err := parsePositive(input.FuelConsumption)
	if err != nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeInvalidFuelConsumption,
			"fuel consumption must be a positive number",
			domainerror.ErrInvalidFuelConsumption,
		)
	}

	fuelPrice, err := parsePositive(input.FuelPrice)
	if err != nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeInvalidFuelPrice,
			"fuel price must be a positive number",
			domainerror.ErrInvalidFuelPrice,
		)
	}

	earnings, err := decimal.NewFromString(input.Earnings)
	if err != nil || earnings.IsNegative() {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeInvalidEarnings,
			"earnings must be a non-negative number",
			domainerror.ErrInvalidEarnings,
		)
	}

	startMinutes, err := parseTimeOfDay(input.StartTime)
	if err != nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeInvalidStartTime,
			"start time must be in HH:MM 24-hour format",
			domainerror.ErrInvalidTimeOfDay,
		)
	}

	endMinutes, err := parseTimeOfDay(input.EndTime)
	if err != nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeInvalidEndTime,
			"end time must be in HH:MM 24-hour format",
			domainerror.ErrInvalidTimeOfDay,
		)
	}

	litersUsed := distance.Div(fuelConsumption)
	fuelCost := litersUsed.Mul(fuelPrice)

	workedMinutes := endMinutes - startMinutes
	if workedMinutes < 0 {
		workedMinutes += minutesPerDay
	}

	netEarnings := earnings.Sub(fuelCost)
	earningsPerKm := netEarnings.Div(distance)

	var earningsPerHour *decimal.Decimal
	if workedMinutes > 0 {
		hours := decimal.NewFromInt(int64(workedMinutes)).Div(decimal.NewFromInt(60))
		rate := netEarnings.Div(hours)
		earningsPerHour = &rate
	}

	return &Derivation{
		Date:            date,
		Distance:        distance,
		FuelConsumption: fuelConsumption,
		FuelPrice:       fuelPrice,
		StartTime:       formatTimeOfDay(startMinutes),
		EndTime:         formatTimeOfDay(endMinutes),
		Earnings:        earnings,
		LitersUsed:      litersUsed,
		FuelCost:        fuelCost,
		WorkedMinutes:   workedMinutes,
		NetEarnings:     netEarnings,
		EarningsPerKm:   earningsPerKm,
		EarningsPerHour: earningsPerHour,
	}, nil
}

// parsePositive parses a decimal string and requires it to be strictly positive.
func parsePositive(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("value %s is not positive", value)
	}
	return d, nil
}

// parseTimeOfDay parses an HH:MM string into minutes since midnight.
func parseTimeOfDay(value string) (int, error) {
	hourPart, minutePart, found := strings.Cut(value, ":")
	if !found {
		return 0, fmt.Errorf("malformed time %q", value)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %q out of range", hourPart)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %q out of range", minutePart)
	}
	return hour*60 + minute, nil
}

// formatTimeOfDay renders minutes since midnight back to zero-padded HH:MM.
func formatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
