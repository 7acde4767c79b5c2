package trip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driverdash/backend/internal/domain/entity"
)

// TripOutput represents a trip returned by the trip use cases.
type TripOutput struct {
	ID              uuid.UUID
	UserID          uuid.UUID
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
	EarningsPerHour *decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ToTripOutput converts a Trip entity to a TripOutput.
func ToTripOutput(t *entity.Trip) *TripOutput {
	return &TripOutput{
		ID:              t.ID,
		UserID:          t.UserID,
		Date:            t.Date,
		Distance:        t.Distance,
		FuelConsumption: t.FuelConsumption,
		FuelPrice:       t.FuelPrice,
		StartTime:       t.StartTime,
		EndTime:         t.EndTime,
		Earnings:        t.Earnings,
		LitersUsed:      t.LitersUsed,
		FuelCost:        t.FuelCost,
		WorkedMinutes:   t.WorkedMinutes,
		NetEarnings:     t.NetEarnings,
		EarningsPerKm:   t.EarningsPerKm,
		EarningsPerHour: t.EarningsPerHour,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// applyDerivation copies the parsed raw inputs and every derived field of a
// Derivation onto the trip entity.
func applyDerivation(t *entity.Trip, d *Derivation) {
	t.Date = d.Date
	t.Distance = d.Distance
	t.FuelConsumption = d.FuelConsumption
	t.FuelPrice = d.FuelPrice
	t.StartTime = d.StartTime
	t.EndTime = d.EndTime
	t.Earnings = d.Earnings
	t.LitersUsed = d.LitersUsed
	t.FuelCost = d.FuelCost
	t.WorkedMinutes = d.WorkedMinutes
	t.NetEarnings = d.NetEarnings
	t.EarningsPerKm = d.EarningsPerKm
	t.EarningsPerHour = d.EarningsPerHour
}
