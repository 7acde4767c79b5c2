// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trip represents one logged work session of a driver: the raw values entered
// on submission plus the financial facts derived from them. Derived fields are
// never set directly by callers; they are recomputed in full whenever the raw
// inputs change.
type Trip struct {
	ID     uuid.UUID
	UserID uuid.UUID

	// Raw inputs
	Date            time.Time // calendar date, zero time-of-day
	Distance        decimal.Decimal
	FuelConsumption decimal.Decimal // distance per liter
	FuelPrice       decimal.Decimal // currency per liter
	StartTime       string          // "HH:MM"
	EndTime         string          // "HH:MM"
	Earnings        decimal.Decimal // gross

	// Derived
	LitersUsed      decimal.Decimal
	FuelCost        decimal.Decimal
	WorkedMinutes   int
	NetEarnings     decimal.Decimal
	EarningsPerKm   decimal.Decimal
	EarningsPerHour *decimal.Decimal // nil when the trip has zero duration

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTrip creates a new Trip entity with a fresh identity and timestamps.
// Derived fields are expected to be filled by the derivation use case.
func NewTrip(userID uuid.UUID) *Trip {
	now := time.Now().UTC()

	return &Trip{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
