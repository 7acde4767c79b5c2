// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/driverdash/backend/internal/application/usecase/trip"
)

// CreateTripRequest represents the request body for trip creation. Numeric
// fields arrive as strings so values survive JSON transport without float
// precision loss.
type CreateTripRequest struct {
	Date            string `json:"date" binding:"required"`
	Distance        string `json:"distance" binding:"required"`
	FuelConsumption string `json:"fuel_consumption" binding:"required"`
	FuelPrice       string `json:"fuel_price" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	Earnings        string `json:"earnings" binding:"required"`
}

// UpdateTripRequest represents the request body for trip update. Updates are
// full replacements: every raw field is required and the derived fields are
// recomputed from scratch.
type UpdateTripRequest struct {
	Date            string `json:"date" binding:"required"`
	Distance        string `json:"distance" binding:"required"`
	FuelConsumption string `json:"fuel_consumption" binding:"required"`
	FuelPrice       string `json:"fuel_price" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	Earnings        string `json:"earnings" binding:"required"`
}

// TripResponse represents a single trip in API responses. Decimal values are
// serialized as strings; earnings_per_hour is null for zero-duration trips.
type TripResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Date            string    `json:"date"`
	Distance        string    `json:"distance"`
	FuelConsumption string    `json:"fuel_consumption"`
	FuelPrice       string    `json:"fuel_price"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Earnings        string    `json:"earnings"`
	LitersUsed      string    `json:"liters_used"`
	FuelCost        string    `json:"fuel_cost"`
	WorkedMinutes   int       `json:"worked_minutes"`
	NetEarnings     string    `json:"net_earnings"`
	EarningsPerKm   string    `json:"earnings_per_km"`
	EarningsPerHour *string   `json:"earnings_per_hour"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TripListResponse represents the response for listing trips.
type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
}

// ToTripResponse converts a TripOutput to a TripResponse DTO.
func ToTripResponse(t *trip.TripOutput) TripResponse {
	var perHour *string
	if t.EarningsPerHour != nil {
		value := t.EarningsPerHour.String()
		perHour = &value
	}

	return TripResponse{
		ID:              t.ID.String(),
		UserID:          t.UserID.String(),
		Date:            t.Date.Format("2006-01-02"),
		Distance:        t.Distance.String(),
		FuelConsumption: t.FuelConsumption.String(),
		FuelPrice:       t.FuelPrice.String(),
		StartTime:       t.StartTime,
		EndTime:         t.EndTime,
		Earnings:        t.Earnings.String(),
		LitersUsed:      t.LitersUsed.String(),
		FuelCost:        t.FuelCost.String(),
		WorkedMinutes:   t.WorkedMinutes,
		NetEarnings:     t.NetEarnings.String(),
		EarningsPerKm:   t.EarningsPerKm.String(),
		EarningsPerHour: perHour,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToTripListResponse converts a ListTripsOutput to a TripListResponse DTO.
func ToTripListResponse(output *trip.ListTripsOutput) TripListResponse {
	trips := make([]TripResponse, len(output.Trips))
	for i, t := range output.Trips {
		trips[i] = ToTripResponse(t)
	}
	return TripListResponse{Trips: trips}
}
