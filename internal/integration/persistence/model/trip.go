// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driverdash/backend/internal/domain/entity"
)

// TripModel represents the trips table in the database. Derived financial
// fields are persisted alongside the raw inputs so that list and export
// queries never recompute them.
type TripModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	Distance        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FuelConsumption decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FuelPrice       decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	StartTime       string          `gorm:"type:varchar(5);not null"`
	EndTime         string          `gorm:"type:varchar(5);not null"`
	Earnings        decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	// Derived fields
	LitersUsed      decimal.Decimal  `gorm:"type:decimal(12,4);not null"`
	FuelCost        decimal.Decimal  `gorm:"type:decimal(12,4);not null"`
	WorkedMinutes   int              `gorm:"type:integer;not null"`
	NetEarnings     decimal.Decimal  `gorm:"type:decimal(12,4);not null"`
	EarningsPerKm   decimal.Decimal  `gorm:"type:decimal(12,6);not null"`
	EarningsPerHour *decimal.Decimal `gorm:"type:decimal(12,6)"` // null when the trip has zero duration

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TripModel.
func (TripModel) TableName() string {
	return "trips"
}

// ToEntity converts a TripModel to a domain Trip entity.
func (m *TripModel) ToEntity() *entity.Trip {
	return &entity.Trip{
		ID:              m.ID,
		UserID:          m.UserID,
		Date:            m.Date,
		Distance:        m.Distance,
		FuelConsumption: m.FuelConsumption,
		FuelPrice:       m.FuelPrice,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		Earnings:        m.Earnings,
		LitersUsed:      m.LitersUsed,
		FuelCost:        m.FuelCost,
		WorkedMinutes:   m.WorkedMinutes,
		NetEarnings:     m.NetEarnings,
		EarningsPerKm:   m.EarningsPerKm,
		EarningsPerHour: m.EarningsPerHour,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TripFromEntity creates a TripModel from a domain Trip entity.
func TripFromEntity(trip *entity.Trip) *TripModel {
	return &TripModel{
		ID:              trip.ID,
		UserID:          trip.UserID,
		Date:            trip.Date,
		Distance:        trip.Distance,
		FuelConsumption: trip.FuelConsumption,
		FuelPrice:       trip.FuelPrice,
		StartTime:       trip.StartTime,
		EndTime:         trip.EndTime,
		Earnings:        trip.Earnings,
		LitersUsed:      trip.LitersUsed,
		FuelCost:        trip.FuelCost,
		WorkedMinutes:   trip.WorkedMinutes,
		NetEarnings:     trip.NetEarnings,
		EarningsPerKm:   trip.EarningsPerKm,
		EarningsPerHour: trip.EarningsPerHour,
		CreatedAt:       trip.CreatedAt,
		UpdatedAt:       trip.UpdatedAt,
	}
}
