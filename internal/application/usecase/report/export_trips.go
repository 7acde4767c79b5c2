// Package report contains report export use cases.
package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/driverdash/backend/internal/application/adapter"
	domainerror "github.com/driverdash/backend/internal/domain/error"
)

// notApplicable marks rate cells that have no defined value, such as the
// per-hour rate of a zero-duration trip.
const notApplicable = "N/A"

// ExportTripsInput represents the input for a trip export.
type ExportTripsInput struct {
	UserID    uuid.UUID
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// ExportTripsOutput represents the output of a trip export: a header row
// followed by one row per trip, oldest first.
type ExportTripsOutput struct {
	Header []string
	Rows   [][]string
}

// ExportTripsUseCase flattens a user's trips within a date range into ordered
// rows ready for CSV rendering. Cells carry raw values; formatting belongs to
// the consumer.
type ExportTripsUseCase struct {
	tripRepo adapter.TripRepository
}

// NewExportTripsUseCase creates a new ExportTripsUseCase instance.
func NewExportTripsUseCase(tripRepo adapter.TripRepository) *ExportTripsUseCase {
	return &ExportTripsUseCase{
		tripRepo: tripRepo,
	}
}

var exportHeader = []string{
	"date",
	"start_time",
	"end_time",
	"distance_km",
	"fuel_consumption_km_per_l",
	"fuel_price",
	"liters_used",
	"fuel_cost",
	"earnings",
	"net_earnings",
	"worked_minutes",
	"earnings_per_km",
	"earnings_per_hour",
}

// Execute builds the export rows for the user's trips in [StartDate, EndDate].
func (uc *ExportTripsUseCase) Execute(ctx context.Context, input ExportTripsInput) (*ExportTripsOutput, error) {
	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"start date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDateRange,
		)
	}
	end, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDateRange,
		)
	}
	if end.Before(start) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	trips, err := uc.tripRepo.FindByUserAndDateRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips for export: %w", err)
	}

	rows := make([][]string, len(trips))
	for i, t := range trips {
		perHour := notApplicable
		if t.EarningsPerHour != nil {
			perHour = t.EarningsPerHour.String()
		}
		rows[i] = []string{
			t.Date.Format("2006-01-02"),
			t.StartTime,
			t.EndTime,
			t.Distance.String(),
			t.FuelConsumption.String(),
			t.FuelPrice.String(),
			t.LitersUsed.String(),
			t.FuelCost.String(),
			t.Earnings.String(),
			t.NetEarnings.String(),
			strconv.Itoa(t.WorkedMinutes),
			t.EarningsPerKm.String(),
			perHour,
		}
	}

	return &ExportTripsOutput{
		Header: exportHeader,
		Rows:   rows,
	}, nil
}
