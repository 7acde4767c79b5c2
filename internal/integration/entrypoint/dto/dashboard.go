// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/driverdash/backend/internal/application/usecase/dashboard"
)

// DashboardSummaryResponse represents the response for the dashboard summary.
type DashboardSummaryResponse struct {
	Period      string                  `json:"period"`
	StartDate   string                  `json:"start_date"`
	EndDate     string                  `json:"end_date"`
	Summary     DashboardTotalsResponse `json:"summary"`
	ChartData   []ChartPointResponse    `json:"chart_data"`
	RecentTrips []RecentTripResponse    `json:"recent_trips"`
}

// DashboardTotalsResponse represents the aggregate totals block.
type DashboardTotalsResponse struct {
	TotalEarnings          string `json:"total_earnings"`
	TotalNetEarnings       string `json:"total_net_earnings"`
	TotalDistance          string `json:"total_distance"`
	TotalFuelCost          string `json:"total_fuel_cost"`
	TotalWorkedMinutes     int    `json:"total_worked_minutes"`
	TripCount              int    `json:"trip_count"`
	AverageEarningsPerHour string `json:"average_earnings_per_hour"`
	AverageEarningsPerKm   string `json:"average_earnings_per_km"`
}

// ChartPointResponse represents one per-day chart data point.
type ChartPointResponse struct {
	Date        string `json:"date"`
	Earnings    string `json:"earnings"`
	Expenses    string `json:"expenses"`
	NetEarnings string `json:"net_earnings"`
	Distance    string `json:"distance"`
	Minutes     int    `json:"minutes"`
}

// RecentTripResponse represents one entry of the recent trips list.
type RecentTripResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Distance      string `json:"distance"`
	Earnings      string `json:"earnings"`
	FuelCost      string `json:"fuel_cost"`
	NetEarnings   string `json:"net_earnings"`
	WorkedMinutes int    `json:"worked_minutes"`
}

// ToDashboardSummaryResponse converts a GetSummaryOutput to its response DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	response := DashboardSummaryResponse{
		Period:    string(output.Period),
		StartDate: output.StartDate,
		EndDate:   output.EndDate,
		Summary: DashboardTotalsResponse{
			TotalEarnings:          output.Summary.TotalEarnings.String(),
			TotalNetEarnings:       output.Summary.TotalNetEarnings.String(),
			TotalDistance:          output.Summary.TotalDistance.String(),
			TotalFuelCost:          output.Summary.TotalFuelCost.String(),
			TotalWorkedMinutes:     output.Summary.TotalWorkedMinutes,
			TripCount:              output.Summary.TripCount,
			AverageEarningsPerHour: output.Summary.AverageEarningsPerHour.String(),
			AverageEarningsPerKm:   output.Summary.AverageEarningsPerKm.String(),
		},
		ChartData:   make([]ChartPointResponse, len(output.ChartData)),
		RecentTrips: make([]RecentTripResponse, len(output.RecentTrips)),
	}

	for i, point := range output.ChartData {
		response.ChartData[i] = ChartPointResponse{
			Date:        point.Date,
			Earnings:    point.Earnings.String(),
			Expenses:    point.Expenses.String(),
			NetEarnings: point.NetEarnings.String(),
			Distance:    point.Distance.String(),
			Minutes:     point.Minutes,
		}
	}

	for i, t := range output.RecentTrips {
		response.RecentTrips[i] = RecentTripResponse{
			ID:            t.ID.String(),
			Date:          t.Date,
			Distance:      t.Distance.String(),
			Earnings:      t.Earnings.String(),
			FuelCost:      t.FuelCost.String(),
			NetEarnings:   t.NetEarnings.String(),
			WorkedMinutes: t.WorkedMinutes,
		}
	}

	return response
}
