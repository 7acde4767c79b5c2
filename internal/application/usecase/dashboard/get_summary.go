package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driverdash/backend/internal/application/adapter"
	domainerror "github.com/driverdash/backend/internal/domain/error"
)

// recentTripLimit is how many trips the dashboard shows in its recent list.
const recentTripLimit = 5

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Period Period
}

// SummaryTotals represents the aggregate block of the dashboard response.
type SummaryTotals struct {
	TotalEarnings          decimal.Decimal `json:"total_earnings"`
	TotalNetEarnings       decimal.Decimal `json:"total_net_earnings"`
	TotalDistance          decimal.Decimal `json:"total_distance"`
	TotalFuelCost          decimal.Decimal `json:"total_fuel_cost"`
	TotalWorkedMinutes     int             `json:"total_worked_minutes"`
	TripCount              int             `json:"trip_count"`
	AverageEarningsPerHour decimal.Decimal `json:"average_earnings_per_hour"`
	AverageEarningsPerKm   decimal.Decimal `json:"average_earnings_per_km"`
}

// ChartPointOutput represents one per-day data point of the dashboard chart.
type ChartPointOutput struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	Earnings    decimal.Decimal `json:"earnings"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetEarnings decimal.Decimal `json:"net_earnings"`
	Distance    decimal.Decimal `json:"distance"`
	Minutes     int             `json:"minutes"`
}

// RecentTripOutput represents one entry of the recent trips list.
type RecentTripOutput struct {
	ID            uuid.UUID       `json:"id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Distance      decimal.Decimal `json:"distance"`
	Earnings      decimal.Decimal `json:"earnings"`
	FuelCost      decimal.Decimal `json:"fuel_cost"`
	NetEarnings   decimal.Decimal `json:"net_earnings"`
	WorkedMinutes int             `json:"worked_minutes"`
}

// GetSummaryOutput represents the full dashboard summary response.
type GetSummaryOutput struct {
	Period      Period             `json:"period"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Summary     SummaryTotals      `json:"summary"`
	ChartData   []ChartPointOutput `json:"chart_data"`
	RecentTrips []RecentTripOutput `json:"recent_trips"`
}

// GetSummaryUseCase assembles the dashboard summary for a period preset.
type GetSummaryUseCase struct {
	tripRepo     adapter.TripRepository
	summaryCache adapter.SummaryCache
	clock        adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	tripRepo adapter.TripRepository,
	summaryCache adapter.SummaryCache,
	clock adapter.Clock,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		tripRepo:     tripRepo,
		summaryCache: summaryCache,
		clock:        clock,
	}
}

// Execute computes the dashboard summary. Results are served from the summary
// cache when present; cache failures fall back to recomputation.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if !IsValidPeriod(input.Period) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be: day, week, or month",
			domainerror.ErrInvalidPeriod,
		)
	}

	today := uc.clock.Now()
	start, end := PeriodBounds(input.Period, today)
	cacheKey := fmt.Sprintf("%s:%s", input.Period, end.Format("2006-01-02"))

	if cached := uc.fromCache(ctx, input.UserID, cacheKey); cached != nil {
		return cached, nil
	}

	trips, err := uc.tripRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}

	totals := Summarize(trips, start, end)
	series := BuildTimeSeries(trips, start, end)
	recent := MostRecent(trips, recentTripLimit)

	output := &GetSummaryOutput{
		Period:    input.Period,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Summary: SummaryTotals{
			TotalEarnings:          totals.Earnings,
			TotalNetEarnings:       totals.NetEarnings,
			TotalDistance:          totals.Distance,
			TotalFuelCost:          totals.FuelCost,
			TotalWorkedMinutes:     totals.WorkedMinutes,
			TripCount:              totals.TripCount,
			AverageEarningsPerHour: totals.AvgEarningsPerHour,
			AverageEarningsPerKm:   totals.AvgEarningsPerKm,
		},
		ChartData:   make([]ChartPointOutput, len(series)),
		RecentTrips: make([]RecentTripOutput, len(recent)),
	}

	for i, point := range series {
		output.ChartData[i] = ChartPointOutput{
			Date:        point.Date.Format("2006-01-02"),
			Earnings:    point.Earnings,
			Expenses:    point.Expenses,
			NetEarnings: point.NetEarnings,
			Distance:    point.Distance,
			Minutes:     point.Minutes,
		}
	}

	for i, t := range recent {
		output.RecentTrips[i] = RecentTripOutput{
			ID:            t.ID,
			Date:          t.Date.Format("2006-01-02"),
			Distance:      t.Distance,
			Earnings:      t.Earnings,
			FuelCost:      t.FuelCost,
			NetEarnings:   t.NetEarnings,
			WorkedMinutes: t.WorkedMinutes,
		}
	}

	uc.toCache(ctx, input.UserID, cacheKey, output)

	return output, nil
}

// fromCache returns a cached summary, or nil on a miss or any cache failure.
func (uc *GetSummaryUseCase) fromCache(ctx context.Context, userID uuid.UUID, key string) *GetSummaryOutput {
	if uc.summaryCache == nil {
		return nil
	}

	payload, err := uc.summaryCache.Get(ctx, userID, key)
	if err != nil {
		slog.Warn("Summary cache read failed", "userID", userID, "key", key, "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}

	var output GetSummaryOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		slog.Warn("Discarding malformed cached summary", "userID", userID, "key", key, "error", err)
		return nil
	}
	return &output
}

// toCache stores a computed summary; failures are logged and ignored.
func (uc *GetSummaryUseCase) toCache(ctx context.Context, userID uuid.UUID, key string, output *GetSummaryOutput) {
	if uc.summaryCache == nil {
		return
	}

	payload, err := json.Marshal(output)
	if err != nil {
		return
	}
	if err := uc.summaryCache.Set(ctx, userID, key, payload); err != nil {
		slog.Warn("Summary cache write failed", "userID", userID, "key", key, "error", err)
	}
}
