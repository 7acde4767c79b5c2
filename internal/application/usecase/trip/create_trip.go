package trip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/driverdash/backend/internal/application/adapter"
	"github.com/driverdash/backend/internal/domain/entity"
)

// CreateTripInput represents the input for trip creation.
type CreateTripInput struct {
	UserID uuid.UUID
	Trip   DeriveInput
}

// CreateTripOutput represents the output of trip creation.
type CreateTripOutput struct {
	Trip *TripOutput
}

// CreateTripUseCase handles trip creation logic.
type CreateTripUseCase struct {
	tripRepo     adapter.TripRepository
	summaryCache adapter.SummaryCache
}

// NewCreateTripUseCase creates a new CreateTripUseCase instance.
func NewCreateTripUseCase(tripRepo adapter.TripRepository, summaryCache adapter.SummaryCache) *CreateTripUseCase {
	return &CreateTripUseCase{
		tripRepo:     tripRepo,
		summaryCache: summaryCache,
	}
}

// Execute validates the raw input, derives the trip's financial fields and
// persists the result.
func (uc *CreateTripUseCase) Execute(ctx context.Context, input CreateTripInput) (*CreateTripOutput, error) {
	derivation, err := Derive(input.Trip)
	if err != nil {
		return nil, err
	}

	t := entity.NewTrip(input.UserID)
	applyDerivation(t, derivation)

	if err := uc.tripRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)

	return &CreateTripOutput{Trip: ToTripOutput(t)}, nil
}

// invalidateSummaries drops the user's cached dashboard summaries after a
// trip write. Cache failures are logged and otherwise ignored.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate summary cache",
			"userID", userID,
			"error", err,
		)
	}
}
