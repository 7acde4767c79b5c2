package trip

import (
	"context"

	"github.com/google/uuid"

	"github.com/driverdash/backend/internal/application/adapter"
)

// DeleteTripInput represents the input for trip deletion.
type DeleteTripInput struct {
	TripID uuid.UUID
	UserID uuid.UUID
}

// DeleteTripUseCase handles trip deletion logic.
type DeleteTripUseCase struct {
	tripRepo     adapter.TripRepository
	summaryCache adapter.SummaryCache
}

// NewDeleteTripUseCase creates a new DeleteTripUseCase instance.
func NewDeleteTripUseCase(tripRepo adapter.TripRepository, summaryCache adapter.SummaryCache) *DeleteTripUseCase {
	return &DeleteTripUseCase{
		tripRepo:     tripRepo,
		summaryCache: summaryCache,
	}
}

// Execute removes the trip if it exists and belongs to the user.
func (uc *DeleteTripUseCase) Execute(ctx context.Context, input DeleteTripInput) error {
	if err := uc.tripRepo.Delete(ctx, input.TripID, input.UserID); err != nil {
		return err
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)

	return nil
}
