package trip

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/driverdash/backend/internal/application/adapter"
)

// UpdateTripInput represents the input for trip update. Edits always carry
// the full raw field set; the derived fields are recomputed from scratch so
// they can never drift from the inputs they describe.
type UpdateTripInput struct {
	TripID uuid.UUID
	UserID uuid.UUID
	Trip   DeriveInput
}

// UpdateTripOutput represents the output of trip update.
type UpdateTripOutput struct {
	Trip *TripOutput
}

// UpdateTripUseCase handles trip update logic.
type UpdateTripUseCase struct {
	tripRepo     adapter.TripRepository
	summaryCache adapter.SummaryCache
}

// NewUpdateTripUseCase creates a new UpdateTripUseCase instance.
func NewUpdateTripUseCase(tripRepo adapter.TripRepository, summaryCache adapter.SummaryCache) *UpdateTripUseCase {
	return &UpdateTripUseCase{
		tripRepo:     tripRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the trip update with a full re-derivation.
func (uc *UpdateTripUseCase) Execute(ctx context.Context, input UpdateTripInput) (*UpdateTripOutput, error) {
	t, err := uc.tripRepo.FindByID(ctx, input.TripID, input.UserID)
	if err != nil {
		return nil, err
	}

	derivation, err := Derive(input.Trip)
	if err != nil {
		return nil, err
	}

	applyDerivation(t, derivation)
	t.UpdatedAt = time.Now().UTC()

	if err := uc.tripRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)

	return &UpdateTripOutput{Trip: ToTripOutput(t)}, nil
}
