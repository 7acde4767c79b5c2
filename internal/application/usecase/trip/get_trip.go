package trip

import (
	"context"

	"github.com/google/uuid"

	"github.com/driverdash/backend/internal/application/adapter"
)

// GetTripInput represents the input for fetching a single trip.
type GetTripInput struct {
	TripID uuid.UUID
	UserID uuid.UUID
}

// GetTripOutput represents the output of fetching a single trip.
type GetTripOutput struct {
	Trip *TripOutput
}

// GetTripUseCase handles single trip retrieval.
type GetTripUseCase struct {
	tripRepo adapter.TripRepository
}

// NewGetTripUseCase creates a new GetTripUseCase instance.
func NewGetTripUseCase(tripRepo adapter.TripRepository) *GetTripUseCase {
	return &GetTripUseCase{
		tripRepo: tripRepo,
	}
}

// Execute retrieves a trip owned by the user.
func (uc *GetTripUseCase) Execute(ctx context.Context, input GetTripInput) (*GetTripOutput, error) {
	t, err := uc.tripRepo.FindByID(ctx, input.TripID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetTripOutput{Trip: ToTripOutput(t)}, nil
}
