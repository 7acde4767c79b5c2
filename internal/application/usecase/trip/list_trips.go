package trip

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/driverdash/backend/internal/application/adapter"
)

// ListTripsInput represents the input for listing a user's trips.
type ListTripsInput struct {
	UserID uuid.UUID
}

// ListTripsOutput represents the output of listing trips.
type ListTripsOutput struct {
	Trips []*TripOutput
}

// ListTripsUseCase handles trip listing.
type ListTripsUseCase struct {
	tripRepo adapter.TripRepository
}

// NewListTripsUseCase creates a new ListTripsUseCase instance.
func NewListTripsUseCase(tripRepo adapter.TripRepository) *ListTripsUseCase {
	return &ListTripsUseCase{
		tripRepo: tripRepo,
	}
}

// Execute lists the user's trips, newest first.
func (uc *ListTripsUseCase) Execute(ctx context.Context, input ListTripsInput) (*ListTripsOutput, error) {
	trips, err := uc.tripRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	outputs := make([]*TripOutput, len(trips))
	for i, t := range trips {
		outputs[i] = ToTripOutput(t)
	}

	return &ListTripsOutput{Trips: outputs}, nil
}
