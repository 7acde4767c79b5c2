// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/driverdash/backend/internal/application/usecase/trip"
	domainerror "github.com/driverdash/backend/internal/domain/error"
	"github.com/driverdash/backend/internal/integration/entrypoint/dto"
	"github.com/driverdash/backend/internal/integration/entrypoint/middleware"
)

// TripController handles trip endpoints.
type TripController struct {
	createUseCase *trip.CreateTripUseCase
	listUseCase   *trip.ListTripsUseCase
	getUseCase    *trip.GetTripUseCase
	updateUseCase *trip.UpdateTripUseCase
	deleteUseCase *trip.DeleteTripUseCase
}

// NewTripController creates a new trip controller instance.
func NewTripController(
	createUseCase *trip.CreateTripUseCase,
	listUseCase *trip.ListTripsUseCase,
	getUseCase *trip.GetTripUseCase,
	updateUseCase *trip.UpdateTripUseCase,
	deleteUseCase *trip.DeleteTripUseCase,
) *TripController {
	return &TripController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /trips requests.
func (c *TripController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTripFields),
		})
		return
	}

	input := trip.CreateTripInput{
		UserID: userID,
		Trip: trip.DeriveInput{
			Date:            req.Date,
			Distance:        req.Distance,
			FuelConsumption: req.FuelConsumption,
			FuelPrice:       req.FuelPrice,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Earnings:        req.Earnings,
		},
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTripResponse(output.Trip))
}

// List handles GET /trips requests.
func (c *TripController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), trip.ListTripsInput{UserID: userID})
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTripListResponse(output))
}

// Get handles GET /trips/:id requests.
func (c *TripController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	tripID, ok := parseTripID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), trip.GetTripInput{
		TripID: tripID,
		UserID: userID,
	})
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTripResponse(output.Trip))
}

// Update handles PUT /trips/:id requests.
func (c *TripController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	tripID, ok := parseTripID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTripFields),
		})
		return
	}

	input := trip.UpdateTripInput{
		TripID: tripID,
		UserID: userID,
		Trip: trip.DeriveInput{
			Date:            req.Date,
			Distance:        req.Distance,
			FuelConsumption: req.FuelConsumption,
			FuelPrice:       req.FuelPrice,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Earnings:        req.Earnings,
		},
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTripResponse(output.Trip))
}

// Delete handles DELETE /trips/:id requests.
func (c *TripController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	tripID, ok := parseTripID(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), trip.DeleteTripInput{
		TripID: tripID,
		UserID: userID,
	})
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTripError handles trip errors and returns appropriate HTTP responses.
func (c *TripController) handleTripError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrTripNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Trip not found",
			Code:  string(domainerror.ErrCodeTripNotFound),
		})
		return
	}

	var tripErr *domainerror.TripError
	if errors.As(err, &tripErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: tripErr.Message,
			Code:  string(tripErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// parseTripID extracts and validates the :id path parameter. On failure it
// writes the error response and returns false.
func parseTripID(ctx *gin.Context) (uuid.UUID, bool) {
	tripID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid trip ID format",
			Code:  string(domainerror.ErrCodeTripNotFound),
		})
		return uuid.Nil, false
	}
	return tripID, true
}

// respondUnauthenticated writes the standard missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
