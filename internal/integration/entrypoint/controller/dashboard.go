// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driverdash/backend/internal/application/usecase/dashboard"
	domainerror "github.com/driverdash/backend/internal/domain/error"
	"github.com/driverdash/backend/internal/integration/entrypoint/dto"
	"github.com/driverdash/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSummaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getSummaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests. The period query
// parameter selects the preset; it defaults to week.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	period := dashboard.Period(ctx.DefaultQuery("period", string(dashboard.PeriodWeek)))

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
