// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driverdash/backend/internal/application/usecase/report"
	domainerror "github.com/driverdash/backend/internal/domain/error"
	"github.com/driverdash/backend/internal/integration/entrypoint/dto"
	"github.com/driverdash/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report export endpoints.
type ReportController struct {
	exportUseCase *report.ExportTripsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(exportUseCase *report.ExportTripsUseCase) *ReportController {
	return &ReportController{
		exportUseCase: exportUseCase,
	}
}

// ExportTrips handles GET /reports/trips requests. It streams the user's
// trips within [start_date, end_date] as a CSV attachment.
func (c *ReportController) ExportTrips(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := report.ExportTripsInput{
		UserID:    userID,
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
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
		return
	}

	filename := fmt.Sprintf("trips_%s_%s.csv", input.StartDate, input.EndDate)
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Status(http.StatusOK)

	writer := csv.NewWriter(ctx.Writer)
	if err := writer.Write(output.Header); err != nil {
		return
	}
	// WriteAll flushes on completion
	_ = writer.WriteAll(output.Rows)
}
