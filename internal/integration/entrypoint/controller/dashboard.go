// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/dashboard"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/dto"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard and reporting endpoints.
type DashboardController struct {
	insightsUseCase    *dashboard.GetInsightsUseCase
	healthScoreUseCase *dashboard.GetHealthScoreUseCase
	trendsUseCase      *dashboard.GetTrendsUseCase
	sendDigestUseCase  *dashboard.SendDigestUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	insightsUseCase *dashboard.GetInsightsUseCase,
	healthScoreUseCase *dashboard.GetHealthScoreUseCase,
	trendsUseCase *dashboard.GetTrendsUseCase,
	sendDigestUseCase *dashboard.SendDigestUseCase,
) *DashboardController {
	return &DashboardController{
		insightsUseCase:    insightsUseCase,
		healthScoreUseCase: healthScoreUseCase,
		trendsUseCase:      trendsUseCase,
		sendDigestUseCase:  sendDigestUseCase,
	}
}

// GetInsights handles GET /dashboard/insights requests.
func (c *DashboardController) GetInsights(ctx *gin.Context) {
	userID, start, end, ok := dashboardParams(ctx)
	if !ok {
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), dashboard.GetInsightsInput{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output))
}

// GetHealthScore handles GET /dashboard/health-score requests.
func (c *DashboardController) GetHealthScore(ctx *gin.Context) {
	userID, start, end, ok := dashboardParams(ctx)
	if !ok {
		return
	}

	output, err := c.healthScoreUseCase.Execute(ctx.Request.Context(), dashboard.GetHealthScoreInput{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthScoreResponse{
		Score:  output.Score,
		Label:  output.Label,
		Totals: dto.ToZoneTotalsResponse(output.Totals),
	})
}

// GetTrends handles GET /dashboard/trends requests.
func (c *DashboardController) GetTrends(ctx *gin.Context) {
	userID, start, end, ok := dashboardParams(ctx)
	if !ok {
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), dashboard.GetTrendsInput{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// SendDigest handles POST /dashboard/digest requests.
func (c *DashboardController) SendDigest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if _, err := c.sendDigestUseCase.Execute(ctx.Request.Context(), dashboard.SendDigestInput{
		UserID: userID,
	}); err != nil {
		handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Digest sent"})
}

// dashboardParams extracts the authenticated user and the start_date and
// end_date query parameters. Writes the error response itself on failure.
func dashboardParams(ctx *gin.Context) (uuid.UUID, time.Time, time.Time, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, time.Time{}, time.Time{}, false
	}

	start, err := time.Parse(dateLayout, ctx.Query("start_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date must be YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dateLayout, ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date must be YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return uuid.Nil, time.Time{}, time.Time{}, false
	}

	return userID, start, end, true
}

// handleDashboardError maps dashboard errors to HTTP responses.
func handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		status := http.StatusBadRequest
		if dashErr.Code == domainerror.ErrCodeDigestDisabled {
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
