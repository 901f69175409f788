// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/categorization"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/dto"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/middleware"
)

// CategorizationController handles zone decision endpoints.
type CategorizationController struct {
	categorizeUseCase     *categorization.CategorizeTransactionUseCase
	autoCategorizeUseCase *categorization.AutoCategorizeUseCase
	zoneSummaryUseCase    *categorization.GetZoneSummaryUseCase
}

// NewCategorizationController creates a new categorization controller instance.
func NewCategorizationController(
	categorizeUseCase *categorization.CategorizeTransactionUseCase,
	autoCategorizeUseCase *categorization.AutoCategorizeUseCase,
	zoneSummaryUseCase *categorization.GetZoneSummaryUseCase,
) *CategorizationController {
	return &CategorizationController{
		categorizeUseCase:     categorizeUseCase,
		autoCategorizeUseCase: autoCategorizeUseCase,
		zoneSummaryUseCase:    zoneSummaryUseCase,
	}
}

// Categorize handles PUT /transactions/:id/zone requests.
func (c *CategorizationController) Categorize(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	var req dto.CategorizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidZone),
		})
		return
	}

	zone, ok := entity.ParseZone(req.Zone)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "zone must be green, yellow or red",
			Code:  string(domainerror.ErrCodeInvalidZone),
		})
		return
	}

	output, err := c.categorizeUseCase.Execute(ctx.Request.Context(), categorization.CategorizeTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
		Zone:          zone,
		Note:          req.Note,
	})
	if err != nil {
		handleCategorizationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorizationResponse(output.Categorization))
}

// AutoCategorize handles POST /categorizations/auto requests.
func (c *CategorizationController) AutoCategorize(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AutoCategorizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.autoCategorizeUseCase.Execute(ctx.Request.Context(), categorization.AutoCategorizeInput{
		UserID:   userID,
		Apply:    req.Apply,
		ApplyAll: req.ApplyAll,
	})
	if err != nil {
		handleCategorizationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAutoCategorizeResponse(output))
}

// Summary handles GET /categorizations/summary requests.
func (c *CategorizationController) Summary(ctx *gin.Context) {
	userID, start, end, ok := dashboardParams(ctx)
	if !ok {
		return
	}

	output, err := c.zoneSummaryUseCase.Execute(ctx.Request.Context(), categorization.GetZoneSummaryInput{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		handleCategorizationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToZoneTotalsResponse(output.Totals))
}

// handleCategorizationError maps categorization errors to HTTP responses.
func handleCategorizationError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategorizationError
	if errors.As(err, &catErr) {
		status := http.StatusBadRequest
		if catErr.Code == domainerror.ErrCodeCategorizationNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		ctx.JSON(statusCodeForTransactionError(txErr.Code), dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
