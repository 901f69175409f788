// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/classification"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/dto"
)

// ClassificationController handles stateless classification previews. Nothing
// here is persisted; callers review the suggested zones and confirm them
// through the categorization endpoints.
type ClassificationController struct{}

// NewClassificationController creates a new classification controller instance.
func NewClassificationController() *ClassificationController {
	return &ClassificationController{}
}

// Preview handles POST /classify requests.
func (c *ClassificationController) Preview(ctx *gin.Context) {
	var req dto.ClassifyPreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amount must be a positive decimal number",
		})
		return
	}

	result := classification.Classify(req.MerchantName, req.Description, amount)
	ctx.JSON(http.StatusOK, dto.ToClassificationResponse(result))
}

// PreviewBatch handles POST /classify/batch requests.
func (c *ClassificationController) PreviewBatch(ctx *gin.Context) {
	var req dto.ClassifyPreviewBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	items := make([]classification.ClassifyItem, 0, len(req.Items))
	for _, item := range req.Items {
		id, err := uuid.Parse(item.ID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "item IDs must be valid UUIDs",
			})
			return
		}
		amount, err := decimal.NewFromString(item.Amount)
		if err != nil || !amount.IsPositive() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "amounts must be positive decimal numbers",
			})
			return
		}
		items = append(items, classification.ClassifyItem{
			ID:           id,
			MerchantName: item.MerchantName,
			Description:  item.Description,
			Amount:       amount,
		})
	}

	results := classification.ClassifyMany(items)
	resp := dto.ClassifyPreviewBatchResponse{
		Results: make(map[string]dto.ClassificationResponse, len(results)),
	}
	for id, result := range results {
		resp.Results[id.String()] = dto.ToClassificationResponse(result)
	}

	ctx.JSON(http.StatusOK, resp)
}
