// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/user"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/dto"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/entrypoint/middleware"
)

// UserController handles profile and settings endpoints.
type UserController struct {
	updateSettingsUseCase *user.UpdateSettingsUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(updateSettingsUseCase *user.UpdateSettingsUseCase) *UserController {
	return &UserController{
		updateSettingsUseCase: updateSettingsUseCase,
	}
}

// UpdateSettings handles PATCH /users/me requests.
func (c *UserController) UpdateSettings(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := user.UpdateSettingsInput{
		UserID:        userID,
		Name:          req.Name,
		ClearIncome:   req.ClearIncome,
		DigestEnabled: req.DigestEnabled,
	}
	if req.MonthlyIncome != nil {
		income, err := decimal.NewFromString(*req.MonthlyIncome)
		if err != nil || !income.IsPositive() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Monthly income must be a positive amount",
			})
			return
		}
		input.MonthlyIncome = &income
	}

	output, err := c.updateSettingsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
