// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docuintelli/backend/internal/application/usecase/plan"
	"github.com/docuintelli/backend/internal/domain/entity"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
	"github.com/docuintelli/backend/internal/integration/entrypoint/dto"
	"github.com/docuintelli/backend/internal/integration/entrypoint/middleware"
)

// PlanController handles plan compliance endpoints.
type PlanController struct {
	complianceUseCase *plan.CheckComplianceUseCase
}

// NewPlanController creates a new plan controller instance.
func NewPlanController(complianceUseCase *plan.CheckComplianceUseCase) *PlanController {
	return &PlanController{
		complianceUseCase: complianceUseCase,
	}
}

// CheckCompliance handles GET /plans/compliance requests. The tier query
// parameter names the tier to check against, typically ahead of a downgrade.
func (c *PlanController) CheckCompliance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	tier := ctx.Query("tier")
	if tier == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "tier query parameter is required",
			Code:  string(domainerror.ErrCodeInvalidPlanTier),
		})
		return
	}

	output, err := c.complianceUseCase.Execute(ctx.Request.Context(), plan.CheckComplianceInput{
		UserID:     userID,
		TargetTier: entity.PlanTier(tier),
	})
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComplianceResponse(output))
}

// handlePlanError handles plan errors and returns appropriate HTTP responses.
func (c *PlanController) handlePlanError(ctx *gin.Context, err error) {
	var planErr *domainerror.PlanError
	if errors.As(err, &planErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
