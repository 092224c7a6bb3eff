// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docuintelli/backend/internal/application/usecase/loan"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
	"github.com/docuintelli/backend/internal/integration/entrypoint/dto"
	"github.com/docuintelli/backend/internal/integration/entrypoint/middleware"
)

// LoanController handles loan payoff analysis endpoints.
type LoanController struct {
	payoffUseCase *loan.PayoffUseCase
}

// NewLoanController creates a new loan controller instance.
func NewLoanController(payoffUseCase *loan.PayoffUseCase) *LoanController {
	return &LoanController{
		payoffUseCase: payoffUseCase,
	}
}

// Payoff handles POST /loans/payoff requests. The analysis is stateless:
// nothing about the loan is persisted.
func (c *LoanController) Payoff(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.PayoffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidLoanBalance),
		})
		return
	}

	output, err := c.payoffUseCase.Execute(ctx.Request.Context(), loan.PayoffInput{
		Balance:        req.Balance,
		AnnualRate:     req.AnnualRate,
		MonthlyPayment: req.MonthlyPayment,
		ExtraPayment:   req.ExtraPayment,
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayoffResponse(output))
}

// handleLoanError handles loan errors and returns appropriate HTTP responses.
func (c *LoanController) handleLoanError(ctx *gin.Context, err error) {
	var loanErr *domainerror.LoanError
	if errors.As(err, &loanErr) {
		// All loan error codes are input validation failures
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: loanErr.Message,
			Code:  string(loanErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
