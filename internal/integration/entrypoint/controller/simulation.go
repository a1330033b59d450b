// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-planner/backend/internal/application/usecase/simulation"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// SimulationController handles projection endpoints. Simulations are
// stateless, nothing is persisted.
type SimulationController struct {
	projectGrowthUseCase   *simulation.ProjectGrowthUseCase
	requiredPaymentUseCase *simulation.RequiredPaymentUseCase
}

// NewSimulationController creates a new simulation controller instance.
func NewSimulationController(
	projectGrowthUseCase *simulation.ProjectGrowthUseCase,
	requiredPaymentUseCase *simulation.RequiredPaymentUseCase,
) *SimulationController {
	return &SimulationController{
		projectGrowthUseCase:   projectGrowthUseCase,
		requiredPaymentUseCase: requiredPaymentUseCase,
	}
}

// ProjectGrowth handles POST /simulations/growth requests.
func (c *SimulationController) ProjectGrowth(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	var req dto.ProjectGrowthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSimulationInput),
		})
		return
	}

	output, err := c.projectGrowthUseCase.Execute(ctx.Request.Context(), simulation.ProjectGrowthInput{
		Initial:             valueobject.NewMoneyFromFloat(req.Initial),
		MonthlyContribution: valueobject.NewMoneyFromFloat(req.MonthlyContribution),
		AnnualRatePercent:   req.AnnualRate,
		Years:               req.Years,
	})
	if err != nil {
		c.handleProjectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectGrowthResponse(output))
}

// RequiredPayment handles POST /simulations/required-payment requests.
func (c *SimulationController) RequiredPayment(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	var req dto.RequiredPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSimulationInput),
		})
		return
	}

	output, err := c.requiredPaymentUseCase.Execute(ctx.Request.Context(), simulation.RequiredPaymentInput{
		TargetAmount:      valueobject.NewMoneyFromFloat(req.TargetAmount),
		AnnualRatePercent: req.AnnualRate,
		Years:             req.Years,
	})
	if err != nil {
		c.handleProjectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRequiredPaymentResponse(output))
}

// handleProjectionError handles projection errors and returns appropriate HTTP responses.
func (c *SimulationController) handleProjectionError(ctx *gin.Context, err error) {
	var prjErr *domainerror.ProjectionError
	if errors.As(err, &prjErr) {
		ctx.JSON(c.getStatusCodeForProjectionError(prjErr.Code), dto.ErrorResponse{
			Error: prjErr.Message,
			Code:  string(prjErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProjectionError maps projection error codes to HTTP status codes.
func (c *SimulationController) getStatusCodeForProjectionError(code domainerror.ProjectionErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidRate,
		domainerror.ErrCodeInvalidTerm,
		domainerror.ErrCodeInvalidSimulationInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
