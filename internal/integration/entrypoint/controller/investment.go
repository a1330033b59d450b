// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/usecase/investment"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// InvestmentController handles investment endpoints.
type InvestmentController struct {
	createUseCase     *investment.CreateInvestmentUseCase
	listUseCase       *investment.ListInvestmentsUseCase
	contributeUseCase *investment.ContributeUseCase
	withdrawUseCase   *investment.WithdrawUseCase
	updateUseCase     *investment.UpdateInvestmentUseCase
	deleteUseCase     *investment.DeleteInvestmentUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	createUseCase *investment.CreateInvestmentUseCase,
	listUseCase *investment.ListInvestmentsUseCase,
	contributeUseCase *investment.ContributeUseCase,
	withdrawUseCase *investment.WithdrawUseCase,
	updateUseCase *investment.UpdateInvestmentUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
) *InvestmentController {
	return &InvestmentController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		contributeUseCase: contributeUseCase,
		withdrawUseCase:   withdrawUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
	}
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	var req dto.CreateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingInvestmentFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), investment.CreateInvestmentInput{
		UserID:              userID,
		Name:                req.Name,
		InitialValue:        valueobject.NewMoneyFromFloat(req.InitialValue),
		EstimatedAnnualRate: req.EstimatedAnnualRate,
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), investment.ListInvestmentsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve investments",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(output.Investments))
}

// Contribute handles POST /investments/:id/contribute requests.
func (c *InvestmentController) Contribute(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID format",
		})
		return
	}

	var req dto.InvestmentEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidEventAmount),
		})
		return
	}

	occurredAt, err := parseOptionalDate(req.OccurredAt)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid occurred_at date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), investment.ContributeInput{
		UserID:       userID,
		InvestmentID: investmentID,
		Amount:       valueobject.NewMoneyFromFloat(req.Amount),
		OccurredAt:   occurredAt,
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Withdraw handles POST /investments/:id/withdraw requests.
func (c *InvestmentController) Withdraw(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID format",
		})
		return
	}

	var req dto.InvestmentEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidEventAmount),
		})
		return
	}

	occurredAt, err := parseOptionalDate(req.OccurredAt)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid occurred_at date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.withdrawUseCase.Execute(ctx.Request.Context(), investment.WithdrawInput{
		UserID:       userID,
		InvestmentID: investmentID,
		Amount:       valueobject.NewMoneyFromFloat(req.Amount),
		OccurredAt:   occurredAt,
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WithdrawResponse{
		Investment: dto.ToInvestmentResponse(output.Investment),
		Closed:     output.Closed,
	})
}

// Update handles PATCH /investments/:id requests.
func (c *InvestmentController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID format",
		})
		return
	}

	var req dto.UpdateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), investment.UpdateInvestmentInput{
		UserID:              userID,
		InvestmentID:        investmentID,
		Name:                req.Name,
		EstimatedAnnualRate: req.EstimatedAnnualRate,
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), investment.DeleteInvestmentInput{
		UserID:       userID,
		InvestmentID: investmentID,
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleInvestmentError handles investment errors and returns appropriate HTTP responses.
func (c *InvestmentController) handleInvestmentError(ctx *gin.Context, err error) {
	var invErr *domainerror.InvestmentError
	if errors.As(err, &invErr) {
		ctx.JSON(c.getStatusCodeForInvestmentError(invErr.Code), dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInvestmentError maps investment error codes to HTTP status codes.
func (c *InvestmentController) getStatusCodeForInvestmentError(code domainerror.InvestmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvestmentNotFound, domainerror.ErrCodeNotAuthorizedInvestment:
		return http.StatusNotFound
	case domainerror.ErrCodeWithdrawalExceedsBalance:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidInvestmentValue,
		domainerror.ErrCodeInvalidInvestmentRate,
		domainerror.ErrCodeInvalidEventAmount,
		domainerror.ErrCodeMissingInvestmentFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
