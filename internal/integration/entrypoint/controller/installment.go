// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/usecase/installment"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// InstallmentController handles installment purchase endpoints.
type InstallmentController struct {
	createUseCase *installment.CreatePurchaseUseCase
	listUseCase   *installment.ListPurchasesUseCase
	payUseCase    *installment.PayInstallmentUseCase
	updateUseCase *installment.UpdatePurchaseUseCase
	deleteUseCase *installment.DeletePurchaseUseCase
}

// NewInstallmentController creates a new installment purchase controller instance.
func NewInstallmentController(
	createUseCase *installment.CreatePurchaseUseCase,
	listUseCase *installment.ListPurchasesUseCase,
	payUseCase *installment.PayInstallmentUseCase,
	updateUseCase *installment.UpdatePurchaseUseCase,
	deleteUseCase *installment.DeletePurchaseUseCase,
) *InstallmentController {
	return &InstallmentController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		payUseCase:    payUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /installments requests.
func (c *InstallmentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	var req dto.CreatePurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingPurchaseFields),
		})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingPurchaseFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), installment.CreatePurchaseInput{
		UserID:           userID,
		Description:      req.Description,
		Category:         req.Category,
		TotalAmount:      valueobject.NewMoneyFromFloat(req.TotalAmount),
		InstallmentCount: req.InstallmentCount,
		StartDate:        startDate,
	})
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatePurchaseResponse{
		Purchase:     dto.ToPurchaseResponse(output.Purchase),
		EntriesCount: output.EntriesCount,
	})
}

// List handles GET /installments requests.
func (c *InstallmentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), installment.ListPurchasesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve installment purchases",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(output.Purchases))
}

// Pay handles POST /installments/:id/pay requests.
func (c *InstallmentController) Pay(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase ID format",
		})
		return
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), installment.PayInstallmentInput{
		UserID:     userID,
		PurchaseID: purchaseID,
	})
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PayInstallmentResponse{
		Purchase: dto.ToPurchaseResponse(output.Purchase),
		Paid:     output.Paid,
	})
}

// Update handles PATCH /installments/:id requests.
func (c *InstallmentController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase ID format",
		})
		return
	}

	var req dto.UpdatePurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected YYYY-MM-DD",
		})
		return
	}

	input := installment.UpdatePurchaseInput{
		UserID:      userID,
		PurchaseID:  purchaseID,
		Description: req.Description,
		Category:    req.Category,
		StartDate:   startDate,
	}
	if req.TotalAmount != nil {
		total := valueobject.NewMoneyFromFloat(*req.TotalAmount)
		input.TotalAmount = &total
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(output.Purchase))
}

// Delete handles DELETE /installments/:id requests.
func (c *InstallmentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), installment.DeletePurchaseInput{
		UserID:     userID,
		PurchaseID: purchaseID,
	})
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleInstallmentError handles installment errors and returns appropriate HTTP responses.
func (c *InstallmentController) handleInstallmentError(ctx *gin.Context, err error) {
	var insErr *domainerror.InstallmentError
	if errors.As(err, &insErr) {
		ctx.JSON(c.getStatusCodeForInstallmentError(insErr.Code), dto.ErrorResponse{
			Error: insErr.Message,
			Code:  string(insErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInstallmentError maps installment error codes to HTTP status codes.
func (c *InstallmentController) getStatusCodeForInstallmentError(code domainerror.InstallmentErrorCode) int {
	switch code {
	case domainerror.ErrCodePurchaseNotFound, domainerror.ErrCodeNotAuthorizedPurchase:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTotalAmount,
		domainerror.ErrCodeInvalidInstallmentCount,
		domainerror.ErrCodeMissingPurchaseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
