// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/usecase/recurrence"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// RecurringController handles recurring obligation endpoints.
type RecurringController struct {
	createUseCase    *recurrence.CreateObligationUseCase
	listUseCase      *recurrence.ListObligationsUseCase
	updateUseCase    *recurrence.UpdateObligationUseCase
	setActiveUseCase *recurrence.SetObligationActiveUseCase
	deleteUseCase    *recurrence.DeleteObligationUseCase
}

// NewRecurringController creates a new recurring obligation controller instance.
func NewRecurringController(
	createUseCase *recurrence.CreateObligationUseCase,
	listUseCase *recurrence.ListObligationsUseCase,
	updateUseCase *recurrence.UpdateObligationUseCase,
	setActiveUseCase *recurrence.SetObligationActiveUseCase,
	deleteUseCase *recurrence.DeleteObligationUseCase,
) *RecurringController {
	return &RecurringController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		updateUseCase:    updateUseCase,
		setActiveUseCase: setActiveUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	var req dto.CreateObligationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingObligationFields),
		})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingObligationFields),
		})
		return
	}

	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingObligationFields),
		})
		return
	}

	input := recurrence.CreateObligationInput{
		UserID:      userID,
		Description: req.Description,
		Category:    req.Category,
		Amount:      valueobject.NewMoneyFromFloat(req.Amount),
		Kind:        entity.ObligationKind(req.Kind),
		StartDate:   startDate,
		EndDate:     endDate,
		Frequency:   entity.Frequency(req.Frequency),
		HorizonCap:  req.HorizonCap,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurrenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateObligationResponse{
		Obligation:        dto.ToObligationResponse(output.Obligation),
		MaterializedCount: output.MaterializedCount,
	})
}

// List handles GET /recurring requests.
func (c *RecurringController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurrence.ListObligationsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve recurring obligations",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObligationListResponse(output.Obligations))
}

// Update handles PATCH /recurring/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	var req dto.UpdateObligationRequest
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

	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date format, expected YYYY-MM-DD",
		})
		return
	}

	input := recurrence.UpdateObligationInput{
		UserID:       userID,
		ObligationID: obligationID,
		Description:  req.Description,
		Category:     req.Category,
		StartDate:    startDate,
		EndDate:      endDate,
		ClearEnd:     req.ClearEnd,
		HorizonCap:   req.HorizonCap,
	}
	if req.Amount != nil {
		amount := valueobject.NewMoneyFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Frequency != nil {
		frequency := entity.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurrenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObligationResponse(output.Obligation))
}

// SetActive handles PATCH /recurring/:id/active requests.
func (c *RecurringController) SetActive(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	var req dto.SetObligationActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.setActiveUseCase.Execute(ctx.Request.Context(), recurrence.SetObligationActiveInput{
		UserID:       userID,
		ObligationID: obligationID,
		Active:       *req.Active,
	})
	if err != nil {
		c.handleRecurrenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObligationResponse(output.Obligation))
}

// Delete handles DELETE /recurring/:id requests.
func (c *RecurringController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), recurrence.DeleteObligationInput{
		UserID:       userID,
		ObligationID: obligationID,
	})
	if err != nil {
		c.handleRecurrenceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRecurrenceError handles recurrence errors and returns appropriate HTTP responses.
func (c *RecurringController) handleRecurrenceError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurrenceError
	if errors.As(err, &recErr) {
		ctx.JSON(c.getStatusCodeForRecurrenceError(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecurrenceError maps recurrence error codes to HTTP status codes.
func (c *RecurringController) getStatusCodeForRecurrenceError(code domainerror.RecurrenceErrorCode) int {
	switch code {
	case domainerror.ErrCodeObligationNotFound, domainerror.ErrCodeNotAuthorizedObligation:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidObligationKind,
		domainerror.ErrCodeInvalidObligationAmount,
		domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeEndDateBeforeStartDate,
		domainerror.ErrCodeMissingObligationFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
