// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/usecase/ledger"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles ledger entry endpoints.
type LedgerController struct {
	createUseCase       *ledger.CreateEntryUseCase
	listUseCase         *ledger.ListEntriesUseCase
	updateUseCase       *ledger.UpdateEntryUseCase
	deleteUseCase       *ledger.DeleteEntryUseCase
	deleteFutureUseCase *ledger.DeleteFutureEntriesUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	createUseCase *ledger.CreateEntryUseCase,
	listUseCase *ledger.ListEntriesUseCase,
	updateUseCase *ledger.UpdateEntryUseCase,
	deleteUseCase *ledger.DeleteEntryUseCase,
	deleteFutureUseCase *ledger.DeleteFutureEntriesUseCase,
) *LedgerController {
	return &LedgerController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		deleteFutureUseCase: deleteFutureUseCase,
	}
}

// Create handles POST /entries requests.
func (c *LedgerController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), ledger.CreateEntryInput{
		UserID:      userID,
		Type:        entity.EntryType(req.Type),
		Category:    req.Category,
		Amount:      valueobject.NewMoneyFromFloat(req.Amount),
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// List handles GET /entries requests. Date range, entry types and source
// are optional query filters.
func (c *LedgerController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	input := ledger.ListEntriesInput{
		UserID: userID,
	}

	if fromStr := ctx.Query("from"); fromStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid from date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &from
	}

	if toStr := ctx.Query("to"); toStr != "" {
		to, err := parseDate(toStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid to date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &to
	}

	if typesStr := ctx.Query("types"); typesStr != "" {
		for _, t := range strings.Split(typesStr, ",") {
			input.Types = append(input.Types, entity.EntryType(strings.TrimSpace(t)))
		}
	}

	if sourceIDStr := ctx.Query("source_id"); sourceIDStr != "" {
		sourceID, err := uuid.Parse(sourceIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid source ID format",
			})
			return
		}
		input.SourceID = &sourceID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}

// Update handles PATCH /entries/:id requests.
func (c *LedgerController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := ledger.UpdateEntryInput{
		UserID:      userID,
		EntryID:     entryID,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	}
	if req.Type != nil {
		entryType := entity.EntryType(*req.Type)
		input.Type = &entryType
	}
	if req.Amount != nil {
		amount := valueobject.NewMoneyFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *LedgerController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteEntryInput{
		UserID:  userID,
		EntryID: entryID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteFuture handles POST /entries/delete-future requests: it removes
// every upcoming entry produced by one source and deactivates that
// source.
func (c *LedgerController) DeleteFuture(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	var req dto.DeleteFutureEntriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSourceType),
		})
		return
	}

	sourceID, err := uuid.Parse(req.SourceID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid source ID format",
		})
		return
	}

	output, err := c.deleteFutureUseCase.Execute(ctx.Request.Context(), ledger.DeleteFutureEntriesInput{
		UserID:     userID,
		SourceType: entity.SourceType(req.SourceType),
		SourceID:   sourceID,
	})
	if err != nil {
		c.handleDeleteFutureError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteFutureEntriesResponse{
		DeletedCount: output.DeletedCount,
	})
}

// handleLedgerError handles ledger errors and returns appropriate HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(c.getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// handleDeleteFutureError handles errors from the future-entry cascade,
// which can surface recurrence and installment errors as well as ledger
// ones.
func (c *LedgerController) handleDeleteFutureError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurrenceError
	if errors.As(err, &recErr) {
		status := http.StatusInternalServerError
		switch recErr.Code {
		case domainerror.ErrCodeObligationNotFound, domainerror.ErrCodeNotAuthorizedObligation:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	var insErr *domainerror.InstallmentError
	if errors.As(err, &insErr) {
		status := http.StatusInternalServerError
		switch insErr.Code {
		case domainerror.ErrCodePurchaseNotFound, domainerror.ErrCodeNotAuthorizedPurchase:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: insErr.Message,
			Code:  string(insErr.Code),
		})
		return
	}

	c.handleLedgerError(ctx, err)
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func (c *LedgerController) getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound, domainerror.ErrCodeNotAuthorizedEntry:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidEntryType,
		domainerror.ErrCodeInvalidEntryAmount,
		domainerror.ErrCodeInvalidSourceType,
		domainerror.ErrCodeMissingEntryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
