// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/usecase/patrimony"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// PatrimonyController handles patrimony asset and history endpoints.
type PatrimonyController struct {
	createUseCase  *patrimony.CreateAssetUseCase
	listUseCase    *patrimony.ListAssetsUseCase
	updateUseCase  *patrimony.UpdateAssetUseCase
	deleteUseCase  *patrimony.DeleteAssetUseCase
	historyUseCase *patrimony.ReconstructHistoryUseCase
}

// NewPatrimonyController creates a new patrimony controller instance.
func NewPatrimonyController(
	createUseCase *patrimony.CreateAssetUseCase,
	listUseCase *patrimony.ListAssetsUseCase,
	updateUseCase *patrimony.UpdateAssetUseCase,
	deleteUseCase *patrimony.DeleteAssetUseCase,
	historyUseCase *patrimony.ReconstructHistoryUseCase,
) *PatrimonyController {
	return &PatrimonyController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		historyUseCase: historyUseCase,
	}
}

// Create handles POST /patrimony/assets requests.
func (c *PatrimonyController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAssetFields),
		})
		return
	}

	acquisitionDate, err := parseOptionalDate(req.AcquisitionDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid acquisition date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), patrimony.CreateAssetInput{
		UserID:          userID,
		Name:            req.Name,
		Category:        req.Category,
		EstimatedValue:  valueobject.NewMoneyFromFloat(req.EstimatedValue),
		AcquisitionDate: acquisitionDate,
	})
	if err != nil {
		c.handlePatrimonyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAssetResponse(output.Asset))
}

// List handles GET /patrimony/assets requests.
func (c *PatrimonyController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), patrimony.ListAssetsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve patrimony assets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetListResponse(output.Assets))
}

// Update handles PATCH /patrimony/assets/:id requests.
func (c *PatrimonyController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	assetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid asset ID format",
		})
		return
	}

	var req dto.UpdateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	acquisitionDate, err := parseOptionalDate(req.AcquisitionDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid acquisition date format, expected YYYY-MM-DD",
		})
		return
	}

	input := patrimony.UpdateAssetInput{
		UserID:          userID,
		AssetID:         assetID,
		Name:            req.Name,
		Category:        req.Category,
		AcquisitionDate: acquisitionDate,
	}
	if req.EstimatedValue != nil {
		value := valueobject.NewMoneyFromFloat(*req.EstimatedValue)
		input.EstimatedValue = &value
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePatrimonyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetResponse(output.Asset))
}

// Delete handles DELETE /patrimony/assets/:id requests.
func (c *PatrimonyController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	assetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid asset ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), patrimony.DeleteAssetInput{
		UserID:  userID,
		AssetID: assetID,
	})
	if err != nil {
		c.handlePatrimonyError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// History handles GET /patrimony/history requests. The granularity query
// parameter defaults to monthly.
func (c *PatrimonyController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
			Code:  string(domainerror.ErrCodeMissingUserIdentity),
		})
		return
	}

	granularity := patrimony.Granularity(ctx.DefaultQuery("granularity", string(patrimony.GranularityMonthly)))

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), patrimony.ReconstructHistoryInput{
		UserID:      userID,
		Granularity: granularity,
	})
	if err != nil {
		c.handlePatrimonyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPatrimonyHistoryResponse(string(granularity), output.Series))
}

// handlePatrimonyError handles patrimony errors and returns appropriate HTTP responses.
func (c *PatrimonyController) handlePatrimonyError(ctx *gin.Context, err error) {
	var patErr *domainerror.PatrimonyError
	if errors.As(err, &patErr) {
		ctx.JSON(c.getStatusCodeForPatrimonyError(patErr.Code), dto.ErrorResponse{
			Error: patErr.Message,
			Code:  string(patErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPatrimonyError maps patrimony error codes to HTTP status codes.
func (c *PatrimonyController) getStatusCodeForPatrimonyError(code domainerror.PatrimonyErrorCode) int {
	switch code {
	case domainerror.ErrCodeAssetNotFound, domainerror.ErrCodeNotAuthorizedAsset:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAssetValue,
		domainerror.ErrCodeInvalidGranularity,
		domainerror.ErrCodeMissingAssetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
