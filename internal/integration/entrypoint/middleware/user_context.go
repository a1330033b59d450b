// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the requesting user's ID.
	UserIDKey ContextKey = "user_id"

	// UserIDHeader carries the requesting user's ID. Authentication is
	// handled upstream; this service trusts the header it is handed.
	UserIDHeader = "X-User-ID"
)

// UserContext returns a Gin middleware handler that requires a valid
// user identity header and stores the parsed ID in the request context.
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(UserIDHeader)
		if header == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User identity header is required",
				Code:  string(domainerror.ErrCodeMissingUserIdentity),
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(header)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User identity header must be a valid UUID",
				Code:  string(domainerror.ErrCodeInvalidUserIdentity),
			})
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
