package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	facingdomain "github.com/shelftrack/shelftrack/internal/facing/domain"
	productdomain "github.com/shelftrack/shelftrack/internal/product/domain"
	storedomain "github.com/shelftrack/shelftrack/internal/store/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInternal       = errors.New("internal_error")
)

// ErrorHandlingMiddleware converts the last recorded gin error into the
// JSON error envelope once the handler chain has finished.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isUnauthenticatedError(err):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case isForbiddenError(err):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: err.Error(),
		}
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	default:
		// Storage and other unexpected failures never leak details.
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isUnauthenticatedError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, facingdomain.ErrUnauthenticated)
}

func isForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden) ||
		errors.Is(err, facingdomain.ErrUserMismatch) ||
		errors.Is(err, facingdomain.ErrStoreForbidden)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, facingdomain.ErrEmptyBatch) ||
		errors.Is(err, facingdomain.ErrMissingBatchID) ||
		errors.Is(err, facingdomain.ErrIncompleteEntry) ||
		errors.Is(err, storedomain.ErrInvalidID) ||
		errors.Is(err, productdomain.ErrInvalidID)
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, facingdomain.ErrStoreNotFound) ||
		errors.Is(err, facingdomain.ErrBatchNotFound) ||
		errors.Is(err, storedomain.ErrNotFound) ||
		errors.Is(err, productdomain.ErrNotFound) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}
