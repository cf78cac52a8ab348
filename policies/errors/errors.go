package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/covelane/ltc-data-api/internal/pkg/log"
	"github.com/covelane/ltc-data-api/internal/warehouse"
)

// Policy service specific errors
var (
	ErrPolicyNotFound = errors.New("policy not found")
)

// Error codes
const (
	CodePolicyNotFound   = "POLICY_NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeExecutionFailed  = "QUERY_EXECUTION_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps policy service errors to HTTP responses.
// Warehouse failures surface as a generic server error: the detail is
// logged, never exposed to the caller.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrPolicyNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodePolicyNotFound,
			Message: "Policy not found",
		})
	case errors.Is(err, warehouse.ErrExecution):
		log.Error("policy query execution failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeExecutionFailed,
			Message: "Query execution failed",
		})
	default:
		log.Error("unexpected policy service error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
		})
	}
}

// HandleValidationError reports malformed filter input with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationFailed,
		Message: message,
	})
}

// HandleInvalidRequestError reports malformed path or query input
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}
