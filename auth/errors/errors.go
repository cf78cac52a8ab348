package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Auth service specific errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingCredentials = errors.New("username and password are required")
)

// Error codes
const (
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps auth service errors to HTTP responses. Failed
// credential checks are reported uniformly so the response does not leak
// whether the username exists.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    CodeUnauthorized,
			Message: "Invalid username or password",
		})
	case errors.Is(err, ErrMissingCredentials):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidRequest,
			Message: "Username and password are required",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
		})
	}
}
