package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/covelane/ltc-data-api/auth/errors"
	"github.com/covelane/ltc-data-api/auth/models"
	"github.com/covelane/ltc-data-api/internal/pkg/log"
	"github.com/covelane/ltc-data-api/internal/types"
)

// Handler handles authentication HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new auth Handler with injected dependencies
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles credential verification and token issuance
func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errors.ErrorResponse{
			Code:    errors.CodeInvalidRequest,
			Message: "Invalid request body",
		})
	}
	if req.Username == "" || req.Password == "" {
		return errors.HandleServiceError(c, errors.ErrMissingCredentials)
	}

	user, err := h.service.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	token, err := h.service.CreateToken(user)
	if err != nil {
		log.Error("token creation failed for %s: %v", req.Username, err)
		return errors.HandleServiceError(c, err)
	}

	log.Info("user authenticated: %s (role: %s)", user.Username, user.Role)
	return c.JSON(token)
}

// Me returns the verified claims of the current caller
func (h *Handler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(errors.ErrorResponse{
			Code:    errors.CodeUnauthorized,
			Message: "Missing user context",
		})
	}
	return c.JSON(user)
}
