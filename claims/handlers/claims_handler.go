package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/covelane/ltc-data-api/claims/errors"
	"github.com/covelane/ltc-data-api/claims/models"
	"github.com/covelane/ltc-data-api/claims/services"
	"github.com/covelane/ltc-data-api/claims/validation"
	"github.com/covelane/ltc-data-api/internal/server"
	"github.com/covelane/ltc-data-api/internal/types"
	"github.com/covelane/ltc-data-api/internal/warehouse"
)

// ClaimsHandler handles all claims-related HTTP requests
type ClaimsHandler struct {
	claimsService services.ClaimsService
	decoder       decoder
}

type decoder interface {
	Decode(dst interface{}, src map[string][]string) error
}

// NewClaimsHandler creates a new ClaimsHandler with injected dependencies
func NewClaimsHandler(claimsService services.ClaimsService) *ClaimsHandler {
	return &ClaimsHandler{
		claimsService: claimsService,
		decoder:       server.NewFilterDecoder(),
	}
}

func currentUser(c *fiber.Ctx) (types.UserContext, bool) {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return user, ok
}

func missingUserContext(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(errors.ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: "Missing user context",
	})
}

// GetClaims handles the filtered, paginated claims list
func (h *ClaimsHandler) GetClaims(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return missingUserContext(c)
	}

	filters := models.NewClaimsFilters()
	if err := h.decoder.Decode(filters, server.QueryValues(c)); err != nil {
		return errors.HandleValidationError(c, server.DecodeError(err).Error())
	}
	if err := validation.ValidateClaimsFilters(filters); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	rows, err := h.claimsService.GetClaims(c.Context(), user, filters)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	if rows == nil {
		rows = []warehouse.Row{}
	}
	return c.JSON(rows)
}

// GetClaimByID handles fetching a single claim by RFB id
func (h *ClaimsHandler) GetClaimByID(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return missingUserContext(c)
	}

	rfbID, err := strconv.ParseInt(c.Params("rfbId"), 10, 64)
	if err != nil {
		return errors.HandleInvalidRequestError(c, "rfbId must be an integer")
	}

	row, err := h.claimsService.GetClaimByID(c.Context(), user, rfbID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(row)
}

// GetClaimsAnalytics handles the aggregate analytics endpoint
func (h *ClaimsHandler) GetClaimsAnalytics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return missingUserContext(c)
	}

	analytics, err := h.claimsService.GetClaimsAnalytics(c.Context(), user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(analytics)
}
