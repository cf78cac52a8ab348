package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/covelane/ltc-data-api/internal/server"
	"github.com/covelane/ltc-data-api/internal/types"
	"github.com/covelane/ltc-data-api/internal/warehouse"
	"github.com/covelane/ltc-data-api/policies/errors"
	"github.com/covelane/ltc-data-api/policies/models"
	"github.com/covelane/ltc-data-api/policies/services"
	"github.com/covelane/ltc-data-api/policies/validation"
)

// PolicyHandler handles all policy-related HTTP requests
type PolicyHandler struct {
	policyService services.PolicyService
	decoder       decoder
}

type decoder interface {
	Decode(dst interface{}, src map[string][]string) error
}

// NewPolicyHandler creates a new PolicyHandler with injected dependencies
func NewPolicyHandler(policyService services.PolicyService) *PolicyHandler {
	return &PolicyHandler{
		policyService: policyService,
		decoder:       server.NewFilterDecoder(),
	}
}

// currentUser extracts the authenticated caller placed by the JWT middleware.
func currentUser(c *fiber.Ctx) (types.UserContext, bool) {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return user, ok
}

// GetPolicies handles the filtered, paginated policy list
func (h *PolicyHandler) GetPolicies(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(errors.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Missing user context",
		})
	}

	filters := models.NewPolicyFilters()
	if err := h.decoder.Decode(filters, server.QueryValues(c)); err != nil {
		return errors.HandleValidationError(c, server.DecodeError(err).Error())
	}
	if err := validation.ValidatePolicyFilters(filters); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	rows, err := h.policyService.GetPolicies(c.Context(), user, filters)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	if rows == nil {
		rows = []warehouse.Row{}
	}
	return c.JSON(rows)
}

// GetPolicyByID handles fetching a single policy
func (h *PolicyHandler) GetPolicyByID(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(errors.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Missing user context",
		})
	}

	policyID, err := strconv.ParseInt(c.Params("policyId"), 10, 64)
	if err != nil {
		return errors.HandleInvalidRequestError(c, "policyId must be an integer")
	}

	row, err := h.policyService.GetPolicyByID(c.Context(), user, policyID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(row)
}

// GetPolicySummary handles the aggregate analytics endpoint
func (h *PolicyHandler) GetPolicySummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(errors.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Missing user context",
		})
	}

	summary, err := h.policyService.GetPolicySummary(c.Context(), user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(summary)
}
