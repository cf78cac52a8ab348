package services

import (
	"context"

	"github.com/covelane/ltc-data-api/internal/types"
	"github.com/covelane/ltc-data-api/internal/warehouse"
	"github.com/covelane/ltc-data-api/policies/models"
)

// PolicyService defines the business logic for policy reads.
type PolicyService interface {
	// GetPolicies runs a compiled filter query and returns serializable rows.
	GetPolicies(ctx context.Context, user types.UserContext, filters *models.PolicyFilters) ([]warehouse.Row, error)
	// GetPolicyByID fetches one policy. Zero rows is ErrPolicyNotFound;
	// more than one row is not an error, the first is returned.
	GetPolicyByID(ctx context.Context, user types.UserContext, policyID int64) (warehouse.Row, error)
	// GetPolicySummary computes the fixed aggregate set. Any sub-query
	// failure fails the whole call.
	GetPolicySummary(ctx context.Context, user types.UserContext) (*models.PolicySummary, error)
}
