package services

import (
	"context"

	"github.com/covelane/ltc-data-api/claims/models"
	"github.com/covelane/ltc-data-api/internal/types"
	"github.com/covelane/ltc-data-api/internal/warehouse"
)

// ClaimsService defines the business logic for claims reads.
type ClaimsService interface {
	// GetClaims runs a compiled filter query and returns serializable rows.
	GetClaims(ctx context.Context, user types.UserContext, filters *models.ClaimsFilters) ([]warehouse.Row, error)
	// GetClaimByID fetches one claim by RFB id. Zero rows is
	// ErrClaimNotFound; more than one row returns the first.
	GetClaimByID(ctx context.Context, user types.UserContext, rfbID int64) (warehouse.Row, error)
	// GetClaimsAnalytics computes the fixed aggregate set. Any sub-query
	// failure fails the whole call.
	GetClaimsAnalytics(ctx context.Context, user types.UserContext) (*models.ClaimsAnalytics, error)
}
