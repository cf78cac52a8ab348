package queries

import (
	"strings"

	"github.com/covelane/ltc-data-api/internal/warehouse"
	"github.com/covelane/ltc-data-api/policies/models"
)

const (
	// PolicyFactTable is the wide policy snapshot fact table.
	PolicyFactTable = "POLICY_MONTHLY_SNAPSHOT_FACT"
	// DefaultSortColumn orders policy results when no sort is requested.
	DefaultSortColumn = "POLICY_ID"
)

// BuildPolicyQuery compiles a validated filter set into a warehouse query.
// Compilation is pure and total: exactly one predicate is appended per
// present field, in the fixed order below; absent fields contribute
// nothing. Unknown column names in sort or projection are the warehouse's
// problem at execution time, not this function's.
func BuildPolicyQuery(filters *models.PolicyFilters) *warehouse.Query {
	q := warehouse.NewQuery(PolicyFactTable)

	// ID filters
	if filters.PolicyID != nil {
		q.WhereEq("POLICY_ID", *filters.PolicyID)
	}
	if filters.PolicyDimID != "" {
		q.WhereEq("POLICY_DIM_ID", filters.PolicyDimID)
	}
	if filters.InsuredLifeID != nil {
		q.WhereEq("INSURED_LIFE_ID", *filters.InsuredLifeID)
	}

	// Geographic filters
	if filters.InsuredState != "" {
		q.WhereIn("INSURED_STATE", strings.Split(filters.InsuredState, ","))
	}
	if filters.InsuredCity != "" {
		q.WhereEq("INSURED_CITY", filters.InsuredCity)
	}
	if filters.InsuredZip != "" {
		q.WhereEq("INSURED_ZIP", filters.InsuredZip)
	}
	if filters.PolicyResidenceState != "" {
		q.WhereIn("POLICY_RESIDENCE_STATE", strings.Split(filters.PolicyResidenceState, ","))
	}

	// Carrier and environment
	if filters.CarrierName != "" {
		q.WhereIn("CARRIER_NAME", strings.Split(filters.CarrierName, ","))
	}
	if filters.Environment != "" {
		q.WhereEq("ENVIRONMENT", filters.Environment)
	}

	// Effective-date range, bounds independent and inclusive
	if filters.FromDate != "" {
		q.WhereGte("ORIGINAL_EFFECTIVE_DT", filters.FromDate)
	}
	if filters.ToDate != "" {
		q.WhereLte("ORIGINAL_EFFECTIVE_DT", filters.ToDate)
	}

	// Premium range
	if filters.MinAnnualizedPremium != nil {
		q.WhereGte("ANNUALIZED_PREMIUM", *filters.MinAnnualizedPremium)
	}
	if filters.MaxAnnualizedPremium != nil {
		q.WhereLte("ANNUALIZED_PREMIUM", *filters.MaxAnnualizedPremium)
	}

	if filters.ClaimStatusCd != "" {
		q.WhereEq("CLAIM_STATUS_CD", filters.ClaimStatusCd)
	}

	// Column pruning happens after all predicates: a predicate may
	// reference a column the projection drops.
	if filters.Fields != "" {
		q.Select(strings.Split(filters.Fields, ","))
	}

	// Exactly one sort, defaulted when absent.
	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = DefaultSortColumn
	}
	direction := warehouse.Asc
	if filters.SortOrder == "desc" {
		direction = warehouse.Desc
	}
	q.OrderBy(sortBy, direction)

	q.Page(filters.Limit, filters.Offset)

	return q
}
