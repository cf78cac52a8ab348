package queries

import (
	"strings"

	"github.com/covelane/ltc-data-api/claims/models"
	"github.com/covelane/ltc-data-api/internal/warehouse"
)

const (
	// ClaimsFactTable is the wide claims worksheet snapshot fact table.
	ClaimsFactTable = "CLAIMS_TPA_FEE_WORKSHEET_SNAPSHOT_FACT"
	// DefaultSortColumn orders claims results when no sort is requested.
	DefaultSortColumn = "RFB_ID"
)

// BuildClaimsQuery compiles a validated claims filter set into a warehouse
// query. Same rules as the policy builder: one predicate per present
// field, fixed order, pure and total. Claimant name is the single
// substring-match filter; every other string filter is exact equality.
func BuildClaimsQuery(filters *models.ClaimsFilters) *warehouse.Query {
	q := warehouse.NewQuery(ClaimsFactTable)

	// ID filters
	if filters.RfbID != nil {
		q.WhereEq("RFB_ID", *filters.RfbID)
	}
	if filters.PolicyDimID != "" {
		q.WhereEq("POLICY_DIM_ID", filters.PolicyDimID)
	}
	if filters.PolicyNumber != "" {
		q.WhereEq("POLICY_NUMBER", filters.PolicyNumber)
	}
	if filters.EpisodeOfBenefitID != nil {
		q.WhereEq("EPISODE_OF_BENEFIT_ID", *filters.EpisodeOfBenefitID)
	}

	// Claimant name is a partial match, never equality.
	if filters.ClaimantName != "" {
		q.WhereContains("CLAIMANTNAME", filters.ClaimantName)
	}

	if filters.Decision != "" {
		q.WhereEq("DECISION", filters.Decision)
	}

	// Geographic filters
	if filters.LifeState != "" {
		q.WhereIn("LIFE_STATE", strings.Split(filters.LifeState, ","))
	}
	if filters.IssueState != "" {
		q.WhereIn("ISSUE_STATE", strings.Split(filters.IssueState, ","))
	}
	if filters.PolicyResidenceState != "" {
		q.WhereIn("POLICY_RESIDENCE_STATE", strings.Split(filters.PolicyResidenceState, ","))
	}

	if filters.CarrierName != "" {
		q.WhereIn("CARRIER_NAME", strings.Split(filters.CarrierName, ","))
	}

	// Two independent date ranges
	if filters.FromSnapshotDate != "" {
		q.WhereGte("SNAPSHOT_DATE", filters.FromSnapshotDate)
	}
	if filters.ToSnapshotDate != "" {
		q.WhereLte("SNAPSHOT_DATE", filters.ToSnapshotDate)
	}
	if filters.FromCertificationDate != "" {
		q.WhereGte("CERTIFICATIONDATE", filters.FromCertificationDate)
	}
	if filters.ToCertificationDate != "" {
		q.WhereLte("CERTIFICATIONDATE", filters.ToCertificationDate)
	}

	if filters.ClaimTypeCd != nil {
		q.WhereEq("CLAIM_TYPE_CD", *filters.ClaimTypeCd)
	}

	// Projection after all predicates.
	if filters.Fields != "" {
		q.Select(strings.Split(filters.Fields, ","))
	}

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
