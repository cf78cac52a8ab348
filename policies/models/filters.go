package models

// PolicyFilters describes one request's filters, projection, sort and
// pagination against the policy fact table. Every filter is optional:
// a nil pointer or empty string means the corresponding predicate is not
// applied (absent, never "match nothing"). Once validated the struct is
// treated as immutable; the query builder only reads it.
type PolicyFilters struct {
	// ID filters
	PolicyID      *int64 `schema:"policy_id"`
	PolicyDimID   string `schema:"policy_dim_id"`
	InsuredLifeID *int64 `schema:"insured_life_id"`

	// Geographic filters; state fields accept comma-separated lists
	InsuredState         string `schema:"insured_state"`
	InsuredCity          string `schema:"insured_city"`
	InsuredZip           string `schema:"insured_zip"`
	PolicyResidenceState string `schema:"policy_residence_state"`

	// Carrier and environment; carrier accepts a comma-separated list
	CarrierName string `schema:"carrier_name"`
	Environment string `schema:"environment"`

	// Inclusive range over ORIGINAL_EFFECTIVE_DT, YYYY-MM-DD
	FromDate string `schema:"from_date"`
	ToDate   string `schema:"to_date"`

	// Inclusive range over ANNUALIZED_PREMIUM
	MinAnnualizedPremium *float64 `schema:"min_annualized_premium"`
	MaxAnnualizedPremium *float64 `schema:"max_annualized_premium"`

	ClaimStatusCd string `schema:"claim_status_cd"`

	// Pagination
	Limit  int `schema:"limit"`
	Offset int `schema:"offset"`

	// Sorting
	SortBy    string `schema:"sort_by"`
	SortOrder string `schema:"sort_order"`

	// Column pruning: comma-separated list of columns to return
	Fields string `schema:"fields"`
}

// NewPolicyFilters returns a filter set with the documented defaults.
func NewPolicyFilters() *PolicyFilters {
	return &PolicyFilters{
		Limit:     100,
		Offset:    0,
		SortBy:    "POLICY_ID",
		SortOrder: "asc",
	}
}
