package models

// PolicySummary is the fixed-shape aggregate response for
// GET /policies/analytics/summary.
type PolicySummary struct {
	TotalPolicies          int64            `json:"total_policies"`
	TotalAnnualizedPremium float64          `json:"total_annualized_premium"`
	TotalLifetimePremium   float64          `json:"total_lifetime_premium"`
	AvgAnnualizedPremium   float64          `json:"avg_annualized_premium"`
	PoliciesByState        map[string]int64 `json:"policies_by_state"`
	PoliciesByCarrier      map[string]int64 `json:"policies_by_carrier"`
}
