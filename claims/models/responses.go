package models

// ClaimsAnalytics is the fixed-shape aggregate response for
// GET /claims/analytics/summary.
type ClaimsAnalytics struct {
	TotalClaims        int64            `json:"total_claims"`
	AvgTat             float64          `json:"avg_tat"`
	DecisionsBreakdown map[string]int64 `json:"decisions_breakdown"`
	ClaimsByState      map[string]int64 `json:"claims_by_state"`
	ClaimsByCarrier    map[string]int64 `json:"claims_by_carrier"`
}
