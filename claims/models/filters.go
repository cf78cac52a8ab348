package models

// ClaimsFilters describes one request's filters, projection, sort and
// pagination against the claims fact table. Same optionality rules as the
// policy filters; the one behavioral difference is ClaimantName, which is
// a substring match instead of exact equality.
type ClaimsFilters struct {
	// ID filters
	RfbID              *int64 `schema:"rfb_id"`
	PolicyDimID        string `schema:"policy_dim_id"`
	PolicyNumber       string `schema:"policy_number"`
	EpisodeOfBenefitID *int64 `schema:"episode_of_benefit_id"`

	// Claimant name, partial match
	ClaimantName string `schema:"claimant_name"`

	// Decision, exact match
	Decision string `schema:"decision"`

	// Geographic filters, comma-separated lists
	LifeState            string `schema:"life_state"`
	IssueState           string `schema:"issue_state"`
	PolicyResidenceState string `schema:"policy_residence_state"`

	// Carrier, comma-separated list
	CarrierName string `schema:"carrier_name"`

	// Two independent inclusive date ranges, YYYY-MM-DD
	FromSnapshotDate      string `schema:"from_snapshot_date"`
	ToSnapshotDate        string `schema:"to_snapshot_date"`
	FromCertificationDate string `schema:"from_certification_date"`
	ToCertificationDate   string `schema:"to_certification_date"`

	ClaimTypeCd *int64 `schema:"claim_type_cd"`

	// Pagination
	Limit  int `schema:"limit"`
	Offset int `schema:"offset"`

	// Sorting
	SortBy    string `schema:"sort_by"`
	SortOrder string `schema:"sort_order"`

	// Column pruning
	Fields string `schema:"fields"`
}

// NewClaimsFilters returns a filter set with the documented defaults.
func NewClaimsFilters() *ClaimsFilters {
	return &ClaimsFilters{
		Limit:     100,
		Offset:    0,
		SortBy:    "RFB_ID",
		SortOrder: "asc",
	}
}
