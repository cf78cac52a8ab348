package validation

import (
	"fmt"
	"time"

	"github.com/covelane/ltc-data-api/claims/models"
)

const dateLayout = "2006-01-02"

// ValidateClaimsFilters rejects malformed or out-of-range filter input
// before anything reaches the query builder.
func ValidateClaimsFilters(f *models.ClaimsFilters) error {
	if f == nil {
		return fmt.Errorf("filters are required")
	}

	if f.Limit < 1 || f.Limit > 1000 {
		return fmt.Errorf("limit must be between 1 and 1000")
	}
	if f.Offset < 0 {
		return fmt.Errorf("offset must be 0 or greater")
	}
	if f.SortOrder != "asc" && f.SortOrder != "desc" {
		return fmt.Errorf("sort_order must be one of: asc, desc")
	}
	if f.SortBy == "" {
		return fmt.Errorf("sort_by cannot be empty")
	}

	dates := []struct {
		field string
		value string
	}{
		{"from_snapshot_date", f.FromSnapshotDate},
		{"to_snapshot_date", f.ToSnapshotDate},
		{"from_certification_date", f.FromCertificationDate},
		{"to_certification_date", f.ToCertificationDate},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d.value); err != nil {
			return fmt.Errorf("%s must be a valid date in YYYY-MM-DD format", d.field)
		}
	}

	return nil
}
