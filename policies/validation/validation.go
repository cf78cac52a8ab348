package validation

import (
	"fmt"
	"time"

	"github.com/covelane/ltc-data-api/policies/models"
)

const dateLayout = "2006-01-02"

// ValidatePolicyFilters rejects malformed or out-of-range filter input
// before anything reaches the query builder. Out-of-range pagination is an
// error, never clamped.
func ValidatePolicyFilters(f *models.PolicyFilters) error {
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

	if err := validateDate("from_date", f.FromDate); err != nil {
		return err
	}
	if err := validateDate("to_date", f.ToDate); err != nil {
		return err
	}

	return nil
}

func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf("%s must be a valid date in YYYY-MM-DD format", field)
	}
	return nil
}
