package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covelane/ltc-data-api/policies/models"
)

func TestValidatePolicyFilters_Defaults(t *testing.T) {
	assert.NoError(t, ValidatePolicyFilters(models.NewPolicyFilters()))
}

func TestValidatePolicyFilters_LimitBounds(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"minimum", 1, false},
		{"maximum", 1000, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"over maximum", 1001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := models.NewPolicyFilters()
			f.Limit = tt.limit
			err := ValidatePolicyFilters(f)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePolicyFilters_OffsetRejectsNegative(t *testing.T) {
	f := models.NewPolicyFilters()
	f.Offset = -1
	assert.Error(t, ValidatePolicyFilters(f))

	f.Offset = 0
	assert.NoError(t, ValidatePolicyFilters(f))
}

func TestValidatePolicyFilters_SortOrderTokens(t *testing.T) {
	for _, order := range []string{"asc", "desc"} {
		f := models.NewPolicyFilters()
		f.SortOrder = order
		assert.NoError(t, ValidatePolicyFilters(f))
	}

	// Case must match exactly; no other token is accepted.
	for _, order := range []string{"ASC", "Desc", "descending", ""} {
		f := models.NewPolicyFilters()
		f.SortOrder = order
		assert.Error(t, ValidatePolicyFilters(f), "sort_order %q should be rejected", order)
	}
}

func TestValidatePolicyFilters_Dates(t *testing.T) {
	f := models.NewPolicyFilters()
	f.FromDate = "2020-01-01"
	f.ToDate = "2020-12-31"
	assert.NoError(t, ValidatePolicyFilters(f))

	f = models.NewPolicyFilters()
	f.FromDate = "01/01/2020"
	err := ValidatePolicyFilters(f)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "from_date")

	f = models.NewPolicyFilters()
	f.ToDate = "2020-13-45"
	err = ValidatePolicyFilters(f)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "to_date")
}
