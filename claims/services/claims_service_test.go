package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/covelane/ltc-data-api/claims/errors"
	"github.com/covelane/ltc-data-api/claims/models"
	"github.com/covelane/ltc-data-api/internal/types"
	"github.com/covelane/ltc-data-api/internal/warehouse"
)

var testUser = types.UserContext{
	UserID:   "u-7",
	Username: "adjuster",
	Role:     "ANALYST",
	Carrier:  "Carrier_B",
}

func claimRow(rfbID int64) warehouse.Row {
	return warehouse.NewRow(
		[]string{"RFB_ID", "DECISION"},
		nil,
		[]interface{}{rfbID, "APPROVED"},
	)
}

func TestGetClaims_PassesSessionPerCall(t *testing.T) {
	executor := new(MockExecutor)
	service := NewClaimsService(executor, nil, 0)

	expectedSession := warehouse.SessionContext{Role: "ANALYST", Carrier: "Carrier_B"}
	executor.On("Run", mock.Anything, expectedSession, mock.AnythingOfType("*warehouse.Query")).
		Return([]warehouse.Row{claimRow(1)}, nil)

	rows, err := service.GetClaims(context.Background(), testUser, models.NewClaimsFilters())

	require.NoError(t, err)
	assert.Len(t, rows, 1)
	executor.AssertExpectations(t)
}

func TestGetClaims_ExecutionErrorPropagates(t *testing.T) {
	executor := new(MockExecutor)
	service := NewClaimsService(executor, nil, 0)

	executor.On("Run", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: connection reset", warehouse.ErrExecution))

	_, err := service.GetClaims(context.Background(), testUser, models.NewClaimsFilters())
	assert.ErrorIs(t, err, warehouse.ErrExecution)
}

func TestGetClaimByID_NotFound(t *testing.T) {
	executor := new(MockExecutor)
	service := NewClaimsService(executor, nil, 0)

	executor.On("Run", mock.Anything, mock.Anything, mock.Anything).
		Return([]warehouse.Row{}, nil)

	_, err := service.GetClaimByID(context.Background(), testUser, 404)
	assert.ErrorIs(t, err, errors.ErrClaimNotFound)
}

func TestGetClaimByID_FirstRowWinsOnDuplicates(t *testing.T) {
	executor := new(MockExecutor)
	service := NewClaimsService(executor, nil, 0)

	executor.On("Run", mock.Anything, mock.Anything, mock.MatchedBy(func(q *warehouse.Query) bool {
		return q.Limit == 1 && q.Offset == 0 && len(q.Predicates) == 1 &&
			q.Predicates[0].Column == "RFB_ID" && q.Predicates[0].Op == warehouse.OpEq
	})).Return([]warehouse.Row{claimRow(88), claimRow(88)}, nil)

	row, err := service.GetClaimByID(context.Background(), testUser, 88)

	require.NoError(t, err)
	id, _ := row.Get("RFB_ID")
	assert.Equal(t, int64(88), id)
}

func claimsTotalsRow() warehouse.Row {
	return warehouse.NewRow(
		[]string{"TOTAL_CLAIMS", "AVG_TAT"},
		nil,
		[]interface{}{int64(340), 14.5},
	)
}

func breakdownRow(column, key string, count int64) warehouse.Row {
	return warehouse.NewRow(
		[]string{column, "COUNT"},
		nil,
		[]interface{}{key, count},
	)
}

func TestGetClaimsAnalytics(t *testing.T) {
	executor := new(MockExecutor)
	service := NewClaimsService(executor, nil, 0)

	// Identifiers must be quoted or the driver folds them to lowercase
	// and the result columns no longer match what Get asks for.
	executor.On("RunSQL", mock.Anything, mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, `AVG("RFB_PROCESS_TO_DECISION_TAT")`) &&
			strings.Contains(q, `AS "TOTAL_CLAIMS"`) &&
			strings.Contains(q, `FROM "CLAIMS_TPA_FEE_WORKSHEET_SNAPSHOT_FACT"`)
	})).Return([]warehouse.Row{claimsTotalsRow()}, nil).Once()

	executor.On("RunSQL", mock.Anything, mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, `"DECISION" IS NOT NULL`) && !strings.Contains(q, "LIMIT")
	})).Return([]warehouse.Row{
		breakdownRow("DECISION", "APPROVED", 260),
		breakdownRow("DECISION", "DENIED", 80),
	}, nil).Once()

	executor.On("RunSQL", mock.Anything, mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, `"LIFE_STATE" IS NOT NULL`) && strings.Contains(q, `AS "COUNT"`) &&
			strings.Contains(q, "LIMIT 20")
	})).Return([]warehouse.Row{
		breakdownRow("LIFE_STATE", "FL", 150),
	}, nil).Once()

	executor.On("RunSQL", mock.Anything, mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, `"CARRIER_NAME" IS NOT NULL`) && !strings.Contains(q, "LIMIT")
	})).Return([]warehouse.Row{
		breakdownRow("CARRIER_NAME", "Carrier_B", 340),
	}, nil).Once()

	analytics, err := service.GetClaimsAnalytics(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, int64(340), analytics.TotalClaims)
	assert.Equal(t, 14.5, analytics.AvgTat)
	assert.Equal(t, map[string]int64{"APPROVED": 260, "DENIED": 80}, analytics.DecisionsBreakdown)
	assert.Equal(t, map[string]int64{"FL": 150}, analytics.ClaimsByState)
	assert.Equal(t, map[string]int64{"Carrier_B": 340}, analytics.ClaimsByCarrier)
	executor.AssertExpectations(t)
}

func TestGetClaimsAnalytics_BreakdownFailureFailsWholeCall(t *testing.T) {
	executor := new(MockExecutor)
	service := NewClaimsService(executor, nil, 0)

	executor.On("RunSQL", mock.Anything, mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, "COUNT(*)")
	})).Return([]warehouse.Row{claimsTotalsRow()}, nil).Once()

	executor.On("RunSQL", mock.Anything, mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, "DECISION")
	})).Return(nil, fmt.Errorf("%w: timeout", warehouse.ErrExecution)).Once()

	analytics, err := service.GetClaimsAnalytics(context.Background(), testUser)

	assert.Nil(t, analytics)
	assert.ErrorIs(t, err, warehouse.ErrExecution)
}

func TestGetClaimsAnalytics_UsesCache(t *testing.T) {
	executor := new(MockExecutor)
	cacheStub := newStubCache()
	service := NewClaimsService(executor, cacheStub, time.Minute)

	executor.On("RunSQL", mock.Anything, mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, "COUNT(*)")
	})).Return([]warehouse.Row{claimsTotalsRow()}, nil).Once()
	executor.On("RunSQL", mock.Anything, mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, "DECISION")
	})).Return([]warehouse.Row{}, nil).Once()
	executor.On("RunSQL", mock.Anything, mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, "LIFE_STATE")
	})).Return([]warehouse.Row{}, nil).Once()
	executor.On("RunSQL", mock.Anything, mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, "CARRIER_NAME")
	})).Return([]warehouse.Row{}, nil).Once()

	first, err := service.GetClaimsAnalytics(context.Background(), testUser)
	require.NoError(t, err)

	second, err := service.GetClaimsAnalytics(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, first.TotalClaims, second.TotalClaims)
	executor.AssertExpectations(t)
}

type stubCache struct {
	data map[string][]byte
}

func newStubCache() *stubCache {
	return &stubCache{data: make(map[string][]byte)}
}

func (s *stubCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *stubCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	s.data[key] = value
}
