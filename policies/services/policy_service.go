package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/covelane/ltc-data-api/internal/cache"
	"github.com/covelane/ltc-data-api/internal/pkg/log"
	"github.com/covelane/ltc-data-api/internal/types"
	"github.com/covelane/ltc-data-api/internal/warehouse"
	"github.com/covelane/ltc-data-api/policies/errors"
	"github.com/covelane/ltc-data-api/policies/models"
	"github.com/covelane/ltc-data-api/policies/queries"
)

type policyService struct {
	executor warehouse.Executor
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewPolicyService creates a policy service with the executor injected.
// cacheService may be nil, which disables summary caching.
func NewPolicyService(executor warehouse.Executor, cacheService cache.Cache, cacheTTL time.Duration) PolicyService {
	return &policyService{executor: executor, cache: cacheService, cacheTTL: cacheTTL}
}

// session builds the per-call warehouse session context from the caller.
// Never stored: each call carries its own scope.
func session(user types.UserContext) warehouse.SessionContext {
	return warehouse.SessionContext{Role: user.Role, Carrier: user.Carrier}
}

func (s *policyService) GetPolicies(ctx context.Context, user types.UserContext, filters *models.PolicyFilters) ([]warehouse.Row, error) {
	q := queries.BuildPolicyQuery(filters)

	rows, err := s.executor.Run(ctx, session(user), q)
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "retrieved %d policies (limit=%d offset=%d)", len(rows), filters.Limit, filters.Offset)
	return rows, nil
}

func (s *policyService) GetPolicyByID(ctx context.Context, user types.UserContext, policyID int64) (warehouse.Row, error) {
	q := warehouse.NewQuery(queries.PolicyFactTable).
		WhereEq("POLICY_ID", policyID).
		Page(1, 0)

	rows, err := s.executor.Run(ctx, session(user), q)
	if err != nil {
		return warehouse.Row{}, err
	}
	if len(rows) == 0 {
		return warehouse.Row{}, fmt.Errorf("%w: id %d", errors.ErrPolicyNotFound, policyID)
	}

	// Duplicate snapshot rows for one id are possible; the first wins.
	return rows[0], nil
}

func (s *policyService) GetPolicySummary(ctx context.Context, user types.UserContext) (*models.PolicySummary, error) {
	cacheKey := fmt.Sprintf("analytics:policies:%s:%s", user.Role, user.Carrier)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			var summary models.PolicySummary
			if err := json.Unmarshal(cached, &summary); err == nil {
				return &summary, nil
			}
		}
	}

	sess := session(user)

	totalsRows, err := s.executor.RunSQL(ctx, sess, `
		SELECT
			COUNT(*) AS "TOTAL_POLICIES",
			SUM("ANNUALIZED_PREMIUM") AS "TOTAL_ANNUALIZED_PREMIUM",
			SUM("LIFETIME_COLLECTED_PREMIUM") AS "TOTAL_LIFETIME_PREMIUM",
			AVG("ANNUALIZED_PREMIUM") AS "AVG_ANNUALIZED_PREMIUM"
		FROM `+warehouse.QuoteIdent(queries.PolicyFactTable))
	if err != nil {
		return nil, err
	}
	if len(totalsRows) == 0 {
		return nil, fmt.Errorf("%w: empty aggregate result", warehouse.ErrExecution)
	}
	totals := totalsRows[0]

	// Top 20 states by policy count; deliberately truncated.
	byState, err := s.breakdown(ctx, sess, "INSURED_STATE", 20)
	if err != nil {
		return nil, err
	}

	// Carrier breakdown is uncapped.
	byCarrier, err := s.breakdown(ctx, sess, "CARRIER_NAME", 0)
	if err != nil {
		return nil, err
	}

	summary := &models.PolicySummary{
		PoliciesByState:   byState,
		PoliciesByCarrier: byCarrier,
	}
	if v, ok := totals.Get("TOTAL_POLICIES"); ok {
		summary.TotalPolicies = warehouse.AsInt64(v)
	}
	if v, ok := totals.Get("TOTAL_ANNUALIZED_PREMIUM"); ok {
		summary.TotalAnnualizedPremium = warehouse.AsFloat64(v)
	}
	if v, ok := totals.Get("TOTAL_LIFETIME_PREMIUM"); ok {
		summary.TotalLifetimePremium = warehouse.AsFloat64(v)
	}
	if v, ok := totals.Get("AVG_ANNUALIZED_PREMIUM"); ok {
		summary.AvgAnnualizedPremium = warehouse.AsFloat64(v)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			s.cache.Set(ctx, cacheKey, payload, s.cacheTTL)
		}
	}

	return summary, nil
}

// breakdown runs one group-by count over a categorical column, ordered by
// count descending. limit 0 means uncapped. Identifiers are quoted so the
// result columns come back with the exact names Row.Get is asked for.
func (s *policyService) breakdown(ctx context.Context, sess warehouse.SessionContext, column string, limit int) (map[string]int64, error) {
	ident := warehouse.QuoteIdent(column)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) AS "COUNT"
		FROM %s
		GROUP BY %s
		ORDER BY "COUNT" DESC`, ident, warehouse.QuoteIdent(queries.PolicyFactTable), ident)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}

	rows, err := s.executor.RunSQL(ctx, sess, query)
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		key, _ := row.Get(column)
		count, _ := row.Get("COUNT")
		result[warehouse.AsString(key)] = warehouse.AsInt64(count)
	}
	return result, nil
}
