package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/covelane/ltc-data-api/claims/errors"
	"github.com/covelane/ltc-data-api/claims/models"
	"github.com/covelane/ltc-data-api/claims/queries"
	"github.com/covelane/ltc-data-api/internal/cache"
	"github.com/covelane/ltc-data-api/internal/pkg/log"
	"github.com/covelane/ltc-data-api/internal/types"
	"github.com/covelane/ltc-data-api/internal/warehouse"
)

type claimsService struct {
	executor warehouse.Executor
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewClaimsService creates a claims service with the executor injected.
// cacheService may be nil, which disables analytics caching.
func NewClaimsService(executor warehouse.Executor, cacheService cache.Cache, cacheTTL time.Duration) ClaimsService {
	return &claimsService{executor: executor, cache: cacheService, cacheTTL: cacheTTL}
}

func session(user types.UserContext) warehouse.SessionContext {
	return warehouse.SessionContext{Role: user.Role, Carrier: user.Carrier}
}

func (s *claimsService) GetClaims(ctx context.Context, user types.UserContext, filters *models.ClaimsFilters) ([]warehouse.Row, error) {
	q := queries.BuildClaimsQuery(filters)

	rows, err := s.executor.Run(ctx, session(user), q)
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "retrieved %d claims (limit=%d offset=%d)", len(rows), filters.Limit, filters.Offset)
	return rows, nil
}

func (s *claimsService) GetClaimByID(ctx context.Context, user types.UserContext, rfbID int64) (warehouse.Row, error) {
	q := warehouse.NewQuery(queries.ClaimsFactTable).
		WhereEq("RFB_ID", rfbID).
		Page(1, 0)

	rows, err := s.executor.Run(ctx, session(user), q)
	if err != nil {
		return warehouse.Row{}, err
	}
	if len(rows) == 0 {
		return warehouse.Row{}, fmt.Errorf("%w: rfb id %d", errors.ErrClaimNotFound, rfbID)
	}

	return rows[0], nil
}

func (s *claimsService) GetClaimsAnalytics(ctx context.Context, user types.UserContext) (*models.ClaimsAnalytics, error) {
	cacheKey := fmt.Sprintf("analytics:claims:%s:%s", user.Role, user.Carrier)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			var analytics models.ClaimsAnalytics
			if err := json.Unmarshal(cached, &analytics); err == nil {
				return &analytics, nil
			}
		}
	}

	sess := session(user)

	totalsRows, err := s.executor.RunSQL(ctx, sess, `
		SELECT
			COUNT(*) AS "TOTAL_CLAIMS",
			AVG("RFB_PROCESS_TO_DECISION_TAT") AS "AVG_TAT"
		FROM `+warehouse.QuoteIdent(queries.ClaimsFactTable))
	if err != nil {
		return nil, err
	}
	if len(totalsRows) == 0 {
		return nil, fmt.Errorf("%w: empty aggregate result", warehouse.ErrExecution)
	}
	totals := totalsRows[0]

	// Decision breakdown is uncapped; nulls are excluded.
	decisions, err := s.breakdown(ctx, sess, "DECISION", 0)
	if err != nil {
		return nil, err
	}

	// Top 20 states by claim count; deliberately truncated.
	byState, err := s.breakdown(ctx, sess, "LIFE_STATE", 20)
	if err != nil {
		return nil, err
	}

	byCarrier, err := s.breakdown(ctx, sess, "CARRIER_NAME", 0)
	if err != nil {
		return nil, err
	}

	analytics := &models.ClaimsAnalytics{
		DecisionsBreakdown: decisions,
		ClaimsByState:      byState,
		ClaimsByCarrier:    byCarrier,
	}
	if v, ok := totals.Get("TOTAL_CLAIMS"); ok {
		analytics.TotalClaims = warehouse.AsInt64(v)
	}
	if v, ok := totals.Get("AVG_TAT"); ok {
		analytics.AvgTat = warehouse.AsFloat64(v)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(analytics); err == nil {
			s.cache.Set(ctx, cacheKey, payload, s.cacheTTL)
		}
	}

	return analytics, nil
}

// breakdown runs one group-by count over a categorical column, ordered by
// count descending, excluding null groups. limit 0 means uncapped.
// Identifiers are quoted so the result columns come back with the exact
// names Row.Get is asked for.
func (s *claimsService) breakdown(ctx context.Context, sess warehouse.SessionContext, column string, limit int) (map[string]int64, error) {
	ident := warehouse.QuoteIdent(column)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) AS "COUNT"
		FROM %s
		WHERE %s IS NOT NULL
		GROUP BY %s
		ORDER BY "COUNT" DESC`, ident, warehouse.QuoteIdent(queries.ClaimsFactTable), ident, ident)
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
