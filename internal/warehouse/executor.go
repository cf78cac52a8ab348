package warehouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/covelane/ltc-data-api/internal/pkg/log"
)

// ErrExecution marks a query the warehouse rejected or failed: unknown
// column, type mismatch, connectivity loss, permission denial. It is never
// retried here and a failed query yields no rows, never a partial set.
var ErrExecution = errors.New("warehouse execution failed")

// SessionContext carries the authenticated caller's role and carrier scope
// into a single call. It is a per-call parameter by design: storing it on
// the shared client would leak one caller's scope into another's query.
//
// Row-level security is the warehouse's job. This layer attaches the
// session context for audit logging only; whether the warehouse enforces
// it through secure views or session parameters is an integration decision
// outside this codebase.
type SessionContext struct {
	Role    string
	Carrier string
}

// Executor runs compiled queries against the warehouse. It is the single
// boundary between the pure query-construction layer and I/O.
type Executor interface {
	Run(ctx context.Context, session SessionContext, q *Query) ([]Row, error)
	RunSQL(ctx context.Context, session SessionContext, query string, args ...interface{}) ([]Row, error)
}

// Run renders and executes a compiled query.
func (c *Client) Run(ctx context.Context, session SessionContext, q *Query) ([]Row, error) {
	query, args := q.SQL()
	return c.RunSQL(ctx, session, query, args...)
}

// RunSQL executes a SQL statement and scans every result row into an
// ordered Row. Concurrent calls share the pool without serializing behind
// each other.
func (c *Client) RunSQL(ctx context.Context, session SessionContext, query string, args ...interface{}) ([]Row, error) {
	log.Debug("warehouse query (role=%s carrier=%s): %s", session.Role, session.Carrier, query)

	rows, err := c.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecution, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecution, err)
	}

	// Driver type names tell dates apart from timestamps at serialization.
	var dbTypes []string
	if colTypes, err := rows.ColumnTypes(); err == nil {
		dbTypes = make([]string, len(colTypes))
		for i, ct := range colTypes {
			dbTypes[i] = ct.DatabaseTypeName()
		}
	}

	var results []Row
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExecution, err)
		}
		results = append(results, NewRow(columns, dbTypes, values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecution, err)
	}

	return results, nil
}
