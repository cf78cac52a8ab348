package warehouse

import "strings"

// Op is a predicate operator supported by the warehouse query model.
type Op string

const (
	OpEq       Op = "="
	OpContains Op = "CONTAINS"
	OpIn       Op = "IN"
	OpGte      Op = ">="
	OpLte      Op = "<="
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Predicate is one typed filter directive: column, operator and either a
// single value or a value set (for OpIn).
type Predicate struct {
	Column string
	Op     Op
	Value  interface{}
	Values []interface{}
}

// Sort is the single ordering directive of a query. Every compiled query
// carries exactly one.
type Sort struct {
	Column    string
	Direction Direction
}

// Query is a compiled read against one fact table: an ordered predicate
// list, an optional explicit projection, one sort, and pagination. It is
// built fresh per request, consumed once by the executor and discarded.
// Builders only append; a Query is never mutated after being handed to
// the executor.
type Query struct {
	Table      string
	Predicates []Predicate
	Columns    []string
	Sort       Sort
	Limit      int
	Offset     int
}

// NewQuery starts a query against the named fact table.
func NewQuery(table string) *Query {
	return &Query{Table: table}
}

// WhereEq appends an exact-equality predicate.
func (q *Query) WhereEq(column string, value interface{}) *Query {
	q.Predicates = append(q.Predicates, Predicate{Column: column, Op: OpEq, Value: value})
	return q
}

// WhereContains appends a substring-match predicate.
func (q *Query) WhereContains(column string, value string) *Query {
	q.Predicates = append(q.Predicates, Predicate{Column: column, Op: OpContains, Value: value})
	return q
}

// WhereIn appends a set-membership predicate. A single-element set keeps
// the IN form; it is not rewritten to equality.
func (q *Query) WhereIn(column string, values []string) *Query {
	set := make([]interface{}, len(values))
	for i, v := range values {
		set[i] = v
	}
	q.Predicates = append(q.Predicates, Predicate{Column: column, Op: OpIn, Values: set})
	return q
}

// WhereGte appends an inclusive lower-bound predicate.
func (q *Query) WhereGte(column string, value interface{}) *Query {
	q.Predicates = append(q.Predicates, Predicate{Column: column, Op: OpGte, Value: value})
	return q
}

// WhereLte appends an inclusive upper-bound predicate.
func (q *Query) WhereLte(column string, value interface{}) *Query {
	q.Predicates = append(q.Predicates, Predicate{Column: column, Op: OpLte, Value: value})
	return q
}

// Select sets the explicit projection. Column names are upper-cased to the
// warehouse's identifier convention. Projection never suppresses predicate
// evaluation: predicates run against the source table, not the projected
// result.
func (q *Query) Select(columns []string) *Query {
	upper := make([]string, len(columns))
	for i, col := range columns {
		upper[i] = strings.ToUpper(strings.TrimSpace(col))
	}
	q.Columns = upper
	return q
}

// OrderBy sets the sort directive, upper-casing the column name.
func (q *Query) OrderBy(column string, direction Direction) *Query {
	q.Sort = Sort{Column: strings.ToUpper(column), Direction: direction}
	return q
}

// Page sets limit and offset. Limit is always applied by the renderer;
// offset only when positive.
func (q *Query) Page(limit, offset int) *Query {
	q.Limit = limit
	q.Offset = offset
	return q
}
