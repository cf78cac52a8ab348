package warehouse

import (
	"fmt"
	"strings"
)

// QuoteIdent renders an untrusted identifier safely. Names are upper-cased
// (the warehouse column namespace is uppercase by convention) and wrapped
// in double quotes with embedded quotes doubled, so a hostile column name
// can never escape the identifier position. Unknown columns still fail at
// execution, not here. Hand-written statements quote through this too;
// an unquoted identifier would fold to lowercase and resolve a different
// name than the compiled path.
func QuoteIdent(name string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	return `"` + strings.ReplaceAll(upper, `"`, `""`) + `"`
}

// SQL renders the query as a single parameterized SELECT. Every predicate
// value becomes a positional placeholder; limit and offset are validated
// integers and rendered inline. A zero offset emits no OFFSET clause.
func (q *Query) SQL() (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString("SELECT ")
	if len(q.Columns) > 0 {
		quoted := make([]string, len(q.Columns))
		for i, col := range q.Columns {
			quoted[i] = QuoteIdent(col)
		}
		sb.WriteString(strings.Join(quoted, ", "))
	} else {
		sb.WriteString("*")
	}
	sb.WriteString(" FROM ")
	sb.WriteString(QuoteIdent(q.Table))

	if len(q.Predicates) > 0 {
		sb.WriteString(" WHERE ")
		clauses := make([]string, 0, len(q.Predicates))
		for _, p := range q.Predicates {
			switch p.Op {
			case OpIn:
				placeholders := make([]string, len(p.Values))
				for i, v := range p.Values {
					args = append(args, v)
					placeholders[i] = fmt.Sprintf("$%d", len(args))
				}
				clauses = append(clauses, fmt.Sprintf("%s IN (%s)", QuoteIdent(p.Column), strings.Join(placeholders, ", ")))
			case OpContains:
				args = append(args, p.Value)
				clauses = append(clauses, fmt.Sprintf("%s LIKE '%%' || $%d || '%%'", QuoteIdent(p.Column), len(args)))
			default:
				args = append(args, p.Value)
				clauses = append(clauses, fmt.Sprintf("%s %s $%d", QuoteIdent(p.Column), p.Op, len(args)))
			}
		}
		sb.WriteString(strings.Join(clauses, " AND "))
	}

	if q.Sort.Column != "" {
		direction := Asc
		if q.Sort.Direction == Desc {
			direction = Desc
		}
		sb.WriteString(fmt.Sprintf(" ORDER BY %s %s", QuoteIdent(q.Sort.Column), direction))
	}

	sb.WriteString(fmt.Sprintf(" LIMIT %d", q.Limit))
	if q.Offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET %d", q.Offset))
	}

	return sb.String(), args
}
