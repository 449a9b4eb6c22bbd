package query

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
)

const dialectPostgres = "postgres"

// BuildSelect renders the query into a SELECT over the given table. The
// column list is the repository's scan set; the request-level projection is
// applied when the response is built, not here.
func (q ListQuery) BuildSelect(table string, columns []string) (string, error) {
	cols := make([]any, len(columns))
	for i, c := range columns {
		cols[i] = c
	}

	stmt := goqu.Dialect(dialectPostgres).
		From(table).
		Select(cols...)

	for _, p := range q.Predicates {
		stmt = stmt.Where(predicateExpression(p))
	}

	ordered := make([]exp.OrderedExpression, 0, len(q.Sort))
	for _, s := range q.Sort {
		if s.Desc {
			ordered = append(ordered, goqu.I(s.Column).Desc())
		} else {
			ordered = append(ordered, goqu.I(s.Column).Asc())
		}
	}
	stmt = stmt.Order(ordered...)

	stmt = stmt.
		Limit(uint(q.Limit)).
		Offset(uint((q.Page - 1) * q.Limit))

	sqlQuery, _, err := stmt.ToSQL()
	if err != nil {
		return "", fmt.Errorf("build select: %w", err)
	}

	return sqlQuery, nil
}

// BuildCount renders a COUNT over the whole table; the total reported to
// clients is independent of the page window.
func BuildCount(table string) (string, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(table).
		Select(goqu.COUNT(goqu.Star()))

	sqlQuery, _, err := stmt.ToSQL()
	if err != nil {
		return "", fmt.Errorf("build count: %w", err)
	}

	return sqlQuery, nil
}

func predicateExpression(p Predicate) exp.Expression {
	c := goqu.C(p.Column)
	switch p.Op {
	case OpGt:
		return c.Gt(p.Value)
	case OpGte:
		return c.Gte(p.Value)
	case OpLt:
		return c.Lt(p.Value)
	case OpLte:
		return c.Lte(p.Value)
	case OpIn:
		return c.In(p.Value)
	default:
		return c.Eq(p.Value)
	}
}
