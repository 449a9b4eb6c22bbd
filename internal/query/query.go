// Package query turns raw list-endpoint parameters into a bounded read
// specification: an allow-listed filter, projection, sort order and page
// window over one collection.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
)

type Op string

const (
	OpEq  Op = "eq"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLt  Op = "lt"
	OpLte Op = "lte"
	OpIn  Op = "in"
)

// opTokens is the fixed set of comparison tokens recognized inside filter
// keys. Anything else is treated as part of a literal field name, so client
// input can never smuggle an operator into the store query.
var opTokens = map[string]Op{
	"gt":  OpGt,
	"gte": OpGte,
	"lt":  OpLt,
	"lte": OpLte,
	"in":  OpIn,
}

// reserved keys control the query shape and are never filter predicates.
var reserved = map[string]struct{}{
	"select": {},
	"sort":   {},
	"page":   {},
	"limit":  {},
}

// Fields maps exposed request field names onto table columns. Request
// fields absent from the map are silently dropped.
type Fields map[string]string

type Predicate struct {
	Column string
	Op     Op
	Value  any
}

type SortField struct {
	Column string
	Desc   bool
}

type ListQuery struct {
	Predicates []Predicate
	Select     []string // request field names, for response projection
	Sort       []SortField
	Page       int
	Limit      int
}

// Parse builds a ListQuery from URL query parameters. Filter keys may carry
// a comparison token in brackets, e.g. numOfRooms[gte]=2 or
// province[in]=Bangkok,Phuket; a bare key is an equality match.
func Parse(values url.Values, fields Fields) ListQuery {
	q := ListQuery{Page: DefaultPage, Limit: DefaultLimit}

	for key, vals := range values {
		if _, ok := reserved[key]; ok {
			continue
		}
		if len(vals) == 0 {
			continue
		}
		q.addPredicate(key, vals[0], fields)
	}

	if sel := values.Get("select"); sel != "" {
		for _, f := range strings.Split(sel, ",") {
			if _, ok := fields[f]; ok {
				q.Select = append(q.Select, f)
			}
		}
	}

	q.Sort = parseSort(values.Get("sort"), fields)

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit > 0 {
		q.Limit = limit
	}

	return q
}

func (q *ListQuery) addPredicate(key, val string, fields Fields) {
	field, token := splitBracket(key)

	op := OpEq
	if token != "" {
		mapped, known := opTokens[token]
		if !known {
			// Unknown token: the whole key is a literal field name and
			// will not survive the field allow-list below.
			field = key
		} else {
			op = mapped
		}
	}

	col, ok := fields[field]
	if !ok {
		return
	}

	if op == OpIn {
		parts := strings.Split(val, ",")
		items := make([]any, len(parts))
		for i, p := range parts {
			items[i] = literal(p)
		}
		q.Predicates = append(q.Predicates, Predicate{Column: col, Op: op, Value: items})
		return
	}

	q.Predicates = append(q.Predicates, Predicate{Column: col, Op: op, Value: literal(val)})
}

// splitBracket splits "field[token]" into its parts; a key without a
// well-formed bracket suffix comes back with an empty token.
func splitBracket(key string) (field, token string) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, ""
	}
	return key[:open], key[open+1 : len(key)-1]
}

func parseSort(raw string, fields Fields) []SortField {
	if raw == "" {
		return []SortField{{Column: "created_at", Desc: true}}
	}

	var sort []SortField
	for _, f := range strings.Split(raw, ",") {
		desc := strings.HasPrefix(f, "-")
		f = strings.TrimPrefix(f, "-")
		col, ok := fields[f]
		if !ok {
			continue
		}
		sort = append(sort, SortField{Column: col, Desc: desc})
	}
	if len(sort) == 0 {
		return []SortField{{Column: "created_at", Desc: true}}
	}
	return sort
}

// literal types a raw parameter so numeric comparisons reach the store as
// numbers rather than text.
func literal(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
