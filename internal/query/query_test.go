package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFields = Fields{
	"name":       "name",
	"province":   "province",
	"numOfRooms": "num_of_rooms",
	"createdAt":  "created_at",
}

func TestParse_Defaults(t *testing.T) {
	q := Parse(url.Values{}, testFields)

	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Empty(t, q.Predicates)
	assert.Empty(t, q.Select)
	assert.Equal(t, []SortField{{Column: "created_at", Desc: true}}, q.Sort)
}

func TestParse_EqualityFilter(t *testing.T) {
	values := url.Values{"province": {"Bangkok"}}

	q := Parse(values, testFields)

	require.Len(t, q.Predicates, 1)
	assert.Equal(t, Predicate{Column: "province", Op: OpEq, Value: "Bangkok"}, q.Predicates[0])
}

func TestParse_ComparisonOperators(t *testing.T) {
	tests := []struct {
		key string
		op  Op
	}{
		{"numOfRooms[gt]", OpGt},
		{"numOfRooms[gte]", OpGte},
		{"numOfRooms[lt]", OpLt},
		{"numOfRooms[lte]", OpLte},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			q := Parse(url.Values{tc.key: {"2"}}, testFields)

			require.Len(t, q.Predicates, 1)
			assert.Equal(t, "num_of_rooms", q.Predicates[0].Column)
			assert.Equal(t, tc.op, q.Predicates[0].Op)
			assert.Equal(t, int64(2), q.Predicates[0].Value)
		})
	}
}

func TestParse_InOperator(t *testing.T) {
	values := url.Values{"province[in]": {"Bangkok,Phuket"}}

	q := Parse(values, testFields)

	require.Len(t, q.Predicates, 1)
	assert.Equal(t, OpIn, q.Predicates[0].Op)
	assert.Equal(t, []any{"Bangkok", "Phuket"}, q.Predicates[0].Value)
}

func TestParse_UnknownOperatorDropped(t *testing.T) {
	// "regex" is not a recognized token: the whole key is treated as a
	// literal field name and fails the allow-list.
	values := url.Values{"name[regex]": {".*"}}

	q := Parse(values, testFields)

	assert.Empty(t, q.Predicates)
}

func TestParse_UnknownFieldDropped(t *testing.T) {
	values := url.Values{"password": {"x"}, "role[gte]": {"admin"}}

	q := Parse(values, testFields)

	assert.Empty(t, q.Predicates)
}

func TestParse_Select(t *testing.T) {
	values := url.Values{"select": {"name,province,secret"}}

	q := Parse(values, testFields)

	assert.Equal(t, []string{"name", "province"}, q.Select)
}

func TestParse_Sort(t *testing.T) {
	values := url.Values{"sort": {"-numOfRooms,name,bogus"}}

	q := Parse(values, testFields)

	assert.Equal(t, []SortField{
		{Column: "num_of_rooms", Desc: true},
		{Column: "name", Desc: false},
	}, q.Sort)
}

func TestParse_SortAllUnknownFallsBack(t *testing.T) {
	q := Parse(url.Values{"sort": {"bogus,-other"}}, testFields)

	assert.Equal(t, []SortField{{Column: "created_at", Desc: true}}, q.Sort)
}

func TestParse_PageAndLimit(t *testing.T) {
	values := url.Values{"page": {"3"}, "limit": {"10"}}

	q := Parse(values, testFields)

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestParse_InvalidPageAndLimitIgnored(t *testing.T) {
	values := url.Values{"page": {"-1"}, "limit": {"abc"}}

	q := Parse(values, testFields)

	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
}

func TestParse_ReservedKeysNeverFilter(t *testing.T) {
	values := url.Values{
		"select": {"name"},
		"sort":   {"name"},
		"page":   {"2"},
		"limit":  {"5"},
	}

	q := Parse(values, testFields)

	assert.Empty(t, q.Predicates)
}

func TestPagination_MiddlePage(t *testing.T) {
	q := ListQuery{Page: 2, Limit: 10}

	p := q.Pagination(25)

	require.NotNil(t, p.Next)
	require.NotNil(t, p.Prev)
	assert.Equal(t, Page{Page: 3, Limit: 10}, *p.Next)
	assert.Equal(t, Page{Page: 1, Limit: 10}, *p.Prev)
}

func TestPagination_FirstPage(t *testing.T) {
	q := ListQuery{Page: 1, Limit: 10}

	p := q.Pagination(25)

	require.NotNil(t, p.Next)
	assert.Equal(t, Page{Page: 2, Limit: 10}, *p.Next)
	assert.Nil(t, p.Prev)
}

func TestPagination_LastPage(t *testing.T) {
	q := ListQuery{Page: 3, Limit: 10}

	p := q.Pagination(25)

	assert.Nil(t, p.Next)
	require.NotNil(t, p.Prev)
	assert.Equal(t, Page{Page: 2, Limit: 10}, *p.Prev)
}

func TestPagination_ExactBoundary(t *testing.T) {
	q := ListQuery{Page: 1, Limit: 25}

	p := q.Pagination(25)

	assert.Nil(t, p.Next)
	assert.Nil(t, p.Prev)
}

func TestBuildSelect(t *testing.T) {
	q := ListQuery{
		Predicates: []Predicate{{Column: "num_of_rooms", Op: OpGte, Value: int64(2)}},
		Sort:       []SortField{{Column: "created_at", Desc: true}},
		Page:       2,
		Limit:      10,
	}

	sqlQuery, err := q.BuildSelect("coworkingspaces", []string{"id", "name"})

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `FROM "coworkingspaces"`)
	assert.Contains(t, sqlQuery, `"num_of_rooms" >= 2`)
	assert.Contains(t, sqlQuery, `"created_at" DESC`)
	assert.Contains(t, sqlQuery, "LIMIT 10")
	assert.Contains(t, sqlQuery, "OFFSET 10")
}

func TestBuildSelect_InPredicate(t *testing.T) {
	q := ListQuery{
		Predicates: []Predicate{{Column: "province", Op: OpIn, Value: []any{"Bangkok", "Phuket"}}},
		Sort:       []SortField{{Column: "name", Desc: false}},
		Page:       1,
		Limit:      25,
	}

	sqlQuery, err := q.BuildSelect("coworkingspaces", []string{"id"})

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `"province" IN`)
	assert.Contains(t, sqlQuery, "'Bangkok'")
	assert.Contains(t, sqlQuery, "'Phuket'")
	assert.Contains(t, sqlQuery, `"name" ASC`)
}

func TestBuildCount(t *testing.T) {
	sqlQuery, err := BuildCount("coworkingspaces")

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, "COUNT(*)")
	assert.Contains(t, sqlQuery, `FROM "coworkingspaces"`)
}
