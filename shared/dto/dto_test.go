package dto_test

import (
	"hotel/shared/dto"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected dto.QueryParams
	}{
		{name: "page and limit", query: "page=2&limit=20", expected: dto.QueryParams{Page: 2, Limit: 20}},
		{name: "nothing sent", query: "", expected: dto.QueryParams{}},
		{name: "invalid page and negative limit", query: "page=abc&limit=-5", expected: dto.QueryParams{}},
		{name: "sorting is not client controlled", query: "sort_by=guest_email&sort_dir=ASC", expected: dto.QueryParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/bookings?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_CapLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "unset uses max", limit: 0, expected: 50},
		{name: "over max is capped", limit: 500, expected: 50},
		{name: "under max is kept", limit: 10, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := dto.QueryParams{Limit: tt.limit}
			params.CapLimit(50)

			assert.Equal(t, tt.expected, params.Limit)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, (&dto.QueryParams{Page: 1, Limit: 50}).Offset())
	assert.Equal(t, 100, (&dto.QueryParams{Page: 3, Limit: 50}).Offset())
	assert.Equal(t, 0, (&dto.QueryParams{}).Offset())
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{Field: "capacity", Value: 2, Operator: dto.FilterOperatorGreaterEq},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.status = :status AND capacity >= :capacity)", where)
	assert.Equal(t, map[string]any{"status": "confirmed", "capacity": 2}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterGroup_DefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "check_in", ArgName: "check_out_bound", Value: "2025-01-12", Operator: dto.FilterOperatorLess},
			dto.Filter{Field: "check_out", ArgName: "check_in_bound", Value: "2025-01-10", Operator: dto.FilterOperatorGreater},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(check_in < :check_out_bound AND check_out > :check_in_bound)", where)
	assert.Equal(t, map[string]any{"check_out_bound": "2025-01-12", "check_in_bound": "2025-01-10"}, args)
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "capacity", Value: 2, Operator: dto.FilterOperatorGreaterEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", ArgName: "cancelled", Value: "cancelled", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "status", ArgName: "completed", Value: "completed", Operator: dto.FilterOperatorEq},
				},
			},
			dto.Filter{Field: "ignored", Value: 1, Operator: "unknown"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(capacity >= :capacity AND (status = :cancelled OR status = :completed))", where)
	assert.Equal(t, map[string]any{"capacity": 2, "cancelled": "cancelled", "completed": "completed"}, args)
}
