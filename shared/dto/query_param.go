package dto

import (
	"hotel/shared/constant"
	"net/http"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"    validate:"omitempty"`
	Limit   int    `json:"limit"   validate:"omitempty"`
	SortBy  string `json:"sortBy"  validate:"omitempty"`
	SortDir string `json:"sortDir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page and limit from the query string. Invalid or
// non-positive values are ignored.
func (q *QueryParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	if page, err := strconv.Atoi(queryParams.Get(constant.RequestParamPage)); err == nil && page > 0 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(queryParams.Get(constant.RequestParamLimit)); err == nil && limit > 0 {
		q.Limit = limit
	}
}

// CapLimit bounds Limit to max, using max when no limit was requested.
func (q *QueryParams) CapLimit(max int) {
	if q.Limit <= 0 || q.Limit > max {
		q.Limit = max
	}
}

// Offset returns the row offset for the current page.
func (q *QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}
