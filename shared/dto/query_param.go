package dto

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"hms/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string.
// With withDefaults the first page of DefaultValueLimit rows is assumed.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	q.Page = positiveInt(query.Get(constant.RequestParamPage), q.Page)
	q.Limit = positiveInt(query.Get(constant.RequestParamLimit), q.Limit)

	if sortBy := query.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir == SortDirAsc || dir == SortDirDesc {
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// RestrictSort drops SortBy unless it names one of the allowed columns.
// SortBy is interpolated into SQL, so handlers must call this before use.
func (q *QueryParams) RestrictSort(table string, allowed ...string) {
	if q.SortBy == "" {
		return
	}

	if !slices.Contains(allowed, q.SortBy) {
		q.SortBy = ""
		q.SortDir = ""

		return
	}

	if table != "" {
		q.SortBy = table + "." + q.SortBy
	}

	if q.SortDir == "" {
		q.SortDir = SortDirAsc
	}
}

func positiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}

	return v
}
