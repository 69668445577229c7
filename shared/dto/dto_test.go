package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hms/shared/constant"
	"hms/shared/dto"
	"hms/shared/model"
	"hms/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	modifiedAt := createdAt.Add(time.Hour)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "manager-1",
		ModifiedBy: "manager-2",
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "manager-1", metadata.CreatedBy)
	assert.Equal(t, "manager-2", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		rawQuery     string
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "all parameters",
			rawQuery: "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults when empty",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults when empty",
			expected: dto.QueryParams{},
		},
		{
			name:         "invalid numbers fall back",
			rawQuery:     "page=abc&limit=-3",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction is ignored",
			rawQuery: "sort_by=name&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/hospitals?"+tt.rawQuery, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	params := dto.QueryParams{SortBy: "name"}
	params.RestrictSort("hospitals", "name", "created_at")

	assert.Equal(t, "hospitals.name", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)

	params = dto.QueryParams{SortBy: "name; DROP TABLE users", SortDir: dto.SortDirDesc}
	params.RestrictSort("hospitals", "name")

	assert.Empty(t, params.SortBy)
	assert.Empty(t, params.SortDir)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Eq("icu_rooms", "status", "Available"),
			wantWhere: "icu_rooms.status = :status",
			wantArgs:  map[string]any{"status": "Available"},
		},
		{
			name:      "arg name override",
			filter:    dto.Filter{Table: "icu_rooms", Field: "status", ArgName: "current_status", Value: "Available", Operator: dto.FilterOperatorEq},
			wantWhere: "icu_rooms.status = :current_status",
			wantArgs:  map[string]any{"current_status": "Available"},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "name", Value: "cairo", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": "%cairo%"},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "role", Value: []string{"Nurse", "Cleaner"}, Operator: dto.FilterOperatorIn},
			wantWhere: "role IN (:role_0, :role_1)",
			wantArgs:  map[string]any{"role_0": "Nurse", "role_1": "Cleaner"},
		},
		{
			name:      "in with empty slice matches nothing",
			filter:    dto.Filter{Field: "role", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Table: "icu_rooms", Field: "reserved_by", Operator: dto.FilterIsNull},
			wantWhere: "icu_rooms.reserved_by IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Eq("icu_rooms", "id", "icu-1"),
		dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Eq("icu_rooms", "status", "Available"),
				dto.Filter{Table: "icu_rooms", Field: "status", ArgName: "alt_status", Value: "Cleaned", Operator: dto.FilterOperatorEq},
			},
		},
		"ignored",
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(icu_rooms.id = :id AND (icu_rooms.status = :status OR icu_rooms.status = :alt_status))", where)
	assert.Equal(t, map[string]any{"id": "icu-1", "status": "Available", "alt_status": "Cleaned"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
