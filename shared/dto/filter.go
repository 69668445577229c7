package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterPlainQuery        = "plain"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

type Filter struct {
	// ArgName overrides the bind name; required when the same column is
	// both filtered and updated in one statement.
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq"`
	Table    string
}

// Eq is shorthand for an equality filter on table.field.
func Eq(table, field string, value any) Filter {
	return Filter{Table: table, Field: field, Value: value, Operator: FilterOperatorEq}
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = f.Table + "." + f.Field
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	if sign, ok := comparisons[f.Operator]; ok {
		args[argName] = f.Value

		return fmt.Sprintf("%s %s :%s", column, sign, argName), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[argName] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, argName), args
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if kind := val.Kind(); kind != reflect.Slice && kind != reflect.Array {
			return fmt.Sprintf("%s IN (%v)", column, f.Value), args
		}

		if val.Len() == 0 {
			return "FALSE", args
		}

		named := make([]string, val.Len())
		for idx := range val.Len() {
			name := fmt.Sprintf("%s_%d", argName, idx)
			args[name] = val.Index(idx).Interface()
			named[idx] = ":" + name
		}

		return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
	case FilterPlainQuery:
		query, _ := f.Value.(string)

		return "(" + query + ")", args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

// FilterGroup joins Filter and nested FilterGroup values with Operator.
// An empty Operator means AND.
type FilterGroup struct {
	Filters  []any
	Operator string
}

// And builds an AND group from filters.
func And(filters ...any) FilterGroup {
	return FilterGroup{Operator: FilterGroupOperatorAnd, Filters: filters}
}

// Add appends filter and returns the group for chaining.
func (f *FilterGroup) Add(filter any) *FilterGroup {
	f.Filters = append(f.Filters, filter)

	return f
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := []string{}

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}
