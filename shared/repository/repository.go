package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/shared/constant"
	"hms/shared/dto"
	"hms/shared/logger"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
	errEmptyUpdate    = errors.New("nothing to update")
)

type column struct {
	name  string
	table string
	alias string
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// Joiner is implemented by models that read columns from other tables.
type Joiner interface {
	GetJoinQuery() string
}

// Repository builds SQL for a model from its `db`, `table` and `column` tags.
// Fields tagged with a foreign `table` are selected through the join query and
// never inserted.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := constant.Empty
	if joiner, ok := any(zero).(Joiner); ok {
		join = joiner.GetJoinQuery()
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		InsertColumns: insertColumns,
	}
}

type primaryKey struct{}

// WithPrimary sends reads made with ctx to the write connection. The read
// connection may lag behind a write this request just made.
func WithPrimary(ctx context.Context) context.Context {
	return context.WithValue(ctx, primaryKey{}, true)
}

// OnPrimary reports whether ctx was marked by WithPrimary.
func OnPrimary(ctx context.Context) bool {
	primary, _ := ctx.Value(primaryKey{}).(bool)

	return primary
}

func (repo *Repository[T]) reader(ctx context.Context) *sqlx.DB {
	if OnPrimary(ctx) {
		return repo.db.Write
	}

	return repo.db.Read
}

func (repo *Repository[T]) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op)
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, payload any) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("insert"))
	defer scope.End()

	placeholders := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, payload); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model)
}

// InsertBulk writes all models in a single statement.
func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.insert(ctx, repo.db.Write, models)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Exist"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == constant.Empty {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s %s)", repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var exist bool

	stmt, err := repo.reader(ctx).PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &exist, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entity, err)
	}

	return exist, nil
}

// Get returns the zero model when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	var model T

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectColumns(columns...), repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.reader(ctx).PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var ordering, pagination string

	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit
		pagination = "LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit
		pagination = "LIMIT :limit"
	}

	if params.SortBy != constant.Empty && params.SortDir != constant.Empty {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s", repo.selectColumns(columns...), repo.table, repo.join, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	stmt, err := repo.reader(ctx).PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	stmt, err := repo.reader(ctx).PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entity, err)
	}

	return count, nil
}

func (repo *Repository[T]) delete(ctx context.Context, exec execer, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("delete"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == constant.Empty {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s %s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	return repo.delete(ctx, repo.db.Write, filter)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) error {
	return repo.delete(ctx, sqltx, filter)
}

// update runs a single UPDATE and reports how many rows the filter matched.
// Filter argument names must not collide with the updated column names; use
// dto.Filter.ArgName when the same column appears on both sides.
func (repo *Repository[T]) update(ctx context.Context, exec execer, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("update"))
	defer scope.End()

	if len(mod) == 0 {
		return 0, errEmptyUpdate
	}

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == constant.Empty {
		return 0, errRequiredFilter
	}

	cols := slices.Sorted(maps.Keys(mod))
	assignments := make([]string, len(cols))

	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = :%s", col, col)
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, mod)

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update data (%s): %w", repo.entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entity, err)
	}

	scope.SetAttribute(constant.OtelRowsAffectedAttrKey, int(affected))

	return affected, nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	_, err := repo.update(ctx, repo.db.Write, mod, filter)

	return err
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	_, err := repo.update(ctx, sqltx, mod, filter)

	return err
}

// CompareAndSet applies mod only to rows matching filter, in one statement,
// and returns the number of rows it changed. Callers put the expected current
// state in the filter so that concurrent writers cannot both succeed.
func (repo *Repository[T]) CompareAndSet(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	return repo.update(ctx, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) CompareAndSetTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	return repo.update(ctx, sqltx, mod, filter)
}

func (repo *Repository[T]) selectColumns(only ...string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) && !slices.Contains(only, col.alias) {
			continue
		}

		switch {
		case col.table == constant.Empty:
			selected = append(selected, col.name)
		case col.alias != constant.Empty:
			selected = append(selected, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.alias))
		default:
			selected = append(selected, fmt.Sprintf("%s.%s", col.table, col.name))
		}
	}

	return strings.Join(selected, ", ")
}

func (repo *Repository[T]) BuildWhereClause(ctx context.Context, filter dto.FilterGroup) (string, map[string]any) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("BuildWhereClause"))
	defer scope.End()

	where, args := filter.GetWhereClause()
	if where == constant.Empty {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == constant.Empty || dbTag == "-" {
			continue
		}

		tableTag := field.Tag.Get("table")
		if tableTag == constant.Empty {
			tableTag = table
		}

		if tableTag == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != constant.Empty {
			columns = append(columns, column{name: colTag, table: tableTag, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: tableTag})
		}
	}

	return columns, insertColumns
}
