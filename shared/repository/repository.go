package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/infras/postgres"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/dto"
	"github.com/NikQuila/website-gocar-sub000/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var ErrFilterRequired = errors.New("filter is required")

// Joiner is implemented by row types that read columns from other tables.
type Joiner interface {
	JoinClause() string
}

type column struct {
	name  string
	table string
	alias string
}

func (c column) key() string {
	if c.alias != "" {
		return c.alias
	}

	return c.name
}

func (c column) expr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return c.table + "." + c.name + " AS " + c.alias
	default:
		return c.table + "." + c.name
	}
}

// Repository is a read-side gateway over a table or view, driven by the
// `db`, `table` and `column` struct tags of T. Writes go through the RPCs.
type Repository[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	table   string
	entity  string
	columns []column
	join    string
}

func NewRepository[T any](entity, table string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	repo := Repository[T]{
		db:      db,
		otel:    otl,
		table:   table,
		entity:  entity,
		columns: getColumns(table, reflect.TypeOf(zero)),
	}

	if joiner, ok := any(zero).(Joiner); ok {
		repo.join = joiner.JoinClause()
	}

	return repo
}

// Table returns the table or view the repository reads from.
func (repo *Repository[T]) Table() string {
	return repo.table
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (exist bool, err error) {
	where, args := whereClause(filter)
	if where == "" {
		return false, ErrFilterRequired
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s %s)", repo.table, repo.join, where)

	err = repo.run(ctx, "Exist", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &exist, args)
	})

	return exist, err
}

// Get returns the first matching row. A missing row yields the zero value
// and sql.ErrNoRows so callers can map it to their own not-found error.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (row T, err error) {
	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s LIMIT 1", repo.selectList(columns), repo.table, repo.join, where)

	err = repo.run(ctx, "Get", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &row, args)
	})

	return row, err
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) (rows []T, err error) {
	where, args := whereClause(filter)

	var tail strings.Builder

	if order := repo.orderBy(params); order != "" {
		tail.WriteString(" ORDER BY " + order)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		tail.WriteString(" LIMIT :limit")

		if params.Page > 1 {
			args["offset"] = (params.Page - 1) * params.Limit
			tail.WriteString(" OFFSET :offset")
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s%s", repo.selectList(columns), repo.table, repo.join, where, tail.String())

	err = repo.run(ctx, "GetAll", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &rows, args)
	})

	return rows, err
}

func (repo *Repository[T]) run(ctx context.Context, operation, query string, exec func(*sqlx.NamedStmt) error) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to prepare %s query (%s): %w", operation, repo.entity, err)
	}
	defer stmt.Close()

	err = exec(stmt)
	if errors.Is(err, sql.ErrNoRows) {
		return sql.ErrNoRows
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to run %s query (%s): %w", operation, repo.entity, err)
	}

	return nil
}

// selectList renders the requested columns, or every tagged column when
// none are named. Names match either the column or its alias.
func (repo *Repository[T]) selectList(names []string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(names) > 0 && !slices.Contains(names, col.name) && !slices.Contains(names, col.alias) {
			continue
		}

		exprs = append(exprs, col.expr())
	}

	return strings.Join(exprs, ", ")
}

// orderBy only sorts by known columns so params never reach the query text.
func (repo *Repository[T]) orderBy(params dto.QueryParams) string {
	if params.SortBy == "" {
		return ""
	}

	direction := strings.ToUpper(params.SortDir)
	if direction != dto.SortDirDesc {
		direction = dto.SortDirAsc
	}

	for _, col := range repo.columns {
		if col.key() != params.SortBy {
			continue
		}

		if col.alias != "" {
			return col.alias + " " + direction
		}

		return col.expr() + " " + direction
	}

	log.Warn().Str("entity", repo.entity).Str("sort_by", params.SortBy).Msg("ignoring unknown sort column")

	return ""
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return "WHERE " + where, args
}

// IsUndefinedColumn reports whether err is a postgres "column does not exist" error.
func IsUndefinedColumn(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUndefinedColumn
	}

	return false
}

func getColumns(table string, t reflect.Type) []column {
	var columns []column

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(table, field.Type)...)

			continue
		}

		name := field.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}

		col := column{name: name, table: field.Tag.Get("table")}
		if col.table == "" {
			col.table = table
		}

		if source := field.Tag.Get("column"); source != "" {
			col.name, col.alias = source, name
		}

		columns = append(columns, col)
	}

	return columns
}
