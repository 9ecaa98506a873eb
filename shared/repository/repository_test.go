package repository

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/NikQuila/website-gocar-sub000/infras/otel/mocks"
	"github.com/NikQuila/website-gocar-sub000/shared/dto"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type sampleRow struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	SellerEmail *string `db:"seller_email" table:"sellers" column:"email"`
	Ignored     string
}

func (sampleRow) JoinClause() string {
	return "LEFT JOIN sellers ON sellers.id = vehicles.seller_id"
}

func TestGetColumns(t *testing.T) {
	columns := getColumns("vehicles", reflect.TypeOf(sampleRow{}))

	assert.Equal(t, []column{
		{name: "id", table: "vehicles"},
		{name: "name", table: "vehicles"},
		{name: "email", table: "sellers", alias: "seller_email"},
	}, columns)
}

func TestIsUndefinedColumn(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "undefined column",
			err:      fmt.Errorf("failed to get all data (appointment): %w", &pq.Error{Code: "42703"}),
			expected: true,
		},
		{
			name:     "other postgres error",
			err:      &pq.Error{Code: "23505"},
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("connection refused"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUndefinedColumn(tt.err))
		})
	}
}

func TestSelectList(t *testing.T) {
	repo := NewRepository[sampleRow]("vehicle", "vehicles", nil, mocks.NewOtel())

	assert.Equal(t, "LEFT JOIN sellers ON sellers.id = vehicles.seller_id", repo.join)
	assert.Equal(t, "vehicles.id, vehicles.name, sellers.email AS seller_email", repo.selectList(nil))
	assert.Equal(t, "vehicles.id, sellers.email AS seller_email", repo.selectList([]string{"id", "seller_email"}))
}

func TestOrderBy(t *testing.T) {
	repo := NewRepository[sampleRow]("vehicle", "vehicles", nil, mocks.NewOtel())

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{name: "unsorted", params: dto.QueryParams{}, expected: ""},
		{name: "default direction", params: dto.QueryParams{SortBy: "name"}, expected: "vehicles.name ASC"},
		{name: "descending", params: dto.QueryParams{SortBy: "name", SortDir: "desc"}, expected: "vehicles.name DESC"},
		{name: "aliased column", params: dto.QueryParams{SortBy: "seller_email", SortDir: dto.SortDirAsc}, expected: "seller_email ASC"},
		{name: "unknown column", params: dto.QueryParams{SortBy: "name; DROP TABLE vehicles"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repo.orderBy(tt.params))
		})
	}
}
