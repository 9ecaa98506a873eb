package dto_test

import (
	"testing"
	"time"

	"github.com/NikQuila/website-gocar-sub000/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilterGroup_GetWhereClause(t *testing.T) {
	dayStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "dealership_id", Value: "loc-1", Operator: dto.FilterOperatorEq, Table: "appointments"},
			dto.Filter{ArgName: "day_start", Field: "slot_start", Value: dayStart, Operator: dto.FilterOperatorGreaterEq, Table: "appointments"},
			dto.Filter{ArgName: "day_end", Field: "slot_start", Value: dayEnd, Operator: dto.FilterOperatorLess, Table: "appointments"},
			dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn, Table: "appointments"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "customer_uuid", Value: "9b2f", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "customer_int_id", Value: int64(42), Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(appointments.dealership_id = :dealership_id AND "+
		"appointments.slot_start >= :day_start AND "+
		"appointments.slot_start < :day_end AND "+
		"appointments.status IN (:status_0, :status_1) AND "+
		"(customer_uuid = :customer_uuid OR customer_int_id = :customer_int_id))", where)
	assert.Equal(t, map[string]any{
		"dealership_id":   "loc-1",
		"day_start":       dayStart,
		"day_end":         dayEnd,
		"status_0":        "pending",
		"status_1":        "confirmed",
		"customer_uuid":   "9b2f",
		"customer_int_id": int64(42),
	}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilter_In(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty set matches nothing",
			value:     []string{},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "single value",
			value:     "pending",
			wantWhere: "status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := dto.Filter{Field: "status", Value: tt.value, Operator: dto.FilterOperatorIn}

			where, args := filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
