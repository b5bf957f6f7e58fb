package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "room_number",
				Operator: dto.FilterOperatorEq,
				Value:    "101",
				Table:    "rooms",
			},
			wantWhere: "rooms.room_number = :room_number",
			wantArgs:  map[string]any{"room_number": "101"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "type",
				Operator: dto.FilterOperatorEq,
				Value:    "Single",
			},
			wantWhere: "type = :type",
			wantArgs:  map[string]any{"type": "Single"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "guest_room_type",
				Field:    "type",
				Operator: dto.FilterOperatorEq,
				Value:    "Double",
				Table:    "rooms",
			},
			wantWhere: "rooms.type = :guest_room_type",
			wantArgs:  map[string]any{"guest_room_type": "Double"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "room_id",
				Operator: dto.FilterIsNull,
				Table:    "guests",
			},
			wantWhere: "guests.room_id IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name: "unknown operator",
			filter: dto.Filter{
				Field:    "id",
				Operator: "between",
			},
			wantWhere: "",
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
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_number",
				Operator: dto.FilterOperatorEq,
				Value:    "101",
				Table:    "rooms",
			},
			dto.Filter{
				Field:    "type",
				Operator: dto.FilterOperatorEq,
				Value:    "Single",
				Table:    "rooms",
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(rooms.room_number = :room_number AND rooms.type = :type)", where)
	assert.Len(t, args, 2)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		useDefault bool
		want       dto.QueryParams
	}{
		{
			name:       "all params present",
			target:     "/api/rooms?page=2&limit=25&sort_by=room_number&sort_dir=desc",
			useDefault: true,
			want:       dto.QueryParams{Page: 2, Limit: 25, SortBy: "room_number", SortDir: "DESC"},
		},
		{
			name:       "defaults applied",
			target:     "/api/rooms",
			useDefault: true,
			want:       dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:       "no defaults",
			target:     "/api/rooms",
			useDefault: false,
			want:       dto.QueryParams{},
		},
		{
			name:       "invalid values ignored",
			target:     "/api/rooms?page=abc&limit=-5&sort_dir=sideways",
			useDefault: false,
			want:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)

			params := dto.QueryParams{}
			params.FromRequest(r, tt.useDefault)

			assert.Equal(t, tt.want, params)
		})
	}
}
