package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		offset, limit int
		want          Pagination
	}{
		{
			name: "first page", total: 25, offset: 0, limit: 10,
			want: Pagination{Total: 25, Offset: 0, Limit: 10, HasNextPage: true, HasPreviousPage: false, TotalPages: 3, CurrentPage: 1},
		},
		{
			name: "middle page", total: 25, offset: 10, limit: 10,
			want: Pagination{Total: 25, Offset: 10, Limit: 10, HasNextPage: true, HasPreviousPage: true, TotalPages: 3, CurrentPage: 2},
		},
		{
			name: "last partial page", total: 25, offset: 20, limit: 10,
			want: Pagination{Total: 25, Offset: 20, Limit: 10, HasNextPage: false, HasPreviousPage: true, TotalPages: 3, CurrentPage: 3},
		},
		{
			name: "empty", total: 0, offset: 0, limit: 10,
			want: Pagination{Total: 0, Offset: 0, Limit: 10, HasNextPage: false, HasPreviousPage: false, TotalPages: 0, CurrentPage: 1},
		},
		{
			name: "exact fit", total: 20, offset: 10, limit: 10,
			want: Pagination{Total: 20, Offset: 10, Limit: 10, HasNextPage: false, HasPreviousPage: true, TotalPages: 2, CurrentPage: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.total, tt.offset, tt.limit))
		})
	}
}
