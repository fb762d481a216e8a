package hrms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestNormalizePaginationNestedObject(t *testing.T) {
	pg := &Pagination{Page: 2, Limit: 10, Total: 45, TotalPages: 5}

	out := normalizePagination(nil, pg, 2, 10, 10)

	assert.Equal(t, *pg, out)
}

func TestNormalizePaginationNestedObjectWins(t *testing.T) {
	// When both shapes are present the nested object is authoritative.
	pg := &Pagination{Page: 1, Limit: 10, Total: 45, TotalPages: 5}

	out := normalizePagination(intPtr(999), pg, 1, 10, 10)

	assert.Equal(t, 45, out.Total)
}

func TestNormalizePaginationFillsTotalPages(t *testing.T) {
	pg := &Pagination{Total: 45}

	out := normalizePagination(nil, pg, 3, 10, 10)

	assert.Equal(t, 3, out.Page)
	assert.Equal(t, 10, out.Limit)
	assert.Equal(t, 5, out.TotalPages)
}

func TestNormalizePaginationBareTotal(t *testing.T) {
	out := normalizePagination(intPtr(21), nil, 1, 10, 10)

	assert.Equal(t, Pagination{Page: 1, Limit: 10, Total: 21, TotalPages: 3}, out)
}

func TestNormalizePaginationBareTotalNoLimit(t *testing.T) {
	out := normalizePagination(intPtr(21), nil, 1, 0, 21)

	assert.Equal(t, 21, out.Total)
	assert.Zero(t, out.TotalPages)
}

func TestNormalizePaginationUnpaginated(t *testing.T) {
	out := normalizePagination(nil, nil, 0, 0, 7)

	assert.Equal(t, Pagination{Page: 1, Limit: 0, Total: 7, TotalPages: 1}, out)
}
