package common_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkwell/pkg/common"
)

func TestExtractPaginationParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/posts", nil)

	params := common.ExtractPaginationParams(r)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.PageSize)
}

func TestExtractPaginationParamsFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/posts?page=3&page_size=25", nil)

	params := common.ExtractPaginationParams(r)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.PageSize)
}

func TestExtractPaginationParamsIgnoresInvalidValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/posts?page=-1&page_size=abc", nil)

	params := common.ExtractPaginationParams(r)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.PageSize)
}

func TestExtractPaginationParamsCapsPageSize(t *testing.T) {
	r := httptest.NewRequest("GET", "/posts?page_size=5000", nil)

	params := common.ExtractPaginationParams(r)
	assert.Equal(t, 100, params.PageSize)
}

func TestBounds(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		pageSize  int
		total     int
		wantStart int
		wantEnd   int
	}{
		{"first page of three items", 1, 2, 3, 0, 2},
		{"partial last page", 2, 2, 3, 2, 3},
		{"page past the end", 5, 2, 3, 3, 3},
		{"empty collection", 1, 10, 0, 0, 0},
		{"exact fit", 2, 5, 10, 5, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := common.PaginationParams{Page: tc.page, PageSize: tc.pageSize}
			start, end := p.Bounds(tc.total)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, common.TotalPages(0, 10))
	assert.Equal(t, 1, common.TotalPages(10, 10))
	assert.Equal(t, 2, common.TotalPages(11, 10))
	assert.Equal(t, 0, common.TotalPages(5, 0))
}

func TestBuildPaginationMeta(t *testing.T) {
	meta := common.BuildPaginationMeta(2, 10, 25)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	first := common.BuildPaginationMeta(1, 10, 25)
	assert.False(t, first.HasPrev)

	last := common.BuildPaginationMeta(3, 10, 25)
	assert.False(t, last.HasNext)
}
