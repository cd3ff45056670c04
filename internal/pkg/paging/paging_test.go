package paging_test

import (
	"testing"

	"distribution/internal/pkg/paging"

	"github.com/stretchr/testify/assert"
)

func TestFromQuery(t *testing.T) {
	t.Run("defaults for empty query", func(t *testing.T) {
		req := paging.FromQuery(map[string]string{})

		assert.Equal(t, 1, req.Page)
		assert.Equal(t, paging.DefaultLimit, req.Limit)
		assert.Empty(t, req.Sort)
		assert.Empty(t, req.Search)
	})

	t.Run("parses page, limit, sort and search", func(t *testing.T) {
		req := paging.FromQuery(map[string]string{
			"page":   "3",
			"limit":  "50",
			"sort":   "-created_at",
			"search": " R-77 ",
		})

		assert.Equal(t, 3, req.Page)
		assert.Equal(t, 50, req.Limit)
		assert.Equal(t, "created_at DESC", req.Sort)
		assert.Equal(t, "R-77", req.Search)
	})

	t.Run("ascending sort spec", func(t *testing.T) {
		req := paging.FromQuery(map[string]string{"sort": "business_id"})
		assert.Equal(t, "business_id ASC", req.Sort)
	})

	t.Run("clamps limit to maximum", func(t *testing.T) {
		req := paging.FromQuery(map[string]string{"limit": "100000"})
		assert.Equal(t, paging.MaxLimit, req.Limit)
	})

	t.Run("ignores malformed page and limit", func(t *testing.T) {
		req := paging.FromQuery(map[string]string{"page": "abc", "limit": "-5"})
		assert.Equal(t, 1, req.Page)
		assert.Equal(t, paging.DefaultLimit, req.Limit)
	})

	t.Run("rejects sort specs with unsafe characters", func(t *testing.T) {
		req := paging.FromQuery(map[string]string{"sort": "created_at; DROP TABLE orders"})
		assert.Empty(t, req.Sort)
	})
}

func TestRequest_Offset(t *testing.T) {
	req := paging.FromQuery(map[string]string{"page": "4", "limit": "25"})
	assert.Equal(t, 75, req.Offset())
}

func TestRequest_MetaFor(t *testing.T) {
	t.Run("partial last page rounds up", func(t *testing.T) {
		req := paging.FromQuery(map[string]string{"page": "2", "limit": "10"})
		meta := req.MetaFor(101)

		assert.Equal(t, 2, meta.Page)
		assert.Equal(t, 10, meta.Limit)
		assert.Equal(t, 11, meta.TotalPage)
		assert.Equal(t, int64(101), meta.TotalDoc)
	})

	t.Run("zero documents yields zero pages", func(t *testing.T) {
		req := paging.FromQuery(map[string]string{})
		meta := req.MetaFor(0)
		assert.Equal(t, 0, meta.TotalPage)
	})
}
