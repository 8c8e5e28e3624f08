package aerodex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestPaginate(t *testing.T) {
	data := make([]int, 137)
	for i := range data {
		data[i] = i
	}

	t.Run("Defaults", func(t *testing.T) {
		page := Paginate(data, nil, nil)
		assert.Equal(t, 137, page.Total)
		assert.Len(t, page.Data, MaxPageLimit)
		assert.True(t, page.HasMore)
		assert.Equal(t, 87, page.Remaining)
	})

	t.Run("DefaultsFitOnOnePage", func(t *testing.T) {
		page := Paginate(data[:3], nil, nil)
		assert.Equal(t, 3, page.Total)
		assert.Len(t, page.Data, 3)
		assert.False(t, page.HasMore)
		assert.Equal(t, 0, page.Remaining)
	})

	t.Run("OffsetAndLimit", func(t *testing.T) {
		page := Paginate(data, intPtr(10), intPtr(5))
		require.Len(t, page.Data, 5)
		assert.Equal(t, 10, page.Data[0])
		assert.Equal(t, 14, page.Data[4])
		assert.True(t, page.HasMore)
		assert.Equal(t, 137-15, page.Remaining)
	})

	t.Run("OffsetBeyondTotal", func(t *testing.T) {
		page := Paginate(data, intPtr(1000), nil)
		assert.Equal(t, 137, page.Total)
		assert.Empty(t, page.Data)
		assert.False(t, page.HasMore)
		assert.Equal(t, 0, page.Remaining)
	})

	t.Run("LimitCappedAtCeiling", func(t *testing.T) {
		page := Paginate(data, nil, intPtr(1000))
		assert.Len(t, page.Data, MaxPageLimit)
		assert.True(t, page.HasMore)
		assert.Equal(t, 137-MaxPageLimit, page.Remaining)
	})

	t.Run("NegativeValuesClamped", func(t *testing.T) {
		page := Paginate(data, intPtr(-3), intPtr(-7))
		assert.Equal(t, 137, page.Total)
		assert.Empty(t, page.Data)
		assert.True(t, page.HasMore)
		assert.Equal(t, 137, page.Remaining)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		page := Paginate([]int(nil), nil, nil)
		assert.Equal(t, 0, page.Total)
		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
		assert.False(t, page.HasMore)
		assert.Equal(t, 0, page.Remaining)
	})

	t.Run("WindowIsView", func(t *testing.T) {
		page := Paginate(data, intPtr(20), intPtr(10))
		require.Len(t, page.Data, 10)
		assert.Same(t, &data[20], &page.Data[0])
	})

	t.Run("Idempotence", func(t *testing.T) {
		first := Paginate(data, intPtr(33), intPtr(7))
		second := Paginate(data, intPtr(33), intPtr(7))
		assert.Equal(t, first, second)
	})
}

func TestPaginateProperties(t *testing.T) {
	data := make([]int, 123)
	for i := range data {
		data[i] = i
	}
	total := len(data)

	offsets := []int{0, 1, 49, 50, 51, 100, 122, 123, 124, 500}
	limits := []int{0, 1, 49, 50, 51, 100, 1000}

	for _, offset := range offsets {
		for _, limit := range limits {
			page := Paginate(data, &offset, &limit)

			start := min(offset, total)
			eff := min(limit, MaxPageLimit)
			want := min(eff, total-start)

			assert.Len(t, page.Data, want, "offset=%d limit=%d", offset, limit)
			assert.LessOrEqual(t, len(page.Data), MaxPageLimit)
			assert.Equal(t, start+len(page.Data) < total, page.HasMore,
				"offset=%d limit=%d", offset, limit)
			assert.Equal(t, total-(start+len(page.Data)), page.Remaining,
				"offset=%d limit=%d", offset, limit)
		}
	}
}
