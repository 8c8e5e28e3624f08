package aerodex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/aerodex"
	"github.com/hupe1980/aerodex/testutil"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()
	lk := aerodex.New(testutil.Airports())

	t.Run("MatchByIdentifier", func(t *testing.T) {
		page, err := lk.Search("kjfk").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Total)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "KJFK", page.Data[0].ICAO)
		assert.False(t, page.HasMore)
		assert.Equal(t, 0, page.Remaining)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		lower, err := lk.Search("kjfk").Execute(ctx)
		require.NoError(t, err)
		upper, err := lk.Search("KJFK").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
	})

	t.Run("SubstringOnName", func(t *testing.T) {
		page, err := lk.Search("heathrow").Execute(ctx)
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "EGLL", page.Data[0].ICAO)
	})

	t.Run("EmptyQueryMatchesAll", func(t *testing.T) {
		page, err := lk.Search("").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
		assert.Len(t, page.Data, 3)
	})

	t.Run("NoMatch", func(t *testing.T) {
		page, err := lk.Search("XYZ").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.Empty(t, page.Data)
		assert.False(t, page.HasMore)
		assert.Equal(t, 0, page.Remaining)
	})

	t.Run("PaginatedWindow", func(t *testing.T) {
		page, err := lk.Search("international").Offset(1).Limit(1).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "KLAX", page.Data[0].ICAO)
		assert.False(t, page.HasMore)
	})

	t.Run("CountAndExists", func(t *testing.T) {
		n, err := lk.Search("airport").Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		ok, err := lk.Search("XYZ").Exists(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSearchOrderPreservation(t *testing.T) {
	ctx := context.Background()
	records := testutil.GenerateRecords(10_000)

	sequential := aerodex.New(records, aerodex.WithParallelism(1))
	parallel := aerodex.New(records,
		aerodex.WithParallelism(8),
		aerodex.WithParallelThreshold(1),
	)

	for _, query := range []string{"", "x0", "airfield 42", "X09999", "nomatch"} {
		seq, err := sequential.Matches(ctx, query)
		require.NoError(t, err)
		par, err := parallel.Matches(ctx, query)
		require.NoError(t, err)

		assert.Equal(t, seq, par, "query=%q", query)
	}
}

func TestSearchOrderIsSubsequenceOfDataset(t *testing.T) {
	ctx := context.Background()
	records := testutil.GenerateRecords(5_000)
	lk := aerodex.New(records,
		aerodex.WithParallelism(4),
		aerodex.WithParallelThreshold(1),
	)

	matches, err := lk.Matches(ctx, "7")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	// Every matched identifier must appear in strictly increasing dataset
	// position.
	pos := make(map[string]int, len(records))
	for i, r := range records {
		pos[r.ICAO] = i
	}
	last := -1
	for _, m := range matches {
		require.Greater(t, pos[m.ICAO], last)
		last = pos[m.ICAO]
	}
}

func TestSearchParallelMatchesFeedPagination(t *testing.T) {
	ctx := context.Background()
	records := testutil.GenerateRecords(1_000)
	lk := aerodex.New(records,
		aerodex.WithParallelism(4),
		aerodex.WithParallelThreshold(1),
	)

	page, err := lk.Search("synthetic").Offset(100).Limit(1000).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1000, page.Total)
	assert.Len(t, page.Data, aerodex.MaxPageLimit)
	assert.True(t, page.HasMore)
	assert.Equal(t, 850, page.Remaining)
	assert.Equal(t, "X00100", page.Data[0].ICAO)
}
