package checksum_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DnLKnR/AdventOfCode2017/checksum"
)

const (
	spreadSample   = "5 1 9 5\n7 5 3\n2 4 6 8"
	divisionSample = "5 9 2 8\n9 4 7 3\n3 8 6 5"
)

func TestSpreadChecksum(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want int64
	}{
		{spreadSample, 18},
		{divisionSample, 18},
		{"5\t9\t2\t8\r\n9\t4\t7\t3\r\n3\t8\t6\t5", 18},
		{"7", 0},
		{"4 4 4", 0},
		{"-5 5", 10},
		{"9223372036854775807 0", math.MaxInt64},
		{"-9223372036854775808 -1", math.MaxInt64},
		{"-9223372036854775808 -9223372036854775808", 0},
	} {
		got, err := checksum.SpreadChecksum(tt.in)
		require.NoError(t, err, "SpreadChecksum(%q)", tt.in)
		assert.Equal(t, tt.want, got, "SpreadChecksum(%q)", tt.in)
	}
}

func TestSpreadEmptyRow(t *testing.T) {
	_, err := checksum.Spread(checksum.Matrix{{1, 2}, {}})
	require.ErrorIs(t, err, checksum.ErrEmptyRow)

	var rerr *checksum.RowError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 1, rerr.Row)
}

func TestSpreadOverflow(t *testing.T) {
	for _, tt := range []struct {
		in      string
		wantRow int
	}{
		{"-9223372036854775808 9223372036854775807", 0},
		{"1 2\n9223372036854775807 -1", 1},
		{"9223372036854775807 0\n9223372036854775807 0", 1},
		{"9223372036854775806 0\n1 0\n1 0", 2},
	} {
		got, err := checksum.SpreadChecksum(tt.in)
		require.ErrorIs(t, err, checksum.ErrOverflow, "SpreadChecksum(%q)", tt.in)
		assert.Zero(t, got)

		var rerr *checksum.RowError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, tt.wantRow, rerr.Row, "SpreadChecksum(%q)", tt.in)
	}

	_, err := checksum.Row{math.MinInt64, math.MaxInt64}.Spread()
	assert.ErrorIs(t, err, checksum.ErrOverflow)
}

func TestSpreadParseError(t *testing.T) {
	_, err := checksum.SpreadChecksum("1 2\n")
	var perr *checksum.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestSpreadPermutationInvariant(t *testing.T) {
	mat, err := checksum.Parse(spreadSample)
	require.NoError(t, err)
	want, err := checksum.Spread(mat)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make(checksum.Matrix, len(mat))
		for j, row := range mat {
			r := append(checksum.Row(nil), row...)
			rng.Shuffle(len(r), func(a, b int) { r[a], r[b] = r[b], r[a] })
			shuffled[j] = r
			d, err := r.Spread()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, d, int64(0))
		}
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got, err := checksum.Spread(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDivisionChecksum(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want int64
	}{
		{divisionSample, 9},
		{"5\t9\t2\t8\r\n9\t4\t7\t3\r\n3\t8\t6\t5", 9},
		{"6 6", 1},
		{"2 8", 4},
		{"8 2", 4},
		{"3 7 2 9 6", 3}, // (3, 9) comes before (3, 6) and (2, 6)
		{"-6 3", -2},
		{"-9223372036854775808 1", math.MinInt64},
		{"9223372036854775807 -1", -math.MaxInt64},
		{"-9223372036854775808 2", math.MinInt64 / 2},
	} {
		got, err := checksum.DivisionChecksum(tt.in)
		require.NoError(t, err, "DivisionChecksum(%q)", tt.in)
		assert.Equal(t, tt.want, got, "DivisionChecksum(%q)", tt.in)
	}
}

func TestDivisionNoPair(t *testing.T) {
	for _, in := range []string{
		"5 7 11",
		"4",
		"0 0",
		"0 5 7",
		"2 4\n5 7 11",
	} {
		_, err := checksum.DivisionChecksum(in)
		assert.ErrorIs(t, err, checksum.ErrNoDivisiblePair, "DivisionChecksum(%q)", in)
	}

	_, err := checksum.DivisionChecksum("2 4\n5 7 11")
	var rerr *checksum.RowError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 1, rerr.Row)
	assert.Equal(t, "line 2: checksum: no evenly divisible pair", err.Error())
}

func TestDivisionOverflow(t *testing.T) {
	for _, tt := range []struct {
		in      string
		wantRow int
	}{
		{"-9223372036854775808 -1", 0},
		{"-1 -9223372036854775808", 0},
		{"2 4\n-9223372036854775808 -1 3", 1},
		{"9223372036854775807 1\n1 1", 1},
		{"-9223372036854775808 1\n-1 1", 1},
	} {
		got, err := checksum.DivisionChecksum(tt.in)
		require.ErrorIs(t, err, checksum.ErrOverflow, "DivisionChecksum(%q)", tt.in)
		assert.Zero(t, got)

		var rerr *checksum.RowError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, tt.wantRow, rerr.Row, "DivisionChecksum(%q)", tt.in)
	}

	// An earlier qualifying pair wins before the overflowing one is reached.
	got, err := checksum.DivisionChecksum("4 2 -9223372036854775808 -1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}

func TestDivisionPositive(t *testing.T) {
	mat, err := checksum.Parse(divisionSample)
	require.NoError(t, err)
	for _, row := range mat {
		q, err := row.Quotient()
		require.NoError(t, err)
		assert.Positive(t, q)
	}
}

func TestDivisionEmptyRow(t *testing.T) {
	_, err := checksum.Division(checksum.Matrix{{}})
	assert.ErrorIs(t, err, checksum.ErrNoDivisiblePair)
}

func TestPairs(t *testing.T) {
	type pair struct{ a, b int64 }
	var got []pair
	for a, b := range checksum.Pairs(checksum.Row{1, 2, 3, 4}) {
		got = append(got, pair{a, b})
	}
	want := []pair{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	assert.Equal(t, want, got)

	for range checksum.Pairs(checksum.Row{1}) {
		t.Fatal("single-value row produced a pair")
	}
}

func TestPairsStopsEarly(t *testing.T) {
	var n int
	for range checksum.Pairs(checksum.Row{1, 2, 3, 4, 5}) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func BenchmarkQuotient(b *testing.B) {
	row := make(checksum.Row, 16)
	for i := range row {
		row[i] = int64(101 + 2*i)
	}
	row[len(row)-1] = row[len(row)-2] * 3
	for i := 0; i < b.N; i++ {
		if _, err := row.Quotient(); err != nil {
			b.Fatal(err)
		}
	}
}
