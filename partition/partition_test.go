package partition_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/strpart/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_InvalidArgument verifies that a non-positive minimum or a
// negative length is rejected with ErrInvalidArgument.
func TestGenerate_InvalidArgument(t *testing.T) {
	cases := []struct {
		name    string
		length  int
		minPart int
	}{
		{"zero min", 10, 0},
		{"negative min", 10, -3},
		{"negative length", -1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := partition.Generate(tc.length, tc.minPart)
			assert.ErrorIs(t, err, partition.ErrInvalidArgument)
			assert.Nil(t, set, "no partitions on invalid input")
		})
	}
}

// TestGenerate_Short checks the exact, ordered result for (10, 4).
func TestGenerate_Short(t *testing.T) {
	set, err := partition.Generate(10, 4)
	require.NoError(t, err)
	assert.Equal(t, partition.Set{{10}, {4, 6}, {5, 5}, {6, 4}}, set)
}

// TestGenerate_Long checks the count for a longer input.
func TestGenerate_Long(t *testing.T) {
	set, err := partition.Generate(25, 4)
	require.NoError(t, err)
	assert.Len(t, set, 476)
}

// TestGenerate_Degenerate covers lengths too short to split, including
// the whole-length part that is itself below the minimum.
func TestGenerate_Degenerate(t *testing.T) {
	cases := []struct {
		length, minPart int
		want            partition.Set
	}{
		{0, 4, partition.Set{{0}}},
		{3, 4, partition.Set{{3}}},
		{4, 4, partition.Set{{4}}},
		{7, 4, partition.Set{{7}}},
		{8, 4, partition.Set{{8}, {4, 4}}},
	}
	for _, tc := range cases {
		set, err := partition.Generate(tc.length, tc.minPart)
		require.NoError(t, err)
		assert.Equal(t, tc.want, set, "Generate(%d, %d)", tc.length, tc.minPart)
	}
}

// TestGenerate_NestedOrder verifies ascending first parts with tails
// ordered the same way, whole tail first.
func TestGenerate_NestedOrder(t *testing.T) {
	set, err := partition.Generate(7, 2)
	require.NoError(t, err)
	want := partition.Set{
		{7},
		{2, 5}, {2, 2, 3}, {2, 3, 2},
		{3, 4}, {3, 2, 2},
		{4, 3},
		{5, 2},
	}
	assert.Equal(t, want, set)
}

// TestGenerate_Properties checks sums, the leading whole partition,
// the minimum part size and distinctness over a grid of inputs.
func TestGenerate_Properties(t *testing.T) {
	for length := 0; length <= 16; length++ {
		for minPart := 1; minPart <= 5; minPart++ {
			set, err := partition.Generate(length, minPart)
			require.NoError(t, err)
			require.NotEmpty(t, set)
			assert.Equal(t, partition.Partition{length}, set[0], "first partition is the whole length")

			seen := make(map[string]bool, len(set))
			for _, p := range set {
				assert.Equal(t, length, p.Sum(), "parts of %v must sum to %d", p, length)
				if length >= minPart {
					for _, part := range p {
						assert.GreaterOrEqual(t, part, minPart, "part of %v below min %d", p, minPart)
					}
				}
				key := p.String()
				assert.False(t, seen[key], "duplicate partition %v", p)
				seen[key] = true
			}
		}
	}
}

// TestGenerate_MemoMatches ensures memoisation never changes the result.
func TestGenerate_MemoMatches(t *testing.T) {
	for _, tc := range [][2]int{{0, 1}, {10, 4}, {12, 3}, {25, 4}, {14, 1}} {
		plain, err := partition.Generate(tc[0], tc[1])
		require.NoError(t, err)
		memo, err := partition.Generate(tc[0], tc[1], partition.WithMemo(true))
		require.NoError(t, err)
		assert.Equal(t, plain, memo, "Generate(%d, %d)", tc[0], tc[1])
	}
}

// TestGenerate_MemoFreshSlices ensures that partitions built from a shared
// memoised tail do not alias each other.
func TestGenerate_MemoFreshSlices(t *testing.T) {
	set, err := partition.Generate(12, 3, partition.WithMemo(true))
	require.NoError(t, err)
	require.Greater(t, len(set), 2)

	victim := set[1]
	for i := range victim {
		victim[i] = -1
	}
	for _, p := range set[2:] {
		assert.Equal(t, 12, p.Sum(), "%v was affected by mutating another partition", p)
	}
}

// TestGenerate_MaxParts verifies the part limit filters without reordering.
func TestGenerate_MaxParts(t *testing.T) {
	set, err := partition.Generate(9, 3, partition.WithMaxParts(2))
	require.NoError(t, err)
	assert.Equal(t, partition.Set{{9}, {3, 6}, {4, 5}, {5, 4}, {6, 3}}, set)

	set, err = partition.Generate(9, 3, partition.WithMaxParts(1), partition.WithMemo(true))
	require.NoError(t, err)
	assert.Equal(t, partition.Set{{9}}, set)

	all, err := partition.Generate(9, 3)
	require.NoError(t, err)
	unlimited, err := partition.Generate(9, 3, partition.WithMaxParts(0))
	require.NoError(t, err)
	assert.Equal(t, all, unlimited, "0 means no limit")
}

// TestGenerate_BadOption ensures a negative part limit is reported.
func TestGenerate_BadOption(t *testing.T) {
	_, err := partition.Generate(9, 3, partition.WithMaxParts(-1))
	assert.ErrorIs(t, err, partition.ErrOptionViolation)
}

// TestCount_MatchesGenerate compares the DP count with enumeration.
func TestCount_MatchesGenerate(t *testing.T) {
	for length := 0; length <= 20; length++ {
		for minPart := 1; minPart <= 4; minPart++ {
			set, err := partition.Generate(length, minPart)
			require.NoError(t, err)
			n, err := partition.Count(length, minPart)
			require.NoError(t, err)
			assert.Equal(t, len(set), n, "Count(%d, %d)", length, minPart)
		}
	}

	n, err := partition.Count(25, 4)
	require.NoError(t, err)
	assert.Equal(t, 476, n)
}

// TestCount_Errors covers invalid input, overflow and oversized tables.
func TestCount_Errors(t *testing.T) {
	_, err := partition.Count(5, 0)
	assert.ErrorIs(t, err, partition.ErrInvalidArgument)

	_, err = partition.Count(-2, 1)
	assert.ErrorIs(t, err, partition.ErrInvalidArgument)

	// With min 1 the count is 2^(n-1): fits for 30, overflows for 200.
	n, err := partition.Count(30, 1)
	require.NoError(t, err)
	assert.Equal(t, 1<<29, n)

	_, err = partition.Count(200, 1)
	assert.ErrorIs(t, err, partition.ErrCountOverflow)

	// Far more rows than the table allows; rejected before allocating.
	_, err = partition.Count(math.MaxInt, math.MaxInt/3)
	assert.ErrorIs(t, err, partition.ErrCountTooLarge)
}

// TestCount_LargeInputs checks lengths far beyond what an O(length) table
// could hold when the minimum leaves few rows to fill, against Generate.
func TestCount_LargeInputs(t *testing.T) {
	cases := []struct {
		name            string
		length, minPart int
		want            int
	}{
		{"max length, max min", math.MaxInt, math.MaxInt, 1},
		{"max length, min above half", math.MaxInt, math.MaxInt/2 + 1, 1},
		{"exact halves", math.MaxInt - 1, math.MaxInt / 2, 2},
		{"two-part band", 1_000_000, 400_000, 200_002},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := partition.Count(tc.length, tc.minPart)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)

			set, err := partition.Generate(tc.length, tc.minPart)
			require.NoError(t, err)
			assert.Len(t, set, n, "Count must agree with Generate")
			assert.Equal(t, partition.Partition{tc.length}, set[0])
		})
	}
}

// TestPartition_Helpers covers the small value methods.
func TestPartition_Helpers(t *testing.T) {
	p := partition.Partition{4, 6}
	assert.Equal(t, 10, p.Sum())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "[4 6]", p.String())

	c := p.Clone()
	c[0] = 9
	assert.Equal(t, 4, p[0], "Clone must not alias")
	assert.Nil(t, partition.Partition(nil).Clone())
}
