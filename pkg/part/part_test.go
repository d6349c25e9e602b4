package part

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/damoonazarpazhooh/interleaver/internal/errcode"
	"github.com/palantir/stacktrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []byte {
	result := make([]byte, n)
	for i := range result {
		result[i] = byte(i)
	}
	return result
}

func TestSplitSevenIntoThree(t *testing.T) {
	parts := Split(sequence(7), 3)
	assert.Equal(t, [][]byte{{0, 3, 6}, {1, 4}, {2, 5}}, parts)
}

func TestMergeSevenFromThree(t *testing.T) {
	merged, err := Merge([][]byte{{0, 3, 6}, {1, 4}, {2, 5}})
	require.NoError(t, err)
	assert.Equal(t, sequence(7), merged)
}

func TestSplitEmpty(t *testing.T) {
	parts := Split([]byte{}, 4)
	require.Len(t, parts, 4)
	for _, p := range parts {
		assert.Empty(t, p)
	}
	merged, err := Merge(parts)
	require.NoError(t, err)
	assert.Empty(t, merged)
}

func TestSplitPanicsOnNonPositiveCount(t *testing.T) {
	assert.Panics(t, func() { Split([]byte{1}, 0) })
	assert.Panics(t, func() { Split([]byte{1}, -2) })
}

func TestMergeNoParts(t *testing.T) {
	_, err := Merge(nil)
	require.Error(t, err)
	assert.Equal(t, errcode.NoParts, stacktrace.GetCode(err))
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, size := range []int{1, 2, 3, 7, 10, 64, 255, 1000, 4099} {
		data := make([]byte, size)
		rng.Read(data)
		for n := 1; n <= size && n <= 70; n++ {
			parts := Split(data, n)
			require.Len(t, parts, n)
			merged, err := Merge(parts)
			require.NoError(t, err)
			if !bytes.Equal(data, merged) {
				t.Fatalf("round trip failed for size %d and %d parts", size, n)
			}
		}
	}
}

func TestRoundTripMorePartsThanBytes(t *testing.T) {
	data := sequence(3)
	parts := Split(data, 5)
	assert.Equal(t, []int{1, 1, 1, 0, 0}, Lengths(parts))
	merged, err := Merge(parts)
	require.NoError(t, err)
	assert.Equal(t, data, merged)
}

func TestLengthDistribution(t *testing.T) {
	tests := []struct {
		total int
		n     int
		want  []int
	}{
		{total: 10, n: 3, want: []int{4, 3, 3}},
		{total: 11, n: 3, want: []int{4, 4, 3}},
		{total: 12, n: 3, want: []int{4, 4, 4}},
		{total: 5, n: 1, want: []int{5}},
		{total: 0, n: 2, want: []int{0, 0}},
	}
	for _, tt := range tests {
		parts := Split(sequence(tt.total), tt.n)
		assert.Equal(t, tt.want, Lengths(parts), "total=%d n=%d", tt.total, tt.n)
		for i := range parts {
			assert.Equal(t, tt.want[i], Size(tt.total, tt.n, i))
			assert.Equal(t, tt.want[i], cap(parts[i]))
		}
	}
}

func TestMergeIgnoresLastPartConvention(t *testing.T) {
	// shortest part first: the bytes beyond it are still taken round-robin
	merged, err := Merge([][]byte{{0}, {1, 3}, {2, 4}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3, 4}, merged)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(Split(sequence(10), 3)))
	assert.NoError(t, Check(Split(nil, 3)))

	err := Check([][]byte{{1}, {2, 3}})
	require.Error(t, err)
	assert.Equal(t, errcode.UnevenParts, stacktrace.GetCode(err))
	assert.Contains(t, err.Error(), "lengths [1 2]")

	err = Check([][]byte{{1, 2, 3}, {4}})
	require.Error(t, err)
	assert.Equal(t, errcode.UnevenParts, stacktrace.GetCode(err))

	assert.Equal(t, errcode.NoParts, stacktrace.GetCode(Check(nil)))
}
