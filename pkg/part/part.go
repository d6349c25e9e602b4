// Package part interleaves a byte sequence into parts and merges parts back.
//
// Byte i of the original goes to part i mod n. Lower-indexed parts receive
// the remainder bytes first, so part lengths never increase with the index
// and differ by at most one.
package part

import (
	"github.com/damoonazarpazhooh/interleaver/internal/errcode"
	"github.com/palantir/stacktrace"
)

// ErrNoParts is returned when merging an empty part set.
var ErrNoParts = stacktrace.NewErrorWithCode(errcode.NoParts, "no parts to merge")

// Split interleaves data into n parts.
// Split panics if n is not positive; callers validate the part count.
func Split(data []byte, n int) [][]byte {
	if n < 1 {
		panic("part: non-positive part count")
	}
	parts := make([][]byte, n)
	for i := range parts {
		parts[i] = make([]byte, 0, Size(len(data), n, i))
	}
	for i, b := range data {
		parts[i%n] = append(parts[i%n], b)
	}
	return parts
}

// Size returns the length of part index when total bytes are split into n
// parts.
func Size(total, n, index int) int {
	size := total / n
	if index < total%n {
		size++
	}
	return size
}

// Merge re-interleaves parts round-robin, in the given order.
//
// Every part contributes one byte per round while all parts still have
// bytes; the rounds after the shortest part is exhausted take bytes from the
// remaining parts by index. For parts produced by Split this restores the
// original exactly.
func Merge(parts [][]byte) ([]byte, error) {
	if len(parts) == 0 {
		return nil, ErrNoParts
	}
	minLen, maxLen, total := len(parts[0]), 0, 0
	for _, p := range parts {
		if len(p) < minLen {
			minLen = len(p)
		}
		if len(p) > maxLen {
			maxLen = len(p)
		}
		total += len(p)
	}
	result := make([]byte, 0, total)
	for i := 0; i < minLen; i++ {
		for _, p := range parts {
			result = append(result, p[i])
		}
	}
	for i := minLen; i < maxLen; i++ {
		for _, p := range parts {
			if i < len(p) {
				result = append(result, p[i])
			}
		}
	}
	return result, nil
}

// Check reports whether parts could have come out of Split: no part is longer
// than a lower-indexed one and lengths differ by at most one.
func Check(parts [][]byte) error {
	if len(parts) == 0 {
		return ErrNoParts
	}
	lengths := Lengths(parts)
	first, last := lengths[0], lengths[len(lengths)-1]
	for i := 1; i < len(lengths); i++ {
		if lengths[i] > lengths[i-1] {
			return stacktrace.NewErrorWithCode(
				errcode.UnevenParts,
				"part #%d (%d bytes) is longer than part #%d (%d bytes), lengths %v",
				i+1, lengths[i], i, lengths[i-1], lengths,
			)
		}
	}
	if first-last > 1 {
		return stacktrace.NewErrorWithCode(
			errcode.UnevenParts,
			"part lengths range from %d to %d bytes",
			last, first,
		)
	}
	return nil
}

// Lengths returns the length of every part.
func Lengths(parts [][]byte) []int {
	result := make([]int, len(parts))
	for i, p := range parts {
		result[i] = len(p)
	}
	return result
}
