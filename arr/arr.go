package arr

import (
	"errors"
	"fmt"
)

// ErrInvalidChunkSize is returned by Chunk when size <= 0.
var ErrInvalidChunkSize = errors.New("arr: chunk size must be greater than 0")

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements. Every group is a
// fresh slice; items is not retained.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidChunkSize, size)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Drop returns items without its first n elements; n defaults to 1.
// Negative n is treated as 0.
func Drop[T any](items []T, n ...int) []T {
	skip := count(n)
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	out := make([]T, len(items)-skip)
	copy(out, items[skip:])
	return out
}

// DropWhile skips the leading elements for which fn(item, index, items)
// returns true and returns a copy of the rest.
func DropWhile[T any](items []T, fn func(T, int, []T) bool) []T {
	i := 0
	for i < len(items) && fn(items[i], i, items) {
		i++
	}
	out := make([]T, len(items)-i)
	copy(out, items[i:])
	return out
}

// Take returns the first min(n, len(items)) elements; n defaults to 1.
// Zero or negative n yields an empty slice.
func Take[T any](items []T, n ...int) []T {
	limit := min(count(n), len(items))
	if limit <= 0 {
		return []T{}
	}
	out := make([]T, limit)
	copy(out, items[:limit])
	return out
}

func count(n []int) int {
	if len(n) == 0 {
		return 1
	}
	return n[0]
}

// Zip groups the i-th elements of every input into one row. The result is
// as long as the longest input; shorter inputs contribute the zero value.
func Zip[T any](seqs ...[]T) [][]T {
	var zero T
	return ZipFill(zero, seqs...)
}

// ZipFill is Zip with an explicit filler for missing positions.
func ZipFill[T any](fill T, seqs ...[]T) [][]T {
	longest := 0
	for _, s := range seqs {
		longest = max(longest, len(s))
	}
	out := make([][]T, longest)
	for i := range out {
		row := make([]T, len(seqs))
		for j, s := range seqs {
			if i < len(s) {
				row[j] = s[i]
			} else {
				row[j] = fill
			}
		}
		out[i] = row
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns elements for which fn(item, index, items) returns true.
func Filter[T any](items []T, fn func(T, int, []T) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i, items) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int, []T) bool) []T {
	return Filter(items, func(item T, i int, all []T) bool { return !fn(item, i, all) })
}

// Compact removes zero values (0, "", false, nil pointers, …).
func Compact[T comparable](items []T) []T {
	var zero T
	return CompactFunc(items, func(item T) bool { return item != zero })
}

// CompactFunc keeps the elements for which truthy returns true.
func CompactFunc[T any](items []T, truthy func(T) bool) []T {
	return Filter(items, func(item T, _ int, _ []T) bool { return truthy(item) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying fn.
// Returns the zero value and false when items is empty or nothing matches.
func Find[T any](items []T, fn func(T) bool) (T, bool) {
	for _, item := range items {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element satisfying fn, or -1.
func FindIndex[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// Includes reports whether value occurs in items at or after fromIndex
// (default 0). A negative fromIndex counts back from the end and is clamped
// to 0.
func Includes[T comparable](items []T, value T, fromIndex ...int) bool {
	return IncludesFunc(items, value, func(a, b T) bool { return a == b }, fromIndex...)
}

// IncludesFunc is Includes with a caller-supplied equality.
func IncludesFunc[T any](items []T, value T, eq func(a, b T) bool, fromIndex ...int) bool {
	for i := StartIndex(len(items), fromIndex...); i < len(items); i++ {
		if eq(items[i], value) {
			return true
		}
	}
	return false
}

// StartIndex resolves an optional fromIndex against length: missing means
// 0, negative counts back from the end and is clamped to 0.
func StartIndex(length int, fromIndex ...int) int {
	if len(fromIndex) == 0 {
		return 0
	}
	from := fromIndex[0]
	if from < 0 {
		return max(length+from, 0)
	}
	return from
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Reduce reduces items to a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// Collapse flattens a slice of slices into a single flat slice.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}
