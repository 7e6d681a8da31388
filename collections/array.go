package collections

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/internal/prim"
	"github.com/hasbyte1/go-lodash-utils/value"
)

// Chunk splits seq into consecutive arrays of size elements; the last one
// may be shorter. It fails with [ErrInvalidArgument] when size <= 0.
func Chunk(seq *value.Array, size int) (*value.Array, error) {
	chunks, err := arr.Chunk(seq.Values(), size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	out := value.NewArray()
	for _, c := range chunks {
		out.Push(value.NewArray(c...))
	}
	return out, nil
}

// Compact returns the truthy elements of seq in order. 0, -0, NaN, "",
// false, Null and Undefined are dropped.
func Compact(seq *value.Array) *value.Array {
	return value.NewArray(arr.CompactFunc(seq.Values(), value.Truthy)...)
}

// Drop returns seq without its first n elements; n defaults to 1.
//
// Iteration starts at index n and reads up to the end, so a negative n
// yields -n Undefined entries followed by every element.
func Drop(seq *value.Array, n ...int) *value.Array {
	start := 1
	if len(n) > 0 {
		start = n[0]
	}
	var out []value.Value
	for i := start; i < seq.Len(); i++ {
		prim.Push(&out, seq.At(i))
	}
	return value.NewArray(out...)
}

// DropWhile skips elements while pred(el, index, seq) holds and returns the
// remainder.
func DropWhile(seq *value.Array, pred Predicate) *value.Array {
	pred = pred.orIdentity()
	rest := arr.DropWhile(seq.Values(), func(v value.Value, i int, _ []value.Value) bool {
		return pred(v, i, seq)
	})
	return value.NewArray(rest...)
}

// Take returns the first min(n, len) elements; n defaults to 1.
func Take(seq *value.Array, n ...int) *value.Array {
	return value.NewArray(arr.Take(seq.Values(), n...)...)
}

// Filter returns the elements for which pred(el, index, seq) holds.
func Filter(seq *value.Array, pred Predicate) *value.Array {
	pred = pred.orIdentity()
	kept := arr.Filter(seq.Values(), func(v value.Value, i int, _ []value.Value) bool {
		return pred(v, i, seq)
	})
	return value.NewArray(kept...)
}

// Find returns the first element matching match, or Undefined.
func Find(seq *value.Array, match Matcher) value.Value {
	if v, ok := arr.Find(seq.Values(), match.orIdentity()); ok {
		return v
	}
	return value.Undefined
}

// Zip groups the i-th elements of every input into one array per index.
// The result is as long as the longest input; shorter inputs contribute
// Undefined. With no inputs the result is empty.
func Zip(seqs ...*value.Array) *value.Array {
	cols := make([][]value.Value, len(seqs))
	for i, s := range seqs {
		cols[i] = s.Values()
	}
	out := value.NewArray()
	for _, row := range arr.ZipFill(value.Undefined, cols...) {
		out.Push(value.NewArray(row...))
	}
	return out
}
