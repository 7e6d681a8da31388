package collections

import (
	"math"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/internal/prim"
	"github.com/hasbyte1/go-lodash-utils/value"
)

// Includes reports whether coll contains v. It dispatches on coll's kind:
//
//   - String: substring search, see [IncludesString]
//   - Array, or an Object with a numeric "length": see [IncludesArray]
//   - any other Object: see [IncludesObject]; fromIndex is ignored
//   - everything else: false
func Includes(coll, v value.Value, fromIndex ...int) bool {
	switch t := value.Normalize(coll).(type) {
	case value.String:
		return IncludesString(string(t), v, fromIndex...)
	case *value.Array:
		return IncludesArray(t, v, fromIndex...)
	case *value.Object:
		if n, ok := t.Get("length").(value.Number); ok {
			return IncludesArray(objectArrayLike{obj: t, n: arrayLikeLen(n)}, v, fromIndex...)
		}
		return IncludesObject(t, v)
	}
	return false
}

// IncludesString reports whether the string form of sub occurs in s at or
// after fromIndex. Offsets count UTF-16 code units; a negative fromIndex
// counts back from the end.
func IncludesString(s string, sub value.Value, fromIndex ...int) bool {
	from := 0
	if len(fromIndex) > 0 {
		from = fromIndex[0]
	}
	rest := value.SliceFrom(value.String(s), from)
	return strings.Contains(string(rest), value.ToString(sub))
}

// IncludesArray reports whether seq holds v at or after fromIndex under
// same-value equality: NaN is found by NaN, and -0 is not found by +0.
func IncludesArray(seq ArrayLike, v value.Value, fromIndex ...int) bool {
	switch t := seq.(type) {
	case nil:
		return false
	case *value.Array:
		return arr.IncludesFunc(t.Values(), v, prim.ObjectIs, fromIndex...)
	}
	n := seq.Len()
	for i := arr.StartIndex(n, fromIndex...); i < n; i++ {
		if prim.ObjectIs(seq.At(i), v) {
			return true
		}
	}
	return false
}

// IncludesObject reports whether any own, non-function property of obj is
// the same value as v.
func IncludesObject(obj *value.Object, v value.Value) bool {
	for _, k := range prim.Keys(obj, prim.Own, prim.SkipFuncs) {
		if prim.ObjectIs(obj.Get(k), v) {
			return true
		}
	}
	return false
}

type objectArrayLike struct {
	obj *value.Object
	n   int
}

func (o objectArrayLike) Len() int { return o.n }

func (o objectArrayLike) At(i int) value.Value { return o.obj.Get(strconv.Itoa(i)) }

// arrayLikeLen turns a "length" property into an iteration count. Loops run
// while i < length, so fractional lengths round up; NaN, non-positive and
// infinite lengths visit nothing.
func arrayLikeLen(n value.Number) int {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	return int(math.Ceil(min(f, math.MaxInt32)))
}
