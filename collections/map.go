package collections

import (
	"github.com/hasbyte1/go-lodash-utils/internal/prim"
	"github.com/hasbyte1/go-lodash-utils/value"
)

// Map calls fn with the value under every enumerable key of coll and
// collects the results. Arrays and strings visit their indices; objects
// visit own keys, then inherited ones. Other kinds yield an empty array.
func Map(coll value.Value, fn Iteratee) *value.Array {
	fn = fn.orIdentity()
	keys := prim.Keys(coll, prim.Inherited, prim.AllValues)
	out := make([]value.Value, 0, len(keys))
	for _, k := range keys {
		prim.Push(&out, fn(prim.Get(coll, k)))
	}
	return value.NewArray(out...)
}

// MapKey plucks key from every element of coll. Elements are visited as in
// [Map]; an element contributes its value under key only when it has that
// enumerable property, so elements without it are skipped rather than
// mapped to Undefined.
func MapKey(coll value.Value, key string) *value.Array {
	var out []value.Value
	for _, k := range prim.Keys(coll, prim.Inherited, prim.AllValues) {
		el := prim.Get(coll, k)
		if prim.Has(el, key) {
			prim.Push(&out, prim.Get(el, key))
		}
	}
	return value.NewArray(out...)
}

// MapBy is the single-entry form of Map and MapKey: a *value.Func is
// called as the iteratee and a String is plucked as a property name. Any
// other iteratee names no property key, so the result is empty.
func MapBy(coll, iterateeOrKey value.Value) *value.Array {
	switch t := value.Normalize(iterateeOrKey).(type) {
	case *value.Func:
		return Map(coll, func(v value.Value) value.Value { return t.Call(v) })
	case value.String:
		return MapKey(coll, string(t))
	}
	return value.NewArray()
}
