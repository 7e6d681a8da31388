// Package prim holds the small building blocks the collections package is
// assembled from: push, reduce, forEach, membership, same-value comparison
// and enumerable-key listing.
package prim

import "github.com/hasbyte1/go-lodash-utils/value"

// Push appends values to *dst and returns the new length.
func Push[T any](dst *[]T, values ...T) int {
	*dst = append(*dst, values...)
	return len(*dst)
}

// Reduce folds items left to right starting from initial.
func Reduce[T, U any](items []T, fn func(acc U, item T, index int, items []T) U, initial U) U {
	acc := initial
	for i, item := range items {
		acc = fn(acc, item, i, items)
	}
	return acc
}

// Reduce1 folds items using the first element as the initial accumulator.
// It returns the zero value and false for an empty slice.
func Reduce1[T any](items []T, fn func(acc, item T, index int, items []T) T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	acc := items[0]
	for i := 1; i < len(items); i++ {
		acc = fn(acc, items[i], i, items)
	}
	return acc, true
}

// ForEach calls fn for every element.
func ForEach[T any](items []T, fn func(item T, index int, items []T)) {
	for i, item := range items {
		fn(item, i, items)
	}
}

// Contains reports whether items holds val under ==.
func Contains[T comparable](items []T, val T) bool {
	found := false
	ForEach(items, func(item T, _ int, _ []T) {
		if item == val {
			found = true
		}
	})
	return found
}

// ObjectIs is same-value equality; see [value.SameValue].
func ObjectIs(a, b value.Value) bool { return value.SameValue(a, b) }

// Scope selects which keys an enumeration visits.
type Scope uint8

const (
	// Own visits only the object's own keys.
	Own Scope = iota
	// Inherited visits own keys followed by unshadowed prototype keys.
	Inherited
)

// KeyFilter decides whether a key/value pair is reported by Keys.
type KeyFilter uint8

const (
	// AllValues reports every key.
	AllValues KeyFilter = iota
	// SkipFuncs drops keys whose value is a function.
	SkipFuncs
)

// Keys lists the enumerable keys of v.
//
// Objects report their keys in enumeration order under the given scope.
// Arrays and strings report their index keys. Every other kind has no
// enumerable keys.
func Keys(v value.Value, scope Scope, filter KeyFilter) []string {
	var keys []string
	switch t := value.Normalize(v).(type) {
	case *value.Object:
		if scope == Own {
			keys = t.OwnKeys()
		} else {
			keys = t.Keys()
		}
	case *value.Array:
		keys = t.Keys()
	case value.String:
		keys = value.StringKeys(t)
	default:
		return []string{}
	}
	if filter == AllValues {
		return keys
	}
	out := keys[:0:0]
	for _, k := range keys {
		if Get(v, k).Kind() != value.KindFunc {
			out = append(out, k)
		}
	}
	return out
}

// Get reads key from v: object properties (own or inherited), array
// indices, and string code units. Everything else reads as Undefined.
func Get(v value.Value, key string) value.Value {
	switch t := value.Normalize(v).(type) {
	case *value.Object:
		return t.Get(key)
	case *value.Array:
		return t.Get(key)
	case value.String:
		return value.StringGet(t, key)
	}
	return value.Undefined
}

// Has reports whether v has an enumerable property named key.
func Has(v value.Value, key string) bool {
	switch t := value.Normalize(v).(type) {
	case *value.Object:
		return t.Has(key)
	case *value.Array, value.String:
		return Contains(Keys(t, Own, AllValues), key)
	}
	return false
}
