package collections

import "github.com/hasbyte1/go-lodash-utils/value"

// Predicate is called with an element, its index and the whole sequence.
type Predicate func(v value.Value, index int, seq *value.Array) bool

// Matcher is a single-argument predicate.
type Matcher func(v value.Value) bool

// KeyPredicate is called with a property value and its key.
type KeyPredicate func(v value.Value, key string) bool

// Iteratee maps one value to another.
type Iteratee func(v value.Value) value.Value

// ArrayLike is anything with a length and integer-indexed reads.
// *value.Array satisfies it.
type ArrayLike interface {
	Len() int
	At(i int) value.Value
}

func (p Predicate) orIdentity() Predicate {
	if p != nil {
		return p
	}
	return func(v value.Value, _ int, _ *value.Array) bool { return value.Truthy(v) }
}

func (m Matcher) orIdentity() Matcher {
	if m != nil {
		return m
	}
	return value.Truthy
}

func (p KeyPredicate) orIdentity() KeyPredicate {
	if p != nil {
		return p
	}
	return func(v value.Value, _ string) bool { return value.Truthy(v) }
}

func (f Iteratee) orIdentity() Iteratee {
	if f != nil {
		return f
	}
	return func(v value.Value) value.Value { return v }
}
