package value

import "strconv"

// Array is an ordered, mutable sequence of values. Arrays are reference
// values: copying an *Array shares the elements.
type Array struct {
	elems []Value
}

// NewArray returns an array holding elems. Nil elements are stored as
// Undefined. The argument slice is copied.
func NewArray(elems ...Value) *Array {
	a := &Array{elems: make([]Value, len(elems))}
	for i, e := range elems {
		a.elems[i] = Normalize(e)
	}
	return a
}

// ArrayOf converts a Go slice into an array, mapping each element with From.
// Elements that From cannot convert are stored as Undefined.
func ArrayOf[T any](items []T) *Array {
	a := &Array{elems: make([]Value, len(items))}
	for i, item := range items {
		v, err := From(item)
		if err != nil {
			v = Undefined
		}
		a.elems[i] = v
	}
	return a
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) sealed()    {}

// Len returns the number of elements. A nil array has length 0.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

// At returns the element at index i, or Undefined when i is out of range.
func (a *Array) At(i int) Value {
	if a == nil || i < 0 || i >= len(a.elems) {
		return Undefined
	}
	return a.elems[i]
}

// Set stores v at index i, growing the array with Undefined as needed.
// Negative indices are ignored.
func (a *Array) Set(i int, v Value) {
	if i < 0 {
		return
	}
	for len(a.elems) <= i {
		a.elems = append(a.elems, Undefined)
	}
	a.elems[i] = Normalize(v)
}

// Push appends values and returns the new length.
func (a *Array) Push(values ...Value) int {
	for _, v := range values {
		a.elems = append(a.elems, Normalize(v))
	}
	return len(a.elems)
}

// Values returns a copy of the elements.
func (a *Array) Values() []Value {
	if a == nil {
		return []Value{}
	}
	out := make([]Value, len(a.elems))
	copy(out, a.elems)
	return out
}

// Get reads an element by its string key ("0", "1", ...). The "length" key
// yields the array length. Any other key is Undefined.
func (a *Array) Get(key string) Value {
	if key == "length" {
		return Num(a.Len())
	}
	if i, ok := arrayIndex(key); ok {
		return a.At(i)
	}
	return Undefined
}

// Keys returns the index keys of the array in ascending order.
func (a *Array) Keys() []string {
	keys := make([]string, a.Len())
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

// ParseIndex parses a canonical array-index key such as "3". Keys with
// signs, leading zeros or other characters are not indices.
func ParseIndex(key string) (int, bool) { return arrayIndex(key) }

// String renders the array with [Format].
func (a *Array) String() string { return Format(a) }
