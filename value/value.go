package value

import "math"

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindFunc
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBool:      "bool",
	KindNumber:    "number",
	KindString:    "string",
	KindArray:     "array",
	KindObject:    "object",
	KindFunc:      "func",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsContainer reports whether values of this kind hold other values.
func (k Kind) IsContainer() bool { return k == KindArray || k == KindObject }

// Value is a dynamic value. The set of implementations is closed: only the
// types declared in this package satisfy it.
type Value interface {
	Kind() Kind
	sealed()
}

type undefinedValue struct{}
type nullValue struct{}

// Bool is a boolean value.
type Bool bool

// Number is a IEEE-754 double, including NaN, ±Inf and -0.
type Number float64

// String is a string value.
type String string

var (
	// Undefined is the absent sentinel: out-of-range reads, missing keys
	// and Find misses all produce it.
	Undefined Value = undefinedValue{}

	// Null is an explicit null.
	Null Value = nullValue{}

	// NaN is a convenience Number holding math.NaN().
	NaN = Number(math.NaN())
)

func (undefinedValue) Kind() Kind { return KindUndefined }
func (nullValue) Kind() Kind      { return KindNull }
func (Bool) Kind() Kind           { return KindBool }
func (Number) Kind() Kind         { return KindNumber }
func (String) Kind() Kind         { return KindString }

func (undefinedValue) sealed() {}
func (nullValue) sealed()      {}
func (Bool) sealed()           {}
func (Number) sealed()         {}
func (String) sealed()         {}

func (undefinedValue) String() string { return "undefined" }
func (nullValue) String() string      { return "null" }

// Num is shorthand for Number(float64(n)).
func Num[N ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64](n N) Number {
	return Number(float64(n))
}

// NegZero returns the Number -0.
func NegZero() Number { return Number(math.Copysign(0, -1)) }

// Func wraps a Go function so it can be stored inside arrays and objects.
// Two *Func values are equal only when they are the same pointer.
type Func struct {
	fn func(args ...Value) Value
}

// NewFunc returns a new function value.
func NewFunc(fn func(args ...Value) Value) *Func { return &Func{fn: fn} }

func (*Func) Kind() Kind { return KindFunc }
func (*Func) sealed()    {}

// Call invokes the wrapped function. A nil *Func or a nil body returns
// Undefined.
func (f *Func) Call(args ...Value) Value {
	if f == nil || f.fn == nil {
		return Undefined
	}
	out := f.fn(args...)
	if out == nil {
		return Undefined
	}
	return out
}

// KindOf returns v's kind, treating a nil interface and nil pointers as
// Undefined.
func KindOf(v Value) Kind {
	switch t := v.(type) {
	case nil:
		return KindUndefined
	case *Array:
		if t == nil {
			return KindUndefined
		}
	case *Object:
		if t == nil {
			return KindUndefined
		}
	case *Func:
		if t == nil {
			return KindUndefined
		}
	}
	return v.Kind()
}

// Normalize maps nil interfaces and nil pointers to Undefined and returns
// every other value unchanged.
func Normalize(v Value) Value {
	if KindOf(v) == KindUndefined {
		return Undefined
	}
	return v
}

// IsUndefined reports whether v is the absent sentinel (or nil).
func IsUndefined(v Value) bool { return KindOf(v) == KindUndefined }

// IsNullish reports whether v is Undefined or Null.
func IsNullish(v Value) bool {
	k := KindOf(v)
	return k == KindUndefined || k == KindNull
}

// IsObjectLike reports whether typeof v is "object" and v is not null:
// arrays and objects qualify, functions do not.
func IsObjectLike(v Value) bool { return KindOf(v).IsContainer() }

// TypeOf returns the JavaScript typeof string for v.
func TypeOf(v Value) string {
	switch KindOf(v) {
	case KindUndefined:
		return "undefined"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunc:
		return "function"
	default:
		return "object"
	}
}

// Truthy reports whether v is truthy. Undefined, Null, false, ±0, NaN and
// the empty string are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch t := Normalize(v).(type) {
	case undefinedValue, nullValue:
		return false
	case Bool:
		return bool(t)
	case Number:
		f := float64(t)
		return f != 0 && !math.IsNaN(f)
	case String:
		return t != ""
	default:
		return true
	}
}
