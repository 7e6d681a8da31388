package value

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors returned by conversion and parsing.
var (
	// ErrUnsupportedType is returned by From for Go values that have no
	// counterpart in the model (channels, structs, maps with non-string keys…).
	ErrUnsupportedType = errors.New("value: unsupported Go type")

	// ErrUnsupportedDocument is returned by Parse for documents the model
	// cannot represent.
	ErrUnsupportedDocument = errors.New("value: unsupported document")
)

// From converts a Go value into a [Value].
//
//   - nil → Null
//   - Value → itself
//   - bool → Bool, integers and floats → Number, string → String
//   - slices and arrays → *Array
//   - maps with string keys → *Object, keys sorted
//   - func(...Value) Value → *Func
func From(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null, nil
	case Value:
		return Normalize(t), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case int:
		return Num(t), nil
	case func(...Value) Value:
		return NewFunc(t), nil
	case []any:
		out := &Array{elems: make([]Value, len(t))}
		for i, e := range t {
			v, err := From(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out.elems[i] = v
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := NewObject()
		for _, k := range keys {
			v, err := From(t[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out.Set(k, v)
		}
		return out, nil
	}
	return fromReflect(reflect.ValueOf(x))
}

// MustFrom is like From but panics on error. Intended for tests and
// package-level fixtures.
func MustFrom(x any) Value {
	v, err := From(x)
	if err != nil {
		panic(err)
	}
	return v
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null, nil
		}
		return From(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null, nil
		}
		out := &Array{elems: make([]Value, rv.Len())}
		for i := 0; i < rv.Len(); i++ {
			v, err := From(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out.elems[i] = v
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Null, nil
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		out := NewObject()
		for _, k := range keys {
			v, err := From(rv.MapIndex(k).Interface())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k.String(), err)
			}
			out.Set(k.String(), v)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}

// ToString coerces v to a string the way JavaScript's String(v) does.
func ToString(v Value) string {
	return toString(Normalize(v), make(map[*Array]struct{}))
}

func toString(v Value, joining map[*Array]struct{}) string {
	switch t := v.(type) {
	case undefinedValue:
		return "undefined"
	case nullValue:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(t))
	case Number:
		return formatNumber(float64(t))
	case String:
		return string(t)
	case *Array:
		if _, ok := joining[t]; ok {
			return ""
		}
		joining[t] = struct{}{}
		defer delete(joining, t)
		parts := make([]string, len(t.elems))
		for i, e := range t.elems {
			if !IsNullish(e) {
				parts[i] = toString(e, joining)
			}
		}
		return strings.Join(parts, ",")
	case *Object:
		return "[object Object]"
	case *Func:
		return "function () { [native code] }"
	}
	return ""
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	// Go pads the exponent to two digits ("1e-07"); JavaScript does not.
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// Format renders v as a compact JavaScript-like literal, e.g.
// {a: [1, "x", undefined], "b-c": null}. Cycles print as [Circular].
func Format(v Value) string {
	var b strings.Builder
	format(&b, Normalize(v), make(map[any]struct{}))
	return b.String()
}

func format(b *strings.Builder, v Value, active map[any]struct{}) {
	switch t := v.(type) {
	case String:
		b.WriteString(strconv.Quote(string(t)))
	case Number:
		if math.Signbit(float64(t)) && float64(t) == 0 {
			b.WriteString("-0")
			return
		}
		b.WriteString(formatNumber(float64(t)))
	case *Func:
		b.WriteString("[Function]")
	case *Array:
		if _, ok := active[t]; ok {
			b.WriteString("[Circular]")
			return
		}
		active[t] = struct{}{}
		defer delete(active, t)
		b.WriteByte('[')
		for i, e := range t.elems {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, e, active)
		}
		b.WriteByte(']')
	case *Object:
		if _, ok := active[t]; ok {
			b.WriteString("[Circular]")
			return
		}
		active[t] = struct{}{}
		defer delete(active, t)
		b.WriteByte('{')
		for i, k := range t.OwnKeys() {
			if i > 0 {
				b.WriteString(", ")
			}
			if isIdentifier(k) {
				b.WriteString(k)
			} else {
				b.WriteString(strconv.Quote(k))
			}
			b.WriteString(": ")
			format(b, t.vals[k], active)
		}
		b.WriteByte('}')
	default:
		b.WriteString(ToString(v))
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
