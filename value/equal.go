package value

import "math"

// SameValue implements same-value equality. It differs from "===" in two
// places: NaN equals NaN, and +0 is not equal to -0. Arrays, objects and
// functions compare by identity.
func SameValue(a, b Value) bool {
	a, b = Normalize(a), Normalize(b)
	if x, ok := a.(Number); ok {
		y, ok := b.(Number)
		if !ok {
			return false
		}
		fx, fy := float64(x), float64(y)
		if math.IsNaN(fx) || math.IsNaN(fy) {
			return math.IsNaN(fx) && math.IsNaN(fy)
		}
		return fx == fy && math.Signbit(fx) == math.Signbit(fy)
	}
	return identical(a, b)
}

// StrictEqual implements "===": NaN never equals anything and +0 equals -0.
func StrictEqual(a, b Value) bool {
	a, b = Normalize(a), Normalize(b)
	if x, ok := a.(Number); ok {
		y, ok := b.(Number)
		return ok && float64(x) == float64(y)
	}
	return identical(a, b)
}

func identical(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case undefinedValue, nullValue:
		return true
	case Bool:
		return x == b.(Bool)
	case String:
		return x == b.(String)
	case *Array:
		return x == b.(*Array)
	case *Object:
		return x == b.(*Object)
	case *Func:
		return x == b.(*Func)
	}
	return false
}

// Equal reports structural equality. Leaves compare with [SameValue];
// arrays compare element-wise; objects compare their own entries regardless
// of order. Prototypes are not compared, but inherited keys are not visible
// either. Functions compare by identity.
func Equal(a, b Value) bool {
	return deepEqual(Normalize(a), Normalize(b), make(map[[2]any]struct{}))
}

func deepEqual(a, b Value, visiting map[[2]any]struct{}) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Array:
		y := b.(*Array)
		if x == y {
			return true
		}
		pair := [2]any{x, y}
		if _, ok := visiting[pair]; ok {
			return true
		}
		visiting[pair] = struct{}{}
		if x.Len() != y.Len() {
			return false
		}
		for i := range x.elems {
			if !deepEqual(x.elems[i], y.elems[i], visiting) {
				return false
			}
		}
		return true
	case *Object:
		y := b.(*Object)
		if x == y {
			return true
		}
		pair := [2]any{x, y}
		if _, ok := visiting[pair]; ok {
			return true
		}
		visiting[pair] = struct{}{}
		if x.Len() != y.Len() {
			return false
		}
		for _, k := range x.keys {
			yv, ok := y.vals[k]
			if !ok || !deepEqual(x.vals[k], yv, visiting) {
				return false
			}
		}
		return true
	default:
		return SameValue(a, b)
	}
}

// Clone returns a deep copy of v. Arrays and objects are copied
// recursively; cloned objects keep the original prototype pointer.
// Scalars and functions are returned as is. Shared and cyclic references
// are preserved in the copy.
func Clone(v Value) Value {
	return clone(Normalize(v), make(map[any]Value))
}

func clone(v Value, seen map[any]Value) Value {
	switch t := v.(type) {
	case *Array:
		if c, ok := seen[t]; ok {
			return c
		}
		out := &Array{elems: make([]Value, len(t.elems))}
		seen[t] = out
		for i, e := range t.elems {
			out.elems[i] = clone(e, seen)
		}
		return out
	case *Object:
		if c, ok := seen[t]; ok {
			return c
		}
		out := &Object{
			keys:  make([]string, 0, len(t.keys)),
			vals:  make(map[string]Value, len(t.keys)),
			proto: t.proto,
		}
		seen[t] = out
		for _, k := range t.keys {
			out.keys = append(out.keys, k)
			out.vals[k] = clone(t.vals[k], seen)
		}
		return out
	default:
		return v
	}
}
