// Package value provides the dynamically-typed value model that the
// collections package operates on.
//
// A [Value] is one of a closed set of kinds:
//
//	value.Undefined           // the "absent" sentinel
//	value.Null                // an explicit null
//	value.Bool(true)
//	value.Number(3.5)         // float64, NaN and ±0 included
//	value.String("hello")
//	value.NewArray(...)       // *Array, ordered, mutable, shared by reference
//	value.NewObject(...)      // *Object, ordered keys plus an optional prototype
//	value.NewFunc(fn)         // *Func, compared by identity
//
// # Equality
//
// [SameValue] implements same-value equality: NaN equals NaN and +0 is
// distinct from -0. [StrictEqual] implements "===". [Equal] compares
// structurally and is what tests usually want.
//
// # Key enumeration
//
// Objects remember insertion order and may point at a prototype parent.
// [Object.OwnKeys] lists only the object's own keys, [Object.Keys] adds the
// prototype chain's keys that are not shadowed. Integer-like keys come first,
// ascending, matching JavaScript's enumeration order.
//
// # Documents
//
// [Parse] decodes JSON or YAML into the model with key order preserved:
//
//	v, _ := value.Parse([]byte(`{"b": 1, "a": [true, null]}`))
//	value.Format(v) // → {b: 1, a: [true, null]}
package value
