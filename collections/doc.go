// Package collections implements lodash-style collection utilities over the
// dynamic values of package value.
//
// # Overview
//
// Every function is a stateless transformation that reads its inputs and
// returns a freshly allocated result:
//
//	users := value.MustParse(`[{"user": "barney", "active": false}, {"user": "pebbles", "active": true}]`)
//	active := collections.DropWhile(users.(*value.Array), func(u value.Value, _ int, _ *value.Array) bool {
//	    return !value.Truthy(u.(*value.Object).Get("active"))
//	})
//	names := collections.MapKey(users, "user") // → ["barney", "pebbles"]
//
// [Merge] is the exception: it deep-merges sources into its first argument
// in place. Use [MergeCopy] to leave the target untouched.
//
// # Key enumeration
//
// Functions differ in which object keys they visit:
//
//   - own and inherited keys: [Map], [MapKey], [Omit], [OmitBy], [Pick]
//   - own keys, function values skipped: [PickBy], [IncludesObject], [Merge]
//
// # Absent values
//
// Misses are reported with [value.Undefined], never with a nil interface.
// Package arr provides typed equivalents for plain Go slices.
package collections
