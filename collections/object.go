package collections

import (
	"github.com/hasbyte1/go-lodash-utils/internal/prim"
	"github.com/hasbyte1/go-lodash-utils/value"
)

// Omit returns a new object with every own and inherited key of obj except
// those listed in keys. The result has no prototype.
func Omit(obj *value.Object, keys []string) *value.Object {
	return OmitBy(obj, func(_ value.Value, key string) bool {
		return prim.Contains(keys, key)
	})
}

// OmitBy returns a new object with every own and inherited entry of obj for
// which pred returns false.
func OmitBy(obj *value.Object, pred KeyPredicate) *value.Object {
	pred = pred.orIdentity()
	return collect(obj, prim.Inherited, prim.AllValues, func(v value.Value, k string) bool {
		return !pred(v, k)
	})
}

// Pick returns a new object with the own and inherited entries of obj whose
// key is listed in keys. Keys obj does not have are skipped.
func Pick(obj *value.Object, keys ...string) *value.Object {
	return collect(obj, prim.Inherited, prim.AllValues, func(_ value.Value, k string) bool {
		return prim.Contains(keys, k)
	})
}

// PickBy returns a new object with the own, non-function entries of obj for
// which pred returns true.
func PickBy(obj *value.Object, pred KeyPredicate) *value.Object {
	return collect(obj, prim.Own, prim.SkipFuncs, pred.orIdentity())
}

func collect(obj *value.Object, scope prim.Scope, filter prim.KeyFilter, keep KeyPredicate) *value.Object {
	keys := prim.Keys(obj, scope, filter)
	return prim.Reduce(keys, func(out *value.Object, k string, _ int, _ []string) *value.Object {
		if v := obj.Get(k); keep(v, k) {
			out.Set(k, v)
		}
		return out
	}, value.NewObject())
}
