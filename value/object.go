package value

import (
	"sort"
	"strconv"
)

// Entry is a key/value pair used to build objects.
type Entry struct {
	Key   string
	Value Value
}

// E is shorthand for an [Entry].
func E(key string, v Value) Entry { return Entry{Key: key, Value: v} }

// Object is an ordered string-keyed mapping with an optional prototype
// parent. Objects are reference values.
//
// Keys set on the object itself are "own" keys. Keys reachable through the
// prototype chain are "inherited" and are only visible to [Object.Keys],
// [Object.Get] and [Object.Has].
type Object struct {
	keys  []string
	vals  map[string]Value
	proto *Object
}

// NewObject returns an object holding entries in order. A repeated key keeps
// its first position and its last value.
func NewObject(entries ...Entry) *Object {
	o := &Object{vals: make(map[string]Value, len(entries))}
	for _, e := range entries {
		o.Set(e.Key, e.Value)
	}
	return o
}

// NewObjectWithProto returns an object whose prototype is proto.
func NewObjectWithProto(proto *Object, entries ...Entry) *Object {
	o := NewObject(entries...)
	o.proto = proto
	return o
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) sealed()    {}

// Proto returns the prototype parent, or nil.
func (o *Object) Proto() *Object {
	if o == nil {
		return nil
	}
	return o.proto
}

// SetProto replaces the prototype parent. A prototype that would create a
// cycle is ignored.
func (o *Object) SetProto(proto *Object) {
	for p := proto; p != nil; p = p.proto {
		if p == o {
			return
		}
	}
	o.proto = proto
}

// Len returns the number of own keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Set stores v under key as an own property.
func (o *Object) Set(key string, v Value) {
	if o.vals == nil {
		o.vals = make(map[string]Value)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = Normalize(v)
}

// Delete removes an own key. Inherited keys are not affected.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i:i], o.keys[i+1:]...)
			break
		}
	}
}

// GetOwn returns the own value under key.
func (o *Object) GetOwn(key string) (Value, bool) {
	if o == nil {
		return Undefined, false
	}
	v, ok := o.vals[key]
	if !ok {
		return Undefined, false
	}
	return v, true
}

// HasOwn reports whether key is an own property.
func (o *Object) HasOwn(key string) bool {
	_, ok := o.GetOwn(key)
	return ok
}

// Get returns the value under key, searching the prototype chain.
// Missing keys yield Undefined.
func (o *Object) Get(key string) Value {
	for p := o; p != nil; p = p.proto {
		if v, ok := p.vals[key]; ok {
			return v
		}
	}
	return Undefined
}

// Has reports whether key is an own or inherited property.
func (o *Object) Has(key string) bool {
	for p := o; p != nil; p = p.proto {
		if _, ok := p.vals[key]; ok {
			return true
		}
	}
	return false
}

// OwnKeys returns the own keys in enumeration order: array-index keys in
// ascending numeric order, then the remaining keys in insertion order.
func (o *Object) OwnKeys() []string {
	if o == nil {
		return []string{}
	}
	return enumerationOrder(o.keys)
}

// Keys returns own keys followed by inherited keys that are not shadowed,
// walking the prototype chain outward. This is the for-in visiting order.
func (o *Object) Keys() []string {
	out := make([]string, 0, o.Len())
	seen := make(map[string]struct{})
	for p := o; p != nil; p = p.proto {
		for _, k := range p.OwnKeys() {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

// Entries returns the own entries in enumeration order.
func (o *Object) Entries() []Entry {
	keys := o.OwnKeys()
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Key: k, Value: o.vals[k]}
	}
	return out
}

// String renders the object with [Format].
func (o *Object) String() string { return Format(o) }

func enumerationOrder(keys []string) []string {
	var idx []string
	rest := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := arrayIndex(k); ok {
			idx = append(idx, k)
		} else {
			rest = append(rest, k)
		}
	}
	if len(idx) == 0 {
		return rest
	}
	sort.Slice(idx, func(i, j int) bool {
		a, _ := arrayIndex(idx[i])
		b, _ := arrayIndex(idx[j])
		return a < b
	})
	return append(idx, rest...)
}

// arrayIndex parses canonical array-index keys: "0", "1", ... without
// leading zeros or signs, below 2^32-1.
func arrayIndex(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	return int(n), true
}
