package collections

import (
	"fmt"
	"log/slog"

	"github.com/hasbyte1/go-lodash-utils/internal/prim"
	"github.com/hasbyte1/go-lodash-utils/value"
)

// DefaultMaxDepth is the nesting limit used by [Merge] and [MergeCopy].
const DefaultMaxDepth = 10_000

// Merger deep-merges values. The zero value is not usable; build one with
// [NewMerger].
type Merger struct {
	logger   *slog.Logger
	maxDepth int
}

// MergeOption configures a [Merger].
type MergeOption func(*Merger)

// WithLogger traces skipped sources and replaced slots at debug level.
func WithLogger(logger *slog.Logger) MergeOption {
	return func(m *Merger) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMaxDepth bounds how deeply nested containers are merged.
func WithMaxDepth(depth int) MergeOption {
	return func(m *Merger) { m.maxDepth = depth }
}

// NewMerger returns a Merger configured by opts. It fails with
// [ErrInvalidArgument] when the max depth is not positive.
func NewMerger(opts ...MergeOption) (*Merger, error) {
	m := &Merger{
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.maxDepth <= 0 {
		return nil, fmt.Errorf("%w: max depth must be positive (got %d)", ErrInvalidArgument, m.maxDepth)
	}
	return m, nil
}

var defaultMerger, _ = NewMerger()

// Merge deep-merges every source into target in place and returns target.
//
// Sources that are not arrays or objects are ignored. For each own,
// non-function key of a source, in order:
//
//   - a scalar (Null included) overwrites the target's value, except that
//     Undefined never overwrites anything
//   - an array merging into an array, or an object into an object, merges
//     recursively; arrays merge index by index
//   - any other container is deep-copied into the slot
//
// A target that is not an array or object is returned unchanged.
// Merge panics with [ErrMaxDepth] when nesting exceeds [DefaultMaxDepth],
// which only cyclic sources can reach; use a [Merger] to get an error
// instead.
func Merge(target value.Value, sources ...value.Value) value.Value {
	out, err := defaultMerger.Merge(target, sources...)
	if err != nil {
		panic(err)
	}
	return out
}

// MergeCopy is Merge applied to a deep copy of target, leaving target
// untouched.
func MergeCopy(target value.Value, sources ...value.Value) value.Value {
	out, err := defaultMerger.Copy(target, sources...)
	if err != nil {
		panic(err)
	}
	return out
}

// Merge is the error-returning form of the package-level [Merge].
// On error, target may be partially merged.
func (m *Merger) Merge(target value.Value, sources ...value.Value) (value.Value, error) {
	target = value.Normalize(target)
	if !value.IsObjectLike(target) {
		m.logger.Debug("merge: target is not a container", "kind", value.KindOf(target))
		return target, nil
	}
	for i, src := range sources {
		src = value.Normalize(src)
		if !value.IsObjectLike(src) {
			m.logger.Debug("merge: skipped source", "index", i, "kind", value.KindOf(src))
			continue
		}
		if err := m.mergeInto(target, src, 1); err != nil {
			return target, fmt.Errorf("source %d: %w", i, err)
		}
	}
	return target, nil
}

// Copy is the error-returning form of [MergeCopy].
func (m *Merger) Copy(target value.Value, sources ...value.Value) (value.Value, error) {
	return m.Merge(value.Clone(target), sources...)
}

func (m *Merger) mergeInto(dst, src value.Value, depth int) error {
	if depth > m.maxDepth {
		return fmt.Errorf("%w (%d)", ErrMaxDepth, m.maxDepth)
	}
	if dst == src {
		return nil
	}
	for _, key := range prim.Keys(src, prim.Own, prim.SkipFuncs) {
		sv := prim.Get(src, key)
		if !value.IsObjectLike(sv) {
			if !value.IsUndefined(sv) {
				m.put(dst, key, sv, depth)
			}
			continue
		}
		dv, ok := ownSlot(dst, key)
		if ok && dv.Kind() == sv.Kind() {
			if err := m.mergeInto(dv, sv, depth+1); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			continue
		}
		if ok {
			m.logger.Debug("merge: replaced slot",
				"key", key, "depth", depth, "from", dv.Kind(), "to", sv.Kind())
		}
		m.put(dst, key, value.Clone(sv), depth)
	}
	return nil
}

func ownSlot(container value.Value, key string) (value.Value, bool) {
	switch t := container.(type) {
	case *value.Object:
		return t.GetOwn(key)
	case *value.Array:
		i, ok := value.ParseIndex(key)
		if !ok || i >= t.Len() {
			return value.Undefined, false
		}
		return t.At(i), true
	}
	return value.Undefined, false
}

func (m *Merger) put(container value.Value, key string, v value.Value, depth int) {
	switch t := container.(type) {
	case *value.Object:
		t.Set(key, v)
	case *value.Array:
		i, ok := value.ParseIndex(key)
		if !ok {
			m.logger.Debug("merge: dropped non-index key on array", "key", key, "depth", depth)
			return
		}
		t.Set(i, v)
	}
}
