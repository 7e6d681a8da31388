package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lodash-utils/value"
)

// ─── Equality ─────────────────────────────────────────────────────────────────

func TestSameValue(t *testing.T) {
	assert.True(t, value.SameValue(value.NaN, value.Number(math.NaN())))
	assert.False(t, value.SameValue(value.Num(0), value.NegZero()))
	assert.True(t, value.SameValue(value.NegZero(), value.NegZero()))
	assert.True(t, value.SameValue(value.String("a"), value.String("a")))
	assert.False(t, value.SameValue(value.String("1"), value.Num(1)))
	assert.True(t, value.SameValue(value.Null, value.Null))
	assert.False(t, value.SameValue(value.Null, value.Undefined))
	assert.True(t, value.SameValue(nil, value.Undefined))
	assert.False(t, value.SameValue(value.NaN, value.String("NaN")))
}

func TestSameValueIdentity(t *testing.T) {
	a := value.NewArray(value.Num(1))
	assert.True(t, value.SameValue(a, a))
	assert.False(t, value.SameValue(a, value.NewArray(value.Num(1))))

	f := value.NewFunc(nil)
	assert.True(t, value.SameValue(f, f))
	assert.False(t, value.SameValue(f, value.NewFunc(nil)))
}

func TestStrictEqual(t *testing.T) {
	assert.False(t, value.StrictEqual(value.NaN, value.NaN))
	assert.True(t, value.StrictEqual(value.Num(0), value.NegZero()))
	assert.True(t, value.StrictEqual(value.Bool(true), value.Bool(true)))
}

func TestEqual(t *testing.T) {
	a := value.MustParse(`{"a": [1, {"b": null}], "c": "x"}`)
	b := value.MustParse(`{"c": "x", "a": [1, {"b": null}]}`)
	assert.True(t, value.Equal(a, b))
	assert.False(t, value.Equal(a, value.MustParse(`{"a": [1, {"b": 0}], "c": "x"}`)))
	assert.False(t, value.Equal(value.MustParse(`[1]`), value.MustParse(`[1, 2]`)))
	assert.True(t, value.Equal(value.NaN, value.NaN))
}

func TestEqualCycles(t *testing.T) {
	x := value.NewObject()
	x.Set("self", x)
	y := value.NewObject()
	y.Set("self", y)
	assert.True(t, value.Equal(x, y))
}

// ─── Truthiness & typeof ──────────────────────────────────────────────────────

func TestTruthy(t *testing.T) {
	falsy := []value.Value{value.Undefined, value.Null, value.Bool(false), value.Num(0),
		value.NegZero(), value.NaN, value.String(""), nil, (*value.Array)(nil)}
	for _, v := range falsy {
		assert.False(t, value.Truthy(v), "%v should be falsy", v)
	}
	truthy := []value.Value{value.Bool(true), value.Num(-1), value.String("0"),
		value.NewArray(), value.NewObject(), value.NewFunc(nil), value.Number(math.Inf(1))}
	for _, v := range truthy {
		assert.True(t, value.Truthy(v), "%v should be truthy", v)
	}
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "undefined", value.TypeOf(value.Undefined))
	assert.Equal(t, "object", value.TypeOf(value.Null))
	assert.Equal(t, "object", value.TypeOf(value.NewArray()))
	assert.Equal(t, "boolean", value.TypeOf(value.Bool(true)))
	assert.Equal(t, "number", value.TypeOf(value.NaN))
	assert.Equal(t, "string", value.TypeOf(value.String("")))
	assert.Equal(t, "function", value.TypeOf(value.NewFunc(nil)))
}

func TestIsObjectLike(t *testing.T) {
	assert.True(t, value.IsObjectLike(value.NewObject()))
	assert.True(t, value.IsObjectLike(value.NewArray()))
	assert.False(t, value.IsObjectLike(value.Null))
	assert.False(t, value.IsObjectLike(value.NewFunc(nil)))
	assert.False(t, value.IsObjectLike((*value.Object)(nil)))
}

// ─── Arrays ───────────────────────────────────────────────────────────────────

func TestArrayAccess(t *testing.T) {
	a := value.NewArray(value.Num(1), nil)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, value.Undefined, a.At(1))
	assert.Equal(t, value.Undefined, a.At(-1))
	assert.Equal(t, value.Undefined, a.At(2))
	assert.Equal(t, value.Num(2), a.Get("length"))
	assert.Equal(t, value.Num(1), a.Get("0"))
	assert.Equal(t, value.Undefined, a.Get("00"))

	a.Set(4, value.String("x"))
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, value.Undefined, a.At(3))
	assert.Equal(t, 6, a.Push(value.Null))
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, a.Keys())
}

func TestArrayValuesIsCopy(t *testing.T) {
	a := value.NewArray(value.Num(1))
	vs := a.Values()
	vs[0] = value.Num(9)
	assert.Equal(t, value.Num(1), a.At(0))

	var nilArr *value.Array
	assert.Empty(t, nilArr.Values())
	assert.Equal(t, 0, nilArr.Len())
}

// ─── Objects ──────────────────────────────────────────────────────────────────

func TestObjectOrder(t *testing.T) {
	o := value.NewObject(value.E("b", value.Num(1)), value.E("10", value.Num(2)),
		value.E("a", value.Num(3)), value.E("2", value.Num(4)), value.E("-1", value.Num(5)))
	assert.Equal(t, []string{"2", "10", "b", "a", "-1"}, o.OwnKeys())
}

func TestObjectSetKeepsPosition(t *testing.T) {
	o := value.NewObject(value.E("a", value.Num(1)), value.E("b", value.Num(2)))
	o.Set("a", value.Num(3))
	assert.Equal(t, []string{"a", "b"}, o.OwnKeys())
	assert.Equal(t, value.Num(3), o.Get("a"))

	o.Delete("a")
	assert.Equal(t, []string{"b"}, o.OwnKeys())
	assert.False(t, o.Has("a"))
}

func TestObjectPrototype(t *testing.T) {
	parent := value.NewObject(value.E("a", value.Num(1)), value.E("b", value.Num(2)))
	child := value.NewObjectWithProto(parent, value.E("b", value.Num(20)), value.E("c", value.Num(3)))

	assert.Equal(t, []string{"b", "c"}, child.OwnKeys())
	assert.Equal(t, []string{"b", "c", "a"}, child.Keys())
	assert.Equal(t, value.Num(1), child.Get("a"))
	assert.Equal(t, value.Num(20), child.Get("b"))
	assert.True(t, child.Has("a"))
	assert.False(t, child.HasOwn("a"))
	_, ok := child.GetOwn("a")
	assert.False(t, ok)
	assert.Same(t, parent, child.Proto())
}

func TestObjectSetProtoRejectsCycle(t *testing.T) {
	a := value.NewObject()
	b := value.NewObjectWithProto(a)
	a.SetProto(b)
	assert.Nil(t, a.Proto())
}

// ─── Clone ────────────────────────────────────────────────────────────────────

func TestClone(t *testing.T) {
	proto := value.NewObject(value.E("p", value.Num(1)))
	shared := value.NewArray(value.Num(1))
	orig := value.NewObjectWithProto(proto, value.E("x", shared), value.E("y", shared))

	c := value.Clone(orig).(*value.Object)
	assert.True(t, value.Equal(orig, c))
	assert.NotSame(t, orig, c)
	assert.Same(t, proto, c.Proto())
	assert.NotSame(t, shared, c.Get("x"))
	assert.Same(t, c.Get("x"), c.Get("y"))

	c.Get("x").(*value.Array).Push(value.Num(2))
	assert.Equal(t, 1, shared.Len())
}

func TestCloneScalars(t *testing.T) {
	assert.Equal(t, value.String("s"), value.Clone(value.String("s")))
	assert.Equal(t, value.Undefined, value.Clone(nil))
}

// ─── Func ─────────────────────────────────────────────────────────────────────

func TestFuncCall(t *testing.T) {
	f := value.NewFunc(func(args ...value.Value) value.Value { return value.Num(len(args)) })
	assert.Equal(t, value.Num(2), f.Call(value.Null, value.Null))
	assert.Equal(t, value.Undefined, value.NewFunc(nil).Call())
	assert.Equal(t, value.Undefined, value.NewFunc(func(...value.Value) value.Value { return nil }).Call())
}

// ─── Conversion ───────────────────────────────────────────────────────────────

func TestFrom(t *testing.T) {
	v, err := value.From(map[string]any{"b": []any{1, "x", nil, true}, "a": 2.5})
	require.NoError(t, err)
	assert.Equal(t, `{a: 2.5, b: [1, "x", null, true]}`, value.Format(v))

	v, err = value.From([]string{"p", "q"})
	require.NoError(t, err)
	assert.Equal(t, `["p", "q"]`, value.Format(v))

	v, err = value.From(map[string]int{"z": 1})
	require.NoError(t, err)
	assert.Equal(t, `{z: 1}`, value.Format(v))

	v, err = value.From(uint8(7))
	require.NoError(t, err)
	assert.Equal(t, value.Num(7), v)
}

func TestFromUnsupported(t *testing.T) {
	_, err := value.From(make(chan int))
	assert.ErrorIs(t, err, value.ErrUnsupportedType)

	_, err = value.From([]any{1, struct{}{}})
	assert.ErrorIs(t, err, value.ErrUnsupportedType)

	_, err = value.From(map[int]string{1: "a"})
	assert.ErrorIs(t, err, value.ErrUnsupportedType)
}

func TestArrayOf(t *testing.T) {
	a := value.ArrayOf([]int{1, 2, 3})
	assert.Equal(t, "[1, 2, 3]", a.String())
}

func TestToString(t *testing.T) {
	cases := []struct {
		in   value.Value
		want string
	}{
		{value.Undefined, "undefined"},
		{value.Null, "null"},
		{value.Bool(true), "true"},
		{value.Num(1), "1"},
		{value.Number(1.5), "1.5"},
		{value.NegZero(), "0"},
		{value.NaN, "NaN"},
		{value.Number(math.Inf(-1)), "-Infinity"},
		{value.Number(1e21), "1e+21"},
		{value.Number(1e-7), "1e-7"},
		{value.Number(123456789012), "123456789012"},
		{value.NewArray(value.Num(1), value.Null, value.String("a")), "1,,a"},
		{value.NewObject(), "[object Object]"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, value.ToString(tc.in))
	}
}

func TestFormat(t *testing.T) {
	o := value.MustParse(`{"a": 1, "b-c": [true, null, "s"]}`).(*value.Object)
	o.Set("u", value.Undefined)
	o.Set("f", value.NewFunc(nil))
	o.Set("z", value.NegZero())
	assert.Equal(t, `{a: 1, "b-c": [true, null, "s"], u: undefined, f: [Function], z: -0}`, value.Format(o))

	cyc := value.NewArray()
	cyc.Push(cyc)
	assert.Equal(t, `[[Circular]]`, value.Format(cyc))
}

// ─── Strings ──────────────────────────────────────────────────────────────────

func TestStringHelpers(t *testing.T) {
	s := value.String("a😀b")
	assert.Equal(t, 4, value.StringLen(s))
	assert.Equal(t, []string{"0", "1", "2", "3"}, value.StringKeys(s))
	assert.Equal(t, value.String("b"), value.StringGet(s, "3"))
	assert.Equal(t, value.Num(4), value.StringGet(s, "length"))
	assert.Equal(t, value.Undefined, value.StringGet(s, "9"))
	assert.Equal(t, value.String("b"), value.SliceFrom(s, -1))
	assert.Equal(t, value.String("😀b"), value.SliceFrom(s, 1))
	assert.Equal(t, value.String(""), value.SliceFrom(s, 9))
	assert.Equal(t, s, value.SliceFrom(s, -20))
}
