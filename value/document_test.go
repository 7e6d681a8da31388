package value_test

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-lodash-utils/value"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	v, err := value.Parse([]byte(`{"z": 1, "a": 2, "m": {"y": true, "b": null}}`))
	require.NoError(t, err)
	obj := v.(*value.Object)
	assert.Equal(t, []string{"z", "a", "m"}, obj.OwnKeys())
	assert.Equal(t, []string{"y", "b"}, obj.Get("m").(*value.Object).OwnKeys())
	assert.Equal(t, value.Null, obj.Get("m").(*value.Object).Get("b"))
}

func TestParseScalars(t *testing.T) {
	v, err := value.Parse([]byte(`[1, -2.5, 1e3, "s", true, false, null, -0, .nan, -.inf, "null"]`))
	require.NoError(t, err)
	a := v.(*value.Array)
	assert.Equal(t, value.Num(1), a.At(0))
	assert.Equal(t, value.Number(-2.5), a.At(1))
	assert.Equal(t, value.Num(1000), a.At(2))
	assert.Equal(t, value.String("s"), a.At(3))
	assert.Equal(t, value.Bool(true), a.At(4))
	assert.Equal(t, value.Bool(false), a.At(5))
	assert.Equal(t, value.Null, a.At(6))
	assert.True(t, value.SameValue(value.NegZero(), a.At(7)))
	assert.True(t, value.SameValue(value.NaN, a.At(8)))
	assert.Equal(t, value.Number(math.Inf(-1)), a.At(9))
	assert.Equal(t, value.String("null"), a.At(10))
}

func TestParseYAML(t *testing.T) {
	doc := `
defaults: &defaults
  retries: 3
  tags: [a, b]
service:
  name: api
  settings: *defaults
`
	v, err := value.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, `{defaults: {retries: 3, tags: ["a", "b"]}, service: {name: "api", settings: {retries: 3, tags: ["a", "b"]}}}`, value.Format(v))
}

func TestParseErrors(t *testing.T) {
	_, err := value.Parse(nil)
	assert.ErrorIs(t, err, value.ErrUnsupportedDocument)

	_, err = value.Parse([]byte("a: 1\n---\nb: 2\n"))
	assert.ErrorIs(t, err, value.ErrUnsupportedDocument)

	_, err = value.Parse([]byte(`{"a": [1, 2}`))
	assert.Error(t, err)

	_, err = value.Parse([]byte("? [a, b]\n: 1\n"))
	assert.ErrorIs(t, err, value.ErrUnsupportedDocument)
}

func TestParseRejectsExcessiveAliasing(t *testing.T) {
	var b strings.Builder
	b.WriteString("l0: &l0 [" + strings.Repeat("lol, ", 9) + "lol]\n")
	for i := 1; i < 7; i++ {
		refs := strings.Repeat(fmt.Sprintf("*l%d, ", i-1), 9) + fmt.Sprintf("*l%d", i-1)
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, refs)
	}
	_, err := value.Parse([]byte(b.String()))
	assert.ErrorIs(t, err, value.ErrUnsupportedDocument)
}

func TestParseAllowsModestAliasing(t *testing.T) {
	doc := "base: &b [1, 2, 3]\ncopies: [" + strings.Repeat("*b, ", 49) + "*b]\n"
	v, err := value.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 50, v.(*value.Object).Get("copies").(*value.Array).Len())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { value.MustParse(`{"a": `) })
}

func TestEncodeJSON(t *testing.T) {
	o := value.MustParse(`{"z": 1, "a": [1.5, "x", null]}`).(*value.Object)
	o.Set("u", value.Undefined)
	o.Set("f", value.NewFunc(nil))
	o.Get("a").(*value.Array).Push(value.Undefined, value.NaN)

	b, err := value.EncodeJSON(o)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":[1.5,"x",null,null,null]}`, string(b))

	b, err = json.Marshal(map[string]any{"doc": o})
	require.NoError(t, err)
	assert.Equal(t, `{"doc":{"z":1,"a":[1.5,"x",null,null,null]}}`, string(b))
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	src := `{"b":[1,{"c":"d"}],"a":true,"e":null}`
	b, err := value.EncodeJSON(value.MustParse(src))
	require.NoError(t, err)
	assert.Equal(t, src, string(b))
}

func TestEncodeYAML(t *testing.T) {
	v := value.MustParse(`{"z": 1, "a": ["x", "true", 2.5], "n": null}`)
	b, err := value.EncodeYAML(v)
	require.NoError(t, err)
	assert.Equal(t, "z: 1\na:\n    - x\n    - \"true\"\n    - 2.5\nn: null\n", string(b))

	back, err := value.Parse(b)
	require.NoError(t, err)
	assert.True(t, value.Equal(v, back))
}

func TestMarshalYAMLMethod(t *testing.T) {
	o := value.NewObject(value.E("b", value.Num(1)), value.E("a", value.NewArray(value.Bool(true))))
	b, err := yaml.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, "b: 1\na:\n    - true\n", string(b))
}

func TestEncodeYAMLKeepsNegativeZero(t *testing.T) {
	b, err := value.EncodeYAML(value.NewArray(value.NegZero(), value.Num(0)))
	require.NoError(t, err)
	assert.Equal(t, "- -0.0\n- 0\n", string(b))

	back, err := value.Parse(b)
	require.NoError(t, err)
	assert.True(t, value.SameValue(value.NegZero(), back.(*value.Array).At(0)))
	assert.True(t, value.SameValue(value.Num(0), back.(*value.Array).At(1)))
}
