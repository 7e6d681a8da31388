package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// maxAliasDepth bounds alias resolution so that recursive anchors cannot
	// loop forever.
	maxAliasDepth = 64

	// Alias expansion may produce at most aliasRatio values per node written
	// in the document, and never fewer than minNodeBudget in total.
	aliasRatio    = 100
	minNodeBudget = 10_000
)

// nodeDecoder converts a yaml.Node tree into values, charging every value it
// produces against budget.
type nodeDecoder struct {
	budget int
}

// Parse decodes a single JSON or YAML document into a Value. Mapping key
// order is preserved, which plain json.Unmarshal into map[string]any cannot
// do.
//
// null and ~ decode to Null. Integers and floats decode to Number, .nan and
// .inf included. Every other scalar decodes to String.
func Parse(data []byte) (Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrUnsupportedDocument)
		}
		return nil, fmt.Errorf("value: parse: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: more than one document", ErrUnsupportedDocument)
	}
	d := &nodeDecoder{budget: max(minNodeBudget, aliasRatio*countNodes(&doc))}
	return d.fromNode(&doc, 0)
}

// countNodes counts the nodes written in the document. Aliases count once and
// are not followed.
func countNodes(n *yaml.Node) int {
	total := 1
	for _, c := range n.Content {
		total += countNodes(c)
	}
	return total
}

// MustParse is like Parse but panics on error. Intended for tests and
// fixtures.
func MustParse(doc string) Value {
	v, err := Parse([]byte(doc))
	if err != nil {
		panic(err)
	}
	return v
}

func (d *nodeDecoder) fromNode(n *yaml.Node, aliasDepth int) (Value, error) {
	if n.Kind != yaml.DocumentNode && n.Kind != yaml.AliasNode {
		d.budget--
		if d.budget < 0 {
			return nil, fmt.Errorf("%w: excessive aliasing at line %d", ErrUnsupportedDocument, n.Line)
		}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null, nil
		}
		return d.fromNode(n.Content[0], aliasDepth)
	case yaml.AliasNode:
		if aliasDepth >= maxAliasDepth || n.Alias == nil {
			return nil, fmt.Errorf("%w: alias nesting too deep at line %d", ErrUnsupportedDocument, n.Line)
		}
		return d.fromNode(n.Alias, aliasDepth+1)
	case yaml.SequenceNode:
		out := &Array{elems: make([]Value, 0, len(n.Content))}
		for _, c := range n.Content {
			v, err := d.fromNode(c, aliasDepth)
			if err != nil {
				return nil, err
			}
			out.elems = append(out.elems, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yaml.AliasNode && k.Alias != nil {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: non-scalar key at line %d", ErrUnsupportedDocument, k.Line)
			}
			v, err := d.fromNode(n.Content[i+1], aliasDepth)
			if err != nil {
				return nil, err
			}
			out.Set(k.Value, v)
		}
		return out, nil
	case yaml.ScalarNode:
		return fromScalar(n)
	}
	return nil, fmt.Errorf("%w: node kind %d", ErrUnsupportedDocument, n.Kind)
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("value: line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			if i == 0 && strings.HasPrefix(n.Value, "-") {
				return NegZero(), nil
			}
			return Number(float64(i)), nil
		}
		fallthrough
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("value: line %d: %w", n.Line, err)
		}
		return Number(f), nil
	default:
		return String(n.Value), nil
	}
}

// EncodeYAML encodes v as a YAML document with key order preserved.
func EncodeYAML(v Value) ([]byte, error) {
	return yaml.Marshal(toNode(Normalize(v), make(map[any]struct{})))
}

// MarshalYAML implements yaml.Marshaler.
func (a *Array) MarshalYAML() (any, error) {
	return toNode(a, make(map[any]struct{})), nil
}

// MarshalYAML implements yaml.Marshaler.
func (o *Object) MarshalYAML() (any, error) {
	return toNode(o, make(map[any]struct{})), nil
}

func toNode(v Value, active map[any]struct{}) *yaml.Node {
	switch t := v.(type) {
	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(t))}
	case Number:
		return numberNode(float64(t))
	case String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(t)}
	case *Array:
		if _, ok := active[t]; ok {
			return nullNode()
		}
		active[t] = struct{}{}
		defer delete(active, t)
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t.elems {
			n.Content = append(n.Content, toNode(e, active))
		}
		return n
	case *Object:
		if _, ok := active[t]; ok {
			return nullNode()
		}
		active[t] = struct{}{}
		defer delete(active, t)
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range t.OwnKeys() {
			e := t.vals[k]
			if IsUndefined(e) || e.Kind() == KindFunc {
				continue
			}
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				toNode(e, active))
		}
		return n
	default:
		return nullNode()
	}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func numberNode(f float64) *yaml.Node {
	switch {
	case math.IsNaN(f):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}
	case math.IsInf(f, 1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}
	case math.IsInf(f, -1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}
	case f == 0 && math.Signbit(f):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-0.0"}
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(f), 10)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(f, 'g', -1, 64)}
}

// EncodeJSON encodes v the way JSON.stringify does: Undefined and function
// entries are dropped from objects and become null inside arrays, and
// non-finite numbers become null. Cycles encode as null.
func EncodeJSON(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, Normalize(v), make(map[any]struct{})); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (a *Array) MarshalJSON() ([]byte, error) { return EncodeJSON(a) }

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) { return EncodeJSON(o) }

func encodeJSON(buf *bytes.Buffer, v Value, active map[any]struct{}) error {
	switch t := v.(type) {
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(t)))
	case Number:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(formatNumber(f))
	case String:
		b, err := json.Marshal(string(t))
		if err != nil {
			return err
		}
		buf.Write(b)
	case *Array:
		if _, ok := active[t]; ok {
			buf.WriteString("null")
			return nil
		}
		active[t] = struct{}{}
		defer delete(active, t)
		buf.WriteByte('[')
		for i, e := range t.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, e, active); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *Object:
		if _, ok := active[t]; ok {
			buf.WriteString("null")
			return nil
		}
		active[t] = struct{}{}
		defer delete(active, t)
		buf.WriteByte('{')
		first := true
		for _, k := range t.OwnKeys() {
			e := t.vals[k]
			if IsUndefined(e) || e.Kind() == KindFunc {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := encodeJSON(buf, e, active); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}
