package collections_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-lodash-utils/value"
)

// parse decodes a JSON literal fixture. Tab indentation from multi-line
// literals is turned into spaces, which YAML requires.
func parse(t testing.TB, doc string) value.Value {
	t.Helper()
	v, err := value.Parse([]byte(strings.ReplaceAll(doc, "\t", "  ")))
	if err != nil {
		t.Fatalf("parse %q: %v", doc, err)
	}
	return v
}

func array(t testing.TB, doc string) *value.Array {
	t.Helper()
	a, ok := parse(t, doc).(*value.Array)
	if !ok {
		t.Fatalf("fixture %q is not an array", doc)
	}
	return a
}

func object(t testing.TB, doc string) *value.Object {
	t.Helper()
	o, ok := parse(t, doc).(*value.Object)
	if !ok {
		t.Fatalf("fixture %q is not an object", doc)
	}
	return o
}

// assertValue compares got structurally against want.
func assertValue(t *testing.T, got, want value.Value) {
	t.Helper()
	if !value.Equal(got, want) {
		t.Fatalf("got %s\nwant %s", value.Format(got), value.Format(want))
	}
}

// assertJSON compares got structurally against a JSON literal.
func assertJSON(t *testing.T, got value.Value, want string) {
	t.Helper()
	assertValue(t, got, parse(t, want))
}

func num(n float64) value.Value { return value.Number(n) }
