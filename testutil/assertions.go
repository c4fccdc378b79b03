package testutil

import (
	"testing"

	"github.com/arthur-debert/enumerated/enum"
)

// AssertEnumLaws checks the structural guarantees every Enum must satisfy:
// parallel keys, ascending order, dense indices, identity round trips and
// neighbour links.
func AssertEnumLaws(t *testing.T, e *enum.Enum) {
	t.Helper()

	values := e.Values()
	keys := e.Keys()
	if len(values) != len(keys) {
		t.Fatalf("%s: %d values but %d keys", e, len(values), len(keys))
	}

	for i, v := range values {
		if keys[i] != v.Key() {
			t.Errorf("%s: keys[%d] = %s, want %s", e, i, keys[i], v.Key())
		}
		if v.Index() != i {
			t.Errorf("%s: %s has index %d, want %d", e, v.Name(), v.Index(), i)
		}
		if i > 0 && keys[i-1].Compare(keys[i]) >= 0 {
			t.Errorf("%s: keys not ascending at %d: %s then %s", e, i, keys[i-1], keys[i])
		}
		if got := e.Value(v.Key()); got != v {
			t.Errorf("%s: Value(%s) = %v, want %s", e, v.Key(), got, v.Name())
		}
		if got := e.Get(v.Name()); got != v {
			t.Errorf("%s: Get(%q) = %v, want the same value", e, v.Name(), got)
		}
		if v.Enum() != e || !e.Contains(v) {
			t.Errorf("%s: %s does not belong to its enum", e, v.Name())
		}
	}

	AssertNeighbours(t, values)
}

// AssertNeighbours checks Next and Previous along an ordered slice of values
func AssertNeighbours(t *testing.T, values []*enum.Value) {
	t.Helper()

	if len(values) == 0 {
		return
	}
	if values[0].Previous() != nil {
		t.Errorf("first value %s has a previous value", values[0].Name())
	}
	if last := values[len(values)-1]; last.Next() != nil {
		t.Errorf("last value %s has a next value", last.Name())
	}
	for i := 0; i+1 < len(values); i++ {
		if values[i].Next() != values[i+1] {
			t.Errorf("%s.Next() = %v, want %s", values[i].Name(), values[i].Next(), values[i+1].Name())
		}
		if values[i+1].Previous() != values[i] {
			t.Errorf("%s.Previous() = %v, want %s", values[i+1].Name(), values[i+1].Previous(), values[i].Name())
		}
	}
}

// AssertNames checks the value names in order
func AssertNames(t *testing.T, values []*enum.Value, expected ...string) {
	t.Helper()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v.Name() != expected[i] {
			t.Errorf("values[%d]: got %q, want %q", i, v.Name(), expected[i])
		}
	}
}
