package validation

import (
	"fmt"
	"reflect"
	"strings"
)

// ValidateFieldName checks that a key or label field name is usable: any
// string that is not empty or whitespace only
func ValidateFieldName(name string) error {
	if name == "" {
		return fmt.Errorf("field name cannot be empty")
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("field name cannot be blank, got %q", name)
	}

	return nil
}

// ValidateEntryName checks the name of an entry or of an enum type
func ValidateEntryName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("name %q has leading or trailing whitespace", name)
	}
	return nil
}

// ValidateKeyType ensures a key value is a number or a string
func ValidateKeyType(value interface{}, field string) error {
	if value == nil {
		return nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Bool:
		return fmt.Errorf("key '%s' cannot be a bool, got %v", field, value)
	case reflect.Slice, reflect.Array:
		return fmt.Errorf("key '%s' cannot be an array/slice type, got %T", field, value)
	case reflect.Map:
		return fmt.Errorf("key '%s' cannot be a map type, got %T", field, value)
	case reflect.Struct:
		return fmt.Errorf("key '%s' cannot be a struct type, got %T", field, value)
	default:
		return fmt.Errorf("key '%s' must be a number or a string, got %T", field, value)
	}
}

// ShapeCounts tallies how the entries of one definition are shaped
type ShapeCounts struct {
	Structured  int
	Primitive   int
	Methods     int
	Unsupported int
}

// Consistent reports whether the data entries share a single shape
func (c ShapeCounts) Consistent() bool {
	return c.Structured == 0 || c.Primitive == 0
}

// String summarises the counts for error messages
func (c ShapeCounts) String() string {
	return fmt.Sprintf("%d structured and %d primitive entries", c.Structured, c.Primitive)
}

// Tracker remembers which entry first claimed a key or a name
type Tracker[K comparable] struct {
	seen map[K]string
}

// NewTracker creates an empty tracker
func NewTracker[K comparable]() *Tracker[K] {
	return &Tracker[K]{seen: make(map[K]string)}
}

// Claim records entry as the owner of k. When k is already owned it returns
// the previous owner and false.
func (t *Tracker[K]) Claim(k K, entry string) (string, bool) {
	if previous, exists := t.seen[k]; exists {
		return previous, false
	}
	t.seen[k] = entry
	return "", true
}

// Len returns the number of claimed keys
func (t *Tracker[K]) Len() int {
	return len(t.seen)
}
