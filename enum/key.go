package enum

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// KeyKind distinguishes number keys from string keys
type KeyKind int

const (
	// NoKey is the zero KeyKind, used for absent keys
	NoKey KeyKind = iota
	// NumberKey keys compare numerically
	NumberKey
	// StringKey keys compare lexicographically
	StringKey
)

// String returns the string representation of the KeyKind
func (k KeyKind) String() string {
	switch k {
	case NumberKey:
		return "number"
	case StringKey:
		return "string"
	default:
		return "none"
	}
}

// Key is an ordering key: either a number or a string.
// Keys are comparable and can be used as map keys.
type Key struct {
	kind KeyKind
	num  float64
	str  string
}

// NumberKeyOf returns a number key
func NumberKeyOf(n float64) Key {
	return Key{kind: NumberKey, num: n}
}

// StringKeyOf returns a string key
func StringKeyOf(s string) Key {
	return Key{kind: StringKey, str: s}
}

// MaxExactInteger is the largest integer magnitude a number key holds exactly
const MaxExactInteger = 1 << 53

var (
	errNoKey = errors.New("not a number or a string")

	// errKeyOutOfRange marks integers that a float64 key cannot hold exactly
	errKeyOutOfRange = errors.New("integer key out of range")
)

// KeyOf converts a Go number, string or Key into a Key. Named types such as
// `type StepID int` convert by their underlying kind.
// It reports false for nil, NaN, integers beyond ±MaxExactInteger and every
// other type.
func KeyOf(v any) (Key, bool) {
	key, err := parseKey(v)
	return key, err == nil
}

func parseKey(v any) (Key, error) {
	switch x := v.(type) {
	case nil:
		return Key{}, errNoKey
	case Key:
		if x.kind == NoKey {
			return Key{}, errNoKey
		}
		return x, nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return intKey(i)
		}
		f, err := x.Float64()
		if err != nil {
			return StringKeyOf(x.String()), nil
		}
		return floatKey(f)
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.String:
		return StringKeyOf(val.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intKey(val.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u > MaxExactInteger {
			return Key{}, fmt.Errorf("%w: %d is above %d", errKeyOutOfRange, u, uint64(MaxExactInteger))
		}
		return NumberKeyOf(float64(u)), nil
	case reflect.Float32, reflect.Float64:
		return floatKey(val.Float())
	default:
		return Key{}, errNoKey
	}
}

func intKey(i int64) (Key, error) {
	if i > MaxExactInteger || i < -MaxExactInteger {
		return Key{}, fmt.Errorf("%w: %d is beyond ±%d", errKeyOutOfRange, i, int64(MaxExactInteger))
	}
	return NumberKeyOf(float64(i)), nil
}

func floatKey(f float64) (Key, error) {
	if math.IsNaN(f) {
		return Key{}, errNoKey
	}
	return NumberKeyOf(f), nil
}

// Kind returns the kind of the key
func (k Key) Kind() KeyKind {
	return k.kind
}

// IsZero reports whether the key is absent
func (k Key) IsZero() bool {
	return k.kind == NoKey
}

// Number returns the numeric value; false for string keys
func (k Key) Number() (float64, bool) {
	return k.num, k.kind == NumberKey
}

// Int returns the numeric value truncated to an int; false for string keys
func (k Key) Int() (int, bool) {
	return int(k.num), k.kind == NumberKey
}

// Str returns the string value; false for number keys
func (k Key) Str() (string, bool) {
	return k.str, k.kind == StringKey
}

// Interface returns the key as a float64, a string or nil
func (k Key) Interface() any {
	switch k.kind {
	case NumberKey:
		return k.num
	case StringKey:
		return k.str
	default:
		return nil
	}
}

// Compare orders keys. Absent keys sort first, then numbers, then strings.
func (k Key) Compare(o Key) int {
	if k.kind != o.kind {
		if k.kind < o.kind {
			return -1
		}
		return 1
	}
	switch k.kind {
	case NumberKey:
		switch {
		case k.num < o.num:
			return -1
		case k.num > o.num:
			return 1
		}
	case StringKey:
		switch {
		case k.str < o.str:
			return -1
		case k.str > o.str:
			return 1
		}
	}
	return 0
}

// String formats number keys without a trailing ".0" and strings verbatim
func (k Key) String() string {
	switch k.kind {
	case NumberKey:
		return strconv.FormatFloat(k.num, 'f', -1, 64)
	case StringKey:
		return k.str
	default:
		return "<none>"
	}
}

// MarshalJSON writes the key as a bare JSON number or string
func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Interface())
}

// UnmarshalJSON accepts a JSON number or string
func (k *Key) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	key, ok := KeyOf(raw)
	if !ok {
		return fmt.Errorf("key must be a number or a string, got %s", data)
	}
	*k = key
	return nil
}

// MarshalYAML writes the key as a bare YAML scalar
func (k Key) MarshalYAML() (interface{}, error) {
	return k.Interface(), nil
}

// UnmarshalYAML accepts a YAML number or string scalar
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	key, ok := KeyOf(raw)
	if !ok {
		return fmt.Errorf("line %d: key must be a number or a string", node.Line)
	}
	*k = key
	return nil
}
