package enum

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// TokenNamespace seeds the name-based UUIDs returned by Value.Token
var TokenNamespace = uuid.MustParse("6f3d1a52-8c1e-4f0b-9a57-2b8e7c4d9e10")

// Value is one member of an Enum. Values are created by New and never change.
type Value struct {
	enum    *Enum
	name    string
	index   int
	key     Key
	label   string
	token   uuid.UUID
	payload Payload

	// merged data: defaults first, entry fields on top
	fields   Fields
	computed map[string]Accessor
	methods  map[string]ValueMethod
}

// Name returns the declared entry name
func (v *Value) Name() string {
	return v.name
}

// Index returns the position of the value in its Enum's ordered values
func (v *Value) Index() int {
	return v.index
}

// Key returns the ordering key: the key field or the primitive payload
func (v *Value) Key() Key {
	return v.key
}

// Enum returns the owning Enum
func (v *Value) Enum() *Enum {
	return v.enum
}

// Kind returns the payload shape
func (v *Value) Kind() Kind {
	return v.payload.Kind()
}

// Payload returns the value's own data
func (v *Value) Payload() Payload {
	return v.payload
}

// Scalar returns the primitive payload; the zero Key for structured values
func (v *Value) Scalar() Key {
	if p, ok := v.payload.(PrimitivePayload); ok {
		return p.Scalar
	}
	return Key{}
}

// Label returns the dropdown label
func (v *Value) Label() string {
	return v.label
}

// Token returns a UUID derived from the type name and the value name.
// It is stable across processes and distinct for every value.
func (v *Value) Token() uuid.UUID {
	return v.token
}

// Next returns the following value, or nil for the last one
func (v *Value) Next() *Value {
	if v.index+1 < len(v.enum.values) {
		return v.enum.values[v.index+1]
	}
	return nil
}

// Previous returns the preceding value, or nil for the first one
func (v *Value) Previous() *Value {
	if v.index > 0 {
		return v.enum.values[v.index-1]
	}
	return nil
}

// Get returns a field. Computed properties are evaluated on every call.
func (v *Value) Get(field string) (any, bool) {
	if fn, ok := v.computed[field]; ok {
		return fn(v), true
	}
	value, ok := v.fields[field]
	return cloneData(value), ok
}

// Bool returns a boolean field; false when absent or not a bool
func (v *Value) Bool(field string) bool {
	value, _ := v.Get(field)
	b, _ := value.(bool)
	return b
}

// Str returns a string field; empty when absent or not a string
func (v *Value) Str(field string) string {
	value, _ := v.Get(field)
	s, _ := value.(string)
	return s
}

// Int returns a numeric field as an int
func (v *Value) Int(field string) (int, bool) {
	value, _ := v.Get(field)
	key, ok := KeyOf(value)
	if !ok {
		return 0, false
	}
	return key.Int()
}

// Float returns a numeric field as a float64
func (v *Value) Float(field string) (float64, bool) {
	value, _ := v.Get(field)
	key, ok := KeyOf(value)
	if !ok {
		return 0, false
	}
	return key.Number()
}

// Fields returns a copy of the data fields, defaults included.
// Computed properties and methods are not part of it.
func (v *Value) Fields() Fields {
	return cloneFields(v.fields)
}

// Has reports whether the value has a field, computed property or method
func (v *Value) Has(name string) bool {
	if _, ok := v.fields[name]; ok {
		return true
	}
	if _, ok := v.computed[name]; ok {
		return true
	}
	_, ok := v.methods[name]
	return ok
}

// Call invokes a method of the value. A computed property may be called
// without arguments.
func (v *Value) Call(name string, args ...any) (any, error) {
	if fn, ok := v.methods[name]; ok {
		return fn(v, args...), nil
	}
	if fn, ok := v.computed[name]; ok && len(args) == 0 {
		return fn(v), nil
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, v.GoString(), name)
}

// String returns the value name
func (v *Value) String() string {
	return v.name
}

// GoString returns Type.name
func (v *Value) GoString() string {
	return v.enum.name + "." + v.name
}

// MarshalJSON writes the value as its key
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.key)
}

// MarshalYAML writes the value as its key
func (v *Value) MarshalYAML() (interface{}, error) {
	return v.key.Interface(), nil
}
