package enum

import (
	"fmt"
	"reflect"
	"strings"
)

// Fields holds the named data of a structured entry or of the defaults template
type Fields map[string]any

// Method is an instance-level helper. Entries whose data is a Method are
// installed on the Enum instead of becoming values.
type Method func(e *Enum, args ...any) any

// ValueMethod is a method that receives its owning value explicitly
type ValueMethod func(v *Value, args ...any) any

// Accessor is a zero-argument function. In Definition.Defaults it becomes a
// computed property evaluated against each value on every access.
type Accessor func(v *Value) any

// Entry is one named item of a Definition, in declaration order
type Entry struct {
	Name string
	Data any
}

// Definition describes an enumerated type
type Definition struct {
	// Name is the display name of the type
	Name string

	// Entries lists the values (and instance methods) in declaration order
	Entries []Entry

	// Defaults is the fallback layer merged under every value.
	// Accessor fields become computed properties, ValueMethod fields become methods.
	Defaults Fields

	// KeyField names the field that orders and identifies structured values.
	// For primitive values the payload itself is the key.
	KeyField string

	// LabelField names the field used as dropdown label; the entry name when empty
	LabelField string
}

// Kind is the payload shape shared by all values of one Enum
type Kind int

const (
	// Empty is the Kind of an Enum without values
	Empty Kind = iota
	// Structured values carry a record of fields
	Structured
	// Primitive values carry a bare number or string
	Primitive
)

// String returns the string representation of the Kind
func (k Kind) String() string {
	switch k {
	case Structured:
		return "structured"
	case Primitive:
		return "primitive"
	default:
		return "empty"
	}
}

// Payload is the data carried by a Value: a StructuredPayload or a PrimitivePayload
type Payload interface {
	Kind() Kind
	isPayload()
}

// StructuredPayload holds the entry's own fields, defaults excluded
type StructuredPayload struct {
	fields Fields
}

// Kind implements Payload
func (StructuredPayload) Kind() Kind { return Structured }

func (StructuredPayload) isPayload() {}

// Field returns one of the entry's own fields
func (p StructuredPayload) Field(name string) (any, bool) {
	v, ok := p.fields[name]
	return cloneData(v), ok
}

// Fields returns a copy of the entry's own fields
func (p StructuredPayload) Fields() Fields {
	return cloneFields(p.fields)
}

// PrimitivePayload holds a bare number or string
type PrimitivePayload struct {
	Scalar Key
}

// Kind implements Payload
func (PrimitivePayload) Kind() Kind { return Primitive }

func (PrimitivePayload) isPayload() {}

// entryShape classifies the data of one entry
type entryShape int

const (
	shapeUnsupported entryShape = iota
	shapeStructured
	shapePrimitive
	shapeMethod
)

// classify decides how an entry's data is treated and normalises it
func classify(data any) (entryShape, any) {
	switch x := data.(type) {
	case nil:
		return shapePrimitive, nil
	case Method:
		return shapeMethod, x
	case func(*Enum, ...any) any:
		return shapeMethod, Method(x)
	case Fields:
		return shapeStructured, x
	case map[string]any:
		return shapeStructured, Fields(x)
	case Key:
		if x.IsZero() {
			return shapePrimitive, nil
		}
		return shapePrimitive, x
	}

	if key, ok := KeyOf(data); ok {
		return shapePrimitive, key
	}

	val := reflect.ValueOf(data)
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		// NaN is a primitive without a usable value
		return shapePrimitive, nil
	case reflect.Ptr:
		if !val.IsNil() {
			val = val.Elem()
		}
	}
	if val.Kind() == reflect.Struct {
		fields, err := FieldsFromStruct(val.Interface())
		if err == nil {
			return shapeStructured, fields
		}
	}
	return shapeUnsupported, data
}

// FieldsFromStruct converts a struct into Fields. Exported fields are named
// after their `enum` tag, or the field name; `enum:"-"` skips a field.
func FieldsFromStruct(v any) (Fields, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct, got %s", val.Kind())
	}

	typ := val.Type()
	fields := make(Fields, typ.NumField())

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		// Skip unexported fields
		if !fieldVal.CanInterface() {
			continue
		}

		name := field.Name
		if tag := field.Tag.Get("enum"); tag != "" {
			tagName := strings.Split(tag, ",")[0]
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}

		fields[name] = fieldVal.Interface()
	}

	return fields, nil
}
