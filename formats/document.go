package formats

import (
	"fmt"

	"github.com/arthur-debert/enumerated/enum"
)

// Document is the serialised form of an enum definition. Values keep their
// declaration order. A value carries either a primitive Value or structured
// Fields.
type Document struct {
	Name       string          `json:"name" yaml:"name" toml:"name"`
	KeyField   *string         `json:"key_field,omitempty" yaml:"key_field,omitempty" toml:"key_field,omitempty"`
	LabelField *string         `json:"label_field,omitempty" yaml:"label_field,omitempty" toml:"label_field,omitempty"`
	Defaults   map[string]any  `json:"defaults,omitempty" yaml:"defaults,omitempty" toml:"defaults,omitempty"`
	Values     []DocumentValue `json:"values" yaml:"values" toml:"values"`
}

// DocumentValue is one entry of a Document
type DocumentValue struct {
	Name   string         `json:"name" yaml:"name" toml:"name"`
	Value  any            `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
}

// Definition converts the document into an enum.Definition. An explicitly
// empty key_field or label_field is rejected here, since the Definition
// cannot tell it apart from an absent one.
func (d *Document) Definition() (enum.Definition, error) {
	def := enum.Definition{
		Name:    d.Name,
		Entries: make([]enum.Entry, 0, len(d.Values)),
	}

	if d.KeyField != nil {
		if *d.KeyField == "" {
			return enum.Definition{}, &enum.ConstructionError{
				Enum:   d.Name,
				Err:    enum.ErrInvalidKeyFieldName,
				Detail: "key_field is present but empty",
			}
		}
		def.KeyField = *d.KeyField
	}
	if d.LabelField != nil {
		if *d.LabelField == "" {
			return enum.Definition{}, &enum.ConstructionError{
				Enum:   d.Name,
				Err:    enum.ErrInvalidKeyFieldName,
				Detail: "label_field is present but empty",
			}
		}
		def.LabelField = *d.LabelField
	}

	if len(d.Defaults) > 0 {
		def.Defaults = make(enum.Fields, len(d.Defaults))
		for name, field := range d.Defaults {
			def.Defaults[name] = field
		}
	}

	for _, v := range d.Values {
		if v.Value != nil && v.Fields != nil {
			return enum.Definition{}, &enum.ConstructionError{
				Enum:   d.Name,
				Entry:  v.Name,
				Err:    enum.ErrInconsistentShape,
				Detail: fmt.Sprintf("entry %q has both a value and fields", v.Name),
			}
		}

		entry := enum.Entry{Name: v.Name, Data: v.Value}
		if v.Fields != nil {
			entry.Data = enum.Fields(v.Fields)
		}
		def.Entries = append(def.Entries, entry)
	}

	return def, nil
}

// FromEnum builds the document describing e. Values are listed in key order
// and carry only their own fields; shared data goes to Defaults.
func FromEnum(e *enum.Enum) *Document {
	doc := &Document{
		Name:   e.Name(),
		Values: make([]DocumentValue, 0, e.Len()),
	}

	if e.KeyField() != "" {
		keyField := e.KeyField()
		doc.KeyField = &keyField
	}
	if e.LabelField() != "" {
		labelField := e.LabelField()
		doc.LabelField = &labelField
	}
	if defaults := e.Defaults(); len(defaults) > 0 {
		doc.Defaults = map[string]any(defaults)
	}

	for _, v := range e.All() {
		entry := DocumentValue{Name: v.Name()}
		switch payload := v.Payload().(type) {
		case enum.PrimitivePayload:
			entry.Value = payload.Scalar.Interface()
		case enum.StructuredPayload:
			entry.Fields = map[string]any(payload.Fields())
		}
		doc.Values = append(doc.Values, entry)
	}

	return doc
}
