package enum

import (
	"fmt"
)

// Name returns the type name
func (e *Enum) Name() string {
	return e.name
}

// String returns the type name
func (e *Enum) String() string {
	return e.name
}

// Kind returns the payload shape of the values
func (e *Enum) Kind() Kind {
	return e.kind
}

// KeyField returns the key field, empty for primitive enums built without one
func (e *Enum) KeyField() string {
	return e.keyField
}

// LabelField returns the field used for dropdown labels
func (e *Enum) LabelField() string {
	return e.labelField
}

// Defaults returns a copy of the data fields of the defaults template.
// Computed properties and methods are not included.
func (e *Enum) Defaults() Fields {
	return cloneFields(e.defaults)
}

// Len returns the number of values
func (e *Enum) Len() int {
	return len(e.values)
}

// Values returns the values in key order. The slice is a copy.
func (e *Enum) Values() []*Value {
	return append([]*Value(nil), e.values...)
}

// Keys returns the keys in the same order as Values. The slice is a copy.
func (e *Enum) Keys() []Key {
	return append([]Key(nil), e.keys...)
}

// At returns the value at index i, or nil when i is out of range
func (e *Enum) At(i int) *Value {
	if i < 0 || i >= len(e.values) {
		return nil
	}
	return e.values[i]
}

// Get returns the value declared under name, or nil
func (e *Enum) Get(name string) *Value {
	return e.byName[name]
}

// ByName returns the value declared under name
func (e *Enum) ByName(name string) (*Value, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// Contains reports whether v is one of this Enum's values
func (e *Enum) Contains(v *Value) bool {
	return v != nil && v.enum == e
}

// Value resolves a key to a value. A value of this Enum is returned as is;
// any other argument is converted with KeyOf. On a miss Value returns def[0],
// or nil when no default is given.
func (e *Enum) Value(key any, def ...*Value) *Value {
	if v, ok := e.find(key); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Lookup is the lookup exposed under LookupName. It resolves keys like Value,
// but on a miss without a default it returns the first value instead of nil.
// It returns nil only for an Enum without values.
func (e *Enum) Lookup(key any, def ...*Value) *Value {
	if v, ok := e.find(key); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	if len(e.values) > 0 {
		return e.values[0]
	}
	return nil
}

// LookupName returns the key field, or DefaultLookupName without one
func (e *Enum) LookupName() string {
	if e.keyField != "" {
		return e.keyField
	}
	return DefaultLookupName
}

func (e *Enum) find(key any) (*Value, bool) {
	if v, ok := key.(*Value); ok {
		if e.Contains(v) {
			return v, true
		}
		return nil, false
	}
	k, ok := KeyOf(key)
	if !ok {
		return nil, false
	}
	v, ok := e.byKey[k]
	return v, ok
}

// Methods returns the names of the instance methods
func (e *Enum) Methods() []string {
	names := make([]string, 0, len(e.methods))
	for name := range e.methods {
		names = append(names, name)
	}
	return names
}

// Call invokes an instance method. The name returned by LookupName always
// resolves to Lookup, taking the key and an optional *Value default.
func (e *Enum) Call(name string, args ...any) (any, error) {
	if name == e.LookupName() {
		if len(args) == 0 {
			return nil, fmt.Errorf("%s.%s: missing key argument", e.name, name)
		}
		var defaults []*Value
		if len(args) > 1 {
			def, ok := args[1].(*Value)
			if !ok && args[1] != nil {
				return nil, fmt.Errorf("%s.%s: default must be a *Value, got %T", e.name, name, args[1])
			}
			if def != nil {
				defaults = append(defaults, def)
			}
		}
		return e.Lookup(args[0], defaults...), nil
	}

	fn, ok := e.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, e.name, name)
	}
	return fn(e, args...), nil
}

// Choices returns the dropdown projection in key order. The slice is a copy.
func (e *Enum) Choices() []Choice {
	return append([]Choice(nil), e.choices...)
}

// ChoicesExcluding returns the dropdown projection without the given keys.
// Arguments may be keys or values of this Enum; anything else is ignored.
func (e *Enum) ChoicesExcluding(keys ...any) []Choice {
	if len(keys) == 0 {
		return e.Choices()
	}

	excluded := make(map[Key]bool, len(keys))
	for _, key := range keys {
		if v, ok := key.(*Value); ok {
			if e.Contains(v) {
				excluded[v.key] = true
			}
			continue
		}
		if k, ok := KeyOf(key); ok {
			excluded[k] = true
		}
	}

	choices := make([]Choice, 0, len(e.choices))
	for _, choice := range e.choices {
		if !excluded[choice.Key] {
			choices = append(choices, choice)
		}
	}
	return choices
}
