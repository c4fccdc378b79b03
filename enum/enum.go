// Package enum builds immutable, strongly ordered enumerated types at run time.
//
// A Definition lists named entries. Each entry becomes one *Value, unless its
// data is a Method, in which case it is installed on the *Enum as a helper.
// Values are either structured (a record of fields merged over Defaults, keyed
// by KeyField) or primitive (a bare number or string that is its own key);
// one Enum never mixes the two.
//
// New validates the whole definition before anything is returned. After it
// returns, an Enum and its Values never change, so they may be read from any
// number of goroutines without locking. Enums are meant to be built once and
// held in package-level variables:
//
//	var StepType = enum.MustNew(enum.Definition{
//		Name:     "StepType",
//		KeyField: "stepTypeId",
//		Entries: []enum.Entry{
//			{Name: "duty", Data: enum.Fields{"stepTypeId": 1}},
//			{Name: "variable", Data: enum.Fields{"stepTypeId": 2}},
//		},
//	})
//
// Values are compared by identity: the pointer returned for "duty" is the only
// *Value named "duty" in StepType. Pointers are valid map keys; when a
// serialisable map key is needed use Index, Key or Token explicitly.
package enum

import (
	"errors"
	"fmt"
	"slices"

	"github.com/arthur-debert/enumerated/internal/validation"
	"github.com/google/uuid"
)

// DefaultLookupName is the name under which the key lookup is exposed when
// the definition has no key field
const DefaultLookupName = "value"

// Choice is one row of the dropdown projection
type Choice struct {
	Key   Key    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Enum is an immutable, ordered collection of Values
type Enum struct {
	name       string
	kind       Kind
	keyField   string
	labelField string

	defaults Fields
	values   []*Value
	keys     []Key
	choices  []Choice
	byName   map[string]*Value
	byKey    map[Key]*Value
	methods  map[string]Method
}

// MustNew is like New but panics on error. It simplifies package-level
// initialisation of enums.
func MustNew(def Definition) *Enum {
	e, err := New(def)
	if err != nil {
		panic(err)
	}
	return e
}

// New builds an Enum from def. It either returns a complete Enum or a
// *ConstructionError; no partial Enum is ever returned.
func New(def Definition) (*Enum, error) {
	if err := validation.ValidateEntryName(def.Name); err != nil {
		return nil, constructionErr(def.Name, ErrInvalidName, "type name: %v", err)
	}
	if def.KeyField != "" {
		if err := validation.ValidateFieldName(def.KeyField); err != nil {
			return nil, constructionErr(def.Name, ErrInvalidKeyFieldName, "key field: %v", err)
		}
	}
	if def.LabelField != "" {
		if err := validation.ValidateFieldName(def.LabelField); err != nil {
			return nil, constructionErr(def.Name, ErrInvalidKeyFieldName, "label field: %v", err)
		}
	}

	b := newBuilder(def)
	if err := b.partition(); err != nil {
		return nil, err
	}
	if err := b.buildValues(); err != nil {
		return nil, err
	}
	return b.finish(), nil
}

// builder carries the intermediate state of one New call
type builder struct {
	def  Definition
	enum *Enum

	defaultData     Fields
	defaultComputed map[string]Accessor
	defaultMethods  map[string]ValueMethod

	data   []normalizedEntry
	counts validation.ShapeCounts
}

type normalizedEntry struct {
	name  string
	shape entryShape
	data  any
}

func newBuilder(def Definition) *builder {
	b := &builder{
		def: def,
		enum: &Enum{
			name:       def.Name,
			keyField:   def.KeyField,
			labelField: def.LabelField,
			byName:     make(map[string]*Value, len(def.Entries)),
			byKey:      make(map[Key]*Value, len(def.Entries)),
			methods:    make(map[string]Method),
		},
		defaultData:     make(Fields, len(def.Defaults)),
		defaultComputed: make(map[string]Accessor),
		defaultMethods:  make(map[string]ValueMethod),
	}

	for name, field := range def.Defaults {
		switch fn := field.(type) {
		case Accessor:
			b.defaultComputed[name] = fn
		case func(*Value) any:
			b.defaultComputed[name] = Accessor(fn)
		case ValueMethod:
			b.defaultMethods[name] = fn
		case func(*Value, ...any) any:
			b.defaultMethods[name] = ValueMethod(fn)
		default:
			b.defaultData[name] = cloneData(field)
		}
	}
	b.enum.defaults = b.defaultData

	return b
}

// partition separates method entries from data entries and checks that all
// data entries share one shape
func (b *builder) partition() error {
	names := validation.NewTracker[string]()

	for _, entry := range b.def.Entries {
		if err := validation.ValidateEntryName(entry.Name); err != nil {
			return &ConstructionError{
				Enum:   b.def.Name,
				Entry:  entry.Name,
				Err:    ErrInvalidName,
				Detail: fmt.Sprintf("entry name: %v", err),
			}
		}
		if previous, ok := names.Claim(entry.Name, entry.Name); !ok {
			return &ConstructionError{
				Enum:     b.def.Name,
				Entry:    entry.Name,
				Previous: previous,
				Err:      ErrDuplicateName,
				Detail:   fmt.Sprintf("entry %q is declared more than once", entry.Name),
			}
		}

		shape, data := classify(entry.Data)
		switch shape {
		case shapeMethod:
			b.counts.Methods++
			b.enum.methods[entry.Name] = data.(Method)
			continue
		case shapeStructured:
			b.counts.Structured++
		case shapePrimitive:
			b.counts.Primitive++
		default:
			b.counts.Unsupported++
			detail := fmt.Sprintf("entry %q has data of type %T; want a number, a string, fields or a struct", entry.Name, entry.Data)
			if _, err := parseKey(entry.Data); errors.Is(err, errKeyOutOfRange) {
				detail = fmt.Sprintf("entry %q: %v", entry.Name, err)
			}
			return &ConstructionError{
				Enum:   b.def.Name,
				Entry:  entry.Name,
				Err:    ErrUnsupportedPayload,
				Detail: detail,
			}
		}
		b.data = append(b.data, normalizedEntry{name: entry.Name, shape: shape, data: data})
	}

	if !b.counts.Consistent() {
		return constructionErr(b.def.Name, ErrInconsistentShape,
			"values must be all structured or all primitive, found %s", b.counts)
	}

	switch {
	case b.counts.Structured > 0:
		b.enum.kind = Structured
	case b.counts.Primitive > 0:
		b.enum.kind = Primitive
	default:
		b.enum.kind = Empty
	}
	return nil
}

// buildValues creates one Value per data entry and checks key presence and uniqueness
func (b *builder) buildValues() error {
	keys := validation.NewTracker[Key]()
	keyKind := NoKey

	for _, entry := range b.data {
		v := b.newValue(entry)

		key, err := b.extractKey(entry)
		if err != nil {
			return err
		}

		if previous, ok := keys.Claim(key, entry.name); !ok {
			return &ConstructionError{
				Enum:     b.def.Name,
				Entry:    entry.name,
				Previous: previous,
				Err:      ErrDuplicateKey,
				Detail:   fmt.Sprintf("entry %q has %s %s already defined by %q", entry.name, b.keyDescription(), key, previous),
			}
		}

		if keyKind == NoKey {
			keyKind = key.Kind()
		} else if key.Kind() != keyKind {
			return &ConstructionError{
				Enum:   b.def.Name,
				Entry:  entry.name,
				Err:    ErrMixedKeyKinds,
				Detail: fmt.Sprintf("entry %q has a %s key but earlier entries have %s keys", entry.name, key.Kind(), keyKind),
			}
		}

		v.key = key
		v.token = uuid.NewSHA1(TokenNamespace, []byte(b.def.Name+"."+entry.name))
		b.enum.values = append(b.enum.values, v)
	}

	return nil
}

func (b *builder) keyDescription() string {
	if b.enum.kind == Structured {
		return b.def.KeyField
	}
	return "value"
}

// extractKey reads the ordering key of one entry. Structured entries read the
// key field from their own data only; defaults never supply a key.
func (b *builder) extractKey(entry normalizedEntry) (Key, error) {
	missing := func(detail string) (Key, error) {
		return Key{}, &ConstructionError{
			Enum:   b.def.Name,
			Entry:  entry.name,
			Err:    ErrMissingKeyValue,
			Detail: detail,
		}
	}

	if entry.shape == shapePrimitive {
		if entry.data == nil {
			return missing(fmt.Sprintf("entry %q has no value", entry.name))
		}
		return entry.data.(Key), nil
	}

	if b.def.KeyField == "" {
		return missing(fmt.Sprintf("entry %q is structured but the definition has no key field", entry.name))
	}

	raw, exists := entry.data.(Fields)[b.def.KeyField]
	if !exists || raw == nil {
		return missing(fmt.Sprintf("key %s of entry %q cannot be absent", b.def.KeyField, entry.name))
	}
	if _, isKey := raw.(Key); !isKey {
		if err := validation.ValidateKeyType(raw, b.def.KeyField); err != nil {
			return Key{}, &ConstructionError{
				Enum:   b.def.Name,
				Entry:  entry.name,
				Err:    ErrUnsupportedPayload,
				Detail: fmt.Sprintf("entry %q: %v", entry.name, err),
			}
		}
	}
	key, err := parseKey(raw)
	if errors.Is(err, errKeyOutOfRange) {
		return Key{}, &ConstructionError{
			Enum:   b.def.Name,
			Entry:  entry.name,
			Err:    ErrUnsupportedPayload,
			Detail: fmt.Sprintf("key %s of entry %q: %v", b.def.KeyField, entry.name, err),
		}
	}
	if err != nil {
		return missing(fmt.Sprintf("key %s of entry %q is not a usable number", b.def.KeyField, entry.name))
	}
	return key, nil
}

// newValue merges defaults and entry data into a Value. Entry fields override
// defaults; functions in the entry become methods taking the value.
func (b *builder) newValue(entry normalizedEntry) *Value {
	v := &Value{
		enum:     b.enum,
		name:     entry.name,
		fields:   make(Fields, len(b.defaultData)),
		computed: make(map[string]Accessor, len(b.defaultComputed)),
		methods:  make(map[string]ValueMethod, len(b.defaultMethods)),
	}

	for name, field := range b.defaultData {
		v.fields[name] = field
	}
	for name, fn := range b.defaultComputed {
		v.computed[name] = fn
	}
	for name, fn := range b.defaultMethods {
		v.methods[name] = fn
	}

	switch entry.shape {
	case shapePrimitive:
		scalar, _ := entry.data.(Key)
		v.payload = PrimitivePayload{Scalar: scalar}
	case shapeStructured:
		own := make(Fields, len(entry.data.(Fields)))
		for name, field := range entry.data.(Fields) {
			delete(v.fields, name)
			delete(v.computed, name)
			delete(v.methods, name)

			switch fn := field.(type) {
			case ValueMethod:
				v.methods[name] = fn
			case func(*Value, ...any) any:
				v.methods[name] = ValueMethod(fn)
			case Accessor:
				v.methods[name] = func(v *Value, _ ...any) any { return fn(v) }
			case func(*Value) any:
				v.methods[name] = func(v *Value, _ ...any) any { return fn(v) }
			default:
				field = cloneData(field)
				v.fields[name] = field
				own[name] = field
			}
		}
		v.payload = StructuredPayload{fields: own}
	}

	return v
}

// finish orders the values, assigns indices and builds the lookup tables
func (b *builder) finish() *Enum {
	e := b.enum

	slices.SortStableFunc(e.values, func(a, b *Value) int {
		return a.key.Compare(b.key)
	})

	e.keys = make([]Key, len(e.values))
	e.choices = make([]Choice, len(e.values))
	for i, v := range e.values {
		v.index = i
		v.label = b.labelOf(v)
		e.keys[i] = v.key
		e.choices[i] = Choice{Key: v.key, Label: v.label}
		e.byName[v.name] = v
		e.byKey[v.key] = v
	}

	return e
}

func (b *builder) labelOf(v *Value) string {
	if b.def.LabelField == "" {
		return v.name
	}
	label, ok := v.Get(b.def.LabelField)
	if !ok || label == nil {
		return v.name
	}
	if s, ok := label.(string); ok {
		return s
	}
	return fmt.Sprint(label)
}
