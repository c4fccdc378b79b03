package enum_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/arthur-debert/enumerated/enum"
)

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		name      string
		def       enum.Definition
		wantErr   error
		wantEntry string
		wantPrev  string
		contains  []string
	}{
		{
			name:     "blank key field",
			def:      enum.Definition{Name: "T", KeyField: "  ", Entries: []enum.Entry{{Name: "a", Data: enum.Fields{"id": 1}}}},
			wantErr:  enum.ErrInvalidKeyFieldName,
			contains: []string{"key field"},
		},
		{
			name:     "whitespace key field",
			def:      enum.Definition{Name: "T", KeyField: "\t"},
			wantErr:  enum.ErrInvalidKeyFieldName,
			contains: []string{`"\t"`},
		},
		{
			name:     "blank label field",
			def:      enum.Definition{Name: "T", LabelField: "   "},
			wantErr:  enum.ErrInvalidKeyFieldName,
			contains: []string{"label field"},
		},
		{
			name:    "empty type name",
			def:     enum.Definition{Name: ""},
			wantErr: enum.ErrInvalidName,
		},
		{
			name: "missing key field",
			def: enum.Definition{Name: "StepType", KeyField: "stepTypeId", Entries: []enum.Entry{
				{Name: "duty", Data: enum.Fields{"stepTypeId": 1}},
				{Name: "variable", Data: enum.Fields{"isVariable": true}},
			}},
			wantErr:   enum.ErrMissingKeyValue,
			wantEntry: "variable",
			contains:  []string{"stepTypeId", `"variable"`},
		},
		{
			name: "key only in defaults",
			def: enum.Definition{Name: "StepType", KeyField: "stepTypeId",
				Defaults: enum.Fields{"stepTypeId": 0},
				Entries:  []enum.Entry{{Name: "duty", Data: enum.Fields{"isDuty": true}}},
			},
			wantErr:   enum.ErrMissingKeyValue,
			wantEntry: "duty",
		},
		{
			name: "nil key field",
			def: enum.Definition{Name: "T", KeyField: "id", Entries: []enum.Entry{
				{Name: "a", Data: enum.Fields{"id": nil}},
			}},
			wantErr:   enum.ErrMissingKeyValue,
			wantEntry: "a",
		},
		{
			name: "NaN key field",
			def: enum.Definition{Name: "T", KeyField: "id", Entries: []enum.Entry{
				{Name: "a", Data: enum.Fields{"id": math.NaN()}},
			}},
			wantErr:   enum.ErrMissingKeyValue,
			wantEntry: "a",
		},
		{
			name: "structured without key field",
			def: enum.Definition{Name: "T", Entries: []enum.Entry{
				{Name: "a", Data: enum.Fields{"id": 1}},
			}},
			wantErr:   enum.ErrMissingKeyValue,
			wantEntry: "a",
			contains:  []string{"no key field"},
		},
		{
			name: "duplicate key field",
			def: enum.Definition{Name: "StepType", KeyField: "stepTypeId", Entries: []enum.Entry{
				{Name: "duty", Data: enum.Fields{"stepTypeId": 1}},
				{Name: "variable", Data: enum.Fields{"stepTypeId": 2}},
				{Name: "optional", Data: enum.Fields{"stepTypeId": 1}},
			}},
			wantErr:   enum.ErrDuplicateKey,
			wantEntry: "optional",
			wantPrev:  "duty",
			contains:  []string{"enum StepType", `"optional"`, "stepTypeId 1", `already defined by "duty"`},
		},
		{
			name: "duplicate across number types",
			def: enum.Definition{Name: "T", Entries: []enum.Entry{
				{Name: "a", Data: 1},
				{Name: "b", Data: 1.0},
			}},
			wantErr:   enum.ErrDuplicateKey,
			wantEntry: "b",
			wantPrev:  "a",
		},
		{
			name: "missing primitive",
			def: enum.Definition{Name: "T", Entries: []enum.Entry{
				{Name: "a", Data: "x"},
				{Name: "b", Data: nil},
			}},
			wantErr:   enum.ErrMissingKeyValue,
			wantEntry: "b",
		},
		{
			name: "duplicate primitive",
			def: enum.Definition{Name: "T", Entries: []enum.Entry{
				{Name: "a", Data: "x"},
				{Name: "b", Data: "x"},
			}},
			wantErr:   enum.ErrDuplicateKey,
			wantEntry: "b",
			wantPrev:  "a",
			contains:  []string{"value x"},
		},
		{
			name: "mixed shapes",
			def: enum.Definition{Name: "T", KeyField: "id", Entries: []enum.Entry{
				{Name: "a", Data: enum.Fields{"id": 1}},
				{Name: "b", Data: 2},
				{Name: "c", Data: 3},
			}},
			wantErr:  enum.ErrInconsistentShape,
			contains: []string{"1 structured and 2 primitive"},
		},
		{
			name: "mixed key kinds",
			def: enum.Definition{Name: "T", Entries: []enum.Entry{
				{Name: "a", Data: 1},
				{Name: "b", Data: "two"},
			}},
			wantErr:   enum.ErrMixedKeyKinds,
			wantEntry: "b",
		},
		{
			name: "bool payload",
			def: enum.Definition{Name: "T", Entries: []enum.Entry{
				{Name: "a", Data: true},
			}},
			wantErr:   enum.ErrUnsupportedPayload,
			wantEntry: "a",
		},
		{
			name: "bool key field",
			def: enum.Definition{Name: "T", KeyField: "id", Entries: []enum.Entry{
				{Name: "a", Data: enum.Fields{"id": true}},
			}},
			wantErr:   enum.ErrUnsupportedPayload,
			wantEntry: "a",
			contains:  []string{"bool"},
		},
		{
			name: "duplicate named int keys",
			def: enum.Definition{Name: "StepType", KeyField: "stepTypeId", Entries: []enum.Entry{
				{Name: "duty", Data: enum.Fields{"stepTypeId": StepID(1)}},
				{Name: "variable", Data: enum.Fields{"stepTypeId": 1}},
			}},
			wantErr:   enum.ErrDuplicateKey,
			wantEntry: "variable",
			wantPrev:  "duty",
			contains:  []string{"stepTypeId 1"},
		},
		{
			name: "named bool key field",
			def: enum.Definition{Name: "T", KeyField: "id", Entries: []enum.Entry{
				{Name: "a", Data: enum.Fields{"id": Flag(true)}},
			}},
			wantErr:   enum.ErrUnsupportedPayload,
			wantEntry: "a",
		},
		{
			name: "integer keys beyond float precision",
			def: enum.Definition{Name: "Big", KeyField: "id", Entries: []enum.Entry{
				{Name: "a", Data: enum.Fields{"id": int64(enum.MaxExactInteger)}},
				{Name: "b", Data: enum.Fields{"id": int64(enum.MaxExactInteger + 1)}},
			}},
			wantErr:   enum.ErrUnsupportedPayload,
			wantEntry: "b",
			contains:  []string{"id", `"b"`, "out of range", "9007199254740993"},
		},
		{
			name: "primitive beyond float precision",
			def: enum.Definition{Name: "Big", Entries: []enum.Entry{
				{Name: "a", Data: uint64(math.MaxUint64)},
			}},
			wantErr:   enum.ErrUnsupportedPayload,
			wantEntry: "a",
			contains:  []string{"out of range"},
		},
		{
			name: "duplicate entry name",
			def: enum.Definition{Name: "T", Entries: []enum.Entry{
				{Name: "a", Data: 1},
				{Name: "a", Data: 2},
			}},
			wantErr:   enum.ErrDuplicateName,
			wantEntry: "a",
			wantPrev:  "a",
		},
		{
			name: "empty entry name",
			def: enum.Definition{Name: "T", Entries: []enum.Entry{
				{Name: "", Data: 1},
			}},
			wantErr: enum.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := enum.New(tt.def)
			if err == nil {
				t.Fatalf("expected error, got enum with %d values", e.Len())
			}
			if e != nil {
				t.Error("a partial enum was returned with the error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}

			var cerr *enum.ConstructionError
			if !errors.As(err, &cerr) {
				t.Fatalf("error is %T, want *ConstructionError", err)
			}
			if cerr.Entry != tt.wantEntry {
				t.Errorf("Entry: got %q, want %q", cerr.Entry, tt.wantEntry)
			}
			if cerr.Previous != tt.wantPrev {
				t.Errorf("Previous: got %q, want %q", cerr.Previous, tt.wantPrev)
			}
			for _, s := range tt.contains {
				if !strings.Contains(err.Error(), s) {
					t.Errorf("message %q does not contain %q", err.Error(), s)
				}
			}
		})
	}
}

func TestMethodEntriesDoNotCountAsShapes(t *testing.T) {
	e, err := enum.New(enum.Definition{Name: "T", Entries: []enum.Entry{
		{Name: "a", Data: "x"},
		{Name: "helper", Data: func(e *enum.Enum, _ ...any) any { return e.Len() }},
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := e.Call("helper")
	if err != nil || got != 1 {
		t.Errorf("helper: got %v, %v", got, err)
	}
	if len(e.Methods()) != 1 {
		t.Errorf("Methods(): got %v", e.Methods())
	}
}
