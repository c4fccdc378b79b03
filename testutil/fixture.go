package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/enumerated/enum"
)

// StepTypeNames lists the StepType entries in declaration order
var StepTypeNames = []string{"duty", "variable", "optional", "xor", "and", "combineXor", "combineAnd"}

// StepTypeDefaults is the defaults template shared by the structured StepType fixtures
func StepTypeDefaults() enum.Fields {
	return enum.Fields{
		"stepTypeId": 0,
		"isDuty":     false,
		"isVariable": false,
		"isOptional": false,
		"isGateway":  false,
		"isXor":      false,
		"isAnd":      false,
		"isCombined": false,
	}
}

// StructuredStepType describes StepType with structured values keyed by stepTypeId.
// It also declares two instance methods: customFunction and listAllValues.
func StructuredStepType() enum.Definition {
	return enum.Definition{
		Name:     "StepType",
		KeyField: "stepTypeId",
		Defaults: StepTypeDefaults(),
		Entries: []enum.Entry{
			{Name: "duty", Data: enum.Fields{"stepTypeId": 1, "isDuty": true}},
			{Name: "variable", Data: enum.Fields{"stepTypeId": 2, "isVariable": true}},
			{Name: "optional", Data: enum.Fields{"stepTypeId": 3, "isOptional": true}},
			{Name: "xor", Data: enum.Fields{"stepTypeId": 4, "isGateway": true, "isXor": true}},
			{Name: "and", Data: enum.Fields{"stepTypeId": 5, "isGateway": true, "isAnd": true}},
			{Name: "combineXor", Data: enum.Fields{"stepTypeId": 6, "isGateway": true, "isXor": true, "isCombined": true}},
			{Name: "combineAnd", Data: enum.Fields{"stepTypeId": 7, "isGateway": true, "isAnd": true, "isCombined": true}},
			{Name: "customFunction", Data: enum.Method(func(_ *enum.Enum, args ...any) any {
				return fmt.Sprintf("Yes, it %v!", args[0])
			})},
			{Name: "listAllValues", Data: enum.Method(func(e *enum.Enum, _ ...any) any {
				return e.Values()
			})},
		},
	}
}

// LabelledStepType is StructuredStepType with a label field for dropdowns
func LabelledStepType() enum.Definition {
	labels := []string{"Duty", "Variable", "Optional", "Xor", "And", "Combine Xor", "Combine And"}

	def := StructuredStepType()
	def.LabelField = "label"
	entries := make([]enum.Entry, len(def.Entries))
	for i, entry := range def.Entries {
		entries[i] = entry
		if fields, ok := entry.Data.(enum.Fields); ok {
			withLabel := enum.Fields{"label": labels[i]}
			for name, field := range fields {
				withLabel[name] = field
			}
			entries[i].Data = withLabel
		}
	}
	def.Entries = entries
	return def
}

// NumericStepType describes StepType with primitive values 1..7 and
// predicates installed as methods
func NumericStepType() enum.Definition {
	is := func(keys ...float64) enum.ValueMethod {
		return func(v *enum.Value, _ ...any) any {
			n, _ := v.Scalar().Number()
			for _, k := range keys {
				if n == k {
					return true
				}
			}
			return false
		}
	}

	return enum.Definition{
		Name: "StepType",
		Defaults: enum.Fields{
			"isDuty":     is(1),
			"isVariable": is(2),
			"isOptional": is(3),
			"isGateway":  is(4, 5, 6, 7),
			"isXor":      is(4, 6),
			"isAnd":      is(5, 7),
			"isCombined": is(6, 7),
		},
		Entries: []enum.Entry{
			{Name: "duty", Data: 1},
			{Name: "variable", Data: 2},
			{Name: "optional", Data: 3},
			{Name: "xor", Data: 4},
			{Name: "and", Data: 5},
			{Name: "combineXor", Data: 6},
			{Name: "combineAnd", Data: 7},
		},
	}
}

// StringStepType describes StepType with primitive values "a".."g" and
// computed properties derived from the payload
func StringStepType() enum.Definition {
	scalar := func(v *enum.Value) string {
		s, _ := v.Scalar().Str()
		return s
	}
	oneOf := func(values ...string) enum.Accessor {
		return func(v *enum.Value) any {
			for _, s := range values {
				if scalar(v) == s {
					return true
				}
			}
			return false
		}
	}

	return enum.Definition{
		Name: "StepType",
		Defaults: enum.Fields{
			"stepTypeId": "",
			"isDuty":     oneOf("a"),
			"isVariable": oneOf("b"),
			"isOptional": oneOf("c"),
			"isGateway":  enum.Accessor(func(v *enum.Value) any { return scalar(v) >= "d" }),
			"isXor":      oneOf("d", "f"),
			"isAnd":      oneOf("e", "g"),
			"isCombined": oneOf("f", "g"),
		},
		Entries: []enum.Entry{
			{Name: "duty", Data: "a"},
			{Name: "variable", Data: "b"},
			{Name: "optional", Data: "c"},
			{Name: "xor", Data: "d"},
			{Name: "and", Data: "e"},
			{Name: "combineXor", Data: "f"},
			{Name: "combineAnd", Data: "g"},
		},
	}
}

// MustBuild constructs def or fails the test
func MustBuild(t *testing.T, def enum.Definition) *enum.Enum {
	t.Helper()
	e, err := enum.New(def)
	if err != nil {
		t.Fatalf("failed to build %s: %v", def.Name, err)
	}
	return e
}

// TestdataPath returns the absolute path of a file in testutil/testdata
func TestdataPath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// ReadTestdata returns the content of a file in testutil/testdata
func ReadTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(TestdataPath(name))
	if err != nil {
		t.Fatalf("failed to read fixture file: %v", err)
	}
	return data
}

// WriteTemp writes content to a temporary file named name and returns its path
func WriteTemp(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
