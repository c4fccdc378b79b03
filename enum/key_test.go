package enum

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

type (
	stepID int
	code   uint16
	status string
	ratio  float32
	flag   bool
)

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		wantOK bool
		want   Key
	}{
		{name: "int", input: 3, wantOK: true, want: NumberKeyOf(3)},
		{name: "uint8", input: uint8(3), wantOK: true, want: NumberKeyOf(3)},
		{name: "float", input: 3.0, wantOK: true, want: NumberKeyOf(3)},
		{name: "float32", input: float32(1.5), wantOK: true, want: NumberKeyOf(1.5)},
		{name: "string", input: "a", wantOK: true, want: StringKeyOf("a")},
		{name: "empty string", input: "", wantOK: true, want: StringKeyOf("")},
		{name: "json number", input: json.Number("7"), wantOK: true, want: NumberKeyOf(7)},
		{name: "key", input: StringKeyOf("k"), wantOK: true, want: StringKeyOf("k")},
		{name: "zero key", input: Key{}, wantOK: false},
		{name: "nil", input: nil, wantOK: false},
		{name: "NaN", input: math.NaN(), wantOK: false},
		{name: "bool", input: true, wantOK: false},
		{name: "slice", input: []int{1}, wantOK: false},
		{name: "named int", input: stepID(4), wantOK: true, want: NumberKeyOf(4)},
		{name: "named uint", input: code(7), wantOK: true, want: NumberKeyOf(7)},
		{name: "named string", input: status("open"), wantOK: true, want: StringKeyOf("open")},
		{name: "named float", input: ratio(0.5), wantOK: true, want: NumberKeyOf(0.5)},
		{name: "named float NaN", input: ratio(float32(math.NaN())), wantOK: false},
		{name: "named bool", input: flag(true), wantOK: false},
		{name: "largest exact int", input: int64(MaxExactInteger), wantOK: true, want: NumberKeyOf(MaxExactInteger)},
		{name: "smallest exact int", input: int64(-MaxExactInteger), wantOK: true, want: NumberKeyOf(-MaxExactInteger)},
		{name: "int beyond float precision", input: int64(MaxExactInteger + 1), wantOK: false},
		{name: "negative int beyond float precision", input: int64(-MaxExactInteger - 1), wantOK: false},
		{name: "max uint64", input: uint64(math.MaxUint64), wantOK: false},
		{name: "json number beyond float precision", input: json.Number("9007199254740993"), wantOK: false},
		{name: "json decimal", input: json.Number("1.5"), wantOK: true, want: NumberKeyOf(1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyOf(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("KeyOf(%v): ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("KeyOf(%v): got %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeyRange(t *testing.T) {
	for _, input := range []any{int64(MaxExactInteger + 1), uint64(MaxExactInteger + 1), int64(-MaxExactInteger - 1)} {
		if _, err := parseKey(input); !errors.Is(err, errKeyOutOfRange) {
			t.Errorf("parseKey(%v): got %v, want errKeyOutOfRange", input, err)
		}
	}
	if _, err := parseKey(flag(true)); !errors.Is(err, errNoKey) {
		t.Errorf("parseKey(flag): got %v, want errNoKey", err)
	}
}

func TestKeyCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want int
	}{
		{name: "numbers", a: NumberKeyOf(2), b: NumberKeyOf(10), want: -1},
		{name: "equal numbers", a: NumberKeyOf(2), b: NumberKeyOf(2), want: 0},
		{name: "strings", a: StringKeyOf("b"), b: StringKeyOf("a"), want: 1},
		{name: "string digits are not numbers", a: StringKeyOf("10"), b: StringKeyOf("2"), want: -1},
		{name: "numbers before strings", a: NumberKeyOf(100), b: StringKeyOf("1"), want: -1},
		{name: "absent first", a: Key{}, b: NumberKeyOf(-5), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare: got %d, want %d", got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("reverse Compare: got %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{NumberKeyOf(1), "1"},
		{NumberKeyOf(1.25), "1.25"},
		{NumberKeyOf(-3), "-3"},
		{StringKeyOf("abc"), "abc"},
		{Key{}, "<none>"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("String(): got %q, want %q", got, tt.want)
		}
	}
}

func TestKeyEncoding(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal([]Choice{
			{Key: NumberKeyOf(1), Label: "Duty"},
			{Key: StringKeyOf("b"), Label: "variable"},
		})
		if err != nil {
			t.Fatal(err)
		}
		want := `[{"value":1,"label":"Duty"},{"value":"b","label":"variable"}]`
		if string(data) != want {
			t.Errorf("got %s, want %s", data, want)
		}

		var keys []Key
		if err := json.Unmarshal([]byte(`[1, "b", 2.5]`), &keys); err != nil {
			t.Fatal(err)
		}
		if keys[0] != NumberKeyOf(1) || keys[1] != StringKeyOf("b") || keys[2] != NumberKeyOf(2.5) {
			t.Errorf("decoded %v", keys)
		}
		if err := json.Unmarshal([]byte(`[true]`), &keys); err == nil {
			t.Error("expected an error for a bool key")
		}
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(Choice{Key: NumberKeyOf(4), Label: "Xor"})
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "value: 4\nlabel: Xor\n" {
			t.Errorf("got %q", data)
		}

		var choice Choice
		if err := yaml.Unmarshal([]byte("value: d\nlabel: xor\n"), &choice); err != nil {
			t.Fatal(err)
		}
		if choice.Key != StringKeyOf("d") || choice.Label != "xor" {
			t.Errorf("decoded %+v", choice)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		data  any
		shape entryShape
	}{
		{name: "fields", data: Fields{"a": 1}, shape: shapeStructured},
		{name: "map", data: map[string]any{"a": 1}, shape: shapeStructured},
		{name: "struct", data: struct{ A int }{1}, shape: shapeStructured},
		{name: "number", data: 1, shape: shapePrimitive},
		{name: "string", data: "x", shape: shapePrimitive},
		{name: "nil", data: nil, shape: shapePrimitive},
		{name: "NaN", data: math.NaN(), shape: shapePrimitive},
		{name: "method", data: Method(func(*Enum, ...any) any { return nil }), shape: shapeMethod},
		{name: "bool", data: false, shape: shapeUnsupported},
		{name: "named string", data: status("open"), shape: shapePrimitive},
		{name: "named int", data: stepID(2), shape: shapePrimitive},
		{name: "named bool", data: flag(false), shape: shapeUnsupported},
		{name: "int beyond float precision", data: int64(MaxExactInteger + 1), shape: shapeUnsupported},
		{name: "nil struct pointer", data: (*struct{ A int })(nil), shape: shapeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := classify(tt.data); got != tt.shape {
				t.Errorf("classify(%v): got %d, want %d", tt.data, got, tt.shape)
			}
		})
	}
}
