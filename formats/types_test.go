package formats

import (
	"strings"
	"testing"
)

func withEmptyRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	original := registry
	registry = make(map[string]*DefinitionFormat)
	registryMu.Unlock()

	t.Cleanup(func() {
		registryMu.Lock()
		registry = original
		registryMu.Unlock()
	})
}

func TestRegister(t *testing.T) {
	withEmptyRegistry(t)

	tests := []struct {
		name      string
		format    *DefinitionFormat
		wantError bool
		errorMsg  string
	}{
		{
			name:   "valid format",
			format: &DefinitionFormat{Name: "test-format", Extensions: []string{".test"}},
		},
		{
			name:      "invalid name with uppercase",
			format:    &DefinitionFormat{Name: "TestFormat", Extensions: []string{".test"}},
			wantError: true,
			errorMsg:  "invalid format name",
		},
		{
			name:      "invalid name with special chars",
			format:    &DefinitionFormat{Name: "test@format"},
			wantError: true,
			errorMsg:  "invalid format name",
		},
		{
			name:      "empty name",
			format:    &DefinitionFormat{Name: ""},
			wantError: true,
			errorMsg:  "invalid format name",
		},
		{
			name:   "extension without dot",
			format: &DefinitionFormat{Name: "test_format_2", Extensions: []string{"TST"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Register(tt.format)

			if tt.wantError {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	t.Run("duplicate registration", func(t *testing.T) {
		err := Register(&DefinitionFormat{Name: "test-format"})
		if err == nil || !strings.Contains(err.Error(), "already registered") {
			t.Errorf("expected duplicate error, got %v", err)
		}
	})

	t.Run("extensions are normalised", func(t *testing.T) {
		format, err := Get("test_format_2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := format.Extensions[0]; got != ".tst" {
			t.Errorf("extension: got %q, want %q", got, ".tst")
		}
	})
}

func TestGet(t *testing.T) {
	withEmptyRegistry(t)

	format := &DefinitionFormat{Name: "sample", Extensions: []string{".smp"}}
	if err := Register(format); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	got, err := Get("sample")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != format {
		t.Errorf("Get returned a different format")
	}

	if _, err := Get("missing"); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}

func TestForExtension(t *testing.T) {
	tests := []struct {
		ext      string
		expected string
		wantErr  bool
	}{
		{ext: ".json", expected: "json"},
		{ext: ".yaml", expected: "yaml"},
		{ext: ".yml", expected: "yaml"},
		{ext: "YML", expected: "yaml"},
		{ext: ".toml", expected: "toml"},
		{ext: ".txt", wantErr: true},
		{ext: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			format, err := ForExtension(tt.ext)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got format %q", tt.ext, format.Name)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if format.Name != tt.expected {
				t.Errorf("got %q, want %q", format.Name, tt.expected)
			}
		})
	}
}

func TestList(t *testing.T) {
	names := List()
	expected := []string{"json", "toml", "yaml"}
	if len(names) != len(expected) {
		t.Fatalf("List: got %v, want %v", names, expected)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("List[%d]: got %q, want %q", i, names[i], name)
		}
	}
}

func TestIsValidFormatName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"yaml", true},
		{"format-2", true},
		{"my_format", true},
		{"", false},
		{"YAML", false},
		{"with space", false},
		{"dot.name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidFormatName(tt.name); got != tt.valid {
				t.Errorf("isValidFormatName(%q): got %v, want %v", tt.name, got, tt.valid)
			}
		})
	}
}
