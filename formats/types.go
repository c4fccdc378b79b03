package formats

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/enumerated/enum"
)

// DefinitionFormat defines how enum definition documents are encoded and decoded
type DefinitionFormat struct {
	// Name is the format identifier (alphanumeric, dashes, underscores, lowercase)
	Name string

	// Extensions lists the file extensions including the dot (e.g., ".yaml", ".yml")
	Extensions []string

	// Unmarshal parses raw bytes into a Document
	Unmarshal func(data []byte) (*Document, error)

	// Marshal renders a Document
	Marshal func(doc *Document) ([]byte, error)
}

var (
	registryMu sync.RWMutex
	// registry holds all available definition formats
	registry = make(map[string]*DefinitionFormat)
)

// Register adds a new definition format to the registry
func Register(format *DefinitionFormat) error {
	// Validate format name (alphanumeric, dashes, underscores, lowercase)
	if !isValidFormatName(format.Name) {
		return fmt.Errorf("invalid format name %q: must be lowercase alphanumeric with dashes and underscores only", format.Name)
	}

	// Normalize extensions
	for i, ext := range format.Extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		format.Extensions[i] = ext
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	// Check if format already exists
	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}

	registry[format.Name] = format
	return nil
}

// Get returns a definition format by name
func Get(name string) (*DefinitionFormat, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return format, nil
}

// ForExtension returns the format that handles a file extension such as ".yml"
func ForExtension(ext string) (*DefinitionFormat, error) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, format := range registry {
		for _, candidate := range format.Extensions {
			if candidate == ext {
				return format, nil
			}
		}
	}
	return nil, fmt.Errorf("no format registered for extension %q", ext)
}

// List returns all registered format names, sorted
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode parses data in the named format into a Definition
func Decode(formatName string, data []byte) (enum.Definition, error) {
	format, err := Get(formatName)
	if err != nil {
		return enum.Definition{}, err
	}

	doc, err := format.Unmarshal(data)
	if err != nil {
		return enum.Definition{}, fmt.Errorf("failed to parse %s definition: %w", format.Name, err)
	}
	return doc.Definition()
}

// Parse decodes data in the named format and builds the Enum
func Parse(formatName string, data []byte) (*enum.Enum, error) {
	def, err := Decode(formatName, data)
	if err != nil {
		return nil, err
	}
	return enum.New(def)
}

// Encode renders an Enum as a definition document in the named format
func Encode(formatName string, e *enum.Enum) ([]byte, error) {
	format, err := Get(formatName)
	if err != nil {
		return nil, err
	}
	return format.Marshal(FromEnum(e))
}

// isValidFormatName checks if a format name is valid
func isValidFormatName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
