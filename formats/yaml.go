package formats

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAML reads and writes definitions as YAML documents
var YAML = &DefinitionFormat{
	Name:       "yaml",
	Extensions: []string{".yaml", ".yml"},
	Unmarshal: func(data []byte) (*Document, error) {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		var doc Document
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		return &doc, nil
	},
	Marshal: func(doc *Document) ([]byte, error) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	},
}
