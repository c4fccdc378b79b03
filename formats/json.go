package formats

import (
	"bytes"
	"encoding/json"
)

// JSON reads and writes definitions as JSON documents.
// Unknown top-level or value keys are rejected.
var JSON = &DefinitionFormat{
	Name:       "json",
	Extensions: []string{".json"},
	Unmarshal: func(data []byte) (*Document, error) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()

		var doc Document
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		return &doc, nil
	},
	Marshal: func(doc *Document) ([]byte, error) {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	},
}
