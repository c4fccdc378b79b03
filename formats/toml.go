package formats

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

// TOML reads and writes definitions as TOML documents. Values are written
// as an array of tables:
//
//	name = "StepType"
//	key_field = "stepTypeId"
//
//	[[values]]
//	name = "duty"
//	fields = { stepTypeId = 1, isDuty = true }
var TOML = &DefinitionFormat{
	Name:       "toml",
	Extensions: []string{".toml"},
	Unmarshal: func(data []byte) (*Document, error) {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()

		var doc Document
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		return &doc, nil
	},
	Marshal: func(doc *Document) ([]byte, error) {
		return toml.Marshal(doc)
	},
}
