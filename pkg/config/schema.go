package config

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/invopop/jsonschema"

	"github.com/macropower/chatwin/pkg/schema"
)

//go:generate go run ../../internal/schemagen -o ../../chat.schema.json

const (
	// SchemaID identifies the property file schema.
	SchemaID = "https://github.com/macropower/chatwin/chat.schema.json"

	structureSchemaID = "https://github.com/macropower/chatwin/chat.structure.json"
)

// Schema describes property files for editor tooling, including value types
// and bounds for every known key.
func Schema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   jsonschema.ID(SchemaID),
		Title:                "Chat window properties",
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: scalarSchema(),
		Required:             RequiredKeys(),
	}

	for _, f := range fields {
		_, _ = s.Properties.Set(f.key, fieldSchema(f))
	}

	return s
}

// SchemaJSON returns the indented JSON encoding of [Schema].
func SchemaJSON() ([]byte, error) {
	return marshalSchema(Schema())
}

// NewValidator returns a validator for document structure, for use with
// [props.WithValidator]. It only requires a flat mapping of scalars: presence,
// types and bounds of individual values are left to [Chat.Load] so that they
// are accumulated in its report.
func NewValidator() (*schema.Validator, error) {
	b, err := marshalSchema(&jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   jsonschema.ID(structureSchemaID),
		Type:                 "object",
		AdditionalProperties: scalarSchema(),
	})
	if err != nil {
		return nil, err
	}

	v, err := schema.NewValidator(structureSchemaID, b)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return v, nil
}

func marshalSchema(s *jsonschema.Schema) ([]byte, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return b, nil
}

func scalarSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "number"},
			{Type: "boolean"},
		},
	}
}

func fieldSchema(f field) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Title:       f.key,
		Description: f.description,
	}

	switch f.kind {
	case kindBool:
		s.AnyOf = []*jsonschema.Schema{
			{Type: "boolean"},
			{Type: "string", Enum: []any{literalTrue, literalFalse}},
		}

	case kindInt:
		n := &jsonschema.Schema{Type: "integer"}
		if f.hasMin {
			n.Minimum = json.Number(strconv.Itoa(f.min))
		}

		if f.hasMax {
			n.Maximum = json.Number(strconv.Itoa(f.max))
		}

		s.AnyOf = []*jsonschema.Schema{
			n,
			{Type: "string", Pattern: `^[+-]?[0-9]+$`},
		}
	}

	return s
}
