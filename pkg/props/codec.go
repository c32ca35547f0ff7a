package props

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
)

// Format identifies a file encoding.
type Format string

const (
	FormatProperties Format = "properties"
	FormatYAML       Format = "yaml"
	FormatTOML       Format = "toml"
)

var (
	// ErrNotFlat indicates that a document contains nested values.
	ErrNotFlat = errors.New("document is not a flat mapping of scalars")
	// ErrUnknownFormat indicates an unsupported [Format].
	ErrUnknownFormat = errors.New("unknown format")
)

// DocumentValidator validates a decoded document before it is flattened.
type DocumentValidator interface {
	Validate(data any) error
}

// FormatFromPath picks a [Format] from the file extension. Files with an
// unrecognized extension are treated as .properties files.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	}

	return FormatProperties
}

// Decode parses data in the given format. When v is non-nil, the untyped
// document is validated with it first.
func Decode(format Format, data []byte, v DocumentValidator) (Map, error) {
	if format == FormatProperties {
		return decodeProperties(data)
	}

	var doc any

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))

		err := dec.Decode(&doc)
		if err != nil && !isEOF(err) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}

	case FormatTOML:
		err := toml.Unmarshal(data, &doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if doc == nil {
		return Map{}, nil
	}

	if v != nil {
		err := v.Validate(doc)
		if err != nil {
			return nil, fmt.Errorf("validate %s document: %w", format, err)
		}
	}

	return flatten(doc)
}

// Encode serializes m in the given format, with keys in sorted order.
func Encode(format Format, m Map) ([]byte, error) {
	switch format {
	case FormatProperties:
		return encodeProperties(m)

	case FormatYAML:
		b, err := yaml.MarshalWithOptions(map[string]string(m), yaml.UseLiteralStyleIfMultiline(true))
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		return b, nil

	case FormatTOML:
		b, err := toml.Marshal(map[string]string(m))
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}

		return b, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func decodeProperties(data []byte) (Map, error) {
	l := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}

	p, err := l.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}

	return Map(p.Map()), nil
}

func encodeProperties(m Map) ([]byte, error) {
	p := properties.NewProperties()
	p.DisableExpansion = true

	for _, k := range m.Keys() {
		_, _, err := p.Set(k, m[k])
		if err != nil {
			return nil, fmt.Errorf("set %q: %w", k, err)
		}
	}

	b := &bytes.Buffer{}

	_, err := p.Write(b, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("encode properties: %w", err)
	}

	return b.Bytes(), nil
}

// flatten converts a decoded document into a [Map]. Null values are dropped
// so that they read as missing keys.
func flatten(doc any) (Map, error) {
	mapping, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotFlat, doc)
	}

	out := make(Map, len(mapping))

	for k, v := range mapping {
		switch v := v.(type) {
		case nil:
			continue
		case string:
			out[k] = v
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: key %q", ErrNotFlat, k)
		default:
			out[k] = fmt.Sprint(v)
		}
	}

	return out, nil
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
