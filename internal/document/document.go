// Package document loads JSON and YAML documents into the shapes the
// query engine traverses. Mappings decode to yaml.MapSlice so document
// key order survives traversal and rendering.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"

	"github.com/jacoelho/dq/internal/record"
)

var (
	// ErrLoad indicates a document that cannot be read or parsed.
	ErrLoad = errors.New("document: cannot load document")
	// ErrDecode indicates a value that cannot decode into the target.
	ErrDecode = errors.New("document: cannot decode value")
)

// FromYAML decodes a YAML document from r.
func FromYAML(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return unmarshalYAML(data)
}

// FromYAMLString decodes a YAML document from a string.
func FromYAMLString(text string) (any, error) {
	return unmarshalYAML([]byte(text))
}

// FromYAMLFile decodes a YAML document from a file.
func FromYAMLFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return unmarshalYAML(data)
}

// FromJSON decodes a JSON document from r. Input must be strict JSON;
// YAML-only syntax is rejected even though the decoder would accept it.
func FromJSON(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return unmarshalJSON(data)
}

// FromJSONString decodes a JSON document from a string.
func FromJSONString(text string) (any, error) {
	return unmarshalJSON([]byte(text))
}

// FromJSONFile decodes a JSON document from a file.
func FromJSONFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return unmarshalJSON(data)
}

// Load reads a document, choosing the decoder from the file extension.
// YAML subsumes JSON, so unknown extensions decode as YAML.
func Load(path string) (any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FromJSONFile(path)
	default:
		return FromYAMLFile(path)
	}
}

// Decode converts a document fragment or query result into target,
// typically a struct pointer. Ordered maps are flattened first so they
// decode like plain ones; weakly typed conversion covers the scalar
// representations the YAML decoder produces.
func Decode(value any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := decoder.Decode(record.Plain(value)); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func unmarshalYAML(data []byte) (any, error) {
	var value any
	if err := yaml.UnmarshalWithOptions(data, &value, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return value, nil
}

// unmarshalJSON gates on strict JSON validity, then reuses the YAML
// decoder so JSON objects keep key order too.
func unmarshalJSON(data []byte) (any, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid JSON", ErrLoad)
	}
	return unmarshalYAML(data)
}
