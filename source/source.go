// Package source decodes message documents from their textual forms
// into the generic object tree the transcoder consumes.
package source

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrNotMapping indicates the decoded document root is not a mapping.
var ErrNotMapping = errors.New("source: document root must be a mapping")

// JSONBytes decodes a JSON document. Numbers are preserved as
// json.Number so color values survive without float rounding.
func JSONBytes(data []byte) (map[string]any, error) {
	return JSONReader(bytes.NewReader(data))
}

// JSONReader decodes a JSON document from r.
func JSONReader(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, err
	}
	m, ok := node.(map[string]any)
	if !ok {
		return nil, ErrNotMapping
	}
	return m, nil
}

// YAMLBytes decodes a YAML document.
func YAMLBytes(data []byte) (map[string]any, error) {
	return YAMLReader(bytes.NewReader(data))
}

// YAMLReader decodes a YAML document from r. Mappings with non-string
// keys lose those entries during normalization.
func YAMLReader(r io.Reader) (map[string]any, error) {
	dec := yaml.NewDecoder(r)
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, err
	}
	m := anyToStringMap(node)
	if m == nil {
		return nil, ErrNotMapping
	}
	return m, nil
}

// anyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map
// roots return nil.
func anyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return anyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
