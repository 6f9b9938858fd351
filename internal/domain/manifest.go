package domain

import (
	"encoding/json"
	"fmt"
)

// VersionField is the manifest key holding the package version.
const VersionField = "version"

// Manifest is a decoded project manifest addressed by key.

type Manifest map[string]any

// DecodeManifest decodes the JSON document printed by a manifest reader.
// The top-level value must be an object.
func DecodeManifest(data []byte) (Manifest, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrDecodeFailure, typeName(raw))
	}
	return Manifest(doc), nil
}

// Version returns the string value of the version field.
func (m Manifest) Version() (string, error) {
	value, ok := m[VersionField]
	if !ok {
		return "", ErrMissingField
	}
	version, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %s, not a string", ErrMissingField, VersionField, typeName(value))
	}
	return version, nil
}

// Name returns the package name when present.
func (m Manifest) Name() string {
	name, _ := m["name"].(string)
	return name
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case float64, int64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
