package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
)

// Draft is the schema dialect the generator emits
const Draft = "http://json-schema.org/draft-07/schema#"

var marshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()

// Generate builds a schema document for the type of v
func Generate(v any) (map[string]any, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("cannot generate schema for nil")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	body, err := typeSchema(t)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{
		"$schema": Draft,
		"title":   t.Name(),
	}
	for k, val := range body {
		doc[k] = val
	}
	return doc, nil
}

func typeSchema(t reflect.Type) (map[string]any, error) {
	// Custom marshalers control their own wire shape; treat as opaque
	if t.Implements(marshalerType) || reflect.PointerTo(t).Implements(marshalerType) {
		return map[string]any{}, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return map[string]any{"type": "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}, nil
	case reflect.String:
		return map[string]any{"type": "string"}, nil
	case reflect.Pointer:
		return typeSchema(t.Elem())
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			// []byte encodes as base64 per encoding/json
			return map[string]any{"type": "string", "contentEncoding": "base64"}, nil
		}
		items, err := typeSchema(t.Elem())
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "array", "items": items}, nil
	case reflect.Map, reflect.Interface:
		return map[string]any{}, nil
	case reflect.Struct:
		return structSchema(t)
	default:
		return nil, fmt.Errorf("unsupported kind %s for %s", t.Kind(), t)
	}
}

func structSchema(t reflect.Type) (map[string]any, error) {
	properties := map[string]any{}
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, optional := fieldName(field)
		if name == "" {
			continue
		}

		fs, err := typeSchema(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		properties[name] = fs

		if !optional && field.Type.Kind() != reflect.Pointer {
			required = append(required, name)
		}
	}

	out := map[string]any{"type": "object"}
	if len(properties) > 0 {
		out["properties"] = properties
	}
	if len(required) > 0 {
		sort.Strings(required)
		out["required"] = required
	}
	return out, nil
}

// fieldName resolves the JSON name of a field and whether it is optional
func fieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false
	}

	name := field.Name
	optional := false
	if tag != "" {
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			name = parts[0]
		}
		for _, opt := range parts[1:] {
			if opt == "omitempty" {
				optional = true
			}
		}
	}
	return name, optional
}

// Marshal renders a schema document deterministically: two-space indent,
// sorted keys, trailing newline
func Marshal(doc map[string]any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteAll emits one <name>.json file per schema into dir, creating it if
// needed
func WriteAll(dir string, schemas map[string]map[string]any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, doc := range schemas {
		data, err := Marshal(doc)
		if err != nil {
			return fmt.Errorf("schema %s: %w", name, err)
		}
		path := filepath.Join(dir, name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
