package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/confio/mask/contract"
)

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGenerate_ContractMessages(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{"init_msg", contract.InitMsg{}},
		{"execute_msg", contract.ExecuteMsg{}},
		{"query_msg", contract.QueryMsg{}},
		{"owner_response", contract.OwnerResponse{}},
	}

	g := golden(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Generate(tt.v)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			data, err := Marshal(doc)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			g.Assert(t, tt.name, data)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate(contract.ExecuteMsg{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	a, err := Marshal(first)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	second, err := Generate(contract.ExecuteMsg{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Marshal(second)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if string(a) != string(b) {
		t.Error("schema output is not deterministic")
	}
}

func TestGenerate_FieldShapes(t *testing.T) {
	type sample struct {
		Name    string   `json:"name"`
		Count   uint64   `json:"count"`
		Enabled bool     `json:"enabled,omitempty"`
		Tags    []string `json:"tags,omitempty"`
		Payload []byte   `json:"payload"`
		skipped int
	}

	doc, err := Generate(sample{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	properties, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("no properties in %v", doc)
	}

	wantTypes := map[string]string{
		"name":    "string",
		"count":   "integer",
		"enabled": "boolean",
		"payload": "string", // base64
	}
	for field, wantType := range wantTypes {
		fs, ok := properties[field].(map[string]any)
		if !ok {
			t.Fatalf("missing property %s", field)
		}
		if fs["type"] != wantType {
			t.Errorf("%s type = %v, want %s", field, fs["type"], wantType)
		}
	}

	tags := properties["tags"].(map[string]any)
	if tags["type"] != "array" {
		t.Errorf("tags type = %v, want array", tags["type"])
	}

	if _, ok := properties["skipped"]; ok {
		t.Error("unexported field leaked into schema")
	}

	required, _ := doc["required"].([]string)
	want := []string{"count", "name", "payload"}
	if len(required) != len(want) {
		t.Fatalf("required = %v, want %v", required, want)
	}
	for i := range want {
		if required[i] != want[i] {
			t.Errorf("required[%d] = %s, want %s", i, required[i], want[i])
		}
	}
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "schemas")

	init, err := Generate(contract.InitMsg{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	owner, err := Generate(contract.OwnerResponse{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	err = WriteAll(dir, map[string]map[string]any{
		"init_msg":       init,
		"owner_response": owner,
	})
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	for _, name := range []string{"init_msg.json", "owner_response.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Errorf("%s is not valid JSON: %v", name, err)
		}
		if doc["$schema"] != Draft {
			t.Errorf("%s $schema = %v", name, doc["$schema"])
		}
	}
}
