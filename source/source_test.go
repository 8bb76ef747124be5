package source_test

import (
	"encoding/json"
	"testing"

	"github.com/hookfmt/hookfmt/source"
)

func TestJSONBytes_PreservesNumbers(t *testing.T) {
	m, err := source.JSONBytes([]byte(`{"content":"hi","color":3368601}`))
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	n, ok := m["color"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", m["color"])
	}
	if i, err := n.Int64(); err != nil || i != 3368601 {
		t.Fatalf("number mismatch: %v %v", i, err)
	}
}

func TestJSONBytes_RootMustBeMapping(t *testing.T) {
	if _, err := source.JSONBytes([]byte(`[1,2]`)); err == nil {
		t.Fatalf("expected error for non-mapping root")
	}
}

func TestYAMLBytes_NormalizesNestedMaps(t *testing.T) {
	data := []byte(`
content: hi
embed:
  title: t
  field:
    - name: n
      value: v
`)
	m, err := source.YAMLBytes(data)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	embed, ok := m["embed"].(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any embed, got %T", m["embed"])
	}
	rowsAny, ok := embed["field"].([]any)
	if !ok || len(rowsAny) != 1 {
		t.Fatalf("expected one field row, got %T", embed["field"])
	}
	if row, ok := rowsAny[0].(map[string]any); !ok || row["name"] != "n" {
		t.Fatalf("nested sequences must normalize to map[string]any: %T", rowsAny[0])
	}
}

func TestYAMLBytes_RootMustBeMapping(t *testing.T) {
	if _, err := source.YAMLBytes([]byte("- a\n- b\n")); err == nil {
		t.Fatalf("expected error for non-mapping root")
	}
}
