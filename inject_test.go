package hookfmt_test

import (
	"errors"
	"testing"

	hookfmt "github.com/hookfmt/hookfmt"
)

func TestInjected_Detection(t *testing.T) {
	if _, ok := hookfmt.Injected(map[string]any{"inject": "greeting"}); !ok {
		t.Fatalf("mapping with inject key must be detected")
	}
	if _, ok := hookfmt.Injected(map[string]any{"name": "x"}); ok {
		t.Fatalf("plain mapping must not be detected")
	}
	if _, ok := hookfmt.Injected("inject"); ok {
		t.Fatalf("scalar must not be detected")
	}
}

func TestResolve_StringForm(t *testing.T) {
	reg := hookfmt.Registry{
		"greeting": func(opts map[string]any) (any, error) {
			if opts != nil {
				t.Fatalf("bare-string form must pass nil opts, got %v", opts)
			}
			return "hello", nil
		},
	}
	v, err := hookfmt.Resolve("/content", "greeting", reg)
	if err != nil || v != "hello" {
		t.Fatalf("got v=%v err=%v", v, err)
	}
}

func TestResolve_ObjectForm(t *testing.T) {
	var got map[string]any
	reg := hookfmt.Registry{
		"lookup": func(opts map[string]any) (any, error) {
			got = opts
			return 7, nil
		},
	}
	marker := map[string]any{"source": "lookup", "key": "k", "n": 1}
	v, err := hookfmt.Resolve("/x", marker, reg)
	if err != nil || v != 7 {
		t.Fatalf("got v=%v err=%v", v, err)
	}
	if len(got) != 2 || got["key"] != "k" || got["n"] != 1 {
		t.Fatalf("source key must be stripped from opts, got %v", got)
	}
	if _, ok := got["source"]; ok {
		t.Fatalf("opts must not carry the source key")
	}
}

func TestResolve_BadShapes(t *testing.T) {
	reg := hookfmt.Registry{}

	_, err := hookfmt.Resolve("/x", 42, reg)
	wantCode(t, err, hookfmt.CodeInvalidInject)

	_, err = hookfmt.Resolve("/x", map[string]any{"name": "no source"}, reg)
	wantCode(t, err, hookfmt.CodeInvalidInject)

	_, err = hookfmt.Resolve("/x", "missing", reg)
	wantCode(t, err, hookfmt.CodeUnknownSource)

	_, err = hookfmt.Resolve("/x", "anything", nil)
	wantCode(t, err, hookfmt.CodeUnknownSource)
}

func TestResolve_SourceErrorsPropagateVerbatim(t *testing.T) {
	boom := errors.New("boom")
	reg := hookfmt.Registry{
		"explode": func(opts map[string]any) (any, error) { return nil, boom },
	}
	_, err := hookfmt.Resolve("/x", "explode", reg)
	if !errors.Is(err, boom) {
		t.Fatalf("source error must propagate unchanged, got %v", err)
	}
	if _, ok := hookfmt.AsIssues(err); ok {
		t.Fatalf("source error must not be wrapped into Issues")
	}
}
