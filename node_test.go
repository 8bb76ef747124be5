package hookfmt_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	hookfmt "github.com/hookfmt/hookfmt"
)

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s issue, got nil", code)
	}
	iss, ok := hookfmt.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues error, got %v", err)
	}
	if len(iss) != 1 || iss[0].Code != code {
		t.Fatalf("expected single %s issue, got %v", code, iss)
	}
}

func TestParseString_Basic(t *testing.T) {
	v, err := hookfmt.ParseString("/content", "  hello  ", false, 10)
	if err != nil || v == nil || *v != "hello" {
		t.Fatalf("expected trimmed value, got v=%v err=%v", v, err)
	}

	v, err = hookfmt.ParseString("/content", nil, false, 10)
	if err != nil || v != nil {
		t.Fatalf("optional missing should be absent, got v=%v err=%v", v, err)
	}

	_, err = hookfmt.ParseString("/content", nil, true, 10)
	wantCode(t, err, hookfmt.CodeRequired)

	_, err = hookfmt.ParseString("/content", 5, false, 10)
	wantCode(t, err, hookfmt.CodeInvalidType)

	_, err = hookfmt.ParseString("/content", "   ", false, 10)
	wantCode(t, err, hookfmt.CodeEmptyString)
}

func TestParseString_LengthBoundary(t *testing.T) {
	exact := strings.Repeat("a", 256)
	v, err := hookfmt.ParseString("/title", exact, false, 256)
	if err != nil || *v != exact {
		t.Fatalf("exact-length string must pass, got err=%v", err)
	}

	_, err = hookfmt.ParseString("/title", exact+"a", false, 256)
	wantCode(t, err, hookfmt.CodeTooLong)
}

func TestParseBool_Basic(t *testing.T) {
	v, err := hookfmt.ParseBool("/inline", true)
	if err != nil || v == nil || !*v {
		t.Fatalf("expected true, got v=%v err=%v", v, err)
	}
	if v, err := hookfmt.ParseBool("/inline", nil); err != nil || v != nil {
		t.Fatalf("missing should be absent, got v=%v err=%v", v, err)
	}
	_, err = hookfmt.ParseBool("/inline", "yes")
	wantCode(t, err, hookfmt.CodeInvalidType)
}

func TestParseColor_Bounds(t *testing.T) {
	for _, ok := range []any{0, 0xFFFFFF, json.Number("255"), float64(16)} {
		v, err := hookfmt.ParseColor("/color", ok)
		if err != nil || v == nil {
			t.Fatalf("color %v must pass, got err=%v", ok, err)
		}
	}

	_, err := hookfmt.ParseColor("/color", -1)
	wantCode(t, err, hookfmt.CodeOutOfRange)

	_, err = hookfmt.ParseColor("/color", 0x1000000)
	wantCode(t, err, hookfmt.CodeOutOfRange)

	_, err = hookfmt.ParseColor("/color", 1.5)
	wantCode(t, err, hookfmt.CodeNotInteger)

	_, err = hookfmt.ParseColor("/color", json.Number("1.5"))
	wantCode(t, err, hookfmt.CodeNotInteger)

	_, err = hookfmt.ParseColor("/color", "red")
	wantCode(t, err, hookfmt.CodeInvalidType)
}

func TestParseTimestamp_Forms(t *testing.T) {
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, in := range []any{
		want,
		"2026-01-02T03:04:05Z",
		"2026-01-02T03:04:05",
		"2026-01-02 03:04:05",
	} {
		v, err := hookfmt.ParseTimestamp("/timestamp", in)
		if err != nil || v == nil || !v.Equal(want) {
			t.Fatalf("timestamp %v: got v=%v err=%v", in, v, err)
		}
	}

	v, err := hookfmt.ParseTimestamp("/timestamp", json.Number("1767322800000"))
	if err != nil || v == nil || v.UnixMilli() != 1767322800000 {
		t.Fatalf("millis input: got v=%v err=%v", v, err)
	}

	_, err = hookfmt.ParseTimestamp("/timestamp", "next tuesday")
	wantCode(t, err, hookfmt.CodeInvalidType)

	_, err = hookfmt.ParseTimestamp("/timestamp", true)
	wantCode(t, err, hookfmt.CodeInvalidType)
}

func TestParseURL_Scheme(t *testing.T) {
	for _, ok := range []string{"http://example.com", "https://example.com/a.png"} {
		v, err := hookfmt.ParseURL("/url", ok, true)
		if err != nil || *v != ok {
			t.Fatalf("url %q must pass, got err=%v", ok, err)
		}
	}

	_, err := hookfmt.ParseURL("/url", "ftp://example.com", false)
	wantCode(t, err, hookfmt.CodeInvalidScheme)

	_, err = hookfmt.ParseURL("/url", "example.com/no/scheme", false)
	wantCode(t, err, hookfmt.CodeInvalidScheme)

	_, err = hookfmt.ParseURL("/url", nil, true)
	wantCode(t, err, hookfmt.CodeRequired)

	if v, err := hookfmt.ParseURL("/url", nil, false); err != nil || v != nil {
		t.Fatalf("optional missing url should be absent, got v=%v err=%v", v, err)
	}
}

func TestParseIDSelector_Forms(t *testing.T) {
	v, err := hookfmt.ParseIDSelector("/users", true)
	if err != nil || v == nil || !v.Allow || v.List {
		t.Fatalf("boolean form: got v=%+v err=%v", v, err)
	}

	v, err = hookfmt.ParseIDSelector("/users", []any{"1", "2"})
	if err != nil || v == nil || !v.List || len(v.IDs) != 2 {
		t.Fatalf("array form: got v=%+v err=%v", v, err)
	}

	_, err = hookfmt.ParseIDSelector("/users", []any{"1", 2})
	wantCode(t, err, hookfmt.CodeInvalidType)

	_, err = hookfmt.ParseIDSelector("/users", "everyone")
	wantCode(t, err, hookfmt.CodeInvalidType)
}
