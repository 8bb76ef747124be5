package hookfmt

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Field validators: pure functions over one untyped input fragment.
// A nil raw value stands for an omitted field (explicit null included);
// all of them return a nil pointer for absent optional values and a
// single-issue Issues error on the first violation.

// childPath extends a JSON Pointer with a key segment.
func childPath(base, key string) string { return base + "/" + key }

// elemPath extends a JSON Pointer with a list index.
func elemPath(base string, i int) string { return base + "/" + strconv.Itoa(i) }

// ParseString validates a trimmed, length-bounded string. max <= 0
// means unbounded. Lengths count runes, matching the platform's
// user-visible character limits.
func ParseString(path string, v any, required bool, max int) (*string, error) {
	if v == nil {
		if required {
			return nil, fail(path, CodeRequired, nil)
		}
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "string"})
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fail(path, CodeEmptyString, nil)
	}
	if max > 0 {
		if n := utf8.RuneCountInString(s); n > max {
			return nil, fail(path, CodeTooLong, map[string]string{
				"max": strconv.Itoa(max),
				"got": strconv.Itoa(n),
			})
		}
	}
	return &s, nil
}

// ParseBool validates an optional boolean.
func ParseBool(path string, v any) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "boolean"})
	}
	return &b, nil
}

// ParseColor validates an optional 24-bit RGB integer in [0, 0xFFFFFF].
// Accepts Go integers, float64, and json.Number on the wire.
func ParseColor(path string, v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	var c int
	switch t := v.(type) {
	case int:
		c = t
	case int8:
		c = int(t)
	case int16:
		c = int(t)
	case int32:
		c = int(t)
	case int64:
		c = int(t)
	case uint:
		c = int(t)
	case uint8:
		c = int(t)
	case uint16:
		c = int(t)
	case uint32:
		c = int(t)
	case uint64:
		c = int(t)
	case float64:
		if math.Trunc(t) != t {
			return nil, fail(path, CodeNotInteger, nil)
		}
		c = int(t)
	case json.Number:
		if i64, err := t.Int64(); err == nil {
			c = int(i64)
			break
		}
		f64, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return nil, fail(path, CodeInvalidType, map[string]string{"want": "number"})
		}
		if math.Trunc(f64) != f64 {
			return nil, fail(path, CodeNotInteger, nil)
		}
		c = int(f64)
	default:
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "number"})
	}
	if c < 0 || c > MaxColor {
		return nil, fail(path, CodeOutOfRange, map[string]string{"got": strconv.Itoa(c)})
	}
	return &c, nil
}

// timestampLayouts are tried in order for string timestamps. Naive
// forms (no zone) read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp validates an optional date value: time.Time, a string
// in one of timestampLayouts, or a Unix-millisecond number.
func ParseTimestamp(path string, v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case time.Time:
		return &t, nil
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return &ts, nil
			}
		}
	case int:
		ts := time.UnixMilli(int64(t))
		return &ts, nil
	case int64:
		ts := time.UnixMilli(t)
		return &ts, nil
	case float64:
		ts := time.UnixMilli(int64(t))
		return &ts, nil
	case json.Number:
		if i64, err := t.Int64(); err == nil {
			ts := time.UnixMilli(i64)
			return &ts, nil
		}
		if f64, err := strconv.ParseFloat(t.String(), 64); err == nil {
			ts := time.UnixMilli(int64(f64))
			return &ts, nil
		}
	}
	return nil, fail(path, CodeInvalidType, map[string]string{"want": "timestamp"})
}

// ParseURL validates an absolute http(s) URL. The length is unbounded;
// only the scheme prefix is checked beyond the usual string rules.
func ParseURL(path string, v any, required bool) (*string, error) {
	if v == nil {
		if required {
			return nil, fail(path, CodeRequired, nil)
		}
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "string"})
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fail(path, CodeEmptyString, nil)
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return nil, fail(path, CodeInvalidScheme, nil)
	}
	return &s, nil
}

// ParseIDSelector validates a boolean-or-string-array value. Array
// elements are required, unbounded strings.
func ParseIDSelector(path string, v any) (*IDSelector, error) {
	if v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case bool:
		return &IDSelector{Allow: t}, nil
	case []any:
		ids := make([]string, 0, len(t))
		for i, el := range t {
			s, err := ParseString(elemPath(path, i), el, true, 0)
			if err != nil {
				return nil, err
			}
			ids = append(ids, *s)
		}
		return &IDSelector{IDs: ids, List: true}, nil
	default:
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "boolean or sequence of strings"})
	}
}
