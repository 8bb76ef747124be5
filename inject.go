package hookfmt

// SourceFunc computes a replacement value for an injected field. opts
// is everything the marker carried besides the source name (nil for
// the bare-string form).
type SourceFunc func(opts map[string]any) (any, error)

// Registry maps source names to their functions. It is supplied by the
// caller per transcode invocation and is read-only from the
// validators' perspective.
type Registry map[string]SourceFunc

// Injected reports whether v carries an inject marker and returns the
// marker payload. Only mappings participate; every other shape is used
// verbatim.
func Injected(v any) (any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	raw, ok := m["inject"]
	return raw, ok
}

// Resolve looks up the named source and invokes it, substituting its
// result for the literal value. The marker payload is either a bare
// source name or a mapping with a string "source" key whose remaining
// entries become the opts. Errors returned by the source function
// propagate unchanged; the registry owner is responsible for its own
// robustness.
func Resolve(path string, marker any, reg Registry) (any, error) {
	var name string
	var opts map[string]any
	switch t := marker.(type) {
	case string:
		name = t
	case map[string]any:
		s, ok := t["source"].(string)
		if !ok {
			return nil, fail(path, CodeInvalidInject, nil)
		}
		name = s
		opts = make(map[string]any, len(t)-1)
		for k, v := range t {
			if k == "source" {
				continue
			}
			opts[k] = v
		}
	default:
		return nil, fail(path, CodeInvalidInject, nil)
	}
	fn, ok := reg[name]
	if !ok {
		return nil, fail(path, CodeUnknownSource, map[string]string{"name": name})
	}
	return fn(opts)
}
