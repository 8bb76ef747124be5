// Package hookfmt validates loosely-typed message documents and
// transcodes them into the wire payload a messaging platform accepts.
//
// - Strict per-field validation with a stable error model via Issues
//   (JSON Pointer, code, message)
// - One-or-many normalization for embeds, files, and embed field rows
// - An injection mechanism that lets a field's value be computed by a
//   named function from a caller-supplied Registry
// - Cross-field defaulting (embeds inherit the document-level color)
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place input decoding under source/, messages under i18n/, and the
//   CLI under cmd/hookfmt.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	tree, err := source.YAMLBytes(data)
//	payload, err := hookfmt.Transcode(tree, registry)
//	wire, err := hookfmt.EncodeJSON(payload)
package hookfmt
