package hookfmt

import (
	json "github.com/goccy/go-json"
)

// Payload is the wire-shaped message ready for delivery. Absent
// top-level fields are omitted from the emitted JSON.
type Payload struct {
	Content         string           `json:"content,omitempty"`
	Username        string           `json:"username,omitempty"`
	AvatarURL       string           `json:"avatarURL,omitempty"`
	AllowedMentions *AllowedMentions `json:"allowedMentions,omitempty"`
	Embeds          []WireEmbed      `json:"embeds,omitempty"`
	Files           []WireFile       `json:"files,omitempty"`
}

// AllowedMentions is the wire mention policy. Parse always serializes:
// an empty list is the meaningful "no mentions" policy.
type AllowedMentions struct {
	Parse []string `json:"parse"`
	Users []string `json:"users,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// WireEmbed is one embed panel in wire shape. Sub-objects materialize
// only when present; absence never produces an empty object.
type WireEmbed struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url,omitempty"`
	Timestamp   string      `json:"timestamp,omitempty"`
	Color       *int        `json:"color,omitempty"`
	Footer      *WireFooter `json:"footer,omitempty"`
	Image       *WireImage  `json:"image,omitempty"`
	Thumbnail   *WireImage  `json:"thumbnail,omitempty"`
	Video       *WireImage  `json:"video,omitempty"`
	Author      *WireAuthor `json:"author,omitempty"`
	Fields      []WireField `json:"fields,omitempty"`
}

type WireFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

type WireImage struct {
	URL string `json:"url"`
}

type WireAuthor struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

type WireField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline *bool  `json:"inline,omitempty"`
}

// WireFile pairs an attachment name with its platform reference.
type WireFile struct {
	Name       string `json:"name"`
	Attachment string `json:"attachment"`
}

// EncodeJSON renders the payload as compact wire JSON. Struct encoding
// keeps the output byte-deterministic for identical inputs.
func EncodeJSON(p *Payload) ([]byte, error) {
	return json.Marshal(p)
}

// EncodeJSONIndent renders the payload indented for humans.
func EncodeJSONIndent(p *Payload) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
