package hookfmt

import "time"

// Platform limits enforced by the validators. These are part of the
// external contract and match the target platform bit-exactly.
const (
	MaxContentLen     = 2000
	MaxUsernameLen    = 80
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFooterTextLen  = 2048
	MaxAuthorNameLen  = 256
	MaxFieldNameLen   = 256
	MaxFieldValueLen  = 1024
	MaxFileNameLen    = 256
	MaxEmbeds         = 10
	MaxFields         = 25
	MaxFiles          = 10
	MaxColor          = 0xFFFFFF
)

// Document is the fully validated message model before reshaping to
// wire form. Every entity here is a transient value object owned by a
// single transcode pass; nil pointers and nil slices mean the input
// omitted the field.
type Document struct {
	Content  *string
	Color    *int // root-level color, used only as the per-embed fallback
	Profile  *Profile
	Embeds   []Embed
	Files    []File
	Mentions *Mentions
}

// Profile is the display identity override.
type Profile struct {
	Username  *string
	AvatarURL *string
}

// Footer decorates the bottom of an embed. Text is mandatory when the
// block is present.
type Footer struct {
	Text    string
	IconURL *string
}

// Author decorates the top of an embed. Name is mandatory when the
// block is present.
type Author struct {
	Name    string
	URL     *string
	IconURL *string
}

// Field is one key/value row in an embed.
type Field struct {
	Name   string
	Value  string
	Inline *bool
}

// Embed is one rich-message panel.
type Embed struct {
	Title        *string
	Description  *string
	URL          *string
	Timestamp    *time.Time
	Color        *int
	Footer       *Footer
	ImageURL     *string
	ThumbnailURL *string
	VideoURL     *string
	Author       *Author
	Fields       []Field
}

// File is one attachment descriptor.
type File struct {
	Name string
	URL  string
}

// IDSelector is the boolean-or-id-list form of a mention policy
// member: the boolean form means "allow all of this kind", the array
// form means "allow only these ids".
type IDSelector struct {
	Allow bool     // boolean form
	IDs   []string // array form
	List  bool     // true when the input used the array form
}

// enabled reports whether the selector allows any mention of its kind.
func (s IDSelector) enabled() bool {
	if s.List {
		return len(s.IDs) > 0
	}
	return s.Allow
}

// Mentions is the allowed-mention policy.
type Mentions struct {
	Everyone bool
	Users    IDSelector
	Roles    IDSelector
}
