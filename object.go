package hookfmt

import "strconv"

// Structured validators: one per domain object. Each narrows the
// untyped tree at its path, delegating scalars to the field validators
// and injected values to Resolve. The first issue anywhere aborts the
// pass.

func parseProfile(path string, v any) (*Profile, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "mapping"})
	}
	var p Profile
	var err error
	if p.Username, err = ParseString(childPath(path, "name"), m["name"], false, MaxUsernameLen); err != nil {
		return nil, err
	}
	if p.AvatarURL, err = ParseURL(childPath(path, "avatar"), m["avatar"], false); err != nil {
		return nil, err
	}
	return &p, nil
}

func parseFooter(path string, v any) (*Footer, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "mapping"})
	}
	text, err := ParseString(childPath(path, "text"), m["text"], true, MaxFooterTextLen)
	if err != nil {
		return nil, err
	}
	icon, err := ParseURL(childPath(path, "icon"), m["icon"], false)
	if err != nil {
		return nil, err
	}
	return &Footer{Text: *text, IconURL: icon}, nil
}

func parseAuthor(path string, v any) (*Author, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "mapping"})
	}
	name, err := ParseString(childPath(path, "name"), m["name"], true, MaxAuthorNameLen)
	if err != nil {
		return nil, err
	}
	icon, err := ParseURL(childPath(path, "icon"), m["icon"], false)
	if err != nil {
		return nil, err
	}
	url, err := ParseURL(childPath(path, "url"), m["url"], false)
	if err != nil {
		return nil, err
	}
	return &Author{Name: *name, URL: url, IconURL: icon}, nil
}

// parseFieldEntry validates one entry of an embed's field list. An
// entry supports injection and one-or-many normalization, so a single
// entry may expand to several rows.
func parseFieldEntry(path string, v any, reg Registry) ([]Field, error) {
	if marker, ok := Injected(v); ok {
		rv, err := Resolve(path, marker, reg)
		if err != nil {
			return nil, err
		}
		// The replacement re-enters this validator: its shape is judged
		// as if it had been supplied literally.
		return parseFieldEntry(path, rv, reg)
	}
	if list, ok := v.([]any); ok {
		var out []Field
		for i, el := range list {
			fs, err := parseFieldEntry(elemPath(path, i), el, reg)
			if err != nil {
				return nil, err
			}
			out = append(out, fs...)
		}
		return out, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "mapping"})
	}
	name, err := ParseString(childPath(path, "name"), m["name"], true, MaxFieldNameLen)
	if err != nil {
		return nil, err
	}
	value, err := ParseString(childPath(path, "value"), m["value"], true, MaxFieldValueLen)
	if err != nil {
		return nil, err
	}
	inline, err := ParseBool(childPath(path, "inline"), m["inline"])
	if err != nil {
		return nil, err
	}
	return []Field{{Name: *name, Value: *value, Inline: inline}}, nil
}

func parseFields(path string, v any, reg Registry) ([]Field, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "sequence"})
	}
	var out []Field
	for i, el := range list {
		fs, err := parseFieldEntry(elemPath(path, i), el, reg)
		if err != nil {
			return nil, err
		}
		out = append(out, fs...)
	}
	if len(out) > MaxFields {
		return nil, fail(path, CodeTooLong, map[string]string{
			"max": strconv.Itoa(MaxFields),
			"got": strconv.Itoa(len(out)),
		})
	}
	return out, nil
}

// parseEmbedEntry validates one entry of the embed list; like field
// entries it supports injection and may expand to several embeds.
func parseEmbedEntry(path string, v any, reg Registry) ([]Embed, error) {
	if marker, ok := Injected(v); ok {
		rv, err := Resolve(path, marker, reg)
		if err != nil {
			return nil, err
		}
		return parseEmbedEntry(path, rv, reg)
	}
	if list, ok := v.([]any); ok {
		var out []Embed
		for i, el := range list {
			es, err := parseEmbedEntry(elemPath(path, i), el, reg)
			if err != nil {
				return nil, err
			}
			out = append(out, es...)
		}
		return out, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "mapping"})
	}
	var e Embed
	var err error
	if e.Title, err = ParseString(childPath(path, "title"), m["title"], false, MaxTitleLen); err != nil {
		return nil, err
	}
	if e.Description, err = ParseString(childPath(path, "description"), m["description"], false, MaxDescriptionLen); err != nil {
		return nil, err
	}
	if e.URL, err = ParseURL(childPath(path, "url"), m["url"], false); err != nil {
		return nil, err
	}
	if e.Timestamp, err = ParseTimestamp(childPath(path, "timestamp"), m["timestamp"]); err != nil {
		return nil, err
	}
	if e.Color, err = ParseColor(childPath(path, "color"), m["color"]); err != nil {
		return nil, err
	}
	if e.Footer, err = parseFooter(childPath(path, "footer"), m["footer"]); err != nil {
		return nil, err
	}
	if e.ImageURL, err = ParseURL(childPath(path, "image"), m["image"], false); err != nil {
		return nil, err
	}
	if e.ThumbnailURL, err = ParseURL(childPath(path, "thumbnail"), m["thumbnail"], false); err != nil {
		return nil, err
	}
	if e.VideoURL, err = ParseURL(childPath(path, "video"), m["video"], false); err != nil {
		return nil, err
	}
	if e.Author, err = parseAuthor(childPath(path, "author"), m["author"]); err != nil {
		return nil, err
	}
	// External-contract quirk: the row collection lives under the
	// singular key "field", while the wire output uses "fields".
	if e.Fields, err = parseFields(childPath(path, "field"), m["field"], reg); err != nil {
		return nil, err
	}
	return []Embed{e}, nil
}

func parseEmbeds(path string, v any, reg Registry) ([]Embed, error) {
	if v == nil {
		return nil, nil
	}
	entries, ok := v.([]any)
	if !ok {
		// One-or-many: a single embed object is a one-element list.
		entries = []any{v}
	}
	var out []Embed
	for i, el := range entries {
		es, err := parseEmbedEntry(elemPath(path, i), el, reg)
		if err != nil {
			return nil, err
		}
		out = append(out, es...)
	}
	if len(out) > MaxEmbeds {
		return nil, fail(path, CodeTooLong, map[string]string{
			"max": strconv.Itoa(MaxEmbeds),
			"got": strconv.Itoa(len(out)),
		})
	}
	return out, nil
}

func parseFile(path string, v any) (*File, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "mapping"})
	}
	name, err := ParseString(childPath(path, "name"), m["name"], true, MaxFileNameLen)
	if err != nil {
		return nil, err
	}
	url, err := ParseURL(childPath(path, "url"), m["url"], true)
	if err != nil {
		return nil, err
	}
	return &File{Name: *name, URL: *url}, nil
}

func parseFiles(path string, v any) ([]File, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		// A single file mapping counts as a one-element list; every
		// other non-list shape is a type error.
		if _, isMap := v.(map[string]any); !isMap {
			return nil, fail(path, CodeInvalidType, map[string]string{"want": "sequence"})
		}
		list = []any{v}
	}
	if len(list) > MaxFiles {
		return nil, fail(path, CodeTooLong, map[string]string{
			"max": strconv.Itoa(MaxFiles),
			"got": strconv.Itoa(len(list)),
		})
	}
	out := make([]File, 0, len(list))
	for i, el := range list {
		f, err := parseFile(elemPath(path, i), el)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, nil
}

func parseMentions(path string, v any) (*Mentions, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fail(path, CodeInvalidType, map[string]string{"want": "mapping"})
	}
	var mm Mentions
	everyone, err := ParseBool(childPath(path, "everyone"), m["everyone"])
	if err != nil {
		return nil, err
	}
	if everyone != nil {
		mm.Everyone = *everyone
	}
	users, err := ParseIDSelector(childPath(path, "users"), m["users"])
	if err != nil {
		return nil, err
	}
	if users != nil {
		mm.Users = *users
	}
	roles, err := ParseIDSelector(childPath(path, "roles"), m["roles"])
	if err != nil {
		return nil, err
	}
	if roles != nil {
		mm.Roles = *roles
	}
	return &mm, nil
}
