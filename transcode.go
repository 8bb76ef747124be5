package hookfmt

import "time"

// wireTimestampLayout is the strict ISO-8601 form the platform
// expects: millisecond precision, UTC, trailing Z.
const wireTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseDocument validates the raw object tree into the internal model.
// Recognized root keys: content, color, profile, embed, file,
// mentions; unknown keys are ignored. The root color is validated
// first because it only serves as the per-embed fallback.
func ParseDocument(v any, reg Registry) (*Document, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fail("/", CodeInvalidType, map[string]string{"want": "mapping"})
	}
	var doc Document
	var err error
	if doc.Color, err = ParseColor("/color", m["color"]); err != nil {
		return nil, err
	}
	if doc.Content, err = ParseString("/content", m["content"], false, MaxContentLen); err != nil {
		return nil, err
	}
	if doc.Profile, err = parseProfile("/profile", m["profile"]); err != nil {
		return nil, err
	}
	if doc.Embeds, err = parseEmbeds("/embed", m["embed"], reg); err != nil {
		return nil, err
	}
	if doc.Files, err = parseFiles("/file", m["file"]); err != nil {
		return nil, err
	}
	if doc.Mentions, err = parseMentions("/mentions", m["mentions"]); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Transcode validates the raw document tree and reshapes it into the
// wire payload. The first invalid field anywhere aborts the pass; no
// partial payload is ever returned. Concurrent calls are independent:
// there is no shared state beyond the read-only registry.
func Transcode(v any, reg Registry) (*Payload, error) {
	doc, err := ParseDocument(v, reg)
	if err != nil {
		return nil, err
	}
	return reshape(doc), nil
}

func reshape(doc *Document) *Payload {
	p := &Payload{}
	if doc.Content != nil {
		p.Content = *doc.Content
	}
	if doc.Profile != nil {
		if doc.Profile.Username != nil {
			p.Username = *doc.Profile.Username
		}
		if doc.Profile.AvatarURL != nil {
			p.AvatarURL = *doc.Profile.AvatarURL
		}
	}
	if doc.Mentions != nil {
		p.AllowedMentions = reshapeMentions(doc.Mentions)
	}
	for _, e := range doc.Embeds {
		p.Embeds = append(p.Embeds, reshapeEmbed(e, doc.Color))
	}
	for _, f := range doc.Files {
		p.Files = append(p.Files, WireFile{Name: f.Name, Attachment: f.URL})
	}
	return p
}

func reshapeEmbed(e Embed, rootColor *int) WireEmbed {
	var w WireEmbed
	if e.Title != nil {
		w.Title = *e.Title
	}
	if e.Description != nil {
		w.Description = *e.Description
	}
	if e.URL != nil {
		w.URL = *e.URL
	}
	if e.Timestamp != nil {
		w.Timestamp = formatTimestamp(*e.Timestamp)
	}
	// The embed's own color wins; otherwise the root color substitutes;
	// with neither, the color field stays absent.
	if c := e.Color; c != nil {
		v := *c
		w.Color = &v
	} else if rootColor != nil {
		v := *rootColor
		w.Color = &v
	}
	if e.Footer != nil {
		f := WireFooter{Text: e.Footer.Text}
		if e.Footer.IconURL != nil {
			f.IconURL = *e.Footer.IconURL
		}
		w.Footer = &f
	}
	if e.ImageURL != nil {
		w.Image = &WireImage{URL: *e.ImageURL}
	}
	if e.ThumbnailURL != nil {
		w.Thumbnail = &WireImage{URL: *e.ThumbnailURL}
	}
	if e.VideoURL != nil {
		w.Video = &WireImage{URL: *e.VideoURL}
	}
	if e.Author != nil {
		a := WireAuthor{Name: e.Author.Name}
		if e.Author.URL != nil {
			a.URL = *e.Author.URL
		}
		if e.Author.IconURL != nil {
			a.IconURL = *e.Author.IconURL
		}
		w.Author = &a
	}
	for _, f := range e.Fields {
		w.Fields = append(w.Fields, WireField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return w
}

func reshapeMentions(m *Mentions) *AllowedMentions {
	am := &AllowedMentions{Parse: []string{}}
	if m.Everyone {
		am.Parse = append(am.Parse, "everyone")
	}
	if m.Users.enabled() {
		am.Parse = append(am.Parse, "users")
	}
	if m.Roles.enabled() {
		am.Parse = append(am.Parse, "roles")
	}
	// Explicit id lists ride along only for the array form; the boolean
	// form signals "all" by omitting them.
	if m.Users.List {
		am.Users = m.Users.IDs
	}
	if m.Roles.List {
		am.Roles = m.Roles.IDs
	}
	return am
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(wireTimestampLayout)
}
