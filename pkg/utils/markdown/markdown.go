// Package markdown wraps the markdown source of recording notes. Only the
// source text is stored in the database; rendering to sanitized HTML happens
// on demand and is cached per value.
package markdown

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// Markdown wraps markdown source code and provides methods to render it.
type Markdown struct {
	// Source is the markdown source code.
	Source string

	renderedHTML *template.HTML
	renderedText *template.HTML
}

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank | blackfriday.Smartypants | blackfriday.SmartypantsFractions | blackfriday.SmartypantsDashes,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Tables | blackfriday.FencedCode | blackfriday.Autolink | blackfriday.Strikethrough | blackfriday.SpaceHeadings | blackfriday.HeadingIDs | blackfriday.AutoHeadingIDs | blackfriday.DefinitionLists
	policy       = bluemonday.UGCPolicy()
)

func New(source string) *Markdown {
	md := &Markdown{Source: source}
	if source != "" {
		md.Render()
	}
	return md
}

// Render converts the markdown source into sanitized HTML.
func (m *Markdown) Render() template.HTML {
	if m.renderedHTML != nil {
		return *m.renderedHTML
	}

	unsafe := blackfriday.Run([]byte(m.Source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
	safe := policy.SanitizeBytes(unsafe)
	html := template.HTML(bytes.TrimSpace(safe))
	m.renderedHTML = &html
	return html
}

// PlainText renders the source with all tags stripped, for list previews.
func (m *Markdown) PlainText() template.HTML {
	if m.renderedText != nil {
		return *m.renderedText
	}

	unsafe := blackfriday.Run([]byte(m.Source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)

	safe := bytes.TrimSpace(bluemonday.StrictPolicy().SanitizeBytes(unsafe))
	h := template.HTML(safe)
	m.renderedText = &h

	return *m.renderedText
}

func (m *Markdown) reset(source string) {
	m.Source = source
	m.renderedHTML = nil
	m.renderedText = nil
}

// Scan implements sql.Scanner, loading markdown text from the DB.
func (m *Markdown) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		m.reset("")
	case string:
		m.reset(v)
	case []byte:
		m.reset(string(v))
	default:
		return fmt.Errorf("cannot scan type %T into Markdown", src)
	}
	return nil
}

// Value implements driver.Valuer, writing the markdown text back to the DB.
func (m Markdown) Value() (driver.Value, error) {
	return m.Source, nil
}

// ScanText implements the pgtype.TextScanner interface for pgx v5.
func (m *Markdown) ScanText(v pgtype.Text) error {
	if !v.Valid {
		m.reset("")
		return nil
	}
	m.reset(v.String)
	return nil
}

// TextValue implements the pgtype.TextValuer interface for pgx v5.
func (m Markdown) TextValue() (pgtype.Text, error) {
	return pgtype.Text{String: m.Source, Valid: true}, nil
}

// UnmarshalJSON implements json.Unmarshaler so Markdown can be decoded from
// API payloads.
func (m *Markdown) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Markdown.UnmarshalJSON: %w", err)
	}
	m.reset(s)
	return nil
}
