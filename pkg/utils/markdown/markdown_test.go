package markdown

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	md := New("")
	require.NotNil(t, md)
	require.Equal(t, "", md.Source)
	require.Equal(t, "", strings.TrimSpace(string(md.Render())))
}

func TestMarkdown_Render_Sanitizes(t *testing.T) {
	md := New("session notes <script>alert(1)</script> **amplifier recalibrated**")

	html := string(md.Render())
	require.NotContains(t, strings.ToLower(html), "<script")
	require.Contains(t, html, "amplifier recalibrated")

	// caching path
	html2 := string(md.Render())
	require.Equal(t, html, html2)
}

func TestMarkdown_PlainText(t *testing.T) {
	md := New("subject was **drowsy** during run 2")

	text := string(md.PlainText())
	require.Contains(t, text, "subject was")
	require.Contains(t, text, "drowsy")
	require.NotContains(t, text, "<strong>")
}

func TestMarkdown_ScanAndText(t *testing.T) {
	var md Markdown
	require.NoError(t, md.Scan(nil))
	require.Equal(t, "", md.Source)

	require.NoError(t, md.Scan("abc"))
	require.Equal(t, "abc", md.Source)

	require.NoError(t, md.Scan([]byte("def")))
	require.Equal(t, "def", md.Source)

	require.Error(t, md.Scan(123))

	require.NoError(t, md.ScanText(pgtype.Text{Valid: false}))
	require.Equal(t, "", md.Source)

	require.NoError(t, md.ScanText(pgtype.Text{String: "ghi", Valid: true}))
	require.Equal(t, "ghi", md.Source)

	tv, err := (Markdown{Source: "jkl"}).TextValue()
	require.NoError(t, err)
	require.True(t, tv.Valid)
	require.Equal(t, "jkl", tv.String)
}

func TestMarkdown_ScanResetsCache(t *testing.T) {
	md := New("**one**")
	first := string(md.Render())
	require.Contains(t, first, "one")

	require.NoError(t, md.Scan("**two**"))
	second := string(md.Render())
	require.Contains(t, second, "two")
	require.NotContains(t, second, "one")
}

func TestMarkdown_UnmarshalJSON(t *testing.T) {
	var md Markdown
	require.NoError(t, json.Unmarshal([]byte(`"hello"`), &md))
	require.Equal(t, "hello", md.Source)
}
