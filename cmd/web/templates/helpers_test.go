package templates

import (
	"testing"

	"github.com/stretchr/testify/require"
	"parietal.systems/acqview/internal/db"
	"parietal.systems/acqview/pkg/utils/markdown"
)

func f64(v float64) *float64 { return &v }
func i32(v int32) *int32     { return &v }
func str(s string) *string   { return &s }

func TestCardMeta(t *testing.T) {
	row := &db.ListRecordingsRow{
		Kind:      db.RecordingKindRaw,
		SFreq:     f64(1000.0),
		NTimes:    i32(600000),
		NumEvents: 42,
	}
	require.Equal(t, "10:00 · 1000.00 Hz · 600000 samples · 42 events", cardMeta(row))
}

func TestCardMeta_Empty(t *testing.T) {
	require.Equal(t, "no acquisition metadata", cardMeta(&db.ListRecordingsRow{}))
}

func TestCardMeta_NoDurationForEpochs(t *testing.T) {
	row := &db.ListRecordingsRow{
		Kind:   db.RecordingKindEpochs,
		SFreq:  f64(256.0),
		NTimes: i32(180),
	}
	require.Equal(t, "256.00 Hz · 180 samples", cardMeta(row))
}

func TestCardComment(t *testing.T) {
	require.Equal(t, "", cardComment(&db.ListRecordingsRow{}))

	long := "auditory/left with a condition label long enough to overflow a single card line"
	row := &db.ListRecordingsRow{Comment: str(long)}
	got := cardComment(row)
	require.LessOrEqual(t, len(got), 60)
	require.Contains(t, got, "auditory/left")
}

func TestCardNotes_StripsMarkdown(t *testing.T) {
	row := &db.ListRecordingsRow{
		Notes: *markdown.New("# Session notes\n\nSubject **moved** during run 2."),
	}
	got := cardNotes(row)
	require.NotContains(t, got, "#")
	require.NotContains(t, got, "**")
	require.NotContains(t, got, "<")
	require.Contains(t, got, "Subject moved during run 2.")
}

func TestCardNotes_Empty(t *testing.T) {
	require.Equal(t, "", cardNotes(&db.ListRecordingsRow{}))
}

func TestCardNotes_Truncated(t *testing.T) {
	src := "A very long note. "
	for len(src) < 400 {
		src += "It keeps going and going with more session details. "
	}
	row := &db.ListRecordingsRow{Notes: *markdown.New(src)}
	got := cardNotes(row)
	require.LessOrEqual(t, len(got), 80)
	require.True(t, len(got) > 0)
}
