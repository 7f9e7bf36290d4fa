package templates

import (
	"encoding/json"
	"strings"

	"github.com/dustin/go-humanize"
	"parietal.systems/acqview/internal/db"
	"parietal.systems/acqview/pkg/acqsummary"
	"parietal.systems/acqview/pkg/utils/format"
)

// cardMeta builds the one-line metadata summary shown on recording cards.
func cardMeta(row *db.ListRecordingsRow) string {
	parts := make([]string, 0, 4)
	if row.Kind == db.RecordingKindRaw && row.NTimes != nil && row.SFreq != nil {
		parts = append(parts, format.Duration(format.RecordingSeconds(int(*row.NTimes), row.SFreq)))
	}
	if row.SFreq != nil {
		parts = append(parts, acqsummary.FormatSamplingFrequency(*row.SFreq))
	}
	if row.NTimes != nil {
		parts = append(parts, format.Itoa32(*row.NTimes)+" samples")
	}
	if row.NumEvents > 0 {
		parts = append(parts, acqsummary.FormatCount(int(row.NumEvents))+" events")
	}
	if len(parts) == 0 {
		return "no acquisition metadata"
	}
	return strings.Join(parts, " · ")
}

// cardComment renders the condition label, shortened to fit a card line.
func cardComment(row *db.ListRecordingsRow) string {
	if row.Comment == nil {
		return ""
	}
	return format.Truncate(*row.Comment, 60)
}

// cardNotes renders a short plain-text preview of the recording notes, with
// the markdown stripped so card rows stay one line of text.
func cardNotes(row *db.ListRecordingsRow) string {
	if row.Notes.Source == "" {
		return ""
	}
	plain := strings.Join(strings.Fields(string(row.Notes.PlainText())), " ")
	return format.Truncate(plain, 80)
}

// cardAge renders the relative upload time ("3 days ago").
func cardAge(row *db.ListRecordingsRow) string {
	return humanize.Time(row.CreatedAt.Time)
}

// notesSignals seeds the datastar signals for the notes editor.
func notesSignals(source string) string {
	b, _ := json.Marshal(map[string]any{
		"recordingNotes": source,
		"notesEditing":   false,
	})
	return string(b)
}
