package common

import (
	"parietal.systems/acqview/internal/db"
	"parietal.systems/acqview/pkg/acqsummary"
	"parietal.systems/acqview/pkg/utils/format"
)

// SummaryRows converts a stored recording and its event markers into the
// ordered acquisition summary rows.
func SummaryRows(rec *db.Recording, events []db.EventMarker) []acqsummary.Row {
	in := &acqsummary.Recording{
		Comment: rec.Comment,
		TMin:    rec.TMin,
		TMax:    rec.TMax,
	}

	if rec.AggKind != nil && rec.Nave != nil {
		in.Kind = *rec.AggKind
		nave := int(*rec.Nave)
		in.Nave = &nave
	}

	// Epochs carry an events attribute even when no markers were found;
	// for other kinds the attribute only exists when markers are present.
	if len(events) > 0 || rec.Kind == db.RecordingKindEpochs {
		in.Events = make([]acqsummary.Event, len(events))
		for i, e := range events {
			in.Events[i] = acqsummary.Event{Sample: int(e.Sample), Code: int(e.Code)}
		}
	}

	// Pass the sample count through as-is; a time vector is never
	// materialized. Negative counts cannot pass the schema CHECK, but a bad
	// row must not take the page down.
	if rec.NTimes != nil && *rec.NTimes >= 0 {
		n := int(*rec.NTimes)
		in.NTimes = &n
	}

	if rec.BaselineMin != nil && rec.BaselineMax != nil {
		in.Baseline = &acqsummary.Window{Min: *rec.BaselineMin, Max: *rec.BaselineMax}
	}

	if rec.MetaRows != nil && rec.MetaCols != nil {
		in.Metadata = &acqsummary.Metadata{NumRows: int(*rec.MetaRows), NumColumns: int(*rec.MetaCols)}
	}

	info := &acqsummary.Info{SFreq: rec.SFreq}

	// Continuous recordings show a wall-clock duration; segmented kinds
	// already expose their extent through the time range.
	var duration string
	if rec.Kind == db.RecordingKindRaw && in.NTimes != nil && rec.SFreq != nil {
		duration = format.Clock(format.RecordingSeconds(*in.NTimes, rec.SFreq))
	}

	return acqsummary.Rows(in, info, duration, rec.EventCounts.Lines())
}
