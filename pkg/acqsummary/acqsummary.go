// package acqsummary builds the label/value rows for the acquisition summary
// section of a recording detail page. Different recording variants (raw,
// epochs, evoked) expose different subsets of acquisition attributes, so every
// field is optional and a row is emitted only when its backing field is set.
package acqsummary

import "strings"

// Event is a single event marker: the sample index it occurred at and its
// numeric trigger code. Only the number of events matters for the summary.
type Event struct {
	Sample int
	Code   int
}

// Window is a closed time interval in seconds, e.g. a baseline period.
type Window struct {
	Min float64
	Max float64
}

// Metadata summarizes the per-epoch metadata side-table. Only its shape is
// displayed, never its contents.
type Metadata struct {
	NumRows    int
	NumColumns int
}

// Recording carries the optional acquisition attributes of a recording.
// Nil means the attribute does not exist on this recording variant, which is
// distinct from a zero value.
type Recording struct {
	// Kind and Nave describe how an aggregated signal was produced. Both must
	// be set for the aggregation row to appear.
	Kind string
	Nave *int

	// Comment is the condition label of an aggregated recording.
	Comment *string

	// Events are the raw event markers. Only their count is displayed.
	Events []Event

	// NTimes is the length of the sample time vector. Nil means the
	// recording carries no time vector; the count is never materialized as a
	// slice since only the number is displayed.
	NTimes *int

	// TMin and TMax bound the recording in seconds. Both must be set for the
	// time range row to appear.
	TMin *float64
	TMax *float64

	// Baseline is the normalization window, when one was applied.
	Baseline *Window

	// Metadata is the epoch metadata table shape, when one is attached.
	Metadata *Metadata
}

// Info is the measurement info mapping. SFreq is nil when the key is missing
// or explicitly null.
type Info struct {
	SFreq *float64
}

// Row is one display line of the summary table. Rows render top to bottom in
// the order they are returned.
type Row struct {
	Label string
	Value string
}

// Aggregation kinds recognized by the summary. Anything else falls back to a
// generic "{kind} (N epochs)" rendering.
const (
	KindAverage       = "average"
	KindStandardError = "standard_error"
)

// Rows maps a recording and its info onto the ordered summary rows.
//
// duration is an optional preformatted duration string; empty means not
// supplied. eventCounts is an optional list of preformatted per-type count
// lines; nil means not supplied, while a non-nil empty slice is supplied and
// renders as an empty row.
//
// The result is built fresh on every call and never fails: an absent field
// suppresses its row.
func Rows(rec *Recording, info *Info, duration string, eventCounts []string) []Row {
	rows := make([]Row, 0, 10)

	if duration != "" {
		rows = append(rows, Row{"Duration", duration + " (HH:MM:SS)"})
	}

	if rec.Kind != "" && rec.Nave != nil {
		rows = append(rows, Row{"Aggregation", formatAggregation(rec.Kind, *rec.Nave)})
	}

	if rec.Comment != nil {
		rows = append(rows, Row{"Condition", *rec.Comment})
	}

	if rec.Events != nil {
		rows = append(rows, Row{"Total events", FormatCount(len(rec.Events))})
	}

	if eventCounts != nil {
		// Presence is driven by the eventCounts argument, but the fallback
		// is keyed to the raw Events field, not the counts themselves.
		value := strings.Join(eventCounts, "\n")
		if rec.Events == nil {
			value = "Not available"
		}
		rows = append(rows, Row{"Event counts", value})
	}

	if rec.TMin != nil && rec.TMax != nil {
		rows = append(rows, Row{"Time range", FormatTimeRange(*rec.TMin, *rec.TMax)})
	}

	if rec.Baseline != nil {
		rows = append(rows, Row{"Baseline", FormatBaseline(*rec.Baseline)})
	}

	if info != nil && info.SFreq != nil {
		rows = append(rows, Row{"Sampling frequency", FormatSamplingFrequency(*info.SFreq)})
	}

	if rec.NTimes != nil {
		rows = append(rows, Row{"Time points", FormatCount(*rec.NTimes)})
	}

	if rec.Metadata != nil {
		rows = append(rows, Row{"Metadata", FormatMetadata(*rec.Metadata)})
	}

	return rows
}
