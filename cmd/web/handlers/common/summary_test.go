package common

import (
	"testing"

	"github.com/stretchr/testify/require"
	"parietal.systems/acqview/internal/db"
	"parietal.systems/acqview/pkg/acqsummary"
)

func f64(v float64) *float64 { return &v }
func i32(v int32) *int32     { return &v }

func labels(rows []acqsummary.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Label
	}
	return out
}

func TestSummaryRows_Raw(t *testing.T) {
	rec := &db.Recording{
		Kind:   db.RecordingKindRaw,
		SFreq:  f64(600.0),
		NTimes: i32(36000),
	}

	rows := SummaryRows(rec, nil)

	require.Equal(t, []string{"Duration", "Sampling frequency", "Time points"}, labels(rows))
	require.Equal(t, "00:01:00 (HH:MM:SS)", rows[0].Value)
	require.Equal(t, "600.00 Hz", rows[1].Value)
	require.Equal(t, "36,000", rows[2].Value)
}

func TestSummaryRows_Epochs(t *testing.T) {
	rec := &db.Recording{
		Kind:        db.RecordingKindEpochs,
		TMin:        f64(-0.2),
		TMax:        f64(0.5),
		SFreq:       f64(256.0),
		BaselineMin: f64(-0.2),
		BaselineMax: f64(0.0),
		MetaRows:    i32(120),
		MetaCols:    i32(3),
		EventCounts: db.CountMap{"auditory": 80, "visual": 40},
	}
	events := []db.EventMarker{{Sample: 10, Code: 1}, {Sample: 20, Code: 2}}

	rows := SummaryRows(rec, events)

	require.Equal(t, []string{
		"Total events", "Event counts", "Time range", "Baseline",
		"Sampling frequency", "Metadata",
	}, labels(rows))
	require.Equal(t, "2", rows[0].Value)
	require.Equal(t, "auditory: 80\nvisual: 40", rows[1].Value)
	require.Equal(t, "120 rows × 3 columns", rows[5].Value)
}

func TestSummaryRows_EpochsWithoutMarkers(t *testing.T) {
	rec := &db.Recording{Kind: db.RecordingKindEpochs}

	rows := SummaryRows(rec, nil)

	// Epochs always carry an events attribute, even when empty.
	require.Equal(t, []string{"Total events"}, labels(rows))
	require.Equal(t, "0", rows[0].Value)
}

func TestSummaryRows_Evoked(t *testing.T) {
	agg := "average"
	comment := "auditory/left"
	rec := &db.Recording{
		Kind:    db.RecordingKindEvoked,
		AggKind: &agg,
		Nave:    i32(42),
		Comment: &comment,
		TMin:    f64(-0.1),
		TMax:    f64(0.4),
	}

	rows := SummaryRows(rec, nil)

	require.Equal(t, []string{"Aggregation", "Condition", "Time range"}, labels(rows))
	require.Equal(t, "average of 42 epochs", rows[0].Value)
	require.Equal(t, "auditory/left", rows[1].Value)
}

func TestSummaryRows_LargeRawRecording(t *testing.T) {
	rec := &db.Recording{
		Kind:   db.RecordingKindRaw,
		SFreq:  f64(1000.0),
		NTimes: i32(50_000_000),
	}

	var rows []acqsummary.Row
	allocs := testing.AllocsPerRun(10, func() {
		rows = SummaryRows(rec, nil)
	})

	require.Equal(t, []string{"Duration", "Sampling frequency", "Time points"}, labels(rows))
	require.Equal(t, "13:53:20 (HH:MM:SS)", rows[0].Value)
	require.Equal(t, "50,000,000", rows[2].Value)
	// Only the count crosses the boundary; the time vector is never built.
	require.Less(t, allocs, 100.0)
}

func TestSummaryRows_NegativeSampleCount(t *testing.T) {
	// The schema rejects negative counts, but a bad row must render rather
	// than take the page down.
	rec := &db.Recording{
		Kind:   db.RecordingKindRaw,
		SFreq:  f64(100.0),
		NTimes: i32(-1),
	}

	rows := SummaryRows(rec, nil)

	require.NotContains(t, labels(rows), "Time points")
	require.NotContains(t, labels(rows), "Duration")
	require.Equal(t, []string{"Sampling frequency"}, labels(rows))
}

func TestSummaryRows_NoDurationForEvoked(t *testing.T) {
	rec := &db.Recording{
		Kind:   db.RecordingKindEvoked,
		SFreq:  f64(100.0),
		NTimes: i32(50),
	}

	rows := SummaryRows(rec, nil)
	require.NotContains(t, labels(rows), "Duration")
	require.Contains(t, labels(rows), "Time points")
}
