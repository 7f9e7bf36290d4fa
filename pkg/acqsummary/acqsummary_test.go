package acqsummary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int         { return &n }
func f64Ptr(f float64) *float64 { return &f }
func strPtr(s string) *string   { return &s }

func labels(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Label)
	}
	return out
}

func TestRows_EmptyRecording(t *testing.T) {
	rows := Rows(&Recording{}, &Info{}, "", nil)
	require.Empty(t, rows)
}

func TestRows_FullRecordingOrder(t *testing.T) {
	rec := &Recording{
		Kind:     KindAverage,
		Nave:     intPtr(42),
		Comment:  strPtr("auditory/left"),
		Events:   []Event{{Sample: 100, Code: 1}, {Sample: 220, Code: 2}},
		NTimes:   intPtr(3),
		TMin:     f64Ptr(-0.2),
		TMax:     f64Ptr(0.5),
		Baseline: &Window{Min: -0.2, Max: 0},
		Metadata: &Metadata{NumRows: 42, NumColumns: 3},
	}
	info := &Info{SFreq: f64Ptr(600.614990234375)}

	rows := Rows(rec, info, "00:04:12", []string{"1: 1", "2: 1"})

	require.Equal(t, []string{
		"Duration",
		"Aggregation",
		"Condition",
		"Total events",
		"Event counts",
		"Time range",
		"Baseline",
		"Sampling frequency",
		"Time points",
		"Metadata",
	}, labels(rows))
}

func TestRows_Duration(t *testing.T) {
	rows := Rows(&Recording{}, &Info{}, "01:02:03", nil)
	require.Len(t, rows, 1)
	require.Equal(t, Row{"Duration", "01:02:03 (HH:MM:SS)"}, rows[0])
}

func TestRows_Aggregation(t *testing.T) {
	cases := []struct {
		name string
		kind string
		nave int
		want string
	}{
		{"average", KindAverage, 42, "average of 42 epochs"},
		{"standard error", KindStandardError, 7, "standard error of 7 epochs"},
		{"unrecognized kind falls back", "custom", 3, "custom (3 epochs)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := Rows(&Recording{Kind: tc.kind, Nave: intPtr(tc.nave)}, &Info{}, "", nil)
			require.Len(t, rows, 1)
			require.Equal(t, Row{"Aggregation", tc.want}, rows[0])
		})
	}
}

func TestRows_AggregationNeedsBothFields(t *testing.T) {
	rows := Rows(&Recording{Kind: KindAverage}, &Info{}, "", nil)
	require.Empty(t, rows)

	rows = Rows(&Recording{Nave: intPtr(5)}, &Info{}, "", nil)
	require.Empty(t, rows)
}

func TestRows_EventCountsSuppliedEmpty(t *testing.T) {
	rec := &Recording{Events: []Event{{0, 1}, {10, 2}, {20, 3}}}

	rows := Rows(rec, &Info{}, "", []string{})

	require.Equal(t, []string{"Total events", "Event counts"}, labels(rows))
	require.Equal(t, "3", rows[0].Value)
	// Supplied-but-empty renders empty content, not the fallback, because the
	// raw Events field is present.
	require.Equal(t, "", rows[1].Value)
}

func TestRows_EventCountsFallbackKeyedToEvents(t *testing.T) {
	// Events absent: the row still appears (eventCounts was supplied) but the
	// content degrades, even though eventCounts itself has lines.
	rows := Rows(&Recording{}, &Info{}, "", []string{"1: 12"})
	require.Len(t, rows, 1)
	require.Equal(t, Row{"Event counts", "Not available"}, rows[0])
}

func TestRows_EventCountsNotSupplied(t *testing.T) {
	rec := &Recording{Events: []Event{{0, 1}}}
	rows := Rows(rec, &Info{}, "", nil)
	require.Equal(t, []string{"Total events"}, labels(rows))
}

func TestRows_EventCountsMultiline(t *testing.T) {
	rec := &Recording{Events: []Event{{0, 1}, {5, 2}}}
	rows := Rows(rec, &Info{}, "", []string{"auditory: 1", "visual: 1"})
	require.Equal(t, "auditory: 1\nvisual: 1", rows[1].Value)
}

func TestRows_SamplingFrequency(t *testing.T) {
	rows := Rows(&Recording{}, &Info{SFreq: f64Ptr(256.0)}, "", nil)
	require.Len(t, rows, 1)
	require.Equal(t, Row{"Sampling frequency", "256.00 Hz"}, rows[0])
}

func TestRows_SamplingFrequencyAbsent(t *testing.T) {
	rows := Rows(&Recording{}, &Info{}, "", nil)
	require.Empty(t, rows)

	rows = Rows(&Recording{}, nil, "", nil)
	require.Empty(t, rows)
}

func TestRows_TimeRangeNeedsBothBounds(t *testing.T) {
	rows := Rows(&Recording{TMin: f64Ptr(0)}, &Info{}, "", nil)
	require.Empty(t, rows)

	rows = Rows(&Recording{TMin: f64Ptr(-0.2), TMax: f64Ptr(0.5)}, &Info{}, "", nil)
	require.Len(t, rows, 1)
	require.Equal(t, Row{"Time range", "-0.200 – 0.500 s"}, rows[0])
}

func TestRows_Baseline(t *testing.T) {
	rows := Rows(&Recording{Baseline: &Window{Min: -0.2, Max: 0}}, &Info{}, "", nil)
	require.Len(t, rows, 1)
	require.Equal(t, Row{"Baseline", "-0.200 – 0.000 s"}, rows[0])
}

func TestRows_TimePointsGrouping(t *testing.T) {
	rows := Rows(&Recording{NTimes: intPtr(153600)}, &Info{}, "", nil)
	require.Len(t, rows, 1)
	require.Equal(t, Row{"Time points", "153,600"}, rows[0])
}

func TestRows_Metadata(t *testing.T) {
	rows := Rows(&Recording{Metadata: &Metadata{NumRows: 320, NumColumns: 5}}, &Info{}, "", nil)
	require.Len(t, rows, 1)
	require.Equal(t, Row{"Metadata", "320 rows × 5 columns"}, rows[0])
}

func TestRows_UniqueLabels(t *testing.T) {
	rec := &Recording{
		Kind:     KindAverage,
		Nave:     intPtr(1),
		Comment:  strPtr("x"),
		Events:   []Event{},
		NTimes:   intPtr(0),
		TMin:     f64Ptr(0),
		TMax:     f64Ptr(1),
		Baseline: &Window{},
		Metadata: &Metadata{},
	}
	rows := Rows(rec, &Info{SFreq: f64Ptr(1000)}, "00:00:01", []string{})

	seen := map[string]bool{}
	for _, r := range rows {
		require.False(t, seen[r.Label], "duplicate label %q", r.Label)
		seen[r.Label] = true
	}
}

func TestRows_Idempotent(t *testing.T) {
	rec := &Recording{
		Kind:   KindStandardError,
		Nave:   intPtr(7),
		Events: []Event{{0, 1}},
		NTimes: intPtr(100),
	}
	info := &Info{SFreq: f64Ptr(100)}

	first := Rows(rec, info, "00:00:01", []string{"1: 1"})
	second := Rows(rec, info, "00:00:01", []string{"1: 1"})
	require.Equal(t, first, second)
}
