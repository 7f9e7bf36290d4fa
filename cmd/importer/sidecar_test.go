package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSidecar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recording.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSidecar_Raw(t *testing.T) {
	path := writeSidecar(t, `{
		"kind": "raw",
		"title": "Resting state, session 2",
		"filename": "sub04_raw.fif",
		"subject_code": "S04",
		"sfreq": 600.614990234375,
		"n_times": 166800,
		"first_samp": 25800
	}`)

	sc, err := LoadSidecar(path)
	require.NoError(t, err)
	require.Equal(t, "raw", sc.Kind)
	require.Equal(t, "S04", sc.SubjectCode)
	require.NotNil(t, sc.SFreq)
	require.Nil(t, sc.Nave)
	require.Nil(t, sc.EventCounts)
	require.NotNil(t, sc.FirstSamp)
	require.EqualValues(t, 25800, *sc.FirstSamp)
}

func TestLoadSidecar_EpochsKeepsEmptyCounts(t *testing.T) {
	path := writeSidecar(t, `{
		"kind": "epochs",
		"title": "Oddball epochs",
		"filename": "sub04-epo.fif",
		"tmin": -0.2,
		"tmax": 0.5,
		"event_counts": {},
		"events": [{"sample": 100, "code": 1}, {"sample": 350, "code": 2}]
	}`)

	sc, err := LoadSidecar(path)
	require.NoError(t, err)
	// Supplied-but-empty counts are distinct from absent counts.
	require.NotNil(t, sc.EventCounts)
	require.Empty(t, sc.EventCounts)
	require.Len(t, sc.Events, 2)
}

func TestLoadSidecar_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown kind":        `{"kind": "spectrum", "title": "x", "filename": "x.fif"}`,
		"missing title":       `{"kind": "raw", "filename": "x_raw.fif"}`,
		"half baseline":       `{"kind": "epochs", "title": "x", "filename": "x-epo.fif", "baseline_min": -0.2}`,
		"inverted time range": `{"kind": "epochs", "title": "x", "filename": "x-epo.fif", "tmin": 0.5, "tmax": -0.2}`,
		"agg kind on raw":     `{"kind": "raw", "title": "x", "filename": "x_raw.fif", "agg_kind": "average"}`,
		"not json":            `kind: raw`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSidecar(writeSidecar(t, content))
			require.Error(t, err)
		})
	}
}
