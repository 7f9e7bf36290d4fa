package recording_api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordingsListParams_Validate(t *testing.T) {
	p := DefaultRecordingsListParams()
	p.Page = -3
	p.PageSize = 1000
	p.Kind = "spectrogram"
	p.Query = "  auditory  "
	p.Validate()

	require.Equal(t, 1, p.Page)
	require.Equal(t, 24, p.PageSize)
	require.Equal(t, "", p.Kind)
	require.Equal(t, "auditory", p.Query)
}

func TestRecordingsListParams_Offset(t *testing.T) {
	p := DefaultRecordingsListParams()
	p.Page = 3
	p.PageSize = 12
	p.Validate()
	require.Equal(t, int32(24), p.Offset())
}

func TestCreateRecordingRequest_Check(t *testing.T) {
	tmin := -0.2
	tmax := 0.5
	base := createRecordingRequest{
		Kind:     "epochs",
		Title:    "Auditory oddball",
		Filename: "sub01-epo.fif",
		TMin:     &tmin,
		TMax:     &tmax,
	}

	t.Run("valid", func(t *testing.T) {
		req := base
		require.Empty(t, req.check())
	})

	t.Run("unknown kind", func(t *testing.T) {
		req := base
		req.Kind = "spectrum"
		require.NotEmpty(t, req.check())
	})

	t.Run("half a baseline", func(t *testing.T) {
		req := base
		min := -0.2
		req.BaselineMin = &min
		require.NotEmpty(t, req.check())
	})

	t.Run("inverted time range", func(t *testing.T) {
		req := base
		lo, hi := 0.5, -0.2
		req.TMin = &lo
		req.TMax = &hi
		require.NotEmpty(t, req.check())
	})

	t.Run("agg kind on non-evoked", func(t *testing.T) {
		req := base
		agg := "average"
		req.AggKind = &agg
		require.NotEmpty(t, req.check())
	})
}
