package db

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func TestCountMap_ScanAndValue(t *testing.T) {
	var m CountMap
	require.NoError(t, m.Scan([]byte(`{"auditory/left": 72, "visual": 3}`)))
	require.Equal(t, CountMap{"auditory/left": 72, "visual": 3}, m)

	require.NoError(t, m.Scan(nil))
	require.Nil(t, m)

	v, err := CountMap(nil).Value()
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = CountMap{"x": 1}.Value()
	require.NoError(t, err)
	require.JSONEq(t, `{"x":1}`, string(v.([]byte)))

	require.Error(t, m.Scan(42))
}

func TestCountMap_ScanText(t *testing.T) {
	var m CountMap
	require.NoError(t, m.ScanText(pgtype.Text{Valid: false}))
	require.Nil(t, m)

	require.NoError(t, m.ScanText(pgtype.Text{String: `{"a": 2}`, Valid: true}))
	require.Equal(t, CountMap{"a": 2}, m)
}

func TestCountMap_Lines(t *testing.T) {
	require.Nil(t, CountMap(nil).Lines())
	require.Equal(t, []string{}, CountMap{}.Lines())
	require.Equal(t,
		[]string{"auditory/left: 72", "button: 12", "visual: 3"},
		CountMap{"visual": 3, "auditory/left": 72, "button": 12}.Lines(),
	)
}
