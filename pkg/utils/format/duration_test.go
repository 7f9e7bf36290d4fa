package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClock(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{59.9, "00:00:59"},
		{61, "00:01:01"},
		{3723, "01:02:03"},
		{-5, "00:00:00"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Clock(tc.seconds))
	}
}

func TestDuration(t *testing.T) {
	require.Equal(t, "0:00", Duration(-1))
	require.Equal(t, "4:12", Duration(252))
	require.Equal(t, "1:02:03", Duration(3723))
}

func TestRecordingSeconds(t *testing.T) {
	sfreq := 600.0
	require.Equal(t, 256.0, RecordingSeconds(153600, &sfreq))
	require.Equal(t, 0.0, RecordingSeconds(0, &sfreq))
	require.Equal(t, 0.0, RecordingSeconds(100, nil))

	zero := 0.0
	require.Equal(t, 0.0, RecordingSeconds(100, &zero))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 10))
	require.Equal(t, "a long ...", Truncate("a long comment string", 10))
}
