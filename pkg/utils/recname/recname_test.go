package recname

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConventional(t *testing.T) {
	cases := []struct {
		name string
		kind string
		want bool
	}{
		{"sub-01_task-rest_raw.fif", KindRaw, true},
		{"sub-01_raw_sss.fif", KindRaw, true},
		{"sub-01_raw_tsss.fif.gz", KindRaw, true},
		{"sub-01_meg.fif", KindRaw, true},
		{"SUB-01_RAW.FIF", KindRaw, true},
		{"sub-01.fif", KindRaw, false},
		{"sub-01-epo.fif", KindEpochs, true},
		{"sub-01_epo.fif.gz", KindEpochs, true},
		{"sub-01_raw.fif", KindEpochs, false},
		{"sub-01-ave.fif", KindEvoked, true},
		{"sub-01_ave.fif", KindEvoked, true},
		{"sub-01-ave.fif", "unknown", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Conventional(tc.name, tc.kind), "%s / %s", tc.name, tc.kind)
	}
}

func TestKnownKind(t *testing.T) {
	require.True(t, KnownKind(KindRaw))
	require.True(t, KnownKind(KindEpochs))
	require.True(t, KnownKind(KindEvoked))
	require.False(t, KnownKind("covariance"))
}
