package format

import "fmt"

// Clock converts seconds to zero-padded "HH:MM:SS" display format, the shape
// expected by the acquisition summary's duration row.
func Clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// Duration converts seconds to compact "M:SS" or "H:MM:SS" display format for
// list views.
func Duration(seconds float64) string {
	if seconds < 0 {
		return "0:00"
	}
	s := int(seconds)
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

// RecordingSeconds derives a recording's length from its time-point count and
// sampling frequency. Returns 0 when either is unknown.
func RecordingSeconds(nTimes int, sfreq *float64) float64 {
	if nTimes <= 0 || sfreq == nil || *sfreq <= 0 {
		return 0
	}
	return float64(nTimes) / *sfreq
}
