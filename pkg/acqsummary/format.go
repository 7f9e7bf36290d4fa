package acqsummary

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// FormatCount renders an element count with thousands grouping, e.g. 153600
// becomes "153,600".
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// FormatTimeRange renders the recording time bounds in seconds.
func FormatTimeRange(tmin, tmax float64) string {
	return fmt.Sprintf("%.3f – %.3f s", tmin, tmax)
}

// FormatBaseline renders a baseline normalization window.
func FormatBaseline(w Window) string {
	return fmt.Sprintf("%.3f – %.3f s", w.Min, w.Max)
}

// FormatSamplingFrequency renders a sampling rate with two decimal places.
func FormatSamplingFrequency(sfreq float64) string {
	return fmt.Sprintf("%.2f Hz", sfreq)
}

// FormatMetadata renders the shape of the epoch metadata table.
func FormatMetadata(m Metadata) string {
	return fmt.Sprintf("%d rows × %d columns", m.NumRows, m.NumColumns)
}

func formatAggregation(kind string, nave int) string {
	switch kind {
	case KindAverage:
		return fmt.Sprintf("average of %d epochs", nave)
	case KindStandardError:
		return fmt.Sprintf("standard error of %d epochs", nave)
	default:
		return fmt.Sprintf("%s (%d epochs)", kind, nave)
	}
}
