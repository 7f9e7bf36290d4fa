// Package recname checks recording filenames against the community naming
// conventions for acquisition files. Unconventional names are legal but worth
// a warning at import time, since downstream tooling keys on the suffixes.
package recname

import "strings"

// Recording kinds understood by the importer.
const (
	KindRaw    = "raw"
	KindEpochs = "epochs"
	KindEvoked = "evoked"
)

var conventionalSuffixes = map[string][]string{
	KindRaw:    {"raw.fif", "raw_sss.fif", "raw_tsss.fif", "_meg.fif", "_eeg.fif", "_ieeg.fif"},
	KindEpochs: {"-epo.fif", "_epo.fif"},
	KindEvoked: {"-ave.fif", "_ave.fif"},
}

// Conventional reports whether name carries a recognized suffix for the given
// recording kind. An optional trailing ".gz" is allowed. Unknown kinds are
// never conventional.
func Conventional(name, kind string) bool {
	suffixes, ok := conventionalSuffixes[kind]
	if !ok {
		return false
	}

	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, ".gz")

	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// KnownKind reports whether kind is one of the recording kinds the importer
// accepts.
func KnownKind(kind string) bool {
	_, ok := conventionalSuffixes[kind]
	return ok
}
