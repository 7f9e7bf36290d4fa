// package recording_api provides recording-related API handlers.
package recording_api

import (
	"strings"
)

// RecordingsListParams holds validated query/signal parameters for the
// recordings index.
type RecordingsListParams struct {
	Query    string
	Kind     string
	Page     int
	PageSize int
}

// DefaultRecordingsListParams returns params with sensible defaults.
func DefaultRecordingsListParams() RecordingsListParams {
	return RecordingsListParams{
		Query:    "",
		Kind:     "",
		Page:     1,
		PageSize: 24,
	}
}

// Validate clamps and validates the parameters.
func (p *RecordingsListParams) Validate() {
	p.Query = strings.TrimSpace(p.Query)
	if p.Page < 1 {
		p.Page = 1
	}
	validSizes := map[int]bool{12: true, 24: true, 48: true}
	if !validSizes[p.PageSize] {
		p.PageSize = 24
	}
	validKinds := map[string]bool{"": true, "raw": true, "epochs": true, "evoked": true}
	if !validKinds[p.Kind] {
		p.Kind = ""
	}
}

// Offset calculates the database offset.
func (p *RecordingsListParams) Offset() int32 {
	return int32((p.Page - 1) * p.PageSize)
}

// nullableString returns a pointer to s if non-empty, else nil.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
