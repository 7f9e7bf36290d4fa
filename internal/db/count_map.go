package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgtype"
)

// CountMap stores per-event-type counts in a JSONB column, keyed by the
// event type label (e.g. "auditory/left"). A NULL column scans to a nil map,
// which is how "no event counts recorded" is represented.
type CountMap map[string]int

// Scan implements sql.Scanner for reading from the database.
func (m *CountMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("db.CountMap.Scan: expected []byte or string, got %T", value)
	}
}

// Value implements driver.Valuer for writing to the database.
func (m CountMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(map[string]int(m))
}

// ScanText implements the pgtype.TextScanner interface for pgx v5.
func (m *CountMap) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*m = nil
		return nil
	}
	return json.Unmarshal([]byte(v.String), m)
}

// TextValue implements the pgtype.TextValuer interface for pgx v5.
func (m CountMap) TextValue() (pgtype.Text, error) {
	if m == nil {
		return pgtype.Text{}, nil
	}
	b, err := json.Marshal(map[string]int(m))
	if err != nil {
		return pgtype.Text{}, err
	}
	return pgtype.Text{String: string(b), Valid: true}, nil
}

// Lines renders the counts as "label: count" display lines in stable label
// order. A nil map yields nil; an empty map yields an empty slice, keeping
// the supplied/not-supplied distinction intact for the summary renderer.
func (m CountMap) Lines() []string {
	if m == nil {
		return nil
	}

	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	lines := make([]string, 0, len(labels))
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf("%s: %d", label, m[label]))
	}
	return lines
}
