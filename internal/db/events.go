package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// EventMarker is a single trigger event inside a recording: the sample index
// it occurred at and its numeric code.
type EventMarker struct {
	Sample int32
	Code   int32
}

// InsertRecordingEvents bulk-inserts event markers for a recording.
func (q *Queries) InsertRecordingEvents(ctx context.Context, recordingID pgtype.UUID, events []EventMarker) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(events))
	for _, e := range events {
		rows = append(rows, []any{recordingID, e.Sample, e.Code})
	}

	_, err := q.db.CopyFrom(ctx, pgx.Identifier{"recording_events"}, []string{"recording_id", "sample", "code"}, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy recording events: %w", err)
	}
	return nil
}

// GetRecordingEvents returns the event markers of a recording in sample order.
func (q *Queries) GetRecordingEvents(ctx context.Context, recordingID pgtype.UUID) ([]EventMarker, error) {
	rows, err := q.db.Query(ctx,
		`SELECT sample, code FROM recording_events WHERE recording_id = $1 ORDER BY sample`, recordingID)
	if err != nil {
		return nil, fmt.Errorf("get recording events: %w", err)
	}
	defer rows.Close()

	var out []EventMarker
	for rows.Next() {
		var e EventMarker
		if err := rows.Scan(&e.Sample, &e.Code); err != nil {
			return nil, fmt.Errorf("scan event marker: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
