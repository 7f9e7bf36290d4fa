package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"parietal.systems/acqview/pkg/utils/markdown"
)

type RecordingKind string

const (
	RecordingKindRaw    RecordingKind = "raw"
	RecordingKindEpochs RecordingKind = "epochs"
	RecordingKindEvoked RecordingKind = "evoked"
)

// Recording is one registered acquisition. Nullable columns map to pointers:
// different recording kinds genuinely carry different subsets of these fields,
// and the summary renderer keys row presence on exactly that.
type Recording struct {
	ID          pgtype.UUID
	Kind        RecordingKind
	AggKind     *string // evoked only: how the signal was aggregated
	Title       string
	Filename    string
	SubjectCode string // encrypted at rest; decrypt via the encryption manager
	Comment     *string
	Nave        *int32
	TMin        *float64
	TMax        *float64
	SFreq       *float64
	NTimes      *int32
	FirstSamp   *int64
	BaselineMin *float64
	BaselineMax *float64
	MetaRows    *int32
	MetaCols    *int32
	EventCounts CountMap
	Notes       markdown.Markdown
	UploadedBy  pgtype.UUID
	CreatedAt   pgtype.Timestamptz
}

const recordingColumns = `id, kind, agg_kind, title, filename, subject_code, comment, nave,
	tmin, tmax, sfreq, n_times, first_samp, baseline_min, baseline_max,
	meta_rows, meta_cols, event_counts, notes, uploaded_by, created_at`

func scanRecording(row interface{ Scan(dest ...any) error }) (*Recording, error) {
	var r Recording
	err := row.Scan(
		&r.ID, &r.Kind, &r.AggKind, &r.Title, &r.Filename, &r.SubjectCode, &r.Comment, &r.Nave,
		&r.TMin, &r.TMax, &r.SFreq, &r.NTimes, &r.FirstSamp, &r.BaselineMin, &r.BaselineMax,
		&r.MetaRows, &r.MetaCols, &r.EventCounts, &r.Notes, &r.UploadedBy, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// InsertRecordingParams carries the fields of a new recording. ID is
// generated here.
type InsertRecordingParams struct {
	Kind        RecordingKind
	AggKind     *string
	Title       string
	Filename    string
	SubjectCode string // already encrypted
	Comment     *string
	Nave        *int32
	TMin        *float64
	TMax        *float64
	SFreq       *float64
	NTimes      *int32
	FirstSamp   *int64
	BaselineMin *float64
	BaselineMax *float64
	MetaRows    *int32
	MetaCols    *int32
	EventCounts CountMap
	Notes       string
	UploadedBy  pgtype.UUID
}

// InsertRecording creates a new recording row and returns it.
func (q *Queries) InsertRecording(ctx context.Context, params *InsertRecordingParams) (*Recording, error) {
	id := pgtype.UUID{Bytes: uuid.New(), Valid: true}

	row := q.db.QueryRow(ctx, `
		INSERT INTO recordings (
			id, kind, agg_kind, title, filename, subject_code, comment, nave,
			tmin, tmax, sfreq, n_times, first_samp, baseline_min, baseline_max,
			meta_rows, meta_cols, event_counts, notes, uploaded_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING `+recordingColumns,
		id, params.Kind, params.AggKind, params.Title, params.Filename, params.SubjectCode, params.Comment, params.Nave,
		params.TMin, params.TMax, params.SFreq, params.NTimes, params.FirstSamp, params.BaselineMin, params.BaselineMax,
		params.MetaRows, params.MetaCols, params.EventCounts, params.Notes, params.UploadedBy,
	)
	rec, err := scanRecording(row)
	if err != nil {
		return nil, fmt.Errorf("insert recording: %w", err)
	}
	return rec, nil
}

// GetRecordingByID fetches a recording by its UUID.
func (q *Queries) GetRecordingByID(ctx context.Context, id pgtype.UUID) (*Recording, error) {
	row := q.db.QueryRow(ctx, `SELECT `+recordingColumns+` FROM recordings WHERE id = $1`, id)
	return scanRecording(row)
}

// DeleteRecording removes a recording. Event markers cascade.
func (q *Queries) DeleteRecording(ctx context.Context, id pgtype.UUID) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM recordings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recording: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateRecordingNotes replaces the markdown notes for a recording.
func (q *Queries) UpdateRecordingNotes(ctx context.Context, id pgtype.UUID, notes string) error {
	tag, err := q.db.Exec(ctx, `UPDATE recordings SET notes = $2 WHERE id = $1`, id, notes)
	if err != nil {
		return fmt.Errorf("update recording notes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListRecentRecordings returns the most recently added recordings for the
// home page, newest first.
func (q *Queries) ListRecentRecordings(ctx context.Context, limit int32) ([]*ListRecordingsRow, error) {
	rows, err := q.db.Query(ctx, `
		SELECT r.id, r.kind, r.title, r.filename, r.comment, r.sfreq, r.n_times,
			(SELECT count(*) FROM recording_events e WHERE e.recording_id = r.id) AS num_events,
			r.notes,
			r.created_at,
			count(*) OVER () AS total_count
		FROM recordings r
		ORDER BY r.created_at DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list recent recordings: %w", err)
	}
	defer rows.Close()

	var out []*ListRecordingsRow
	for rows.Next() {
		var r ListRecordingsRow
		if err := rows.Scan(&r.ID, &r.Kind, &r.Title, &r.Filename, &r.Comment, &r.SFreq, &r.NTimes, &r.NumEvents, &r.Notes, &r.CreatedAt, &r.TotalCount); err != nil {
			return nil, fmt.Errorf("scan recording row: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

// ListRecordingsParams filters and paginates the recordings index.
type ListRecordingsParams struct {
	Query      *string // matches title or filename, case-insensitive
	Kind       *string
	PageOffset int32
	PageLimit  int32
}

// ListRecordingsRow is one line of the paginated recordings index.
type ListRecordingsRow struct {
	ID         pgtype.UUID
	Kind       RecordingKind
	Title      string
	Filename   string
	Comment    *string
	SFreq      *float64
	NTimes     *int32
	NumEvents  int64
	Notes      markdown.Markdown
	CreatedAt  pgtype.Timestamptz
	TotalCount int64
}

// ListRecordingsPaginated returns one page of recordings, newest first, with
// the total match count repeated on every row.
func (q *Queries) ListRecordingsPaginated(ctx context.Context, params *ListRecordingsParams) ([]*ListRecordingsRow, error) {
	rows, err := q.db.Query(ctx, `
		SELECT r.id, r.kind, r.title, r.filename, r.comment, r.sfreq, r.n_times,
			(SELECT count(*) FROM recording_events e WHERE e.recording_id = r.id) AS num_events,
			r.notes,
			r.created_at,
			count(*) OVER () AS total_count
		FROM recordings r
		WHERE ($1::text IS NULL OR r.title ILIKE '%' || $1 || '%' OR r.filename ILIKE '%' || $1 || '%')
		  AND ($2::text IS NULL OR r.kind = $2)
		ORDER BY r.created_at DESC
		OFFSET $3 LIMIT $4`,
		params.Query, params.Kind, params.PageOffset, params.PageLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	defer rows.Close()

	var out []*ListRecordingsRow
	for rows.Next() {
		var r ListRecordingsRow
		if err := rows.Scan(&r.ID, &r.Kind, &r.Title, &r.Filename, &r.Comment, &r.SFreq, &r.NTimes, &r.NumEvents, &r.Notes, &r.CreatedAt, &r.TotalCount); err != nil {
			return nil, fmt.Errorf("scan recording row: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}
