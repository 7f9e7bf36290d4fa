package recording_api

import (
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/handlers/common"
	"parietal.systems/acqview/internal/db"
	"parietal.systems/acqview/pkg/encryption"
	"parietal.systems/acqview/pkg/utils/recname"
)

var validate = validator.New()

type eventInput struct {
	Sample int32 `json:"sample"`
	Code   int32 `json:"code"`
}

type createRecordingRequest struct {
	Kind        string   `json:"kind" validate:"required,oneof=raw epochs evoked"`
	AggKind     *string  `json:"agg_kind"`
	Title       string   `json:"title" validate:"required,max=200"`
	Filename    string   `json:"filename" validate:"required,max=255"`
	SubjectCode string   `json:"subject_code" validate:"max=64"`
	Comment     *string  `json:"comment"`
	Nave        *int32   `json:"nave" validate:"omitempty,min=1"`
	TMin        *float64 `json:"tmin"`
	TMax        *float64 `json:"tmax"`
	SFreq       *float64 `json:"sfreq" validate:"omitempty,gt=0"`
	NTimes      *int32   `json:"n_times" validate:"omitempty,min=0"`
	FirstSamp   *int64   `json:"first_samp"`
	BaselineMin *float64 `json:"baseline_min"`
	BaselineMax *float64 `json:"baseline_max"`
	MetaRows    *int32   `json:"meta_rows" validate:"omitempty,min=0"`
	MetaCols    *int32   `json:"meta_cols" validate:"omitempty,min=0"`
	// nil means the recording carries no per-type counts; an empty map is a
	// recording that carries them but found none. The distinction survives
	// into the summary rendering.
	EventCounts map[string]int `json:"event_counts"`
	Notes       string         `json:"notes"`
	Events      []eventInput   `json:"events"`
}

func (r *createRecordingRequest) check() string {
	if err := validate.Struct(r); err != nil {
		return err.Error()
	}
	if (r.BaselineMin == nil) != (r.BaselineMax == nil) {
		return "baseline_min and baseline_max must be set together"
	}
	if (r.MetaRows == nil) != (r.MetaCols == nil) {
		return "meta_rows and meta_cols must be set together"
	}
	if r.TMin != nil && r.TMax != nil && *r.TMax < *r.TMin {
		return "tmax must be >= tmin"
	}
	if r.AggKind != nil && strings.TrimSpace(*r.AggKind) == "" {
		return "agg_kind must not be blank"
	}
	if r.AggKind != nil && r.Kind != string(db.RecordingKindEvoked) {
		return "agg_kind is only valid for evoked recordings"
	}
	return ""
}

// HandleCreate registers a new recording from a JSON payload.
func HandleCreate(sm *auth.SessionManager, dbc *db.DatabaseConnection, em *encryption.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		userUUID, _, err := common.RequireSessionUser(c, sm)
		if err != nil {
			return err
		}

		var req createRecordingRequest
		if err := c.Bind(&req); err != nil {
			return c.String(400, "invalid json")
		}

		if msg := req.check(); msg != "" {
			return c.String(400, msg)
		}

		if !recname.Conventional(req.Filename, req.Kind) {
			slog.Warn("recording filename does not follow naming conventions",
				"filename", req.Filename, "kind", req.Kind)
		}

		encryptedSubject, err := em.EncryptString(strings.TrimSpace(req.SubjectCode))
		if err != nil {
			slog.Error("failed to encrypt subject code", "error", err)
			return c.String(500, "failed to create recording")
		}

		qtx, tx, err := dbc.NewWithTX(ctx)
		if err != nil {
			slog.Error("failed to begin transaction", "error", err)
			return c.String(500, "failed to create recording")
		}
		defer tx.Rollback(ctx)

		rec, err := qtx.InsertRecording(ctx, &db.InsertRecordingParams{
			Kind:        db.RecordingKind(req.Kind),
			AggKind:     req.AggKind,
			Title:       strings.TrimSpace(req.Title),
			Filename:    strings.TrimSpace(req.Filename),
			SubjectCode: encryptedSubject,
			Comment:     req.Comment,
			Nave:        req.Nave,
			TMin:        req.TMin,
			TMax:        req.TMax,
			SFreq:       req.SFreq,
			NTimes:      req.NTimes,
			FirstSamp:   req.FirstSamp,
			BaselineMin: req.BaselineMin,
			BaselineMax: req.BaselineMax,
			MetaRows:    req.MetaRows,
			MetaCols:    req.MetaCols,
			EventCounts: db.CountMap(req.EventCounts),
			Notes:       req.Notes,
			UploadedBy:  userUUID,
		})
		if err != nil {
			slog.Error("failed to insert recording", "error", err)
			return c.String(500, "failed to create recording")
		}

		if len(req.Events) > 0 {
			markers := make([]db.EventMarker, len(req.Events))
			for i, e := range req.Events {
				markers[i] = db.EventMarker{Sample: e.Sample, Code: e.Code}
			}
			if err := qtx.InsertRecordingEvents(ctx, rec.ID, markers); err != nil {
				slog.Error("failed to insert event markers", "error", err, "recording_id", rec.ID)
				return c.String(500, "failed to create recording")
			}
		}

		if err := tx.Commit(ctx); err != nil {
			slog.Error("failed to commit create recording transaction", "error", err)
			return c.String(500, "failed to create recording")
		}

		return c.JSON(201, map[string]any{"status": "created", "recording_id": rec.ID.String()})
	}
}
