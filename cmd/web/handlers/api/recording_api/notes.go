package recording_api

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/handlers/common"
	"parietal.systems/acqview/cmd/web/templates"
	"parietal.systems/acqview/internal/db"
	"parietal.systems/acqview/pkg/utils/markdown"
)

type notesSignals struct {
	Notes string `json:"recordingNotes"`
}

// HandleNotesUpdate replaces the markdown notes of a recording and patches
// the rendered notes panel back.
func HandleNotesUpdate(sm *auth.SessionManager, dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if _, _, err := common.RequireSessionUser(c, sm); err != nil {
			return err
		}

		recUUID, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}

		signals := &notesSignals{}
		if err := datastar.ReadSignals(c.Request(), signals); err != nil {
			return c.String(400, "invalid signals")
		}

		// NewSSE must be created AFTER ReadSignals: it flushes response
		// headers, which closes the request body.
		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		if err := dbc.Queries(ctx).UpdateRecordingNotes(ctx, recUUID, signals.Notes); err != nil {
			slog.Error("failed to update recording notes", "error", err, "recording_id", recUUID)
			return c.String(500, "failed to update notes")
		}

		md := markdown.New(signals.Notes)
		if err := sse.PatchElementTempl(
			templates.RecordingNotes(recUUID.String(), md.Render(), signals.Notes),
			datastar.WithSelectorID("recording-notes"),
			datastar.WithModeReplace(),
		); err != nil {
			slog.Error("failed to send notes SSE patch", "error", err, "recording_id", recUUID)
			return err
		}

		return nil
	}
}
