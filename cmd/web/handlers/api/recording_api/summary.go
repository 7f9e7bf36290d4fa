package recording_api

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/handlers/common"
	"parietal.systems/acqview/cmd/web/templates"
	"parietal.systems/acqview/internal/db"
)

type summarySignals struct {
	Collapsed bool `json:"summaryCollapsed"`
}

// HandleSummary re-renders the acquisition summary fragment of a recording,
// honoring the collapsed toggle carried in the signals.
func HandleSummary(sm *auth.SessionManager, dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if _, _, err := sm.GetSession(c.Request()); err != nil {
			return c.String(401, "unauthorized")
		}

		recUUID, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}

		signals := &summarySignals{}
		if err := datastar.ReadSignals(c.Request(), signals); err != nil {
			signals.Collapsed = c.QueryParam("collapsed") == "true"
		}

		rec, err := dbc.Queries(ctx).GetRecordingByID(ctx, recUUID)
		if err != nil {
			return c.String(404, "recording not found")
		}

		events, err := dbc.Queries(ctx).GetRecordingEvents(ctx, recUUID)
		if err != nil {
			slog.Warn("failed to fetch event markers", "error", err, "recording_id", recUUID)
			events = nil
		}

		rows := common.SummaryRows(rec, events)

		common.SetSSEHeaders(c)

		// NewSSE must be created AFTER ReadSignals: it flushes response
		// headers, which closes the request body.
		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		if err := sse.PatchElementTempl(
			templates.AcquisitionSummary(rec.ID.String(), rows, signals.Collapsed),
			datastar.WithSelectorID("acq-summary"),
			datastar.WithModeReplace(),
		); err != nil {
			slog.Error("failed to send summary SSE patch", "error", err, "recording_id", recUUID)
			return err
		}

		return nil
	}
}
