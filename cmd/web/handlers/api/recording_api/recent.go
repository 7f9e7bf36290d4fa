package recording_api

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/handlers/common"
	"parietal.systems/acqview/cmd/web/templates"
	"parietal.systems/acqview/internal/db"
)

// HandleRecent returns recently added recordings.
func HandleRecent(sm *auth.SessionManager, dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, _, err := sm.GetSession(c.Request()); err != nil {
			return c.String(401, "unauthorized")
		}

		ctx := c.Request().Context()
		rows, err := dbc.Queries(ctx).ListRecentRecordings(ctx, templates.RecentSlots)
		if err != nil {
			slog.Error("failed to fetch recent recordings for SSE", "error", err)
			rows = []*db.ListRecordingsRow{}
		}

		common.SetSSEHeaders(c)

		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		// The home page shell renders skeleton slots (recent-recording-slot-{0..N}).
		// Replace them one-by-one to keep each SSE message small.
		for i, rec := range rows {
			if sse.IsClosed() {
				return nil
			}
			slotID := fmt.Sprintf("recent-recording-slot-%d", i)
			fragment := templates.RecentRecordingCard(rec)
			if err := sse.PatchElementTempl(fragment, datastar.WithSelectorID(slotID), datastar.WithModeReplace()); err != nil {
				slog.Error("failed to send recent recording SSE patch", "error", err, "slot_id", slotID)
				return err
			}
		}

		return nil
	}
}
