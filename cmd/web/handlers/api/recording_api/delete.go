package recording_api

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/handlers/common"
	"parietal.systems/acqview/internal/db"
)

func HandleDelete(sm *auth.SessionManager, dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		isDatastarRequest := strings.EqualFold(strings.TrimSpace(c.Request().Header.Get("Datastar-Request")), "true")

		accessLevel := fmt.Sprint(c.Get("accessLevel"))
		if accessLevel == "unauthenticated" {
			return c.String(401, "unauthorized")
		}

		userID, _, err := sm.GetSession(c.Request())
		if err != nil {
			return c.String(401, "unauthorized")
		}

		recUUID, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		rec, err := dbc.Queries(ctx).GetRecordingByID(ctx, recUUID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.String(404, "recording not found")
			}
			return c.String(500, "failed to fetch recording")
		}

		// Ownership check (admins can delete anything)
		if accessLevel != "admin" && userID != rec.UploadedBy.String() {
			return c.String(403, "forbidden")
		}

		// Event markers cascade at the schema level.
		if err := dbc.Queries(ctx).DeleteRecording(ctx, recUUID); err != nil {
			slog.Error("failed to delete recording", "error", err, "recording_id", recUUID)
			return c.String(500, "failed to delete recording")
		}

		if isDatastarRequest {
			c.Response().Header().Set(echo.HeaderContentType, "text/javascript")
			return c.String(200, "window.location.href = '/recordings';")
		}
		return c.JSON(200, map[string]any{"status": "deleted", "recording_id": recUUID.String()})
	}
}
