package content

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"
	"parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/handlers/common"
	"parietal.systems/acqview/cmd/web/templates"
	"parietal.systems/acqview/internal/db"
	"parietal.systems/acqview/pkg/encryption"
)

func HandleRecordingDetailPage(sm *auth.SessionManager, dbc *db.DatabaseConnection, em *encryption.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, username, err := common.RequireSessionUser(c, sm)
		if err != nil {
			return c.Redirect(302, "/login")
		}

		recUUID, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}

		rec, err := dbc.Queries(c.Request().Context()).GetRecordingByID(c.Request().Context(), recUUID)
		if err != nil {
			return c.String(404, "recording not found")
		}

		events, err := dbc.Queries(c.Request().Context()).GetRecordingEvents(c.Request().Context(), recUUID)
		if err != nil {
			slog.Warn("failed to fetch event markers", "error", err, "recording_id", recUUID)
			events = nil
		}

		subjectCode, err := em.DecryptString(rec.SubjectCode)
		if err != nil {
			slog.Error("failed to decrypt subject code", "error", err, "recording_id", recUUID)
			subjectCode = ""
		}

		detail := templates.RecordingDetail{
			ID:          rec.ID.String(),
			Kind:        string(rec.Kind),
			Title:       rec.Title,
			Filename:    rec.Filename,
			SubjectCode: subjectCode,
			Comment:     common.DerefString(rec.Comment),
			FirstSamp:   rec.FirstSamp,
			NumEvents:   len(events),
			SummaryRows: common.SummaryRows(rec, events),
			Notes:       rec.Notes.Render(),
			NotesSource: rec.Notes.Source,
			CreatedAt:   rec.CreatedAt.Time.Format("January 2, 2006 at 3:04 PM"),
			Uploaded:    humanize.Time(rec.CreatedAt.Time),
		}

		return templates.RecordingDetailPage(detail, username).Render(c.Request().Context(), c.Response())
	}
}
