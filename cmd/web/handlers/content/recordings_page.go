package content

import (
	"github.com/labstack/echo/v4"
	"parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/templates"
)

func HandleRecordingsPage(sm *auth.SessionManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, username, err := sm.GetSession(c.Request())
		if err != nil {
			return c.Redirect(302, "/login")
		}

		// Render a fast shell; the recordings grid is loaded asynchronously via
		// Datastar SSE from /api/recordings/index (which also respects the
		// current query string).
		return templates.Recordings(username).Render(c.Request().Context(), c.Response())
	}
}
