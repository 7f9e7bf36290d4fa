package content

import (
	"github.com/labstack/echo/v4"
	"parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/templates"
)

func HandleHomePage(sm *auth.SessionManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var username string
		if _, u, err := sm.GetSession(c.Request()); err == nil {
			username = u
		}

		// Render a fast shell; recent recordings are loaded asynchronously via
		// Datastar SSE from /api/recordings/recent.
		return templates.Index(username).Render(c.Request().Context(), c.Response())
	}
}
