package admin

import (
	"log/slog"
	"net/url"

	"github.com/labstack/echo/v4"
	"parietal.systems/acqview/internal/db"
)

// HandleAdminSettings updates admin-level instance settings.
func HandleAdminSettings(dbc *db.DatabaseConnection, sc *db.SettingsCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		enabled := c.FormValue("registration_enabled") != ""
		q := dbc.Queries(c.Request().Context())

		if err := q.UpsertRegistrationEnabled(c.Request().Context(), enabled); err != nil {
			slog.Error("failed to update registration_enabled", "error", err)
			return c.Redirect(302, "/admin/settings?err="+url.QueryEscape("Failed to update settings"))
		}

		// Reload the settings cache eagerly so the change is visible immediately.
		if err := sc.Reload(c.Request().Context()); err != nil {
			slog.Warn("failed to reload settings cache", "error", err)
		}

		return c.Redirect(302, "/admin/settings?msg="+url.QueryEscape("Settings saved successfully"))
	}
}
