// package admin provides instance administration handlers.
package admin

import (
	"github.com/labstack/echo/v4"
	"parietal.systems/acqview/cmd/web/templates"
	"parietal.systems/acqview/internal/db"
)

func HandleAdminSettingsPage(sc *db.SettingsCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, _ := c.Get("currentUsername").(string)

		alertType := ""
		alertMsg := ""
		if errMsg := c.QueryParam("err"); errMsg != "" {
			alertType = "error"
			alertMsg = errMsg
		} else if msg := c.QueryParam("msg"); msg != "" {
			alertType = "success"
			alertMsg = msg
		}

		regEnabled := sc.Get().RegistrationEnabled
		return templates.AdminSettings(username, regEnabled, alertType, alertMsg).Render(c.Request().Context(), c.Response())
	}
}
