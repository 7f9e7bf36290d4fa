package auth

import (
	"github.com/labstack/echo/v4"
	webauth "parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/templates"
)

func HandleLoginPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		accessLevel, _ := c.Get("accessLevel").(string)
		if accessLevel != "" && accessLevel != string(webauth.AccessUnauthenticated) {
			return c.Redirect(302, "/")
		}
		return templates.Login("").Render(c.Request().Context(), c.Response())
	}
}
