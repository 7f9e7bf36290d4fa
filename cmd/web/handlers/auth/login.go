package auth

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	webauth "parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/templates"
	"parietal.systems/acqview/internal/db"
	"parietal.systems/acqview/pkg/utils/passwords"
)

func HandleLogin(sm *webauth.SessionManager, dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := strings.TrimSpace(c.FormValue("username"))
		password := c.FormValue("password")

		if username == "" || password == "" {
			return templates.Login("Username and password are required").Render(c.Request().Context(), c.Response())
		}

		// Try to find user by username first, then by email
		user, err := dbc.Queries(c.Request().Context()).SelectUserByUserName(c.Request().Context(), username)
		if err != nil {
			user, err = dbc.Queries(c.Request().Context()).SelectUserByEmail(c.Request().Context(), username)
			if err != nil {
				return templates.Login("Invalid username or password").Render(c.Request().Context(), c.Response())
			}
		}

		matches, err := user.Password.ComparePasswordAndHash(passwords.PasswordInput{Password: password})
		if err != nil || !matches {
			return templates.Login("Invalid username or password").Render(c.Request().Context(), c.Response())
		}

		if !user.Enabled {
			return templates.Login("Account is disabled").Render(c.Request().Context(), c.Response())
		}

		accessLevel := webauth.AccessUser
		if user.Role == db.UserRoleAdmin {
			accessLevel = webauth.AccessAdmin
		}

		if err := sm.SaveSession(c.Response().Writer, c.Request(), user.ID.String(), user.UserName, accessLevel); err != nil {
			slog.Error("failed to save session", "error", err)
			return templates.Login("An error occurred. Please try again.").Render(c.Request().Context(), c.Response())
		}

		return c.Redirect(302, "/")
	}
}
