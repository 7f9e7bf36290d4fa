package auth

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	webauth "parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/templates"
	"parietal.systems/acqview/internal/db"
)

func HandleRegister(sm *webauth.SessionManager, dbc *db.DatabaseConnection, sc *db.SettingsCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := strings.TrimSpace(c.FormValue("username"))
		email := strings.TrimSpace(c.FormValue("email"))
		password := c.FormValue("password")
		confirmPassword := c.FormValue("confirm_password")

		if username == "" || email == "" || password == "" {
			return templates.Register("All fields are required").Render(c.Request().Context(), c.Response())
		}

		if password != confirmPassword {
			return templates.Register("Passwords do not match").Render(c.Request().Context(), c.Response())
		}

		q := dbc.Queries(c.Request().Context())
		userCount, err := q.CountUsers(c.Request().Context())
		if err != nil {
			slog.Error("failed to count users", "error", err)
			return templates.Register("An error occurred. Please try again.").Render(c.Request().Context(), c.Response())
		}

		// The first account to register runs the instance.
		role := db.UserRoleUser
		if userCount == 0 {
			role = db.UserRoleAdmin
		} else {
			settings := sc.Get()
			if settings != nil && !settings.RegistrationEnabled {
				return templates.Register("Registration is disabled on this instance").Render(c.Request().Context(), c.Response())
			}
		}

		taken, err := q.UsernameTaken(c.Request().Context(), username)
		if err != nil {
			slog.Error("failed to check username", "error", err)
			return templates.Register("An error occurred. Please try again.").Render(c.Request().Context(), c.Response())
		}
		if taken {
			return templates.Register("Username is already taken").Render(c.Request().Context(), c.Response())
		}

		registered, err := q.EmailRegistered(c.Request().Context(), email)
		if err != nil {
			slog.Error("failed to check email", "error", err)
			return templates.Register("An error occurred. Please try again.").Render(c.Request().Context(), c.Response())
		}
		if registered {
			return templates.Register("Email is already registered").Render(c.Request().Context(), c.Response())
		}

		user, err := q.NewUser(c.Request().Context(), db.NewUserParams{
			Username: username,
			Email:    email,
			Password: password,
			Role:     string(role),
		})
		if err != nil {
			slog.Error("failed to create user", "error", err)
			return templates.Register("Password does not meet requirements (minimum 8 characters) or an error occurred").Render(c.Request().Context(), c.Response())
		}

		accessLevel := webauth.AccessUser
		if role == db.UserRoleAdmin {
			accessLevel = webauth.AccessAdmin
		}

		if err := sm.SaveSession(c.Response().Writer, c.Request(), user.ID.String(), user.UserName, accessLevel); err != nil {
			slog.Error("failed to save session", "error", err)
			return templates.Register("Account created but failed to log in. Please try logging in.").Render(c.Request().Context(), c.Response())
		}

		return c.Redirect(302, "/")
	}
}
