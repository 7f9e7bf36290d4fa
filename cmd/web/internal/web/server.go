package web

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/ctxkeys"
	"parietal.systems/acqview/cmd/web/handlers/admin"
	authhandlers "parietal.systems/acqview/cmd/web/handlers/auth"
	"parietal.systems/acqview/cmd/web/handlers/content"

	"parietal.systems/acqview/cmd/web/handlers/api/recording_api"

	staticpkg "parietal.systems/acqview/cmd/web/internal/web/utils/static"
	"parietal.systems/acqview/internal/db"
	"parietal.systems/acqview/pkg/encryption"
)

type Webserver struct {
	*echo.Echo
	sessionManager    *auth.SessionManager
	encryptionManager *encryption.Manager
	dbc               *db.DatabaseConnection
	staticCache       *staticpkg.StaticCache
	settingsCache     *db.SettingsCache
}

func NewWebserver(ctx context.Context, dbc *db.DatabaseConnection, encryptionManager *encryption.Manager, sessionManager *auth.SessionManager) (*Webserver, error) {
	e := echo.New()

	staticCache, err := staticpkg.NewStaticCache()
	if err != nil {
		return nil, err
	}

	settingsCache, err := db.NewSettingsCache(ctx, dbc)
	if err != nil {
		return nil, err
	}

	webserver := &Webserver{
		Echo:              e,
		sessionManager:    sessionManager,
		encryptionManager: encryptionManager,
		dbc:               dbc,
		staticCache:       staticCache,
		settingsCache:     settingsCache,
	}

	if err = webserver.registerRoutes(); err != nil {
		return nil, err
	}

	if err = webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	// Middleware to set access level and registration setting in context
	s.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Read access level directly from the session cookie (stored at login)
			accessLevel := s.sessionManager.GetAccessLevel(c.Request())

			// For authenticated users, validate the session against the DB.
			// This catches disabled users and sessions created before a
			// role change (sessions_invalidated_at).
			if accessLevel != auth.AccessUnauthenticated {
				userID, _, _ := s.sessionManager.GetSession(c.Request())
				var uid pgtype.UUID
				if err := uid.Scan(userID); err == nil {
					q := s.dbc.Queries(c.Request().Context())
					row, err := q.GetSessionInvalidation(c.Request().Context(), uid)
					if err != nil {
						// User deleted or DB error - clear session
						slog.Warn("session invalidation check failed", "user_id", userID, "error", err)
						s.sessionManager.ClearSession(c.Response().Writer, c.Request())
						accessLevel = auth.AccessUnauthenticated
					} else if !row.Enabled {
						// User is disabled - clear session
						slog.Info("disabled user session cleared", "user_id", userID)
						s.sessionManager.ClearSession(c.Response().Writer, c.Request())
						accessLevel = auth.AccessUnauthenticated
					} else if row.SessionsInvalidatedAt.Valid {
						createdAt := s.sessionManager.GetSessionCreatedAt(c.Request())
						if !createdAt.IsZero() && row.SessionsInvalidatedAt.Time.After(createdAt) {
							slog.Info("invalidated session cleared", "user_id", userID)
							s.sessionManager.ClearSession(c.Response().Writer, c.Request())
							accessLevel = auth.AccessUnauthenticated
						}
					}
				}
			}

			// Set in Echo context for handlers (stored as plain string for cross-package compatibility)
			c.Set("accessLevel", string(accessLevel))

			// Read registration setting from cache (no DB round-trip)
			regEnabled := s.settingsCache.Get().RegistrationEnabled

			// Set both values in request context for templates
			ctx := context.WithValue(c.Request().Context(), ctxkeys.AccessLevel, string(accessLevel))
			ctx = context.WithValue(ctx, ctxkeys.RegistrationEnabled, regEnabled)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	})

	return nil
}

func (s *Webserver) registerRoutes() error {
	adminGroup := s.Group("/admin")
	adminGroup.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, username, err := s.sessionManager.GetSession(c.Request())
			if err != nil {
				return c.Redirect(302, "/login")
			}

			// Access level is stored in the session cookie at login time.
			if s.sessionManager.GetAccessLevel(c.Request()) != auth.AccessAdmin {
				return c.String(403, "forbidden")
			}

			var userUUID pgtype.UUID
			if err := userUUID.Scan(userID); err != nil {
				return c.String(500, "invalid session")
			}

			c.Set("currentUserUUID", userUUID)
			c.Set("currentUsername", username)
			return next(c)
		}
	})

	adminGroup.GET("", func(c echo.Context) error {
		return c.Redirect(302, "/admin/users")
	})
	adminGroup.GET("/settings", admin.HandleAdminSettingsPage(s.settingsCache))
	adminGroup.POST("/settings", admin.HandleAdminSettings(s.dbc, s.settingsCache))
	adminGroup.GET("/users", admin.HandleAdminUsersPage(s.dbc))
	adminGroup.POST("/users/:id/enable", admin.HandleAdminUserEnable(s.dbc))
	adminGroup.POST("/users/:id/role", admin.HandleAdminUserRole(s.dbc))

	apiGroup := s.Group("/api")
	apiGroup.GET("/recordings/index", recording_api.HandleIndex(s.sessionManager, s.dbc))
	apiGroup.GET("/recordings/recent", recording_api.HandleRecent(s.sessionManager, s.dbc))
	apiGroup.GET("/recordings/:id/summary", recording_api.HandleSummary(s.sessionManager, s.dbc))
	apiGroup.POST("/recordings", recording_api.HandleCreate(s.sessionManager, s.dbc, s.encryptionManager))
	apiGroup.POST("/recordings/:id/notes", recording_api.HandleNotesUpdate(s.sessionManager, s.dbc))
	apiGroup.DELETE("/recordings/:id", recording_api.HandleDelete(s.sessionManager, s.dbc))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	// Static file serving
	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))

	// Auth routes
	s.GET("/login", authhandlers.HandleLoginPage())
	s.POST("/login", authhandlers.HandleLogin(s.sessionManager, s.dbc))
	s.GET("/register", authhandlers.HandleRegisterPage(s.dbc, s.settingsCache))
	s.POST("/register", authhandlers.HandleRegister(s.sessionManager, s.dbc, s.settingsCache))
	s.GET("/logout", authhandlers.HandleLogout(s.sessionManager))

	// Content routes
	s.GET("/recordings", content.HandleRecordingsPage(s.sessionManager))
	s.GET("/recordings/:id", content.HandleRecordingDetailPage(s.sessionManager, s.dbc, s.encryptionManager))
	s.GET("/", content.HandleHomePage(s.sessionManager))

	return nil
}
