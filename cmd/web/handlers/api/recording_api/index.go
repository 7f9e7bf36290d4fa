package recording_api

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"parietal.systems/acqview/cmd/web/auth"
	"parietal.systems/acqview/cmd/web/handlers/common"
	"parietal.systems/acqview/cmd/web/templates"
	"parietal.systems/acqview/cmd/web/templates/components"
	"parietal.systems/acqview/internal/db"
)

// HandleIndex returns a filtered/paginated list of recordings.
func HandleIndex(sm *auth.SessionManager, dbc *db.DatabaseConnection) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, _, err := sm.GetSession(c.Request())
		if err != nil {
			return c.String(401, "unauthorized")
		}

		// Parse parameters from DataStar signals (with query param fallback)
		type Signals struct {
			Query    string `json:"q"`
			Kind     string `json:"kind"`
			Page     int    `json:"page"`
			PageSize int    `json:"pageSize"`
		}
		signals := &Signals{}
		if err := datastar.ReadSignals(c.Request(), signals); err != nil {
			// Fallback to query params for initial load
			signals.Query = strings.TrimSpace(c.QueryParam("q"))
			signals.Kind = c.QueryParam("kind")
			if p, err := strconv.Atoi(c.QueryParam("page")); err == nil {
				signals.Page = p
			}
			if ps, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil {
				signals.PageSize = ps
			}
		}

		params := DefaultRecordingsListParams()
		params.Query = signals.Query
		params.Kind = signals.Kind
		if signals.Page > 0 {
			params.Page = signals.Page
		}
		if signals.PageSize > 0 {
			params.PageSize = signals.PageSize
		}
		params.Validate()

		ctx := c.Request().Context()
		rows, err := dbc.Queries(ctx).ListRecordingsPaginated(ctx, &db.ListRecordingsParams{
			Query:      nullableString(params.Query),
			Kind:       nullableString(params.Kind),
			PageOffset: params.Offset(),
			PageLimit:  int32(params.PageSize),
		})
		if err != nil {
			slog.Error("failed to fetch recordings", "error", err)
			rows = []*db.ListRecordingsRow{}
		}

		var totalCount int64
		if len(rows) > 0 {
			totalCount = rows[0].TotalCount
		}
		totalPages := int((totalCount + int64(params.PageSize) - 1) / int64(params.PageSize))
		if totalPages < 1 {
			totalPages = 1
		}

		pagination := components.Pagination{
			CurrentPage: params.Page,
			TotalPages:  totalPages,
			TotalItems:  int(totalCount),
			PageSize:    params.PageSize,
			HasPrev:     params.Page > 1,
			HasNext:     params.Page < totalPages,
		}

		common.SetSSEHeaders(c)

		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		if err := sse.PatchElementTempl(templates.RecordingsGrid(rows)); err != nil {
			slog.Error("failed to send recordings grid SSE patch", "error", err)
			return err
		}

		if err := sse.PatchElementTempl(components.PaginationControls(pagination)); err != nil {
			slog.Error("failed to send pagination SSE patch", "error", err)
			return err
		}

		return nil
	}
}
