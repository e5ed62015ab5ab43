package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type DashboardResponse struct {
	response.Response
	Dashboard *models.Dashboard `json:"dashboard"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DashboardGetter
type DashboardGetter interface {
	Dashboard(ctx context.Context, limits models.DashboardLimits) (*models.Dashboard, error)
}

// New serves the admin overview. Limits cap the recent users, events and memberships lists.
func New(log *slog.Logger, getter DashboardGetter, limits models.DashboardLimits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.dashboard.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		dashboard, err := getter.Dashboard(r.Context(), limits)
		if err != nil {
			log.Error("failed to build dashboard", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get dashboard"))
			return
		}

		log.Debug("dashboard built", slog.Int("clubs", len(dashboard.Clubs)), slog.Int("events", len(dashboard.Events)))

		render.JSON(w, r, DashboardResponse{
			Response:  response.OK(),
			Dashboard: dashboard,
		})
	}
}
