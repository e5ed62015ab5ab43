package clubEvents

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"clubhub/internal/lib/api/params"
	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClubEventsGetter
type ClubEventsGetter interface {
	UpcomingClubEvents(ctx context.Context, clubID string, now time.Time) ([]models.Event, error)
}

func New(log *slog.Logger, events ClubEventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.club.clubEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		clubID, err := params.UUID(r, "id")
		if err != nil {
			log.Error("invalid club id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid club id"))
			return
		}

		list, err := events.UpcomingClubEvents(r.Context(), clubID, time.Now())
		if err != nil {
			log.Error("failed to get club events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get club events"))
			return
		}

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	if events == nil {
		events = []models.Event{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
