package eventAttendees

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"clubhub/internal/lib/api/params"
	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/models"
	"clubhub/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type AttendeesResponse struct {
	response.Response
	Event     *models.Event     `json:"event"`
	Attendees []models.Attendee `json:"attendees"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeesGetter
type AttendeesGetter interface {
	EventAttendees(ctx context.Context, eventID string) (*models.Event, []models.Attendee, error)
}

func New(log *slog.Logger, attendees AttendeesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.eventAttendees.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, err := params.UUID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))
			return
		}

		event, list, err := attendees.EventAttendees(r.Context(), eventID)
		if errors.Is(err, storage.ErrEventNotFound) {
			log.Info("event not found", slog.String("event_id", eventID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		}
		if err != nil {
			log.Error("failed to get attendees", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get attendees"))
			return
		}

		responseOK(w, r, event, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event, attendees []models.Attendee) {
	if attendees == nil {
		attendees = []models.Attendee{}
	}

	render.JSON(w, r, AttendeesResponse{
		Response:  response.OK(),
		Event:     event,
		Attendees: attendees,
	})
}
