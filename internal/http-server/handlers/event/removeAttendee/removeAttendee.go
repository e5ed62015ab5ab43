package removeAttendee

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"clubhub/internal/lib/api/params"
	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeRemover
type AttendeeRemover interface {
	RemoveAttendee(ctx context.Context, eventID, userID string) error
}

func New(log *slog.Logger, attendees AttendeeRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.removeAttendee.New"

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

		userID, err := params.UUID(r, "attendeeId")
		if err != nil {
			log.Error("invalid attendee id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid attendee id"))
			return
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.String("user_id", userID),
		)

		err = attendees.RemoveAttendee(r.Context(), eventID, userID)
		if errors.Is(err, storage.ErrAttendanceNotFound) {
			log.Info("attendance not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("attendance not found"))
			return
		}
		if err != nil {
			log.Error("failed to remove attendee", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove attendee"))
			return
		}

		log.Info("attendee removed")

		render.JSON(w, r, response.OK())
	}
}
