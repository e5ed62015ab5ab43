package unregister

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
	"github.com/go-playground/validator/v10"
)

type UnregisterRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUnregistrar
type EventUnregistrar interface {
	UnregisterFromEvent(ctx context.Context, eventID, userID string) error
}

// New cancels the user's own registration, freeing a place.
func New(log *slog.Logger, registrar EventUnregistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.unregister.New"

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

		log = log.With(slog.String("event_id", eventID))

		var req UnregisterRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		err = registrar.UnregisterFromEvent(r.Context(), eventID, req.UserID)
		if errors.Is(err, storage.ErrAttendanceNotFound) {
			log.Info("attendance not found", slog.String("user_id", req.UserID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("attendance not found"))
			return
		}
		if err != nil {
			log.Error("failed to unregister from event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to unregister from event"))
			return
		}

		log.Info("unregistered from event", slog.String("user_id", req.UserID))

		render.JSON(w, r, response.OK())
	}
}
