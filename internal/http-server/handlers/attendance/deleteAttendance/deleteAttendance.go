package deleteAttendance

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type AttendanceRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	EventID string `json:"event_id" validate:"required,uuid"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendanceDeleter
type AttendanceDeleter interface {
	UnregisterFromEvent(ctx context.Context, eventID, userID string) error
}

func New(log *slog.Logger, attendances AttendanceDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendance.deleteAttendance.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req AttendanceRequest

		err := render.DecodeJSON(r.Body, &req)
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

		log = log.With(
			slog.String("event_id", req.EventID),
			slog.String("user_id", req.UserID),
		)

		err = attendances.UnregisterFromEvent(r.Context(), req.EventID, req.UserID)
		if errors.Is(err, storage.ErrAttendanceNotFound) {
			log.Info("attendance not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("attendance not found"))
			return
		}
		if err != nil {
			log.Error("failed to delete attendance", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete attendance"))
			return
		}

		log.Info("attendance deleted")

		render.JSON(w, r, response.OK())
	}
}
