package createAttendance

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/models"
	"clubhub/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type AttendanceRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	EventID string `json:"event_id" validate:"required,uuid"`
}

type AttendanceResponse struct {
	response.Response
	Attendance *models.Attendance `json:"attendance"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendanceCreator
type AttendanceCreator interface {
	RegisterForEvent(ctx context.Context, eventID, userID string) (*models.Attendance, error)
}

func New(log *slog.Logger, attendances AttendanceCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendance.createAttendance.New"

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

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		attendance, err := attendances.RegisterForEvent(r.Context(), req.EventID, req.UserID)
		switch {
		case errors.Is(err, storage.ErrEventFull):
			log.Info("event is full", slog.String("event_id", req.EventID))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event is full"))
			return
		case errors.Is(err, storage.ErrAlreadyRegistered):
			log.Info("already registered", slog.String("user_id", req.UserID), slog.String("event_id", req.EventID))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("user is already registered for this event"))
			return
		case errors.Is(err, storage.ErrEventNotFound):
			log.Info("event not found", slog.String("event_id", req.EventID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		case errors.Is(err, storage.ErrUserNotFound):
			log.Info("user not found", slog.String("user_id", req.UserID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		case err != nil:
			log.Error("failed to create attendance", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create attendance"))
			return
		}

		log.Info("attendance created", slog.String("attendance_id", attendance.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, AttendanceResponse{
			Response:   response.OK(),
			Attendance: attendance,
		})
	}
}
