package register

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
	"github.com/go-playground/validator/v10"
)

type RegisterRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type AttendanceResponse struct {
	response.Response
	Attendance *models.Attendance `json:"attendance"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRegistrar
type EventRegistrar interface {
	RegisterForEvent(ctx context.Context, eventID, userID string) (*models.Attendance, error)
}

func New(log *slog.Logger, registrar EventRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.register.New"

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

		var req RegisterRequest

		err = render.DecodeJSON(r.Body, &req)
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

		attendance, err := registrar.RegisterForEvent(r.Context(), eventID, req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventFull):
				log.Info("event is full")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event is full"))
			case errors.Is(err, storage.ErrAlreadyRegistered):
				log.Info("already registered", slog.String("user_id", req.UserID))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user is already registered for this event"))
			case errors.Is(err, storage.ErrEventNotFound):
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrUserNotFound):
				log.Info("user not found", slog.String("user_id", req.UserID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			default:
				log.Error("failed to register for event", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to register for event"))
			}
			return
		}

		log.Info("registered for event", slog.String("user_id", req.UserID))

		responseOK(w, r, attendance)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, attendance *models.Attendance) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, AttendanceResponse{
		Response:   response.OK(),
		Attendance: attendance,
	})
}
