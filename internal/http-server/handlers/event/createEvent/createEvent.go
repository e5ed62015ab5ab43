package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"clubhub/internal/http-server/middleware/auth"
	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/models"
	"clubhub/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Location     string    `json:"location" validate:"required"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	MaxAttendees *int      `json:"max_attendees,omitempty" validate:"omitempty,min=1"`
	ClubID       string    `json:"club_id" validate:"required,uuid"`
	CreatedByID  string    `json:"created_by_id,omitempty" validate:"omitempty,uuid"`
}

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error)
}

// New creates an event. Without created_by_id the authenticated caller is
// recorded as the creator.
func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req EventRequest

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

		if req.CreatedByID == "" {
			caller, ok := auth.UserFromContext(r.Context())
			if !ok {
				log.Error("creator is unknown")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("field CreatedByID is a required field"))

				return
			}
			req.CreatedByID = caller.ID
		}

		created, err := event.CreateEvent(r.Context(), models.EventInput{
			Title:        req.Title,
			Description:  req.Description,
			Location:     req.Location,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			MaxAttendees: req.MaxAttendees,
			ClubID:       req.ClubID,
			CreatedByID:  req.CreatedByID,
		})
		switch {
		case errors.Is(err, storage.ErrClubNotFound):
			log.Info("club not found", slog.String("club_id", req.ClubID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("club not found"))

			return
		case errors.Is(err, storage.ErrUserNotFound):
			log.Info("creator not found", slog.String("user_id", req.CreatedByID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))

			return
		case err != nil:
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.String("id", created.ID))

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
