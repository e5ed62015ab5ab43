package attendedEvents

import (
	"context"
	"log/slog"
	"net/http"

	"clubhub/internal/lib/api/params"
	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type AttendedResponse struct {
	response.Response
	EventIDs []string `json:"event_ids"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendedEventsGetter
type AttendedEventsGetter interface {
	UserAttendedEventIDs(ctx context.Context, userID string) ([]string, error)
}

func New(log *slog.Logger, attended AttendedEventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.attendedEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		userID, err := params.UUID(r, "id")
		if err != nil {
			log.Error("invalid user id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id"))
			return
		}

		ids, err := attended.UserAttendedEventIDs(r.Context(), userID)
		if err != nil {
			log.Error("failed to get attended events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get attended events"))
			return
		}

		responseOK(w, r, ids)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ids []string) {
	if ids == nil {
		ids = []string{}
	}

	render.JSON(w, r, AttendedResponse{
		Response: response.OK(),
		EventIDs: ids,
	})
}
