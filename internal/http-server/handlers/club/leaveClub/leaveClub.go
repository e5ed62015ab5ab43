package leaveClub

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

type LeaveRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClubLeaver
type ClubLeaver interface {
	LeaveClub(ctx context.Context, clubID, userID string) error
}

// New removes the caller's own membership. Leaving a club the user never
// joined is a 404 and changes nothing.
func New(log *slog.Logger, memberships ClubLeaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.club.leaveClub.New"

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

		log = log.With(slog.String("club_id", clubID))

		var req LeaveRequest

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

		err = memberships.LeaveClub(r.Context(), clubID, req.UserID)
		if errors.Is(err, storage.ErrMembershipNotFound) {
			log.Info("membership not found", slog.String("user_id", req.UserID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("membership not found"))
			return
		}
		if err != nil {
			log.Error("failed to leave club", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to leave club"))
			return
		}

		log.Info("user left club", slog.String("user_id", req.UserID))

		render.JSON(w, r, response.OK())
	}
}
