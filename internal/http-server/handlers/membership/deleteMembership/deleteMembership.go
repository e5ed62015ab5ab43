package deleteMembership

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

type MembershipRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	ClubID string `json:"club_id" validate:"required,uuid"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MembershipDeleter
type MembershipDeleter interface {
	LeaveClub(ctx context.Context, clubID, userID string) error
}

func New(log *slog.Logger, memberships MembershipDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.membership.deleteMembership.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req MembershipRequest

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
			slog.String("club_id", req.ClubID),
			slog.String("user_id", req.UserID),
		)

		err = memberships.LeaveClub(r.Context(), req.ClubID, req.UserID)
		if errors.Is(err, storage.ErrMembershipNotFound) {
			log.Info("membership not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("membership not found"))
			return
		}
		if err != nil {
			log.Error("failed to delete membership", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete membership"))
			return
		}

		log.Info("membership deleted")

		render.JSON(w, r, response.OK())
	}
}
