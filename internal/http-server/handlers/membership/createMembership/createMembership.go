package createMembership

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

type MembershipRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	ClubID string `json:"club_id" validate:"required,uuid"`
}

type MembershipResponse struct {
	response.Response
	Membership *models.Membership `json:"membership"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MembershipCreator
type MembershipCreator interface {
	JoinClub(ctx context.Context, clubID, userID string) (*models.Membership, error)
}

// New is the collection form of joining a club: both ids travel in the body.
func New(log *slog.Logger, memberships MembershipCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.membership.createMembership.New"

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

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		membership, err := memberships.JoinClub(r.Context(), req.ClubID, req.UserID)
		switch {
		case errors.Is(err, storage.ErrClubNotFound):
			log.Info("club not found", slog.String("club_id", req.ClubID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("club not found"))
			return
		case errors.Is(err, storage.ErrUserNotFound):
			log.Info("user not found", slog.String("user_id", req.UserID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		case errors.Is(err, storage.ErrAlreadyMember):
			log.Info("already a member", slog.String("user_id", req.UserID), slog.String("club_id", req.ClubID))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("user is already a member of this club"))
			return
		case err != nil:
			log.Error("failed to create membership", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create membership"))
			return
		}

		log.Info("membership created", slog.String("membership_id", membership.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, MembershipResponse{
			Response:   response.OK(),
			Membership: membership,
		})
	}
}
