package joinClub

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

type JoinRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type MembershipResponse struct {
	response.Response
	Membership *models.Membership `json:"membership"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClubJoiner
type ClubJoiner interface {
	JoinClub(ctx context.Context, clubID, userID string) (*models.Membership, error)
}

func New(log *slog.Logger, memberships ClubJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.club.joinClub.New"

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

		var req JoinRequest

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

		membership, err := memberships.JoinClub(r.Context(), clubID, req.UserID)
		switch {
		case errors.Is(err, storage.ErrClubNotFound):
			log.Info("club not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("club not found"))
			return
		case errors.Is(err, storage.ErrUserNotFound):
			log.Info("user not found", slog.String("user_id", req.UserID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		case errors.Is(err, storage.ErrAlreadyMember):
			log.Info("already a member", slog.String("user_id", req.UserID))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("user is already a member of this club"))
			return
		case err != nil:
			log.Error("failed to join club", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to join club"))
			return
		}

		log.Info("user joined club", slog.String("user_id", req.UserID))

		responseOK(w, r, membership)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, membership *models.Membership) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, MembershipResponse{
		Response:   response.OK(),
		Membership: membership,
	})
}
