package updateClub

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

type ClubRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    models.Category `json:"category" validate:"required,oneof=ACADEMIC SPORTS ARTS TECHNOLOGY SOCIAL OTHER"`
	Logo        *string         `json:"logo,omitempty" validate:"omitempty,url"`
}

type ClubResponse struct {
	response.Response
	Club *models.Club `json:"club"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClubUpdater
type ClubUpdater interface {
	UpdateClub(ctx context.Context, id string, in models.ClubInput) (*models.Club, error)
}

// New replaces the club's editable fields. Memberships and events are untouched.
func New(log *slog.Logger, clubs ClubUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.club.updateClub.New"

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

		var req ClubRequest

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

		club, err := clubs.UpdateClub(r.Context(), clubID, models.ClubInput{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			Logo:        req.Logo,
		})
		if errors.Is(err, storage.ErrClubNotFound) {
			log.Info("club not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("club not found"))
			return
		}
		if err != nil {
			log.Error("failed to update club", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update club"))
			return
		}

		log.Info("club updated")

		responseOK(w, r, club)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, club *models.Club) {
	render.JSON(w, r, ClubResponse{
		Response: response.OK(),
		Club:     club,
	})
}
