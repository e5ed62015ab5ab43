package createClub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/models"

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

func (req ClubRequest) Input() models.ClubInput {
	return models.ClubInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Logo:        req.Logo,
	}
}

type ClubResponse struct {
	response.Response
	Club *models.Club `json:"club"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClubCreator
type ClubCreator interface {
	CreateClub(ctx context.Context, in models.ClubInput) (*models.Club, error)
}

func New(log *slog.Logger, clubs ClubCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.club.createClub.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req ClubRequest

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

		club, err := clubs.CreateClub(r.Context(), req.Input())
		if err != nil {
			log.Error("failed to create club", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create club"))
			return
		}

		log.Info("club created", slog.String("club_id", club.ID))

		responseOK(w, r, club)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, club *models.Club) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ClubResponse{
		Response: response.OK(),
		Club:     club,
	})
}
