package userClubs

import (
	"context"
	"log/slog"
	"net/http"

	"clubhub/internal/lib/api/params"
	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type ClubsResponse struct {
	response.Response
	Clubs []models.Club `json:"clubs"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserClubsGetter
type UserClubsGetter interface {
	UserClubs(ctx context.Context, userID string) ([]models.Club, error)
}

// New lists the clubs the user actively belongs to, oldest membership first.
// An unknown user simply has no clubs.
func New(log *slog.Logger, clubs UserClubsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.userClubs.New"

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

		list, err := clubs.UserClubs(r.Context(), userID)
		if err != nil {
			log.Error("failed to get user clubs", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get user clubs"))
			return
		}

		log.Info("user clubs received", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, clubs []models.Club) {
	if clubs == nil {
		clubs = []models.Club{}
	}

	render.JSON(w, r, ClubsResponse{
		Response: response.OK(),
		Clubs:    clubs,
	})
}
