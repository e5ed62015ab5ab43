package getClubInfo

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
)

type ClubResponse struct {
	response.Response
	Club *models.Club `json:"club"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClubGetter
type ClubGetter interface {
	GetClub(ctx context.Context, id string) (*models.Club, error)
}

func New(log *slog.Logger, clubs ClubGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.club.getClubInfo.New"

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

		club, err := clubs.GetClub(r.Context(), clubID)
		if errors.Is(err, storage.ErrClubNotFound) {
			log.Info("club not found", slog.String("club_id", clubID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("club not found"))
			return
		}
		if err != nil {
			log.Error("failed to get club", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get club"))
			return
		}

		responseOK(w, r, club)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, club *models.Club) {
	render.JSON(w, r, ClubResponse{
		Response: response.OK(),
		Club:     club,
	})
}
