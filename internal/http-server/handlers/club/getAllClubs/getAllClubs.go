package getAllClubs

import (
	"context"
	"log/slog"
	"net/http"

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClubsGetter
type ClubsGetter interface {
	ListClubs(ctx context.Context) ([]models.Club, error)
}

func New(log *slog.Logger, clubs ClubsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.club.getAllClubs.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		list, err := clubs.ListClubs(r.Context())
		if err != nil {
			log.Error("failed to get clubs", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get clubs"))
			return
		}

		log.Info("clubs received", slog.Int("count", len(list)))

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
