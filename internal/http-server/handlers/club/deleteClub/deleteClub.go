package deleteClub

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
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClubDeleter
type ClubDeleter interface {
	DeleteClub(ctx context.Context, id string) error
}

// New deletes the club along with its memberships and events.
func New(log *slog.Logger, clubs ClubDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.club.deleteClub.New"

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

		err = clubs.DeleteClub(r.Context(), clubID)
		if errors.Is(err, storage.ErrClubNotFound) {
			log.Info("club not found", slog.String("club_id", clubID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("club not found"))
			return
		}
		if err != nil {
			log.Error("failed to delete club", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete club"))
			return
		}

		log.Info("club deleted", slog.String("club_id", clubID))

		render.JSON(w, r, response.OK())
	}
}
