package clubMembers

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

type MembersResponse struct {
	response.Response
	Club    *models.Club    `json:"club"`
	Members []models.Member `json:"members"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MembersGetter
type MembersGetter interface {
	ClubMembers(ctx context.Context, clubID string) (*models.Club, []models.Member, error)
}

// New lists a club's members, newest first, next to the club itself.
func New(log *slog.Logger, members MembersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.club.clubMembers.New"

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

		club, list, err := members.ClubMembers(r.Context(), clubID)
		if errors.Is(err, storage.ErrClubNotFound) {
			log.Info("club not found", slog.String("club_id", clubID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("club not found"))
			return
		}
		if err != nil {
			log.Error("failed to get club members", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get club members"))
			return
		}

		responseOK(w, r, club, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, club *models.Club, members []models.Member) {
	if members == nil {
		members = []models.Member{}
	}

	render.JSON(w, r, MembersResponse{
		Response: response.OK(),
		Club:     club,
		Members:  members,
	})
}
