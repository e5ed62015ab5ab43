package removeMember

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MemberRemover
type MemberRemover interface {
	RemoveMember(ctx context.Context, clubID, userID string) error
}

// New removes the membership of user memberId in club id. Nothing is deleted
// unless that exact pair exists.
func New(log *slog.Logger, members MemberRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.club.removeMember.New"

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

		userID, err := params.UUID(r, "memberId")
		if err != nil {
			log.Error("invalid member id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid member id"))
			return
		}

		log = log.With(
			slog.String("club_id", clubID),
			slog.String("user_id", userID),
		)

		err = members.RemoveMember(r.Context(), clubID, userID)
		if errors.Is(err, storage.ErrMembershipNotFound) {
			log.Info("membership not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("membership not found"))
			return
		}
		if err != nil {
			log.Error("failed to remove member", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove member"))
			return
		}

		log.Info("member removed")

		render.JSON(w, r, response.OK())
	}
}
