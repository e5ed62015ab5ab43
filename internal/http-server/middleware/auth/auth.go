// Package auth resolves the caller from the Authorization header and guards
// role-restricted routes.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"clubhub/internal/lib/api/response"
	"clubhub/internal/lib/logger/sl"
	"clubhub/internal/models"
	"clubhub/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// WithUser returns a copy of ctx carrying user as the authenticated caller.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext returns the user stored by RequireRole.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(*models.User)
	return user, ok
}

// RequireRole answers 401 when the bearer identity is missing or unknown and
// 403 when the user does not hold role.
func RequireRole(log *slog.Logger, users UserProvider, role models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			log := log.With(
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			userID, ok := bearer(r)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("unknown identity", slog.String("user_id", userID))

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}
			if err != nil {
				log.Error("failed to resolve identity", sl.Err(err))

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			if user.Role != role {
				log.Info("access denied", slog.String("user_id", user.ID))

				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		}

		return http.HandlerFunc(fn)
	}
}

func bearer(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	id, err := uuid.Parse(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
	if err != nil {
		return "", false
	}

	return id.String(), true
}
