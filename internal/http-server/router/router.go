package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"clubhub/internal/config"
	"clubhub/internal/http-server/handlers/admin/dashboard"
	"clubhub/internal/http-server/handlers/attendance/createAttendance"
	"clubhub/internal/http-server/handlers/attendance/deleteAttendance"
	"clubhub/internal/http-server/handlers/club/clubEvents"
	"clubhub/internal/http-server/handlers/club/clubMembers"
	"clubhub/internal/http-server/handlers/club/createClub"
	"clubhub/internal/http-server/handlers/club/deleteClub"
	"clubhub/internal/http-server/handlers/club/getAllClubs"
	"clubhub/internal/http-server/handlers/club/getClubInfo"
	"clubhub/internal/http-server/handlers/club/joinClub"
	"clubhub/internal/http-server/handlers/club/leaveClub"
	"clubhub/internal/http-server/handlers/club/removeMember"
	"clubhub/internal/http-server/handlers/club/updateClub"
	"clubhub/internal/http-server/handlers/event/createEvent"
	"clubhub/internal/http-server/handlers/event/deleteEvent"
	"clubhub/internal/http-server/handlers/event/eventAttendees"
	"clubhub/internal/http-server/handlers/event/getAllEvents"
	"clubhub/internal/http-server/handlers/event/getEventInfo"
	"clubhub/internal/http-server/handlers/event/register"
	"clubhub/internal/http-server/handlers/event/removeAttendee"
	"clubhub/internal/http-server/handlers/event/unregister"
	"clubhub/internal/http-server/handlers/event/updateEvent"
	"clubhub/internal/http-server/handlers/membership/createMembership"
	"clubhub/internal/http-server/handlers/membership/deleteMembership"
	"clubhub/internal/http-server/handlers/user/attendedEvents"
	"clubhub/internal/http-server/handlers/user/createUser"
	"clubhub/internal/http-server/handlers/user/getUserInfo"
	"clubhub/internal/http-server/handlers/user/userClubs"
	"clubhub/internal/http-server/handlers/user/userEvents"
	"clubhub/internal/http-server/middleware/auth"
	"clubhub/internal/http-server/middleware/mwlogger"
	"clubhub/internal/http-server/middleware/ratelimit"
	"clubhub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Storage is everything the HTTP layer needs from a store.
// Both postgres.Storage and memory.Storage satisfy it.
type Storage interface {
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)

	ListClubs(ctx context.Context) ([]models.Club, error)
	CreateClub(ctx context.Context, in models.ClubInput) (*models.Club, error)
	GetClub(ctx context.Context, id string) (*models.Club, error)
	UpdateClub(ctx context.Context, id string, in models.ClubInput) (*models.Club, error)
	DeleteClub(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, in models.EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	JoinClub(ctx context.Context, clubID, userID string) (*models.Membership, error)
	LeaveClub(ctx context.Context, clubID, userID string) error
	RemoveMember(ctx context.Context, clubID, userID string) error

	RegisterForEvent(ctx context.Context, eventID, userID string) (*models.Attendance, error)
	UnregisterFromEvent(ctx context.Context, eventID, userID string) error
	RemoveAttendee(ctx context.Context, eventID, userID string) error

	Dashboard(ctx context.Context, limits models.DashboardLimits) (*models.Dashboard, error)
	UpcomingClubEvents(ctx context.Context, clubID string, now time.Time) ([]models.Event, error)
	UserClubs(ctx context.Context, userID string) ([]models.Club, error)
	UserUpcomingEvents(ctx context.Context, userID string, now time.Time) ([]models.Event, error)
	UserAttendedEventIDs(ctx context.Context, userID string) ([]string, error)
	ClubMembers(ctx context.Context, clubID string) (*models.Club, []models.Member, error)
	EventAttendees(ctx context.Context, eventID string) (*models.Event, []models.Attendee, error)
}

func New(log *slog.Logger, storage Storage, cfg *config.Config) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	if cfg.RateLimit.RPS > 0 {
		limiter := ratelimit.NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.ExpiresIn)
		router.Use(ratelimit.New(log, limiter))
	}

	admin := auth.RequireRole(log, storage, models.RoleAdmin)

	router.Route("/users", func(r chi.Router) {
		r.Post("/", createUser.New(log, storage))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", getUserInfo.New(log, storage))
			r.Get("/clubs", userClubs.New(log, storage))
			r.Get("/events", userEvents.New(log, storage))
			r.Get("/attended-events", attendedEvents.New(log, storage))
		})
	})

	router.Route("/clubs", func(r chi.Router) {
		r.Get("/", getAllClubs.New(log, storage))
		r.With(admin).Post("/", createClub.New(log, storage))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", getClubInfo.New(log, storage))
			r.Get("/events", clubEvents.New(log, storage))
			r.Get("/members", clubMembers.New(log, storage))
			r.Post("/join", joinClub.New(log, storage))
			r.Post("/leave", leaveClub.New(log, storage))

			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Put("/", updateClub.New(log, storage))
				r.Delete("/", deleteClub.New(log, storage))
				r.Delete("/members/{memberId}", removeMember.New(log, storage))
			})
		})
	})

	router.Route("/events", func(r chi.Router) {
		r.Get("/", getAllEvents.New(log, storage))
		r.With(admin).Post("/", createEvent.New(log, storage))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", getEventInfo.New(log, storage))
			r.Get("/attendees", eventAttendees.New(log, storage))
			r.Post("/register", register.New(log, storage))
			r.Post("/unregister", unregister.New(log, storage))

			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Put("/", updateEvent.New(log, storage))
				r.Delete("/", deleteEvent.New(log, storage))
				r.Delete("/attendees/{attendeeId}", removeAttendee.New(log, storage))
			})
		})
	})

	router.Post("/memberships", createMembership.New(log, storage))
	router.Delete("/memberships", deleteMembership.New(log, storage))
	router.Post("/attendances", createAttendance.New(log, storage))
	router.Delete("/attendances", deleteAttendance.New(log, storage))

	router.Route("/admin", func(r chi.Router) {
		r.Use(admin)
		r.Get("/dashboard", dashboard.New(log, storage, models.DashboardLimits{
			RecentUsers:       cfg.Dashboard.RecentUsers,
			RecentEvents:      cfg.Dashboard.RecentEvents,
			RecentMemberships: cfg.Dashboard.RecentMemberships,
		}))
		r.Get("/clubs/{id}/members", clubMembers.New(log, storage))
		r.Get("/events/{id}/attendees", eventAttendees.New(log, storage))
	})

	return router
}
