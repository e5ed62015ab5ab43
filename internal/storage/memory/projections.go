package memory

import (
	"context"
	"time"

	"clubhub/internal/models"
)

func (s *Storage) UserClubs(_ context.Context, userID string) ([]models.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []record[models.Membership]
	for _, m := range s.memberships {
		if m.value.UserID == userID && m.value.Status == models.MembershipActive {
			recs = append(recs, m)
		}
	}
	oldestFirst(recs, func(m models.Membership) time.Time { return m.JoinedAt })

	clubs := make([]models.Club, 0, len(recs))
	for _, m := range recs {
		clubs = append(clubs, s.clubView(s.clubs[m.value.ClubID].value))
	}

	return clubs, nil
}

func (s *Storage) UserUpcomingEvents(_ context.Context, userID string, now time.Time) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.eventsByStart(func(e models.Event) bool {
		_, registered := s.attendanceByPair[pair{userID: userID, otherID: e.ID}]
		return registered && !e.StartTime.Before(now)
	}), nil
}

func (s *Storage) UserAttendedEventIDs(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []record[models.Attendance]
	for _, a := range s.attendances {
		if a.value.UserID == userID {
			recs = append(recs, a)
		}
	}
	oldestFirst(recs, func(a models.Attendance) time.Time { return a.CreatedAt })

	ids := make([]string, 0, len(recs))
	for _, a := range recs {
		ids = append(ids, a.value.EventID)
	}

	return ids, nil
}

func (s *Storage) Dashboard(_ context.Context, limits models.DashboardLimits) (*models.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dashboard models.Dashboard

	dashboard.Stats = models.DashboardStats{
		TotalUsers:       len(s.users),
		TotalClubs:       len(s.clubs),
		TotalEvents:      len(s.events),
		TotalAttendances: len(s.attendances),
	}

	var active []record[models.Membership]
	for _, m := range s.memberships {
		if m.value.Status == models.MembershipActive {
			active = append(active, m)
		}
	}
	dashboard.Stats.TotalMemberships = len(active)

	users := values(s.users)
	newestFirst(users, func(u models.User) time.Time { return u.CreatedAt })
	dashboard.RecentUsers = make([]models.User, 0)
	for _, u := range head(users, limits.RecentUsers) {
		dashboard.RecentUsers = append(dashboard.RecentUsers, u.value)
	}

	clubs := values(s.clubs)
	newestFirst(clubs, func(c models.Club) time.Time { return c.CreatedAt })
	dashboard.Clubs = make([]models.ClubSummary, 0, len(clubs))
	for _, c := range clubs {
		dashboard.Clubs = append(dashboard.Clubs, models.ClubSummary{
			Club:      s.clubView(c.value),
			President: s.president(c.value.ID),
		})
	}

	events := values(s.events)
	newestFirst(events, func(e models.Event) time.Time { return e.StartTime })
	dashboard.Events = make([]models.Event, 0)
	for _, e := range head(events, limits.RecentEvents) {
		dashboard.Events = append(dashboard.Events, s.eventView(e.value))
	}

	newestFirst(active, func(m models.Membership) time.Time { return m.JoinedAt })
	dashboard.Memberships = make([]models.MembershipDetail, 0)
	for _, m := range head(active, limits.RecentMemberships) {
		user := s.users[m.value.UserID].value
		dashboard.Memberships = append(dashboard.Memberships, models.MembershipDetail{
			Membership: m.value,
			UserName:   user.Name,
			UserEmail:  user.Email,
			ClubName:   s.clubs[m.value.ClubID].value.Name,
		})
	}

	return &dashboard, nil
}

// president picks the flagged membership that joined first.
func (s *Storage) president(clubID string) *models.Member {
	var flagged []record[models.Membership]
	for _, m := range s.memberships {
		if m.value.ClubID == clubID && m.value.IsPresident {
			flagged = append(flagged, m)
		}
	}

	if len(flagged) == 0 {
		return nil
	}

	oldestFirst(flagged, func(m models.Membership) time.Time { return m.JoinedAt })
	member := s.member(flagged[0].value)

	return &member
}

func head[T any](recs []record[T], n int) []record[T] {
	if n < 0 {
		n = 0
	}
	if len(recs) > n {
		return recs[:n]
	}
	return recs
}
