package memory

import (
	"context"
	"fmt"
	"time"

	"clubhub/internal/models"
	"clubhub/internal/storage"
)

func (s *Storage) ListClubs(_ context.Context) ([]models.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := values(s.clubs)
	newestFirst(recs, func(c models.Club) time.Time { return c.CreatedAt })

	clubs := make([]models.Club, 0, len(recs))
	for _, rec := range recs {
		clubs = append(clubs, s.clubView(rec.value))
	}

	return clubs, nil
}

func (s *Storage) CreateClub(_ context.Context, in models.ClubInput) (*models.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	club := models.Club{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Logo:        in.Logo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.clubs[club.ID] = record[models.Club]{value: club, seq: s.nextSeq()}

	return &club, nil
}

func (s *Storage) GetClub(_ context.Context, id string) (*models.Club, error) {
	const op = "storage.memory.GetClub"

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.clubs[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrClubNotFound)
	}

	club := s.clubView(rec.value)

	return &club, nil
}

func (s *Storage) UpdateClub(_ context.Context, id string, in models.ClubInput) (*models.Club, error) {
	const op = "storage.memory.UpdateClub"

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.clubs[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrClubNotFound)
	}

	rec.value.Name = in.Name
	rec.value.Description = in.Description
	rec.value.Category = in.Category
	rec.value.Logo = in.Logo
	rec.value.UpdatedAt = s.now()
	s.clubs[id] = rec

	club := s.clubView(rec.value)

	return &club, nil
}

// DeleteClub removes the club together with its memberships, its events and their attendances.
func (s *Storage) DeleteClub(_ context.Context, id string) error {
	const op = "storage.memory.DeleteClub"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clubs[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrClubNotFound)
	}

	for mid, rec := range s.memberships {
		if rec.value.ClubID == id {
			s.deleteMembership(mid)
		}
	}

	for eid, rec := range s.events {
		if rec.value.ClubID == id {
			s.deleteEvent(eid)
		}
	}

	delete(s.clubs, id)

	return nil
}

func (s *Storage) ClubMembers(_ context.Context, clubID string) (*models.Club, []models.Member, error) {
	const op = "storage.memory.ClubMembers"

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.clubs[clubID]
	if !ok {
		return nil, nil, fmt.Errorf("%s: %w", op, storage.ErrClubNotFound)
	}

	var recs []record[models.Membership]
	for _, m := range s.memberships {
		if m.value.ClubID == clubID {
			recs = append(recs, m)
		}
	}
	newestFirst(recs, func(m models.Membership) time.Time { return m.JoinedAt })

	members := make([]models.Member, 0, len(recs))
	for _, m := range recs {
		members = append(members, s.member(m.value))
	}

	club := s.clubView(rec.value)

	return &club, members, nil
}

func (s *Storage) UpcomingClubEvents(_ context.Context, clubID string, now time.Time) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.eventsByStart(func(e models.Event) bool {
		return e.ClubID == clubID && !e.StartTime.Before(now)
	}), nil
}

func (s *Storage) clubView(club models.Club) models.Club {
	club.MemberCount, club.EventCount = 0, 0

	for _, m := range s.memberships {
		if m.value.ClubID == club.ID {
			club.MemberCount++
		}
	}

	for _, e := range s.events {
		if e.value.ClubID == club.ID {
			club.EventCount++
		}
	}

	return club
}

func (s *Storage) member(m models.Membership) models.Member {
	user := s.users[m.UserID].value

	return models.Member{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		StudentID:   user.StudentID,
		IsPresident: m.IsPresident,
		JoinedAt:    m.JoinedAt,
	}
}
