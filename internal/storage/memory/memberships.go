package memory

import (
	"context"
	"fmt"

	"clubhub/internal/models"
	"clubhub/internal/storage"
)

func (s *Storage) JoinClub(_ context.Context, clubID, userID string) (*models.Membership, error) {
	const op = "storage.memory.JoinClub"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clubs[clubID]; !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrClubNotFound)
	}

	if _, ok := s.users[userID]; !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	key := pair{userID: userID, otherID: clubID}
	if _, ok := s.membershipByPair[key]; ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyMember)
	}

	membership := models.Membership{
		ID:       newID(),
		UserID:   userID,
		ClubID:   clubID,
		Status:   models.MembershipActive,
		JoinedAt: s.now(),
	}

	s.memberships[membership.ID] = record[models.Membership]{value: membership, seq: s.nextSeq()}
	s.membershipByPair[key] = membership.ID

	return &membership, nil
}

func (s *Storage) LeaveClub(_ context.Context, clubID, userID string) error {
	const op = "storage.memory.LeaveClub"

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.membershipByPair[pair{userID: userID, otherID: clubID}]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrMembershipNotFound)
	}

	s.deleteMembership(id)

	return nil
}

func (s *Storage) RemoveMember(ctx context.Context, clubID, userID string) error {
	const op = "storage.memory.RemoveMember"

	if err := s.LeaveClub(ctx, clubID, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// deleteMembership expects the write lock to be held.
func (s *Storage) deleteMembership(id string) {
	rec, ok := s.memberships[id]
	if !ok {
		return
	}

	delete(s.membershipByPair, pair{userID: rec.value.UserID, otherID: rec.value.ClubID})
	delete(s.memberships, id)
}
