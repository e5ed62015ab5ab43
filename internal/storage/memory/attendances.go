package memory

import (
	"context"
	"fmt"

	"clubhub/internal/models"
	"clubhub/internal/storage"
)

func (s *Storage) RegisterForEvent(_ context.Context, eventID, userID string) (*models.Attendance, error) {
	const op = "storage.memory.RegisterForEvent"

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	key := pair{userID: userID, otherID: eventID}
	if _, ok = s.attendanceByPair[key]; ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyRegistered)
	}

	if rec.value.Full(s.attendeeCount(eventID)) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventFull)
	}

	if _, ok = s.users[userID]; !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	attendance := models.Attendance{
		ID:        newID(),
		UserID:    userID,
		EventID:   eventID,
		Status:    models.AttendanceRegistered,
		CreatedAt: s.now(),
	}

	s.attendances[attendance.ID] = record[models.Attendance]{value: attendance, seq: s.nextSeq()}
	s.attendanceByPair[key] = attendance.ID

	return &attendance, nil
}

func (s *Storage) UnregisterFromEvent(_ context.Context, eventID, userID string) error {
	const op = "storage.memory.UnregisterFromEvent"

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.attendanceByPair[pair{userID: userID, otherID: eventID}]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAttendanceNotFound)
	}

	s.deleteAttendance(id)

	return nil
}

func (s *Storage) RemoveAttendee(ctx context.Context, eventID, userID string) error {
	const op = "storage.memory.RemoveAttendee"

	if err := s.UnregisterFromEvent(ctx, eventID, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// deleteAttendance expects the write lock to be held.
func (s *Storage) deleteAttendance(id string) {
	rec, ok := s.attendances[id]
	if !ok {
		return
	}

	delete(s.attendanceByPair, pair{userID: rec.value.UserID, otherID: rec.value.EventID})
	delete(s.attendances, id)
}
