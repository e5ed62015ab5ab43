package memory

import (
	"context"
	"fmt"
	"time"

	"clubhub/internal/models"
	"clubhub/internal/storage"
)

func (s *Storage) ListEvents(_ context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.eventsByStart(func(models.Event) bool { return true }), nil
}

func (s *Storage) CreateEvent(_ context.Context, in models.EventInput) (*models.Event, error) {
	const op = "storage.memory.CreateEvent"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEventRefs(in, true); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	event := models.Event{
		ID:           newID(),
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		MaxAttendees: in.MaxAttendees,
		ClubID:       in.ClubID,
		CreatedByID:  in.CreatedByID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.events[event.ID] = record[models.Event]{value: event, seq: s.nextSeq()}

	view := s.eventView(event)

	return &view, nil
}

func (s *Storage) GetEvent(_ context.Context, id string) (*models.Event, error) {
	const op = "storage.memory.GetEvent"

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.events[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	event := s.eventView(rec.value)

	return &event, nil
}

func (s *Storage) UpdateEvent(_ context.Context, id string, in models.EventInput) (*models.Event, error) {
	const op = "storage.memory.UpdateEvent"

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.events[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	if err := s.checkEventRefs(in, false); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rec.value.Title = in.Title
	rec.value.Description = in.Description
	rec.value.Location = in.Location
	rec.value.StartTime = in.StartTime
	rec.value.EndTime = in.EndTime
	rec.value.MaxAttendees = in.MaxAttendees
	rec.value.ClubID = in.ClubID
	rec.value.UpdatedAt = s.now()
	s.events[id] = rec

	event := s.eventView(rec.value)

	return &event, nil
}

// DeleteEvent removes the event and its attendances.
func (s *Storage) DeleteEvent(_ context.Context, id string) error {
	const op = "storage.memory.DeleteEvent"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	s.deleteEvent(id)

	return nil
}

func (s *Storage) EventAttendees(_ context.Context, eventID string) (*models.Event, []models.Attendee, error) {
	const op = "storage.memory.EventAttendees"

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.events[eventID]
	if !ok {
		return nil, nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	var recs []record[models.Attendance]
	for _, a := range s.attendances {
		if a.value.EventID == eventID {
			recs = append(recs, a)
		}
	}
	newestFirst(recs, func(a models.Attendance) time.Time { return a.CreatedAt })

	attendees := make([]models.Attendee, 0, len(recs))
	for _, a := range recs {
		user := s.users[a.value.UserID].value
		attendees = append(attendees, models.Attendee{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			StudentID:    user.StudentID,
			Status:       a.value.Status,
			RegisteredAt: a.value.CreatedAt,
		})
	}

	event := s.eventView(rec.value)

	return &event, attendees, nil
}

func (s *Storage) checkEventRefs(in models.EventInput, checkCreator bool) error {
	if _, ok := s.clubs[in.ClubID]; !ok {
		return storage.ErrClubNotFound
	}

	if checkCreator {
		if _, ok := s.users[in.CreatedByID]; !ok {
			return storage.ErrUserNotFound
		}
	}

	return nil
}

// deleteEvent expects the write lock to be held.
func (s *Storage) deleteEvent(id string) {
	for aid, rec := range s.attendances {
		if rec.value.EventID == id {
			s.deleteAttendance(aid)
		}
	}

	delete(s.events, id)
}

func (s *Storage) eventView(event models.Event) models.Event {
	event.ClubName = s.clubs[event.ClubID].value.Name
	event.AttendeeCount = s.attendeeCount(event.ID)
	event.Status = event.StatusAt(s.now())

	return event
}

func (s *Storage) attendeeCount(eventID string) int {
	n := 0
	for _, a := range s.attendances {
		if a.value.EventID == eventID {
			n++
		}
	}

	return n
}

// eventsByStart returns matching events ascending by start time.
func (s *Storage) eventsByStart(match func(models.Event) bool) []models.Event {
	var recs []record[models.Event]
	for _, rec := range s.events {
		if match(rec.value) {
			recs = append(recs, rec)
		}
	}
	oldestFirst(recs, func(e models.Event) time.Time { return e.StartTime })

	events := make([]models.Event, 0, len(recs))
	for _, rec := range recs {
		events = append(events, s.eventView(rec.value))
	}

	return events
}
