package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clubhub/internal/models"
	"clubhub/internal/storage"
)

const eventSelect = `
	SELECT e.id, e.title, e.description, e.location, e.start_time, e.end_time, e.max_attendees,
		e.club_id, c.name, e.created_by_id, e.created_at, e.updated_at,
		(SELECT COUNT(*) FROM attendances a WHERE a.event_id = e.id)
	FROM events e
	JOIN clubs c ON c.id = e.club_id`

func (s *Storage) ListEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.postgres.ListEvents"

	events, err := s.queryEvents(ctx, eventSelect+` ORDER BY e.start_time ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Storage) CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error) {
	const op = "storage.postgres.CreateEvent"

	query := `
		INSERT INTO events (title, description, location, start_time, end_time, max_attendees, club_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id string
	err := s.DB.QueryRowContext(ctx, query,
		in.Title,
		in.Description,
		in.Location,
		in.StartTime,
		in.EndTime,
		nullableInt(in.MaxAttendees),
		in.ClubID,
		in.CreatedByID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, eventWriteError(err))
	}

	return s.GetEvent(ctx, id)
}

func (s *Storage) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage.postgres.GetEvent"

	event, err := scanEvent(s.DB.QueryRowContext(ctx, eventSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, id string, in models.EventInput) (*models.Event, error) {
	const op = "storage.postgres.UpdateEvent"

	query := `
		UPDATE events
		SET title = $2, description = $3, location = $4, start_time = $5, end_time = $6,
			max_attendees = $7, club_id = $8, updated_at = NOW()
		WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query,
		id,
		in.Title,
		in.Description,
		in.Location,
		in.StartTime,
		in.EndTime,
		nullableInt(in.MaxAttendees),
		in.ClubID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, eventWriteError(err))
	}

	if err = expectAffected(res, storage.ErrEventNotFound); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetEvent(ctx, id)
}

// DeleteEvent removes the event and its attendances.
func (s *Storage) DeleteEvent(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteEvent"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrEventNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpcomingClubEvents(ctx context.Context, clubID string, now time.Time) ([]models.Event, error) {
	const op = "storage.postgres.UpcomingClubEvents"

	events, err := s.queryEvents(ctx,
		eventSelect+` WHERE e.club_id = $1 AND e.start_time >= $2 ORDER BY e.start_time ASC`,
		clubID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Storage) queryEvents(ctx context.Context, query string, args ...any) ([]models.Event, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func scanEvent(row scanner) (models.Event, error) {
	var event models.Event
	var maxAttendees sql.NullInt64

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartTime,
		&event.EndTime,
		&maxAttendees,
		&event.ClubID,
		&event.ClubName,
		&event.CreatedByID,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.AttendeeCount,
	)
	if err != nil {
		return models.Event{}, err
	}

	event.MaxAttendees = intPtr(maxAttendees)
	event.Status = event.StatusAt(time.Now())

	return event, nil
}

func eventWriteError(err error) error {
	constraint, ok := violation(err, codeForeignKeyViolation)
	if !ok {
		return err
	}

	switch constraint {
	case "events_club_id_fkey":
		return storage.ErrClubNotFound
	case "events_created_by_id_fkey":
		return storage.ErrUserNotFound
	default:
		return err
	}
}
