package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clubhub/internal/models"
	"clubhub/internal/storage"
)

// RegisterForEvent records an attendance inside one transaction. The event row is
// locked first, which serialises registrations for the same event and keeps the
// attendance count at or below max_attendees.
func (s *Storage) RegisterForEvent(ctx context.Context, eventID, userID string) (*models.Attendance, error) {
	const op = "storage.postgres.RegisterForEvent"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var maxAttendees sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT max_attendees FROM events WHERE id = $1 FOR UPDATE`,
		eventID,
	).Scan(&maxAttendees)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: failed to lock event: %w", op, err)
	}

	var registered bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendances WHERE event_id = $1 AND user_id = $2)`,
		eventID, userID,
	).Scan(&registered)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to check existing attendance: %w", op, err)
	}

	if registered {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyRegistered)
	}

	if maxAttendees.Valid {
		var count int64
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM attendances WHERE event_id = $1`,
			eventID,
		).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to count attendances: %w", op, err)
		}

		if count >= maxAttendees.Int64 {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventFull)
		}
	}

	attendance := models.Attendance{
		UserID:  userID,
		EventID: eventID,
		Status:  models.AttendanceRegistered,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO attendances (user_id, event_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		userID, eventID, models.AttendanceRegistered,
	).Scan(&attendance.ID, &attendance.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, attendanceWriteError(err))
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &attendance, nil
}

func (s *Storage) UnregisterFromEvent(ctx context.Context, eventID, userID string) error {
	const op = "storage.postgres.UnregisterFromEvent"

	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM attendances WHERE user_id = $1 AND event_id = $2`,
		userID, eventID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrAttendanceNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveAttendee finds the attendance by (event, user) and deletes it by its own id.
func (s *Storage) RemoveAttendee(ctx context.Context, eventID, userID string) error {
	const op = "storage.postgres.RemoveAttendee"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var attendanceID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM attendances WHERE event_id = $1 AND user_id = $2 FOR UPDATE`,
		eventID, userID,
	).Scan(&attendanceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrAttendanceNotFound)
		}
		return fmt.Errorf("%s: failed to find attendance: %w", op, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM attendances WHERE id = $1`, attendanceID); err != nil {
		return fmt.Errorf("%s: failed to delete attendance: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) EventAttendees(ctx context.Context, eventID string) (*models.Event, []models.Attendee, error) {
	const op = "storage.postgres.EventAttendees"

	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	query := `
		SELECT u.id, u.name, u.email, u.student_id, a.status, a.created_at
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.event_id = $1
		ORDER BY a.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	attendees := make([]models.Attendee, 0)
	for rows.Next() {
		var attendee models.Attendee
		var studentID sql.NullString

		err = rows.Scan(&attendee.ID, &attendee.Name, &attendee.Email, &studentID, &attendee.Status, &attendee.RegisteredAt)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: failed to scan attendee: %w", op, err)
		}

		attendee.StudentID = stringPtr(studentID)
		attendees = append(attendees, attendee)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: error iterating attendees: %w", op, err)
	}

	return event, attendees, nil
}

func attendanceWriteError(err error) error {
	if _, ok := violation(err, codeUniqueViolation); ok {
		return storage.ErrAlreadyRegistered
	}

	constraint, ok := violation(err, codeForeignKeyViolation)
	if !ok {
		return err
	}

	switch constraint {
	case "attendances_event_id_fkey":
		return storage.ErrEventNotFound
	case "attendances_user_id_fkey":
		return storage.ErrUserNotFound
	default:
		return err
	}
}
