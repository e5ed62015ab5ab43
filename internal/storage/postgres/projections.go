package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"clubhub/internal/models"
)

func (s *Storage) UserClubs(ctx context.Context, userID string) ([]models.Club, error) {
	const op = "storage.postgres.UserClubs"

	query := clubSelect + `
		JOIN club_memberships um ON um.club_id = c.id
		WHERE um.user_id = $1 AND um.status = $2
		ORDER BY um.joined_at ASC`

	rows, err := s.DB.QueryContext(ctx, query, userID, models.MembershipActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	clubs := make([]models.Club, 0)
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan club: %w", op, err)
		}
		clubs = append(clubs, club)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating clubs: %w", op, err)
	}

	return clubs, nil
}

func (s *Storage) UserUpcomingEvents(ctx context.Context, userID string, now time.Time) ([]models.Event, error) {
	const op = "storage.postgres.UserUpcomingEvents"

	query := eventSelect + `
		JOIN attendances ua ON ua.event_id = e.id
		WHERE ua.user_id = $1 AND e.start_time >= $2
		ORDER BY e.start_time ASC`

	events, err := s.queryEvents(ctx, query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Storage) UserAttendedEventIDs(ctx context.Context, userID string) ([]string, error) {
	const op = "storage.postgres.UserAttendedEventIDs"

	rows, err := s.DB.QueryContext(ctx, `SELECT event_id FROM attendances WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: failed to scan event id: %w", op, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating event ids: %w", op, err)
	}

	return ids, nil
}

// Dashboard reads every section from one repeatable-read snapshot so the totals
// agree with the lists.
func (s *Storage) Dashboard(ctx context.Context, limits models.DashboardLimits) (*models.Dashboard, error) {
	const op = "storage.postgres.Dashboard"

	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var dashboard models.Dashboard

	err = tx.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM clubs),
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM club_memberships WHERE status = $1),
			(SELECT COUNT(*) FROM attendances)`,
		models.MembershipActive,
	).Scan(
		&dashboard.Stats.TotalUsers,
		&dashboard.Stats.TotalClubs,
		&dashboard.Stats.TotalEvents,
		&dashboard.Stats.TotalMemberships,
		&dashboard.Stats.TotalAttendances,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count totals: %w", op, err)
	}

	if dashboard.RecentUsers, err = recentUsers(ctx, tx, limits.RecentUsers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if dashboard.Clubs, err = clubSummaries(ctx, tx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if dashboard.Events, err = recentEvents(ctx, tx, limits.RecentEvents); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if dashboard.Memberships, err = recentMemberships(ctx, tx, limits.RecentMemberships); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &dashboard, nil
}

func recentUsers(ctx context.Context, tx *sql.Tx, limit int) ([]models.User, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, name, email, student_id, role, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// clubSummaries picks as president the flagged membership that joined first.
func clubSummaries(ctx context.Context, tx *sql.Tx) ([]models.ClubSummary, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT c.id, c.name, c.description, c.category, c.logo, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM club_memberships m WHERE m.club_id = c.id),
			(SELECT COUNT(*) FROM events e WHERE e.club_id = c.id),
			p.id, p.name, p.email, p.student_id, p.joined_at
		FROM clubs c
		LEFT JOIN LATERAL (
			SELECT u.id, u.name, u.email, u.student_id, m.joined_at
			FROM club_memberships m
			JOIN users u ON u.id = m.user_id
			WHERE m.club_id = c.id AND m.is_president
			ORDER BY m.joined_at ASC, m.id ASC
			LIMIT 1
		) p ON TRUE
		ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get clubs: %w", err)
	}
	defer rows.Close()

	clubs := make([]models.ClubSummary, 0)
	for rows.Next() {
		var summary models.ClubSummary
		var logo, presidentID, presidentName, presidentEmail, presidentStudentID sql.NullString
		var presidentJoinedAt sql.NullTime

		err = rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Description,
			&summary.Category,
			&logo,
			&summary.CreatedAt,
			&summary.UpdatedAt,
			&summary.MemberCount,
			&summary.EventCount,
			&presidentID,
			&presidentName,
			&presidentEmail,
			&presidentStudentID,
			&presidentJoinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan club: %w", err)
		}

		summary.Logo = stringPtr(logo)
		if presidentID.Valid {
			summary.President = &models.Member{
				ID:          presidentID.String,
				Name:        presidentName.String,
				Email:       presidentEmail.String,
				StudentID:   stringPtr(presidentStudentID),
				IsPresident: true,
				JoinedAt:    presidentJoinedAt.Time,
			}
		}

		clubs = append(clubs, summary)
	}

	return clubs, rows.Err()
}

func recentEvents(ctx context.Context, tx *sql.Tx, limit int) ([]models.Event, error) {
	rows, err := tx.QueryContext(ctx, eventSelect+` ORDER BY e.start_time DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
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

	return events, rows.Err()
}

func recentMemberships(ctx context.Context, tx *sql.Tx, limit int) ([]models.MembershipDetail, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT m.id, m.user_id, m.club_id, m.is_president, m.status, m.joined_at, u.name, u.email, c.name
		FROM club_memberships m
		JOIN users u ON u.id = m.user_id
		JOIN clubs c ON c.id = m.club_id
		WHERE m.status = $1
		ORDER BY m.joined_at DESC
		LIMIT $2`, models.MembershipActive, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}
	defer rows.Close()

	memberships := make([]models.MembershipDetail, 0)
	for rows.Next() {
		var m models.MembershipDetail

		err = rows.Scan(&m.ID, &m.UserID, &m.ClubID, &m.IsPresident, &m.Status, &m.JoinedAt, &m.UserName, &m.UserEmail, &m.ClubName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}
