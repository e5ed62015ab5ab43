package postgres

import (
	"context"
	"fmt"
)

// Foreign keys from association rows cascade, so deleting a club removes its
// memberships and events, and deleting an event removes its attendances.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		student_id TEXT,
		role TEXT NOT NULL DEFAULT 'USER' CHECK (role IN ('ADMIN', 'USER')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS clubs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		logo TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ NOT NULL,
		max_attendees INT CHECK (max_attendees > 0),
		club_id UUID NOT NULL,
		created_by_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT events_club_id_fkey FOREIGN KEY (club_id) REFERENCES clubs (id) ON DELETE CASCADE,
		CONSTRAINT events_created_by_id_fkey FOREIGN KEY (created_by_id) REFERENCES users (id)
	)`,
	`CREATE INDEX IF NOT EXISTS events_club_id_start_time_idx ON events (club_id, start_time)`,
	`CREATE TABLE IF NOT EXISTS club_memberships (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		club_id UUID NOT NULL,
		is_president BOOLEAN NOT NULL DEFAULT FALSE,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT club_memberships_user_club_key UNIQUE (user_id, club_id),
		CONSTRAINT club_memberships_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT club_memberships_club_id_fkey FOREIGN KEY (club_id) REFERENCES clubs (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS club_memberships_club_id_idx ON club_memberships (club_id)`,
	`CREATE TABLE IF NOT EXISTS attendances (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		event_id UUID NOT NULL,
		status TEXT NOT NULL DEFAULT 'registered',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT attendances_user_event_key UNIQUE (user_id, event_id),
		CONSTRAINT attendances_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT attendances_event_id_fkey FOREIGN KEY (event_id) REFERENCES events (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS attendances_event_id_idx ON attendances (event_id)`,
}

// Migrate creates the schema if it does not exist. It is safe to run on every start.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgres.Migrate"

	for i, query := range migrations {
		if _, err := s.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("%s: migration %d: %w", op, i, err)
		}
	}

	return nil
}
