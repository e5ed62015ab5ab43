package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clubhub/internal/models"
	"clubhub/internal/storage"
)

// JoinClub creates an ACTIVE membership. The (user_id, club_id) unique constraint
// is the source of truth for duplicates, so concurrent joins cannot both succeed.
func (s *Storage) JoinClub(ctx context.Context, clubID, userID string) (*models.Membership, error) {
	const op = "storage.postgres.JoinClub"

	query := `
		INSERT INTO club_memberships (user_id, club_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, is_president, joined_at`

	membership := models.Membership{
		UserID: userID,
		ClubID: clubID,
		Status: models.MembershipActive,
	}

	err := s.DB.QueryRowContext(ctx, query, userID, clubID, models.MembershipActive).
		Scan(&membership.ID, &membership.IsPresident, &membership.JoinedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, membershipWriteError(err))
	}

	return &membership, nil
}

func (s *Storage) LeaveClub(ctx context.Context, clubID, userID string) error {
	const op = "storage.postgres.LeaveClub"

	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM club_memberships WHERE user_id = $1 AND club_id = $2`,
		userID, clubID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrMembershipNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveMember finds the membership by (club, user) and deletes it by its own id.
func (s *Storage) RemoveMember(ctx context.Context, clubID, userID string) error {
	const op = "storage.postgres.RemoveMember"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var membershipID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM club_memberships WHERE club_id = $1 AND user_id = $2 FOR UPDATE`,
		clubID, userID,
	).Scan(&membershipID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrMembershipNotFound)
		}
		return fmt.Errorf("%s: failed to find membership: %w", op, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM club_memberships WHERE id = $1`, membershipID); err != nil {
		return fmt.Errorf("%s: failed to delete membership: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) ClubMembers(ctx context.Context, clubID string) (*models.Club, []models.Member, error) {
	const op = "storage.postgres.ClubMembers"

	club, err := s.GetClub(ctx, clubID)
	if err != nil {
		return nil, nil, err
	}

	query := `
		SELECT u.id, u.name, u.email, u.student_id, m.is_president, m.joined_at
		FROM club_memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.club_id = $1
		ORDER BY m.joined_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		var member models.Member
		var studentID sql.NullString

		err = rows.Scan(&member.ID, &member.Name, &member.Email, &studentID, &member.IsPresident, &member.JoinedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: failed to scan member: %w", op, err)
		}

		member.StudentID = stringPtr(studentID)
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: error iterating members: %w", op, err)
	}

	return club, members, nil
}

func membershipWriteError(err error) error {
	if _, ok := violation(err, codeUniqueViolation); ok {
		return storage.ErrAlreadyMember
	}

	constraint, ok := violation(err, codeForeignKeyViolation)
	if !ok {
		return err
	}

	switch constraint {
	case "club_memberships_club_id_fkey":
		return storage.ErrClubNotFound
	case "club_memberships_user_id_fkey":
		return storage.ErrUserNotFound
	default:
		return err
	}
}
