package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clubhub/internal/models"
	"clubhub/internal/storage"
)

const clubSelect = `
	SELECT c.id, c.name, c.description, c.category, c.logo, c.created_at, c.updated_at,
		(SELECT COUNT(*) FROM club_memberships m WHERE m.club_id = c.id),
		(SELECT COUNT(*) FROM events e WHERE e.club_id = c.id)
	FROM clubs c`

func (s *Storage) ListClubs(ctx context.Context) ([]models.Club, error) {
	const op = "storage.postgres.ListClubs"

	rows, err := s.DB.QueryContext(ctx, clubSelect+` ORDER BY c.created_at DESC`)
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

func (s *Storage) CreateClub(ctx context.Context, in models.ClubInput) (*models.Club, error) {
	const op = "storage.postgres.CreateClub"

	query := `
		INSERT INTO clubs (name, description, category, logo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	club := models.Club{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Logo:        in.Logo,
	}

	err := s.DB.QueryRowContext(ctx, query, in.Name, in.Description, in.Category, nullableString(in.Logo)).
		Scan(&club.ID, &club.CreatedAt, &club.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &club, nil
}

func (s *Storage) GetClub(ctx context.Context, id string) (*models.Club, error) {
	const op = "storage.postgres.GetClub"

	club, err := scanClub(s.DB.QueryRowContext(ctx, clubSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrClubNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &club, nil
}

func (s *Storage) UpdateClub(ctx context.Context, id string, in models.ClubInput) (*models.Club, error) {
	const op = "storage.postgres.UpdateClub"

	query := `
		UPDATE clubs
		SET name = $2, description = $3, category = $4, logo = $5, updated_at = NOW()
		WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query, id, in.Name, in.Description, in.Category, nullableString(in.Logo))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrClubNotFound); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetClub(ctx, id)
}

// DeleteClub removes the club together with its memberships, its events and their attendances.
func (s *Storage) DeleteClub(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteClub"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrClubNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scanClub(row scanner) (models.Club, error) {
	var club models.Club
	var logo sql.NullString

	err := row.Scan(
		&club.ID,
		&club.Name,
		&club.Description,
		&club.Category,
		&logo,
		&club.CreatedAt,
		&club.UpdatedAt,
		&club.MemberCount,
		&club.EventCount,
	)
	if err != nil {
		return models.Club{}, err
	}

	club.Logo = stringPtr(logo)

	return club, nil
}

// expectAffected returns notFound when the statement touched no rows.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return notFound
	}

	return nil
}
