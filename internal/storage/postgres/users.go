package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clubhub/internal/models"
	"clubhub/internal/storage"
)

func (s *Storage) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	const op = "storage.postgres.CreateUser"

	query := `
		INSERT INTO users (name, email, student_id, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	user := models.User{
		Name:      in.Name,
		Email:     in.Email,
		StudentID: in.StudentID,
		Role:      in.Role,
	}

	err := s.DB.QueryRowContext(ctx, query, in.Name, in.Email, nullableString(in.StudentID), in.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if _, ok := violation(err, codeUniqueViolation); ok {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.postgres.GetUser"

	query := `
		SELECT id, name, email, student_id, role, created_at
		FROM users
		WHERE id = $1`

	user, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func scanUser(row scanner) (models.User, error) {
	var user models.User
	var studentID sql.NullString

	err := row.Scan(&user.ID, &user.Name, &user.Email, &studentID, &user.Role, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	user.StudentID = stringPtr(studentID)

	return user, nil
}
