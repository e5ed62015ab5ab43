package memory

import (
	"context"
	"fmt"

	"clubhub/internal/models"
	"clubhub/internal/storage"
)

func (s *Storage) CreateUser(_ context.Context, in models.UserInput) (*models.User, error) {
	const op = "storage.memory.CreateUser"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[in.Email]; ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
	}

	user := models.User{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		StudentID: in.StudentID,
		Role:      in.Role,
		CreatedAt: s.now(),
	}

	s.users[user.ID] = record[models.User]{value: user, seq: s.nextSeq()}
	s.emails[user.Email] = user.ID

	return &user, nil
}

func (s *Storage) GetUser(_ context.Context, id string) (*models.User, error) {
	const op = "storage.memory.GetUser"

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	user := rec.value

	return &user, nil
}
