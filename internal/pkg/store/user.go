package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/creatorlens/creatorlens/internal/domain"
)

var userColumns = []string{"id", "username", "display_name", "email", "password_hash", "password_salt", "created_at", "updated_at"}

func (s *store) CreateUser(ctx context.Context, user *domain.User) error {
	query := builder().Insert(tableUsers).
		Columns(userColumns[1:len(userColumns)-2]...).
		Values(user.Username, user.DisplayName, user.Email, user.UserPassword.Hash, user.UserPassword.Salt).
		Suffix("RETURNING id")

	if err := s.pool.Getx(ctx, &user.ID, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"username": username})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"id": id})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
