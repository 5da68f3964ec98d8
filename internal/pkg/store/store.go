package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/creatorlens/creatorlens/internal/domain"
	"github.com/creatorlens/creatorlens/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	UpsertChannel(ctx context.Context, channel *domain.Channel) (*domain.Channel, error)
	ListChannels(ctx context.Context, opts ListChannelsOpts) ([]*domain.Channel, error)
	UpdateChannelTokens(ctx context.Context, id uuid.UUID, accessToken string, refreshToken string, expiry *time.Time) error
	DeleteChannel(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	ListChannelsExpiringBefore(ctx context.Context, deadline time.Time) ([]*domain.Channel, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
