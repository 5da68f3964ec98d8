package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/creatorlens/creatorlens/internal/domain"
)

var channelColumns = []string{"id", "user_id", "youtube_channel_id", "title", "thumbnail", "access_token", "refresh_token", "token_expiry", "created_at", "updated_at"}

type ListChannelsOpts struct {
	UserID    uuid.UUID
	ChannelID *uuid.UUID
}

// UpsertChannel inserts the channel, or refreshes ownership, metadata and
// credentials when the youtube channel is already connected.
func (s *store) UpsertChannel(ctx context.Context, channel *domain.Channel) (*domain.Channel, error) {
	query := builder().Insert(tableChannels).
		Columns("user_id", "youtube_channel_id", "title", "thumbnail", "access_token", "refresh_token", "token_expiry").
		Values(channel.UserID, channel.YoutubeChannelID, channel.Title, channel.Thumbnail, channel.AccessToken, channel.RefreshToken, channel.TokenExpiry).
		Suffix(`on conflict (youtube_channel_id) do update set
	user_id = excluded.user_id,
	title = excluded.title,
	thumbnail = excluded.thumbnail,
	access_token = excluded.access_token,
	refresh_token = case when excluded.refresh_token <> '' then excluded.refresh_token else channels.refresh_token end,
	token_expiry = excluded.token_expiry,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	selectQuery := builder().Select(channelColumns...).
		From(tableChannels).
		Where(sq.Eq{"youtube_channel_id": channel.YoutubeChannelID})

	var selected domain.Channel
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListChannels(ctx context.Context, opts ListChannelsOpts) ([]*domain.Channel, error) {
	query := builder().Select(channelColumns...).
		From(tableChannels).
		Where(sq.Eq{"user_id": opts.UserID}).
		OrderBy("created_at desc")

	if opts.ChannelID != nil {
		query = query.Where(sq.Eq{"id": *opts.ChannelID})
	}

	var selected []*domain.Channel
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateChannelTokens(ctx context.Context, id uuid.UUID, accessToken string, refreshToken string, expiry *time.Time) error {
	query := builder().Update(tableChannels).
		Set("access_token", accessToken).
		Set("token_expiry", expiry).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id})

	if refreshToken != "" {
		query = query.Set("refresh_token", refreshToken)
	}

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) DeleteChannel(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	query := builder().Delete(tableChannels).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"user_id": userID},
		})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) ListChannelsExpiringBefore(ctx context.Context, deadline time.Time) ([]*domain.Channel, error) {
	query := builder().Select(channelColumns...).
		From(tableChannels).
		Where(sq.And{
			sq.NotEq{"refresh_token": ""},
			sq.LtOrEq{"token_expiry": deadline},
		})

	var selected []*domain.Channel
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
