package channels

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/random"

	"github.com/creatorlens/creatorlens/internal/domain"
	"github.com/creatorlens/creatorlens/internal/pkg/cache"
	"github.com/creatorlens/creatorlens/internal/pkg/constants"
	"github.com/creatorlens/creatorlens/internal/pkg/logger"
	"github.com/creatorlens/creatorlens/internal/pkg/store"
	"github.com/creatorlens/creatorlens/internal/service/youtube"
)

const (
	oauthStateTTL    = 10 * time.Minute
	oauthStateKeyFmt = "oauth_state:%s"
)

type Service struct {
	store store.Store
	yt    *youtube.Client
	cache *cache.Cache
}

func NewService(store store.Store, yt *youtube.Client, cache *cache.Cache) *Service {
	return &Service{store: store, yt: yt, cache: cache}
}

// BeginConnect issues a one-time state token bound to the user and returns
// the google consent URL to redirect to.
func (svc *Service) BeginConnect(ctx context.Context, userID uuid.UUID) (string, error) {
	state := random.String(32, random.Alphanumeric)

	if err := svc.cache.Set(ctx, fmt.Sprintf(oauthStateKeyFmt, state), userID.String(), oauthStateTTL); err != nil {
		return "", fmt.Errorf("cache.Set: %w", err)
	}

	return svc.yt.AuthCodeURL(state), nil
}

// CompleteConnect handles the oauth callback: validates the state, exchanges
// the code, resolves the channel behind the granted tokens and upserts it.
// Reconnecting an already connected channel refreshes its credentials.
func (svc *Service) CompleteConnect(ctx context.Context, state, code string) (*domain.ChannelInfo, error) {
	key := fmt.Sprintf(oauthStateKeyFmt, state)

	userIDStr, ok, err := svc.cache.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("cache.Get: %w", err)
	}
	if !ok {
		return nil, constants.ErrInvalidOAuthState
	}
	// one-time use
	if err = svc.cache.Delete(ctx, key); err != nil {
		logger.Warnf(ctx, "failed to drop oauth state: %s", err.Error())
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, constants.ErrInvalidOAuthState
	}

	token, err := svc.yt.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("yt.ExchangeCode: %w", err)
	}

	snippet, err := svc.yt.MyChannel(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("yt.MyChannel: %w", err)
	}

	channel, err := svc.store.UpsertChannel(ctx, &domain.Channel{
		UserID:           userID,
		YoutubeChannelID: snippet.ID,
		Title:            snippet.Title,
		Thumbnail:        snippet.Thumbnail,
		AccessToken:      token.AccessToken,
		RefreshToken:     token.RefreshToken,
		TokenExpiry:      token.Expiry(time.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("store.UpsertChannel: %w", err)
	}

	logger.Infof(ctx, "connected channel %s for user %s", channel.YoutubeChannelID, userID)

	return channel.Info(), nil
}

func (svc *Service) ListChannels(ctx context.Context, userID uuid.UUID) ([]*domain.ChannelInfo, error) {
	channels, err := svc.store.ListChannels(ctx, store.ListChannelsOpts{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("store.ListChannels: %w", err)
	}

	infos := make([]*domain.ChannelInfo, 0, len(channels))
	for _, channel := range channels {
		infos = append(infos, channel.Info())
	}

	return infos, nil
}

func (svc *Service) Disconnect(ctx context.Context, userID, channelID uuid.UUID) error {
	if err := svc.store.DeleteChannel(ctx, channelID, userID); err != nil {
		return fmt.Errorf("store.DeleteChannel: %w", err)
	}
	return nil
}

// EnsureFreshToken returns a usable access token for the channel, refreshing
// and persisting the credential when the stored one is expired.
func (svc *Service) EnsureFreshToken(ctx context.Context, channel *domain.Channel) (string, error) {
	if !channel.TokenExpired(time.Now()) {
		return channel.AccessToken, nil
	}

	token, err := svc.yt.RefreshToken(ctx, channel.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("yt.RefreshToken: %w", err)
	}

	expiry := token.Expiry(time.Now())
	if err = svc.store.UpdateChannelTokens(ctx, channel.ID, token.AccessToken, token.RefreshToken, expiry); err != nil {
		return "", fmt.Errorf("store.UpdateChannelTokens: %w", err)
	}

	channel.AccessToken = token.AccessToken
	channel.TokenExpiry = expiry

	return token.AccessToken, nil
}
