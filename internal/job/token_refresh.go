package job

import (
	"context"
	"time"

	"github.com/creatorlens/creatorlens/internal/pkg/logger"
	"github.com/creatorlens/creatorlens/internal/pkg/store"
	"github.com/creatorlens/creatorlens/internal/service/channels"
)

// refresh anything expiring within the next sweep interval
const refreshHorizon = time.Hour

// TokenRefreshJob proactively refreshes channel credentials that are about to
// expire so dashboard requests rarely pay the refresh round trip.
type TokenRefreshJob struct {
	store       store.Store
	channelsSvc *channels.Service
}

func NewTokenRefreshJob(store store.Store, channelsSvc *channels.Service) *TokenRefreshJob {
	return &TokenRefreshJob{store: store, channelsSvc: channelsSvc}
}

func (j *TokenRefreshJob) Run() {
	ctx := context.Background()

	expiring, err := j.store.ListChannelsExpiringBefore(ctx, time.Now().Add(refreshHorizon))
	if err != nil {
		logger.Errorf(ctx, "token refresh sweep: list channels: %s", err.Error())
		return
	}

	refreshed := 0
	for _, channel := range expiring {
		// force the refresh path regardless of the exact expiry
		channel.TokenExpiry = &time.Time{}
		if _, err = j.channelsSvc.EnsureFreshToken(ctx, channel); err != nil {
			logger.Warnf(ctx, "token refresh sweep: channel %s: %s", channel.YoutubeChannelID, err.Error())
			continue
		}
		refreshed++
	}

	if len(expiring) > 0 {
		logger.Infof(ctx, "token refresh sweep: refreshed %d/%d channels", refreshed, len(expiring))
	}
}
