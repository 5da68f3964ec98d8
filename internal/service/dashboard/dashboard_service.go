package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/creatorlens/creatorlens/internal/domain"
	"github.com/creatorlens/creatorlens/internal/pkg/cache"
	"github.com/creatorlens/creatorlens/internal/pkg/constants"
	"github.com/creatorlens/creatorlens/internal/pkg/logger"
	"github.com/creatorlens/creatorlens/internal/pkg/store"
	"github.com/creatorlens/creatorlens/internal/service/channels"
	"github.com/creatorlens/creatorlens/internal/service/youtube"
)

const overviewCacheKeyFmt = "overview:%s:%s:%s:%s:%s"

type Service struct {
	store    store.Store
	channels *channels.Service
	yt       *youtube.Client
	cache    *cache.Cache
}

func NewService(store store.Store, channelsSvc *channels.Service, yt *youtube.Client, cache *cache.Cache) *Service {
	return &Service{store: store, channels: channelsSvc, yt: yt, cache: cache}
}

func (svc *Service) options() Options {
	return Options{
		ContentTypeSplit: viper.GetBool(constants.ViperContentTypeSplit),
		USTaxAdjustment:  viper.GetBool(constants.ViperUSTaxAdjustment),
		ProfitCost:       viper.GetBool(constants.ViperProfitCost),
		CostPerVideo:     viper.GetFloat64(constants.ViperCostPerVideo),
	}
}

// Overview fetches every connected channel's reports for the resolved window
// and aggregates them. channelID narrows the dashboard to a single channel.
func (svc *Service) Overview(ctx context.Context, userID uuid.UUID, channelID *uuid.UUID, sel domain.RangeSelection) (*domain.AnalyticsResponse, error) {
	window, err := ResolveWindow(
		sel,
		time.Now(),
		viper.GetInt(constants.ViperReportDelayDays),
		viper.GetTime(constants.ViperLifetimeStart),
	)
	if err != nil {
		return nil, err
	}

	current, previous := window.Current(), window.Previous()

	cacheKey := svc.cacheKey(userID, channelID, current, previous)
	cacheTTL := viper.GetDuration(constants.ViperAnalyticsCacheTTL)
	if cacheTTL > 0 {
		if cached, ok, cacheErr := svc.cache.Get(ctx, cacheKey); cacheErr == nil && ok {
			var resp domain.AnalyticsResponse
			if err = sonic.UnmarshalString(cached, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	listOpts := store.ListChannelsOpts{UserID: userID, ChannelID: channelID}
	connected, err := svc.store.ListChannels(ctx, listOpts)
	if err != nil {
		return nil, fmt.Errorf("store.ListChannels: %w", err)
	}
	if len(connected) == 0 {
		return nil, constants.ErrNoChannels
	}

	opts := svc.options()

	reportSets := make([]domain.ChannelReportSet, 0, len(connected))
	reportSetsMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)
	for _, channel := range connected {
		channel := channel
		eg.Go(func() error {
			set, fetchErr := svc.fetchChannel(egCtx, channel, current, previous, opts)
			if fetchErr != nil {
				// drop the channel for this call only
				logger.Errorf(egCtx, "fetch channel %s: %s", channel.YoutubeChannelID, fetchErr.Error())
				return nil
			}

			reportSetsMx.Lock()
			defer reportSetsMx.Unlock()
			reportSets = append(reportSets, *set)
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	resp := &domain.AnalyticsResponse{
		Analytics:         Aggregate(reportSets, opts),
		DateRange:         current,
		PreviousDateRange: previous,
		ChannelsConnected: len(connected),
		ChannelsFetched:   len(reportSets),
	}

	if cacheTTL > 0 {
		if encoded, marshalErr := sonic.MarshalString(resp); marshalErr == nil {
			if cacheErr := svc.cache.Set(ctx, cacheKey, encoded, cacheTTL); cacheErr != nil {
				logger.Warnf(ctx, "overview cache set: %s", cacheErr.Error())
			}
		}
	}

	return resp, nil
}

// fetchChannel refreshes the credential when needed and pulls the four report
// sets for one channel.
func (svc *Service) fetchChannel(ctx context.Context, channel *domain.Channel, current, previous domain.DateRange, opts Options) (*domain.ChannelReportSet, error) {
	accessToken, err := svc.channels.EnsureFreshToken(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("EnsureFreshToken: %w", err)
	}

	set := &domain.ChannelReportSet{
		ChannelID:        channel.ID.String(),
		YoutubeChannelID: channel.YoutubeChannelID,
		Title:            channel.Title,
		Thumbnail:        channel.Thumbnail,
	}

	set.Current, err = svc.yt.DailyReport(ctx, accessToken, channel.YoutubeChannelID, current.StartDate, current.EndDate)
	if err != nil {
		return nil, fmt.Errorf("DailyReport: %w", err)
	}

	set.Previous, err = svc.yt.DailyReport(ctx, accessToken, channel.YoutubeChannelID, previous.StartDate, previous.EndDate)
	if err != nil {
		return nil, fmt.Errorf("DailyReport previous: %w", err)
	}

	set.CountryRevenue, err = svc.yt.CountryRevenueReport(ctx, accessToken, channel.YoutubeChannelID, current.StartDate, current.EndDate)
	if err != nil {
		return nil, fmt.Errorf("CountryRevenueReport: %w", err)
	}

	if opts.ContentTypeSplit {
		set.ContentType, err = svc.yt.ContentTypeReport(ctx, accessToken, channel.YoutubeChannelID, current.StartDate, current.EndDate)
		if err != nil {
			return nil, fmt.Errorf("ContentTypeReport: %w", err)
		}
	}

	if opts.ProfitCost {
		set.LongFormVideoCount, err = svc.yt.LongFormVideoCount(ctx, accessToken, channel.YoutubeChannelID, current.StartDate, current.EndDate)
		if err != nil {
			return nil, fmt.Errorf("LongFormVideoCount: %w", err)
		}
	}

	return set, nil
}

func (svc *Service) cacheKey(userID uuid.UUID, channelID *uuid.UUID, current, previous domain.DateRange) string {
	channelKey := "all"
	if channelID != nil {
		channelKey = channelID.String()
	}
	return fmt.Sprintf(overviewCacheKeyFmt, userID, channelKey, current.StartDate, current.EndDate, previous.StartDate)
}
