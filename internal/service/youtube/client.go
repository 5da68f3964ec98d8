package youtube

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/viper"

	"github.com/creatorlens/creatorlens/internal/domain"
	"github.com/creatorlens/creatorlens/internal/pkg/constants"
)

// Overridable in tests.
var (
	analyticsBaseURL = "https://youtubeanalytics.googleapis.com/v2"
	dataBaseURL      = "https://www.googleapis.com/youtube/v3"
	oauthTokenURL    = "https://oauth2.googleapis.com/token"
	oauthAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
)

const (
	dailyMetrics       = "views,estimatedMinutesWatched,subscribersGained,subscribersLost,estimatedRevenue"
	contentTypeMetrics = "views,estimatedMinutesWatched"
)

type Client struct {
	http         *resty.Client
	clientID     string
	clientSecret string
	redirectURL  string
}

func NewClient() *Client {
	return &Client{
		http:         resty.New().SetTimeout(30 * time.Second),
		clientID:     viper.GetString(constants.ViperGoogleClientID),
		clientSecret: viper.GetString(constants.ViperGoogleClientSecret),
		redirectURL:  viper.GetString(constants.ViperGoogleRedirectURL),
	}
}

func (c *Client) queryReport(ctx context.Context, accessToken, channelID, startDate, endDate, metrics, dimensions, sort string) (*reportResponse, error) {
	var report reportResponse

	err := backoff.Retry(
		func() error {
			var apiErr errorResponse
			resp, err := c.http.R().
				SetContext(ctx).
				SetAuthToken(accessToken).
				SetQueryParams(map[string]string{
					"ids":        fmt.Sprintf("channel==%s", channelID),
					"startDate":  startDate,
					"endDate":    endDate,
					"metrics":    metrics,
					"dimensions": dimensions,
					"sort":       sort,
				}).
				SetResult(&report).
				SetError(&apiErr).
				Get(analyticsBaseURL + "/reports")
			if err != nil {
				return fmt.Errorf("reports query: %w", err)
			}
			if resp.IsError() {
				err = fmt.Errorf("reports query: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
				if resp.StatusCode() < 500 {
					return backoff.Permanent(err)
				}
				return err
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(200*time.Millisecond), 3),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	return &report, nil
}

// DailyReport returns one row per day with the core metric set.
func (c *Client) DailyReport(ctx context.Context, accessToken, channelID, startDate, endDate string) ([]domain.DailyRow, error) {
	report, err := c.queryReport(ctx, accessToken, channelID, startDate, endDate, dailyMetrics, "day", "day")
	if err != nil {
		return nil, err
	}

	rows := make([]domain.DailyRow, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, domain.DailyRow{
			Date:              cellString(cell(row, 0)),
			Views:             cellInt(cell(row, 1)),
			WatchTimeMinutes:  cellFloat(cell(row, 2)),
			SubscribersGained: cellInt(cell(row, 3)),
			SubscribersLost:   cellInt(cell(row, 4)),
			EstimatedRevenue:  cellFloat(cell(row, 5)),
		})
	}

	return rows, nil
}

// CountryRevenueReport returns the period revenue split by country.
func (c *Client) CountryRevenueReport(ctx context.Context, accessToken, channelID, startDate, endDate string) ([]domain.CountryRevenueRow, error) {
	report, err := c.queryReport(ctx, accessToken, channelID, startDate, endDate, "estimatedRevenue", "country", "-estimatedRevenue")
	if err != nil {
		return nil, err
	}

	rows := make([]domain.CountryRevenueRow, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, domain.CountryRevenueRow{
			CountryCode: cellString(cell(row, 0)),
			Revenue:     cellFloat(cell(row, 1)),
		})
	}

	return rows, nil
}

// ContentTypeReport returns per-day views and watch time split by content type.
func (c *Client) ContentTypeReport(ctx context.Context, accessToken, channelID, startDate, endDate string) ([]domain.ContentTypeRow, error) {
	report, err := c.queryReport(ctx, accessToken, channelID, startDate, endDate, contentTypeMetrics, "day,creatorContentType", "day")
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ContentTypeRow, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, domain.ContentTypeRow{
			Date:             cellString(cell(row, 0)),
			ContentType:      cellString(cell(row, 1)),
			Views:            cellInt(cell(row, 2)),
			WatchTimeMinutes: cellFloat(cell(row, 3)),
		})
	}

	return rows, nil
}

// MyChannel returns the channel owned by the token's account.
func (c *Client) MyChannel(ctx context.Context, accessToken string) (*ChannelSnippet, error) {
	var list channelListResponse
	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParams(map[string]string{
			"part": "snippet",
			"mine": "true",
		}).
		SetResult(&list).
		SetError(&apiErr).
		Get(dataBaseURL + "/channels")
	if err != nil {
		return nil, fmt.Errorf("channels list: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("channels list: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}
	if len(list.Items) == 0 {
		return nil, fmt.Errorf("channels list: account has no channel")
	}

	item := list.Items[0]
	return &ChannelSnippet{
		ID:        item.ID,
		Title:     item.Snippet.Title,
		Thumbnail: item.Snippet.Thumbnails.Default.URL,
	}, nil
}

// LongFormVideoCount counts the channel's long-form uploads published within
// the period, used by the cost-per-video profit computation. The search API
// has no "4 minutes and up" filter, so medium and long are queried separately
// and summed.
func (c *Client) LongFormVideoCount(ctx context.Context, accessToken, channelID, startDate, endDate string) (int64, error) {
	var total int64
	for _, duration := range []string{"medium", "long"} {
		count, err := c.videoCount(ctx, accessToken, channelID, startDate, endDate, duration)
		if err != nil {
			return 0, err
		}
		total += count
	}

	return total, nil
}

func (c *Client) videoCount(ctx context.Context, accessToken, channelID, startDate, endDate, videoDuration string) (int64, error) {
	var list searchListResponse
	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParams(map[string]string{
			"part":            "id",
			"channelId":       channelID,
			"type":            "video",
			"videoDuration":   videoDuration,
			"publishedAfter":  startDate + "T00:00:00Z",
			"publishedBefore": endDate + "T23:59:59Z",
			"maxResults":      "0",
		}).
		SetResult(&list).
		SetError(&apiErr).
		Get(dataBaseURL + "/search")
	if err != nil {
		return 0, fmt.Errorf("search list: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("search list: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}

	return list.PageInfo.TotalResults, nil
}
