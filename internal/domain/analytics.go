package domain

// Content type tags as reported by the upstream creatorContentType dimension.
const (
	ContentTypeVideoOnDemand = "VIDEO_ON_DEMAND"
	ContentTypeLiveStream    = "LIVE_STREAM"
	ContentTypeShorts        = "SHORTS"
)

// RangeSelection describes the requested reporting period. Exactly one of the
// modes is expected: Days preset, explicit Start/End, Month+Year, Year alone,
// or Lifetime.
type RangeSelection struct {
	Days      int
	StartDate string
	EndDate   string
	Month     int
	Year      int
	Lifetime  bool
}

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// DailyRow is one reporting day for one channel as returned by the upstream
// daily report.
type DailyRow struct {
	Date              string
	Views             int64
	WatchTimeMinutes  float64
	SubscribersGained int64
	SubscribersLost   int64
	EstimatedRevenue  float64
}

// CountryRevenueRow is one country bucket of a channel's period revenue.
type CountryRevenueRow struct {
	CountryCode string
	Revenue     float64
}

// ContentTypeRow is one (day, content type) bucket of views and watch time.
type ContentTypeRow struct {
	Date             string
	ContentType      string
	Views            int64
	WatchTimeMinutes float64
}

// ChannelReportSet carries everything fetched for one channel for one
// invocation: current and previous period daily rows, the period country
// revenue breakdown and the period content type breakdown.
type ChannelReportSet struct {
	ChannelID          string
	YoutubeChannelID   string
	Title              string
	Thumbnail          string
	Current            []DailyRow
	Previous           []DailyRow
	CountryRevenue     []CountryRevenueRow
	ContentType        []ContentTypeRow
	LongFormVideoCount int64
}

// DailyPoint is one date of the merged cross-channel series.
type DailyPoint struct {
	Date              string  `json:"date"`
	Views             int64   `json:"views"`
	WatchTimeMinutes  float64 `json:"watchTimeMinutes"`
	SubscribersGained int64   `json:"subscribersGained"`
	SubscribersLost   int64   `json:"subscribersLost"`
	NetSubscribers    int64   `json:"netSubscribers"`
	EstimatedRevenue  float64 `json:"estimatedRevenue"`
	RPM               float64 `json:"rpm"`
	LongFormViews     int64   `json:"longFormViews"`
	LongFormWatchTime float64 `json:"longFormWatchTime"`
	ShortsViews       int64   `json:"shortsViews"`
	ShortsWatchTime   float64 `json:"shortsWatchTime"`
}

// ChannelBreakdown is one channel's totals for the current period plus its
// previous-period counterparts.
type ChannelBreakdown struct {
	ChannelID           string  `json:"channelId"`
	ChannelYoutubeID    string  `json:"channelYoutubeId"`
	ChannelTitle        string  `json:"channelTitle"`
	ChannelThumbnail    string  `json:"channelThumbnail"`
	Views               int64   `json:"views"`
	WatchTimeMinutes    float64 `json:"watchTimeMinutes"`
	SubscribersGained   int64   `json:"subscribersGained"`
	SubscribersLost     int64   `json:"subscribersLost"`
	NetSubscribers      int64   `json:"netSubscribers"`
	EstimatedRevenue    float64 `json:"estimatedRevenue"`
	USRevenue           float64 `json:"usRevenue"`
	RPM                 float64 `json:"rpm"`
	LongFormViews       int64   `json:"longFormViews"`
	LongFormWatchTime   float64 `json:"longFormWatchTime"`
	ShortsViews         int64   `json:"shortsViews"`
	ShortsWatchTime     float64 `json:"shortsWatchTime"`
	PreviousViews       int64   `json:"previousViews"`
	PreviousWatchTime   float64 `json:"previousWatchTime"`
	PreviousSubscribers int64   `json:"previousSubscribers"`
	PreviousRevenue     float64 `json:"previousRevenue"`
}

// Summary is the cross-channel current-period total set with period deltas.
type Summary struct {
	Views                  int64   `json:"views"`
	WatchTimeMinutes       float64 `json:"watchTimeMinutes"`
	WatchTimeHours         int64   `json:"watchTimeHours"`
	SubscribersGained      int64   `json:"subscribersGained"`
	SubscribersLost        int64   `json:"subscribersLost"`
	NetSubscribers         int64   `json:"netSubscribers"`
	EstimatedRevenue       float64 `json:"estimatedRevenue"`
	USRevenue              float64 `json:"usRevenue"`
	USTaxAmount            float64 `json:"usTaxAmount"`
	AdjustedRevenue        float64 `json:"adjustedRevenue"`
	RPM                    float64 `json:"rpm"`
	LongFormViews          int64   `json:"longFormViews"`
	LongFormWatchTimeHours int64   `json:"longFormWatchTimeHours"`
	ShortsViews            int64   `json:"shortsViews"`
	ShortsWatchTimeHours   int64   `json:"shortsWatchTimeHours"`
	ViewsChange            int64   `json:"viewsChange"`
	WatchTimeChange        int64   `json:"watchTimeChange"`
	SubscribersChange      int64   `json:"subscribersChange"`
	RevenueChange          float64 `json:"revenueChange"`
	VideoCost              float64 `json:"videoCost,omitempty"`
	Profit                 float64 `json:"profit,omitempty"`
}

// Overview is the full aggregation result for one invocation.
type Overview struct {
	Summary          Summary            `json:"summary"`
	DailyData        []DailyPoint       `json:"dailyData"`
	ChannelBreakdown []ChannelBreakdown `json:"channelBreakdown"`
}

// AnalyticsResponse is the dashboard payload. ChannelsConnected and
// ChannelsFetched let the caller tell "no channels" from "no data in range"
// from "every fetch failed".
type AnalyticsResponse struct {
	Analytics         *Overview `json:"analytics"`
	DateRange         DateRange `json:"dateRange"`
	PreviousDateRange DateRange `json:"previousDateRange"`
	ChannelsConnected int       `json:"channelsConnected"`
	ChannelsFetched   int       `json:"channelsFetched"`
}
