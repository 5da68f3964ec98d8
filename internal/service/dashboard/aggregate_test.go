package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/creatorlens/creatorlens/internal/domain"
)

func twoChannelFixture() []domain.ChannelReportSet {
	chA := domain.ChannelReportSet{
		ChannelID:        "ch-a",
		YoutubeChannelID: "UC-a",
		Title:            "Channel A",
		Current: []domain.DailyRow{
			{Date: "2025-01-01", Views: 300, WatchTimeMinutes: 120, SubscribersGained: 10, SubscribersLost: 2, EstimatedRevenue: 2.5},
			{Date: "2025-01-02", Views: 200, WatchTimeMinutes: 60, SubscribersGained: 5, SubscribersLost: 5, EstimatedRevenue: 1.5},
		},
		Previous: []domain.DailyRow{
			{Date: "2024-12-30", Views: 100, WatchTimeMinutes: 30, SubscribersGained: 3, SubscribersLost: 1, EstimatedRevenue: 1.0},
		},
		CountryRevenue: []domain.CountryRevenueRow{
			{CountryCode: "US", Revenue: 2.0},
			{CountryCode: "DE", Revenue: 1.0},
		},
		ContentType: []domain.ContentTypeRow{
			{Date: "2025-01-01", ContentType: domain.ContentTypeVideoOnDemand, Views: 250, WatchTimeMinutes: 100},
			{Date: "2025-01-01", ContentType: domain.ContentTypeShorts, Views: 50, WatchTimeMinutes: 20},
			{Date: "2025-01-02", ContentType: domain.ContentTypeLiveStream, Views: 150, WatchTimeMinutes: 40},
			{Date: "2025-01-02", ContentType: domain.ContentTypeShorts, Views: 50, WatchTimeMinutes: 20},
		},
		LongFormVideoCount: 2,
	}

	chB := domain.ChannelReportSet{
		ChannelID:        "ch-b",
		YoutubeChannelID: "UC-b",
		Title:            "Channel B",
		Current: []domain.DailyRow{
			{Date: "2025-01-02", Views: 100, WatchTimeMinutes: 30, EstimatedRevenue: 0.5},
			{Date: "2025-01-03"},
		},
		ContentType: []domain.ContentTypeRow{
			{Date: "2025-01-02", ContentType: domain.ContentTypeShorts, Views: 100, WatchTimeMinutes: 30},
			{Date: "2025-01-02", ContentType: "PODCAST", Views: 999, WatchTimeMinutes: 999},
		},
		LongFormVideoCount: 1,
	}

	return []domain.ChannelReportSet{chA, chB}
}

func TestAggregateSummaryTotals(t *testing.T) {
	overview := Aggregate(twoChannelFixture(), Options{ContentTypeSplit: true})
	sum := overview.Summary

	assert.Equal(t, int64(600), sum.Views)
	assert.InDelta(t, 210.0, sum.WatchTimeMinutes, 1e-9)
	assert.Equal(t, int64(4), sum.WatchTimeHours) // 210 min rounds up
	assert.Equal(t, int64(15), sum.SubscribersGained)
	assert.Equal(t, int64(7), sum.SubscribersLost)
	assert.Equal(t, int64(8), sum.NetSubscribers)
	assert.InDelta(t, 4.5, sum.EstimatedRevenue, 1e-9)
	assert.InDelta(t, 2.0, sum.USRevenue, 1e-9)
	assert.InDelta(t, 7.5, sum.RPM, 1e-9) // 4.5/600*1000

	assert.Equal(t, int64(500), sum.ViewsChange)
	assert.Equal(t, int64(3), sum.WatchTimeChange) // (210-30) min
	assert.Equal(t, int64(6), sum.SubscribersChange)
	assert.InDelta(t, 3.5, sum.RevenueChange, 1e-9)

	// no tax option: adjusted mirrors the raw total
	assert.Zero(t, sum.USTaxAmount)
	assert.InDelta(t, 4.5, sum.AdjustedRevenue, 1e-9)
}

func TestAggregateContentTypeSplit(t *testing.T) {
	overview := Aggregate(twoChannelFixture(), Options{ContentTypeSplit: true})
	sum := overview.Summary

	// VIDEO_ON_DEMAND and LIVE_STREAM both land in long form, PODCAST is
	// dropped
	assert.Equal(t, int64(400), sum.LongFormViews)
	assert.Equal(t, int64(200), sum.ShortsViews)
	assert.Equal(t, int64(2), sum.LongFormWatchTimeHours) // 140 min
	assert.Equal(t, int64(1), sum.ShortsWatchTimeHours)   // 70 min
}

func TestAggregateSplitDisabled(t *testing.T) {
	overview := Aggregate(twoChannelFixture(), Options{})
	sum := overview.Summary

	assert.Zero(t, sum.LongFormViews)
	assert.Zero(t, sum.ShortsViews)
	for _, point := range overview.DailyData {
		assert.Zero(t, point.LongFormViews)
		assert.Zero(t, point.ShortsViews)
	}
}

func TestAggregateDailySeries(t *testing.T) {
	overview := Aggregate(twoChannelFixture(), Options{ContentTypeSplit: true})
	daily := overview.DailyData

	assert.Len(t, daily, 3)
	assert.Equal(t, "2025-01-01", daily[0].Date)
	assert.Equal(t, "2025-01-02", daily[1].Date)
	assert.Equal(t, "2025-01-03", daily[2].Date)

	assert.Equal(t, int64(300), daily[0].Views)
	assert.Equal(t, int64(8), daily[0].NetSubscribers)
	assert.InDelta(t, 2.5, daily[0].EstimatedRevenue, 1e-9)

	// both channels land on 2025-01-02
	assert.Equal(t, int64(300), daily[1].Views)
	assert.InDelta(t, 2.0, daily[1].EstimatedRevenue, 1e-9)

	// the split is combined across channels and must not double when a
	// second channel touches the same date
	assert.Equal(t, int64(150), daily[1].LongFormViews)
	assert.Equal(t, int64(150), daily[1].ShortsViews)

	// zero-activity day keeps zeroes instead of dividing by zero
	assert.Zero(t, daily[2].Views)
	assert.Zero(t, daily[2].RPM)
}

func TestAggregateChannelBreakdown(t *testing.T) {
	overview := Aggregate(twoChannelFixture(), Options{ContentTypeSplit: true})

	assert.Len(t, overview.ChannelBreakdown, 2)

	chA := overview.ChannelBreakdown[0]
	assert.Equal(t, "ch-a", chA.ChannelID)
	assert.Equal(t, int64(500), chA.Views)
	assert.InDelta(t, 4.0, chA.EstimatedRevenue, 1e-9)
	assert.InDelta(t, 2.0, chA.USRevenue, 1e-9)
	assert.InDelta(t, 8.0, chA.RPM, 1e-9)
	assert.Equal(t, int64(400), chA.LongFormViews)
	assert.Equal(t, int64(100), chA.ShortsViews)
	assert.Equal(t, int64(100), chA.PreviousViews)
	assert.Equal(t, int64(2), chA.PreviousSubscribers)
	assert.InDelta(t, 1.0, chA.PreviousRevenue, 1e-9)

	chB := overview.ChannelBreakdown[1]
	assert.Equal(t, "ch-b", chB.ChannelID)
	assert.Equal(t, int64(100), chB.Views)
	assert.InDelta(t, 5.0, chB.RPM, 1e-9)
	assert.Zero(t, chB.USRevenue)
	assert.Zero(t, chB.LongFormViews)
	assert.Equal(t, int64(100), chB.ShortsViews)
	assert.Zero(t, chB.PreviousViews)
}

func TestAggregateSkipsChannelWithoutCurrentRows(t *testing.T) {
	channels := append(twoChannelFixture(), domain.ChannelReportSet{
		ChannelID: "ch-empty",
		Previous: []domain.DailyRow{
			{Date: "2024-12-30", Views: 9999, EstimatedRevenue: 99},
		},
	})

	overview := Aggregate(channels, Options{})

	assert.Len(t, overview.ChannelBreakdown, 2)
	// its previous rows must not leak into the deltas either
	assert.Equal(t, int64(500), overview.Summary.ViewsChange)
}

func TestAggregateUSTaxAdjustment(t *testing.T) {
	overview := Aggregate(twoChannelFixture(), Options{USTaxAdjustment: true})
	sum := overview.Summary

	assert.InDelta(t, 0.3, sum.USTaxAmount, 1e-9)
	assert.InDelta(t, 4.2, sum.AdjustedRevenue, 1e-9)
	// raw figures stay untouched
	assert.InDelta(t, 4.5, sum.EstimatedRevenue, 1e-9)
	assert.InDelta(t, 4.0, overview.ChannelBreakdown[0].EstimatedRevenue, 1e-9)
}

func TestAggregateUSRevenueAboveTotal(t *testing.T) {
	channels := []domain.ChannelReportSet{{
		ChannelID: "ch-us",
		Current: []domain.DailyRow{
			{Date: "2025-01-01", Views: 100, EstimatedRevenue: 4.5},
		},
		CountryRevenue: []domain.CountryRevenueRow{{CountryCode: "US", Revenue: 10}},
	}}

	sum := Aggregate(channels, Options{USTaxAdjustment: true}).Summary

	// the tax base is the US figure even when rounding pushes it past the
	// period total
	assert.InDelta(t, 1.5, sum.USTaxAmount, 1e-9)
	assert.InDelta(t, 3.0, sum.AdjustedRevenue, 1e-9)
}

func TestAggregateProfitCost(t *testing.T) {
	overview := Aggregate(twoChannelFixture(), Options{
		USTaxAdjustment: true,
		ProfitCost:      true,
		CostPerVideo:    10,
	})
	sum := overview.Summary

	assert.InDelta(t, 30.0, sum.VideoCost, 1e-9) // 3 long form videos
	assert.InDelta(t, 4.2-30.0, sum.Profit, 1e-9)
}

func TestAggregateNoChannels(t *testing.T) {
	overview := Aggregate(nil, Options{ContentTypeSplit: true})

	assert.Zero(t, overview.Summary.Views)
	assert.Zero(t, overview.Summary.RPM)
	assert.Empty(t, overview.DailyData)
	assert.Empty(t, overview.ChannelBreakdown)
}

func TestRPM(t *testing.T) {
	tests := []struct {
		name    string
		revenue float64
		views   int64
		want    float64
	}{
		{"zero views", 12.5, 0, 0},
		{"zero revenue", 0, 1000, 0},
		{"exact", 5, 1000, 5},
		{"fractional", 1.23, 456, 1.23 / 456 * 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rpm(decimal.NewFromFloat(tt.revenue), tt.views)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestRoundToHours(t *testing.T) {
	assert.Equal(t, int64(0), roundToHours(0))
	assert.Equal(t, int64(0), roundToHours(29.9))
	assert.Equal(t, int64(1), roundToHours(30))
	assert.Equal(t, int64(2), roundToHours(90))
	assert.Equal(t, int64(4), roundToHours(210))
}
