package dashboard

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/creatorlens/creatorlens/internal/domain"
)

const usCountryCode = "US"

var usTaxRate = decimal.NewFromFloat(0.15)

// Options toggles the optional derived-field computations on top of the core
// fold.
type Options struct {
	ContentTypeSplit bool
	USTaxAdjustment  bool
	ProfitCost       bool
	CostPerVideo     float64
}

type contentSplit struct {
	longFormViews     int64
	longFormWatchTime float64
	shortsViews       int64
	shortsWatchTime   float64
}

func (s *contentSplit) add(row domain.ContentTypeRow) {
	switch row.ContentType {
	case domain.ContentTypeVideoOnDemand, domain.ContentTypeLiveStream:
		s.longFormViews += row.Views
		s.longFormWatchTime += row.WatchTimeMinutes
	case domain.ContentTypeShorts:
		s.shortsViews += row.Views
		s.shortsWatchTime += row.WatchTimeMinutes
	}
	// unrecognized tags are dropped, they belong to neither bucket
}

type dailyAcc struct {
	views             int64
	watchTimeMinutes  float64
	subscribersGained int64
	subscribersLost   int64
	revenue           decimal.Decimal
	split             contentSplit
}

type periodTotals struct {
	views             int64
	watchTimeMinutes  float64
	subscribersGained int64
	subscribersLost   int64
	revenue           decimal.Decimal
}

// Aggregate merges the per-channel report sets into the cross-channel summary,
// the date-sorted daily series and the per-channel breakdown. It is a pure
// function over its inputs: a channel whose fetch failed upstream must simply
// not appear in channels.
func Aggregate(channels []domain.ChannelReportSet, opts Options) *domain.Overview {
	// content type lookup by date across all channels, built before the
	// per-channel pass
	dailySplits := make(map[string]*contentSplit)
	var totalSplit contentSplit
	if opts.ContentTypeSplit {
		for _, ch := range channels {
			for _, row := range ch.ContentType {
				split, ok := dailySplits[row.Date]
				if !ok {
					split = &contentSplit{}
					dailySplits[row.Date] = split
				}
				split.add(row)
				totalSplit.add(row)
			}
		}
	}

	daily := make(map[string]*dailyAcc)
	breakdown := make([]domain.ChannelBreakdown, 0, len(channels))

	var current, previous periodTotals
	totalUSRevenue := decimal.Decimal{}
	var totalVideoCount int64

	for _, ch := range channels {
		if len(ch.Current) == 0 {
			continue
		}

		var channelTotals periodTotals
		var channelSplit contentSplit
		if opts.ContentTypeSplit {
			for _, row := range ch.ContentType {
				channelSplit.add(row)
			}
		}

		for _, row := range ch.Current {
			channelTotals.views += row.Views
			channelTotals.watchTimeMinutes += row.WatchTimeMinutes
			channelTotals.subscribersGained += row.SubscribersGained
			channelTotals.subscribersLost += row.SubscribersLost
			channelTotals.revenue = channelTotals.revenue.Add(decimal.NewFromFloat(row.EstimatedRevenue))

			acc, ok := daily[row.Date]
			if !ok {
				acc = &dailyAcc{}
				if split := dailySplits[row.Date]; split != nil {
					// assigned once per date: the lookup already spans
					// all channels
					acc.split = *split
				}
				daily[row.Date] = acc
			}
			acc.views += row.Views
			acc.watchTimeMinutes += row.WatchTimeMinutes
			acc.subscribersGained += row.SubscribersGained
			acc.subscribersLost += row.SubscribersLost
			acc.revenue = acc.revenue.Add(decimal.NewFromFloat(row.EstimatedRevenue))
		}

		usRevenue := decimal.Decimal{}
		for _, row := range ch.CountryRevenue {
			if row.CountryCode == usCountryCode {
				usRevenue = decimal.NewFromFloat(row.Revenue)
				break
			}
		}

		var prevTotals periodTotals
		for _, row := range ch.Previous {
			prevTotals.views += row.Views
			prevTotals.watchTimeMinutes += row.WatchTimeMinutes
			prevTotals.subscribersGained += row.SubscribersGained
			prevTotals.subscribersLost += row.SubscribersLost
			prevTotals.revenue = prevTotals.revenue.Add(decimal.NewFromFloat(row.EstimatedRevenue))
		}

		breakdown = append(breakdown, domain.ChannelBreakdown{
			ChannelID:           ch.ChannelID,
			ChannelYoutubeID:    ch.YoutubeChannelID,
			ChannelTitle:        ch.Title,
			ChannelThumbnail:    ch.Thumbnail,
			Views:               channelTotals.views,
			WatchTimeMinutes:    channelTotals.watchTimeMinutes,
			SubscribersGained:   channelTotals.subscribersGained,
			SubscribersLost:     channelTotals.subscribersLost,
			NetSubscribers:      channelTotals.subscribersGained - channelTotals.subscribersLost,
			EstimatedRevenue:    channelTotals.revenue.InexactFloat64(),
			USRevenue:           usRevenue.InexactFloat64(),
			RPM:                 rpm(channelTotals.revenue, channelTotals.views),
			LongFormViews:       channelSplit.longFormViews,
			LongFormWatchTime:   channelSplit.longFormWatchTime,
			ShortsViews:         channelSplit.shortsViews,
			ShortsWatchTime:     channelSplit.shortsWatchTime,
			PreviousViews:       prevTotals.views,
			PreviousWatchTime:   prevTotals.watchTimeMinutes,
			PreviousSubscribers: prevTotals.subscribersGained - prevTotals.subscribersLost,
			PreviousRevenue:     prevTotals.revenue.InexactFloat64(),
		})

		current.views += channelTotals.views
		current.watchTimeMinutes += channelTotals.watchTimeMinutes
		current.subscribersGained += channelTotals.subscribersGained
		current.subscribersLost += channelTotals.subscribersLost
		current.revenue = current.revenue.Add(channelTotals.revenue)
		totalUSRevenue = totalUSRevenue.Add(usRevenue)

		previous.views += prevTotals.views
		previous.watchTimeMinutes += prevTotals.watchTimeMinutes
		previous.subscribersGained += prevTotals.subscribersGained
		previous.subscribersLost += prevTotals.subscribersLost
		previous.revenue = previous.revenue.Add(prevTotals.revenue)

		totalVideoCount += ch.LongFormVideoCount
	}

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	// zero-padded ISO dates sort correctly as strings
	sort.Strings(dates)

	dailyData := make([]domain.DailyPoint, 0, len(dates))
	for _, date := range dates {
		acc := daily[date]
		dailyData = append(dailyData, domain.DailyPoint{
			Date:              date,
			Views:             acc.views,
			WatchTimeMinutes:  acc.watchTimeMinutes,
			SubscribersGained: acc.subscribersGained,
			SubscribersLost:   acc.subscribersLost,
			NetSubscribers:    acc.subscribersGained - acc.subscribersLost,
			EstimatedRevenue:  acc.revenue.InexactFloat64(),
			RPM:               rpm(acc.revenue, acc.views),
			LongFormViews:     acc.split.longFormViews,
			LongFormWatchTime: acc.split.longFormWatchTime,
			ShortsViews:       acc.split.shortsViews,
			ShortsWatchTime:   acc.split.shortsWatchTime,
		})
	}

	netSubscribers := current.subscribersGained - current.subscribersLost

	summary := domain.Summary{
		Views:                  current.views,
		WatchTimeMinutes:       current.watchTimeMinutes,
		WatchTimeHours:         roundToHours(current.watchTimeMinutes),
		SubscribersGained:      current.subscribersGained,
		SubscribersLost:        current.subscribersLost,
		NetSubscribers:         netSubscribers,
		EstimatedRevenue:       current.revenue.InexactFloat64(),
		USRevenue:              totalUSRevenue.InexactFloat64(),
		AdjustedRevenue:        current.revenue.InexactFloat64(),
		RPM:                    rpm(current.revenue, current.views),
		LongFormViews:          totalSplit.longFormViews,
		LongFormWatchTimeHours: roundToHours(totalSplit.longFormWatchTime),
		ShortsViews:            totalSplit.shortsViews,
		ShortsWatchTimeHours:   roundToHours(totalSplit.shortsWatchTime),
		ViewsChange:            current.views - previous.views,
		WatchTimeChange:        roundToHours(current.watchTimeMinutes - previous.watchTimeMinutes),
		SubscribersChange:      netSubscribers - (previous.subscribersGained - previous.subscribersLost),
		RevenueChange:          current.revenue.Sub(previous.revenue).InexactFloat64(),
	}

	if opts.USTaxAdjustment {
		// summary-level only, per-day and per-channel figures stay
		// unadjusted
		usTax := totalUSRevenue.Mul(usTaxRate)
		summary.USTaxAmount = usTax.InexactFloat64()
		summary.AdjustedRevenue = current.revenue.Sub(usTax).InexactFloat64()
	}

	if opts.ProfitCost {
		cost := decimal.NewFromInt(totalVideoCount).Mul(decimal.NewFromFloat(opts.CostPerVideo))
		summary.VideoCost = cost.InexactFloat64()
		summary.Profit = decimal.NewFromFloat(summary.AdjustedRevenue).Sub(cost).InexactFloat64()
	}

	return &domain.Overview{
		Summary:          summary,
		DailyData:        dailyData,
		ChannelBreakdown: breakdown,
	}
}

func rpm(revenue decimal.Decimal, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return revenue.Div(decimal.NewFromInt(views)).Mul(decimal.NewFromInt(1000)).InexactFloat64()
}

func roundToHours(minutes float64) int64 {
	return int64(math.Round(minutes / 60))
}
