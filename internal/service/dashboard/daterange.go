package dashboard

import (
	"fmt"
	"time"

	"github.com/creatorlens/creatorlens/internal/domain"
	"github.com/creatorlens/creatorlens/internal/pkg/constants"
)

const dateLayout = "2006-01-02"

// Window is a resolved current period and the equal-length period immediately
// before it.
type Window struct {
	Start     time.Time
	End       time.Time
	PrevStart time.Time
	PrevEnd   time.Time
}

func (w Window) Current() domain.DateRange {
	return domain.DateRange{StartDate: w.Start.Format(dateLayout), EndDate: w.End.Format(dateLayout)}
}

func (w Window) Previous() domain.DateRange {
	return domain.DateRange{StartDate: w.PrevStart.Format(dateLayout), EndDate: w.PrevEnd.Format(dateLayout)}
}

// ResolveWindow derives the reporting window from the selection.
//
// The preset-days mode widens the current window by delayDays to compensate
// for upstream reporting latency: the report source finalizes a day only a few
// days after it ends, so asking for exactly N days back loses the tail.
func ResolveWindow(sel domain.RangeSelection, now time.Time, delayDays int, lifetimeStart time.Time) (Window, error) {
	today := truncateDay(now)

	switch {
	case sel.StartDate != "" || sel.EndDate != "":
		return resolveExplicit(sel, today)

	case sel.Month != 0:
		if sel.Month < 1 || sel.Month > 12 {
			return Window{}, fmt.Errorf("month %d: %w", sel.Month, constants.ErrInvalidRange)
		}
		if sel.Year == 0 {
			return Window{}, fmt.Errorf("month without year: %w", constants.ErrInvalidRange)
		}
		start := time.Date(sel.Year, time.Month(sel.Month), 1, 0, 0, 0, 0, time.UTC)
		if start.After(today) {
			return Window{}, fmt.Errorf("month in the future: %w", constants.ErrInvalidRange)
		}
		end := clampToToday(start.AddDate(0, 1, -1), today)
		return withPrecedingPeriod(start, end), nil

	case sel.Year != 0:
		start := time.Date(sel.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		if start.After(today) {
			return Window{}, fmt.Errorf("year in the future: %w", constants.ErrInvalidRange)
		}
		end := clampToToday(time.Date(sel.Year, time.December, 31, 0, 0, 0, 0, time.UTC), today)
		return withPrecedingPeriod(start, end), nil

	case sel.Lifetime:
		start := truncateDay(lifetimeStart)
		if start.After(today) {
			start = today
		}
		return withPrecedingPeriod(start, today), nil

	default:
		return resolveDays(sel.Days, today, delayDays), nil
	}
}

// resolveDays reproduces the preset math of the analytics route: the current
// window ends today and spans days+delay calendar days, the previous block is
// the adjacent days-long stretch before it.
func resolveDays(days int, today time.Time, delayDays int) Window {
	return Window{
		Start:     today.AddDate(0, 0, -(days + delayDays - 1)),
		End:       today,
		PrevStart: today.AddDate(0, 0, -(days*2 + delayDays - 1)),
		PrevEnd:   today.AddDate(0, 0, -(days + delayDays)),
	}
}

func resolveExplicit(sel domain.RangeSelection, today time.Time) (Window, error) {
	start, err := time.Parse(dateLayout, sel.StartDate)
	if err != nil {
		return Window{}, fmt.Errorf("start date %q: %w", sel.StartDate, constants.ErrInvalidRange)
	}
	end, err := time.Parse(dateLayout, sel.EndDate)
	if err != nil {
		return Window{}, fmt.Errorf("end date %q: %w", sel.EndDate, constants.ErrInvalidRange)
	}

	if end.Before(start) {
		return Window{}, fmt.Errorf("end before start: %w", constants.ErrInvalidRange)
	}
	if start.After(today) {
		return Window{}, fmt.Errorf("start in the future: %w", constants.ErrInvalidRange)
	}

	return withPrecedingPeriod(start, clampToToday(end, today)), nil
}

// withPrecedingPeriod pairs the current window with the same-length window
// ending the day before its start.
func withPrecedingPeriod(start, end time.Time) Window {
	length := inclusiveDays(start, end)
	prevEnd := start.AddDate(0, 0, -1)
	return Window{
		Start:     start,
		End:       end,
		PrevStart: prevEnd.AddDate(0, 0, -(length - 1)),
		PrevEnd:   prevEnd,
	}
}

func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func clampToToday(t, today time.Time) time.Time {
	if t.After(today) {
		return today
	}
	return t
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
