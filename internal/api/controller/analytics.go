package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/creatorlens/creatorlens/internal/domain"
	"github.com/creatorlens/creatorlens/internal/pkg/constants"
	"github.com/creatorlens/creatorlens/internal/service/dashboard"
)

const defaultDays = 28

func (c *Controller) GetAnalytics(ctx echo.Context) error {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return err
	}

	var channelID *uuid.UUID
	if raw := ctx.QueryParam("channelId"); raw != "" && raw != "all" {
		parsed, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return constants.NewCodedError("invalid channel id", http.StatusBadRequest)
		}
		channelID = &parsed
	}

	sel := domain.RangeSelection{
		Days:      defaultDays,
		StartDate: ctx.QueryParam("startDate"),
		EndDate:   ctx.QueryParam("endDate"),
		Lifetime:  ctx.QueryParam("lifetime") == "true",
	}
	if raw := ctx.QueryParam("days"); raw != "" {
		if sel.Days, err = strconv.Atoi(raw); err != nil || sel.Days <= 0 {
			return constants.NewCodedError("invalid days", http.StatusBadRequest)
		}
	}
	if raw := ctx.QueryParam("month"); raw != "" {
		if sel.Month, err = strconv.Atoi(raw); err != nil {
			return constants.NewCodedError("invalid month", http.StatusBadRequest)
		}
	}
	if raw := ctx.QueryParam("year"); raw != "" {
		if sel.Year, err = strconv.Atoi(raw); err != nil {
			return constants.NewCodedError("invalid year", http.StatusBadRequest)
		}
	}

	resp, err := c.dashboardService.Overview(ctx.Request().Context(), userID, channelID, sel)
	if err != nil {
		return err
	}

	// the dashboard always wants current numbers
	ctx.Response().Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")

	return ctx.JSON(http.StatusOK, resp)
}

// Debug surfaces the resolved reporting windows, useful when the upstream
// latency buffer hides recent days.
func (c *Controller) Debug(ctx echo.Context) error {
	now := time.Now()
	delayDays := viper.GetInt(constants.ViperReportDelayDays)

	windows := make(map[string]interface{}, 2)
	for _, days := range []int{7, defaultDays} {
		window, err := dashboard.ResolveWindow(domain.RangeSelection{Days: days}, now, delayDays, time.Time{})
		if err != nil {
			return err
		}
		windows[strconv.Itoa(days)+"d"] = map[string]domain.DateRange{
			"current":  window.Current(),
			"previous": window.Previous(),
		}
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"serverTime":      now.Format(time.RFC3339),
		"reportDelayDays": delayDays,
		"windows":         windows,
	})
}
