package controller

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/creatorlens/creatorlens/internal/domain"
	"github.com/creatorlens/creatorlens/internal/pkg/constants"
)

func (c *Controller) ListChannels(ctx echo.Context) error {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return err
	}

	channels, err := c.channelsService.ListChannels(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string][]*domain.ChannelInfo{"channels": channels})
}

func (c *Controller) ConnectChannel(ctx echo.Context) error {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return err
	}

	authURL, err := c.channelsService.BeginConnect(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}

	return ctx.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (c *Controller) ConnectCallback(ctx echo.Context) error {
	if errParam := ctx.QueryParam("error"); errParam != "" {
		return constants.NewCodedError("consent denied: "+errParam, http.StatusBadRequest)
	}

	code := ctx.QueryParam("code")
	if code == "" {
		return constants.NewCodedError("missing code", http.StatusBadRequest)
	}

	channel, err := c.channelsService.CompleteConnect(ctx.Request().Context(), ctx.QueryParam("state"), code)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]*domain.ChannelInfo{"channel": channel})
}

func (c *Controller) DisconnectChannel(ctx echo.Context) error {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return err
	}

	channelID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return constants.NewCodedError("invalid channel id", http.StatusBadRequest)
	}

	if err = c.channelsService.Disconnect(ctx.Request().Context(), userID, channelID); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"success": true})
}
