package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creatorlens/creatorlens/internal/domain"
	"github.com/creatorlens/creatorlens/internal/pkg/constants"
	"github.com/creatorlens/creatorlens/internal/pkg/utils"
)

func (c *Controller) SignupUser(ctx echo.Context) error {
	request := new(domain.SignupUserRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	resp, err := c.authService.SignupUser(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, resp.AuthToken)

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) LoginUser(ctx echo.Context) error {
	request := new(domain.LoginUserRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	resp, err := c.authService.LoginUser(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, resp.AuthToken)

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) LogoutUser(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (c *Controller) GetMe(ctx echo.Context) error {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return err
	}

	user, err := c.authService.GetUser(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]*domain.User{"user": user})
}

func setAuthCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(utils.AuthTokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
