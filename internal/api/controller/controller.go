package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/creatorlens/creatorlens/internal/pkg/constants"
	"github.com/creatorlens/creatorlens/internal/service/auth"
	"github.com/creatorlens/creatorlens/internal/service/channels"
	"github.com/creatorlens/creatorlens/internal/service/dashboard"
)

type Controller struct {
	authService      *auth.Service
	channelsService  *channels.Service
	dashboardService *dashboard.Service
}

func NewController(
	authService *auth.Service,
	channelsService *channels.Service,
	dashboardService *dashboard.Service,
) *Controller {
	return &Controller{
		authService:      authService,
		channelsService:  channelsService,
		dashboardService: dashboardService,
	}
}

// sessionUserID reads the user id placed into the context by AuthMiddleware.
func sessionUserID(ctx echo.Context) (uuid.UUID, error) {
	userID, ok := ctx.Get(constants.CtxKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, constants.ErrUnauthorized
	}
	return userID, nil
}
