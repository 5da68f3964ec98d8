package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/creatorlens/creatorlens/internal/api/controller"
	"github.com/creatorlens/creatorlens/internal/pkg/constants"
	"github.com/creatorlens/creatorlens/internal/pkg/logger"
	"github.com/creatorlens/creatorlens/internal/service/auth"
	"github.com/creatorlens/creatorlens/internal/service/channels"
	"github.com/creatorlens/creatorlens/internal/service/dashboard"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(
	authService *auth.Service,
	channelsService *channels.Service,
	dashboardService *dashboard.Service,
) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewJSONSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(viper.GetString(constants.ViperCORSOrigins), ","),
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(authService, channelsService, dashboardService)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", cntrl.SignupUser)
	authGroup.POST("/signin", cntrl.LoginUser)
	authGroup.POST("/logout", cntrl.LogoutUser)
	authGroup.GET("/me", cntrl.GetMe, svc.AuthMiddleware)

	channelsGroup := api.Group("/channels")
	channelsGroup.GET("/list", cntrl.ListChannels, svc.AuthMiddleware)
	channelsGroup.GET("/connect", cntrl.ConnectChannel, svc.AuthMiddleware)
	// google redirects here, the state token identifies the user
	channelsGroup.GET("/callback", cntrl.ConnectCallback)
	channelsGroup.DELETE("/:id", cntrl.DisconnectChannel, svc.AuthMiddleware)

	analytics := api.Group("/analytics", svc.AuthMiddleware)
	analytics.GET("", cntrl.GetAnalytics)

	debug := api.Group("/debug", svc.AdminMiddleware)
	debug.GET("", cntrl.Debug)

	return svc, nil
}
