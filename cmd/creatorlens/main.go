package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"github.com/creatorlens/creatorlens/internal/api"
	"github.com/creatorlens/creatorlens/internal/job"
	"github.com/creatorlens/creatorlens/internal/pkg/cache"
	"github.com/creatorlens/creatorlens/internal/pkg/constants"
	"github.com/creatorlens/creatorlens/internal/pkg/logger"
	"github.com/creatorlens/creatorlens/internal/pkg/store"
	"github.com/creatorlens/creatorlens/internal/pkg/store/xpgx"
	"github.com/creatorlens/creatorlens/internal/service/auth"
	"github.com/creatorlens/creatorlens/internal/service/channels"
	"github.com/creatorlens/creatorlens/internal/service/dashboard"
	"github.com/creatorlens/creatorlens/internal/service/youtube"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	if err := loadConfig(); err != nil {
		panic(err)
	}

	if err := logger.Init(viper.GetBool(constants.ViperDevelopment)); err != nil {
		panic(err)
	}
	defer logger.Sync()

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperDatabaseURL))
	logger.Fatal(ctx, err)
	defer pool.Close()

	storage := store.NewStore(pool)

	redisCache, err := cache.New(ctx,
		viper.GetString(constants.ViperRedisAddr),
		viper.GetString(constants.ViperRedisPassword),
	)
	logger.Fatal(ctx, err)
	defer redisCache.Close()

	ytClient := youtube.NewClient()

	authService := auth.NewService(storage)
	channelsService := channels.NewService(storage, ytClient, redisCache)
	dashboardService := dashboard.NewService(storage, channelsService, ytClient, redisCache)

	scheduler := cron.New()
	refreshSpec := viper.GetString(constants.ViperTokenRefreshCron)
	if refreshSpec == "" {
		refreshSpec = "@hourly"
	}
	if _, err := scheduler.AddJob(refreshSpec, job.NewTokenRefreshJob(storage, channelsService)); err != nil {
		logger.Fatal(ctx, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	apiService, err := api.NewAPIService(authService, channelsService, dashboardService)
	logger.Fatal(ctx, err)

	go func() {
		addr := viper.GetString(constants.ViperListenAddr)
		logger.Infof(ctx, "listening on %s", addr)
		apiService.Serve(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := apiService.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err)
	}
}

func loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperReportDelayDays, 3)
	viper.SetDefault(constants.ViperAnalyticsCacheTTL, 5*time.Minute)
	viper.SetDefault(constants.ViperContentTypeSplit, true)
	viper.SetDefault(constants.ViperUSTaxAdjustment, true)

	return nil
}
