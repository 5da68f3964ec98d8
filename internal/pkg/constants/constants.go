package constants

const (
	CookieKeyAuthToken   = "auth_token"
	CookieKeySecretToken = "secret_token"

	CtxKeyUserID = "user_id"

	// viper keys
	ViperDevelopment        = "development"
	ViperSecretKey          = "auth.secret"
	ViperListenAddr         = "server.addr"
	ViperCORSOrigins        = "server.cors_origins"
	ViperDatabaseURL        = "database.url"
	ViperRedisAddr          = "redis.addr"
	ViperRedisPassword      = "redis.password"
	ViperGoogleClientID     = "google.client_id"
	ViperGoogleClientSecret = "google.client_secret"
	ViperGoogleRedirectURL  = "google.redirect_url"
	ViperReportDelayDays    = "analytics.report_delay_days"
	ViperLifetimeStart      = "analytics.lifetime_start"
	ViperAnalyticsCacheTTL  = "analytics.cache_ttl"
	ViperContentTypeSplit   = "analytics.content_type_split"
	ViperUSTaxAdjustment    = "analytics.us_tax_adjustment"
	ViperProfitCost         = "analytics.profit_cost"
	ViperCostPerVideo       = "analytics.cost_per_video"
	ViperTokenRefreshCron   = "jobs.token_refresh_cron"
)
