package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/database"
	"tabletop-events-api/internal/handler"
	"tabletop-events-api/internal/metrics"
	"tabletop-events-api/internal/middleware"
	"tabletop-events-api/internal/repository"
	"tabletop-events-api/internal/service"
)

const serviceName = "tabletop-events-api"

// Config holds router configuration
type Config struct {
	DB      *gorm.DB
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// Redis is optional; nil keeps revocation and rate limiting in process
	Redis       *redis.Client
	Tokens      *auth.TokenManager
	Revocations auth.RevocationStore
	Policy      auth.AdminPolicy
	// External is nil when no identity provider is configured
	External     auth.ExternalVerifier
	BasePath     string
	CORSOrigins  []string
	RateLimit    RateLimitConfig
	CookieName   string
	SecureCookie bool
}

// RateLimitConfig bounds sign-up, login and exchange attempts per client IP
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	cfg = withDefaults(cfg)

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Metrics(cfg.Metrics))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
	})
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, cfg.DB); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName})
	})

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(cfg.DB)
	gameRepo := repository.NewGameRepository(cfg.DB)
	locationRepo := repository.NewLocationRepository(cfg.DB)
	eventRepo := repository.NewEventRepository(cfg.DB)
	participantRepo := repository.NewParticipantRepository(cfg.DB)
	favoriteRepo := repository.NewFavoriteRepository(cfg.DB)

	// Initialize services
	accountService := service.NewAccountService(accountRepo, cfg.Policy, cfg.Logger)
	gameService := service.NewGameService(gameRepo, cfg.Logger)
	locationService := service.NewLocationService(locationRepo, cfg.Logger)
	optionsService := service.NewOptionsService(gameService, locationService)
	eventService := service.NewEventService(service.EventServiceDeps{
		Events:       eventRepo,
		Accounts:     accountRepo,
		Games:        gameRepo,
		Locations:    locationRepo,
		Participants: participantRepo,
		Favorites:    favoriteRepo,
		Recorder:     cfg.Metrics,
		Logger:       cfg.Logger,
	})
	participantService := service.NewParticipantService(participantRepo, eventRepo, accountRepo, cfg.Metrics, cfg.Logger)
	favoriteService := service.NewFavoriteService(favoriteRepo, eventRepo, cfg.Metrics, cfg.Logger)
	authService := service.NewAuthService(service.AuthServiceDeps{
		Accounts:    accountService,
		AccountRepo: accountRepo,
		Tokens:      cfg.Tokens,
		Revocations: cfg.Revocations,
		External:    cfg.External,
		Recorder:    cfg.Metrics,
		Logger:      cfg.Logger,
	})

	// Initialize handlers
	eventHandler := handler.NewEventHandler(eventService)
	gameHandler := handler.NewGameHandler(gameService)
	locationHandler := handler.NewLocationHandler(locationService)
	optionsHandler := handler.NewOptionsHandler(optionsService)
	participantHandler := handler.NewParticipantHandler(participantService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	accountHandler := handler.NewAccountHandler(accountService)
	authHandler := handler.NewAuthHandler(authService, cfg.CookieName, cfg.SecureCookie)

	resolver := auth.NewSessionResolver(cfg.Tokens, cfg.Revocations, accountRepo, cfg.Policy)
	requireAuth := middleware.RequireAuth(resolver, cfg.CookieName, cfg.Logger)
	optionalAuth := middleware.OptionalAuth(resolver, cfg.CookieName, cfg.Logger)
	requireAdmin := middleware.RequireAdmin()

	limiter := middleware.NewRateLimiter(cfg.Redis, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	rateLimit := middleware.RateLimit(limiter, cfg.RateLimit.MaxRequests, cfg.Logger)

	// API routes group
	api := r.Group(cfg.BasePath)

	// ============================================================
	// Event routes
	// ============================================================
	events := api.Group("/events")
	{
		events.GET("", eventHandler.GetEvents)
		events.GET("/today", eventHandler.TodayEvents)
		events.GET("/popular", eventHandler.PopularEvents)
		events.GET("/nearby", eventHandler.NearbyEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.POST("", requireAuth, eventHandler.CreateEvent)
		events.PUT("/:id", requireAuth, eventHandler.UpdateEvent)
		events.DELETE("", requireAuth, eventHandler.DeleteEvent)
		events.DELETE("/:id", requireAuth, eventHandler.DeleteEvent)
	}

	// ============================================================
	// Catalog routes
	// ============================================================
	games := api.Group("/games")
	{
		games.GET("", gameHandler.GetGames)
		games.GET("/:id", gameHandler.GetGame)
		games.POST("", requireAuth, gameHandler.CreateGame)
		games.PUT("/:id", requireAuth, gameHandler.UpdateGame)
		games.DELETE("/:id", requireAuth, gameHandler.DeleteGame)
	}

	locations := api.Group("/locations")
	{
		locations.GET("", locationHandler.GetLocations)
		locations.GET("/:id", locationHandler.GetLocation)
		locations.POST("", requireAuth, locationHandler.CreateLocation)
		locations.PUT("/:id", requireAuth, locationHandler.UpdateLocation)
		locations.DELETE("/:id", requireAuth, locationHandler.DeleteLocation)
	}

	api.GET("/options", optionsHandler.GetOptions)

	// ============================================================
	// Membership routes
	// ============================================================
	participants := api.Group("/participants")
	{
		participants.GET("", participantHandler.GetParticipants)
		participants.POST("", requireAuth, participantHandler.JoinEvent)
		participants.DELETE("", requireAuth, participantHandler.LeaveEvent)
	}

	favorites := api.Group("/favorites")
	{
		// listing without a query falls back to the caller's favorites
		favorites.GET("", optionalAuth, favoriteHandler.GetFavorites)
		favorites.POST("", requireAuth, favoriteHandler.AddFavorite)
		favorites.DELETE("", requireAuth, favoriteHandler.RemoveFavorite)
	}

	// ============================================================
	// Account routes
	// ============================================================
	accounts := api.Group("/accounts")
	{
		accounts.GET("", accountHandler.GetAccounts)
		accounts.POST("", rateLimit, accountHandler.CreateAccount)
		accounts.GET("/me", requireAuth, accountHandler.GetMe)
		accounts.PUT("/me", requireAuth, accountHandler.UpdateMe)
		accounts.DELETE("/me", requireAuth, accountHandler.DeleteMe)
		accounts.GET("/:id", accountHandler.GetAccount)
		accounts.PUT("/:id", requireAuth, accountHandler.UpdateAccount)
		accounts.DELETE("/:id", requireAuth, accountHandler.DeleteAccount)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", rateLimit, authHandler.Signup)
		authGroup.POST("/login", rateLimit, authHandler.Login)
		authGroup.POST("/exchange", rateLimit, authHandler.Exchange)
		authGroup.POST("/logout", requireAuth, authHandler.Logout)
		authGroup.GET("/session", requireAuth, authHandler.Session)
	}

	admin := api.Group("/admin")
	admin.Use(requireAuth, requireAdmin)
	{
		admin.POST("/set-admin", accountHandler.SetAdmin)
	}

	return r
}

func withDefaults(cfg Config) Config {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewWithRegistry(prometheus.NewRegistry(), cfg.Logger)
	}
	if cfg.Revocations == nil {
		cfg.Revocations = auth.NewRevocationStore(cfg.Redis)
	}
	if cfg.Policy == nil {
		cfg.Policy = auth.NewAdminPolicy(nil)
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "session_token"
	}
	if cfg.RateLimit.MaxRequests <= 0 {
		cfg.RateLimit.MaxRequests = 20
	}
	if cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = time.Minute
	}
	return cfg
}
