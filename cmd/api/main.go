package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stolovaya/canteen-api/internal/handler"
	"github.com/stolovaya/canteen-api/internal/middleware"
	"github.com/stolovaya/canteen-api/internal/repository"
	"github.com/stolovaya/canteen-api/internal/router"
	"github.com/stolovaya/canteen-api/internal/service"
	"github.com/stolovaya/canteen-api/internal/store"
	"github.com/stolovaya/canteen-api/pkg/cache"
	"github.com/stolovaya/canteen-api/pkg/config"
	"github.com/stolovaya/canteen-api/pkg/database"
	"github.com/stolovaya/canteen-api/pkg/logger"
	corsmiddleware "github.com/stolovaya/canteen-api/pkg/middleware/cors"
	reqidmiddleware "github.com/stolovaya/canteen-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	// Known gap kept for compatibility with the clients of the system this
	// service replaces: accounts authenticate with plain-text passwords
	// and later calls trust a client-supplied id/role pair.
	logr.Warn("passwords are stored and compared in plain text; do not expose this service beyond the school network")

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.ApplySchema(ctx, db); err != nil {
		cancel()
		logr.Sugar().Fatalw("failed to apply schema", "error", err)
	}
	cancel()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, stats caching disabled", zap.Error(err))
			redisClient = nil
		}
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	orderStore := store.NewOrderStore()
	reviewStore := store.NewReviewStore()
	menuStore := store.NewMenuStore()

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, validate, logr)
	menuSvc := service.NewMenuService(menuStore, validate)
	orderSvc := service.NewOrderService(orderStore, reviewStore, cacheRepo, cfg.Stats.CacheTTL, metricsSvc, logr)
	noteSvc := service.NewNoteService(noteRepo, userRepo, orderStore, logr)
	linkSvc := service.NewLinkService(userRepo, logr)
	adminSvc := service.NewAdminService(userRepo, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	router.Setup(r, router.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Menu:    handler.NewMenuHandler(menuSvc),
		Order:   handler.NewOrderHandler(orderSvc),
		Cook:    handler.NewCookHandler(orderSvc, noteSvc),
		Note:    handler.NewNoteHandler(noteSvc),
		Parent:  handler.NewParentHandler(linkSvc, orderSvc),
		Admin:   handler.NewAdminHandler(adminSvc, orderSvc),
		Metrics: handler.NewMetricsHandler(metricsSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
