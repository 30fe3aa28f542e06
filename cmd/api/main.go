package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/skillswap-service/internal/api/http"
	"github.com/spec-kit/skillswap-service/internal/api/http/handlers"
	"github.com/spec-kit/skillswap-service/internal/auth"
	"github.com/spec-kit/skillswap-service/internal/config"
	"github.com/spec-kit/skillswap-service/internal/events"
	"github.com/spec-kit/skillswap-service/internal/observability"
	"github.com/spec-kit/skillswap-service/internal/persistence"
	"github.com/spec-kit/skillswap-service/internal/repository"
	"github.com/spec-kit/skillswap-service/internal/service"
	"github.com/spec-kit/skillswap-service/internal/storage"
	"github.com/spec-kit/skillswap-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	offeredRepo := repository.NewSkillOfferedRepository(pool)
	wantedRepo := repository.NewSkillWantedRepository(pool)
	swapRepo := repository.NewSwapRepository(pool)
	historyRepo := repository.NewSwapHistoryRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)

	var photoStore storage.PhotoStore
	if cfg.Cloudinary.CloudName != "" {
		photoStore, err = storage.NewCloudinaryStore(cfg.Cloudinary)
		if err != nil {
			logger.Fatal("failed to init photo storage", zap.Error(err))
		}
	} else {
		logger.Warn("photo storage not configured, uploads disabled")
	}

	dispatcher := events.NewInMemoryDispatcher()
	denylist := auth.NewRedisDenylist(redis.ClientHandle())

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
		Denylist: denylist,
	})
	userService := service.NewUserService(*cfg, service.UserDependencies{
		UserRepo:   userRepo,
		PhotoStore: photoStore,
	})
	skillService := service.NewSkillService(service.SkillDependencies{
		OfferedRepo: offeredRepo,
		WantedRepo:  wantedRepo,
	})
	swapService := service.NewSwapService(service.SwapDependencies{
		SwapRepo:    swapRepo,
		HistoryRepo: historyRepo,
		UserRepo:    userRepo,
		OfferedRepo: offeredRepo,
		WantedRepo:  wantedRepo,
		Dispatcher:  dispatcher,
	})
	feedbackService := service.NewFeedbackService(service.FeedbackDependencies{
		FeedbackRepo: feedbackRepo,
		SwapRepo:     swapRepo,
		Dispatcher:   dispatcher,
	})
	adminService := service.NewAdminService(service.AdminDependencies{
		UserRepo:    userRepo,
		OfferedRepo: offeredRepo,
		WantedRepo:  wantedRepo,
		SwapRepo:    swapRepo,
		Cache:       redis.ClientHandle(),
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, denylist)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, time.Duration(cfg.App.RequestTimeoutSeconds)*time.Second)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Skills:         handlers.NewSkillsHandler(skillService),
		Swaps:          handlers.NewSwapsHandler(swapService, feedbackService),
		Admin:          handlers.NewAdminHandler(adminService, metrics),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
