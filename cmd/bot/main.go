package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/outpass_staff_bot/internal/api"
	"github.com/Freeeeeet/outpass_staff_bot/internal/app"
	"github.com/Freeeeeet/outpass_staff_bot/internal/config"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller"
	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/state"
	"github.com/Freeeeeet/outpass_staff_bot/internal/repository"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		return err
	}

	portal := api.NewClient(cfg.APIBaseURL, nil, logger)

	sessions := service.NewSessionService(
		repository.NewSessionRepository(pool),
		portal,
		service.NewTokenSealer(cfg.SessionSecret),
		cfg.SessionTTL,
		logger,
	)
	outpasses := service.NewOutpassService(portal, logger)
	students := service.NewStudentService(portal, logger)
	staff := service.NewStaffService(portal, logger)
	stateManager := state.NewManager()

	// Every per-chat copy goes away with the session
	sessions.OnTeardown(outpasses.Forget)
	sessions.OnTeardown(students.Forget)
	sessions.OnTeardown(stateManager.ClearState)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, sessions, outpasses, students, staff, stateManager, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		return err
	}

	scheduler := app.NewScheduler(sessions, app.DefaultSweepInterval, logger)

	logger.Info("Starting outpass staff bot",
		zap.String("environment", cfg.Environment),
		zap.String("api_base_url", cfg.APIBaseURL))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return botController.Start(gctx) })
	g.Go(func() error { return scheduler.Run(gctx) })

	return g.Wait()
}
