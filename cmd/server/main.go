package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bharaths07/sportsv1.1-sub000/internal/config"
	"github.com/bharaths07/sportsv1.1-sub000/internal/handler"
	"github.com/bharaths07/sportsv1.1-sub000/internal/logger"
	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/notify"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository/postgres"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository/redisstore"
	"github.com/bharaths07/sportsv1.1-sub000/internal/service"
	"github.com/bharaths07/sportsv1.1-sub000/internal/state"
)

func main() {
	configPath := "config.yaml"
	if p := os.Getenv("APP_CONFIG"); p != "" {
		configPath = p
	}

	// Load application config
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("service stopped with error")
	}
	appLogger.Info().Msg("service stopped")
}

func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	db, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer db.Close()

	if cfg.Postgres.RunMigrations {
		if err := db.Migrate(ctx, appLogger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	rdb, err := redisstore.NewClient(ctx, cfg.Redis, appLogger)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			appLogger.Warn().Err(err).Msg("redis close")
		}
	}()

	pool := db.Pool()
	prefs := model.NotificationPreferences{
		Enabled:     cfg.Notifications.Enabled,
		MatchStart:  cfg.Notifications.MatchStart,
		MatchResult: cfg.Notifications.MatchResult,
		Tournament:  cfg.Notifications.Tournament,
	}

	var opts []notify.Option
	if cfg.Notifications.WebhookURL != "" {
		opts = append(opts, notify.WithPlatform(notify.NewWebhookNotifier(cfg.Notifications.WebhookURL)))
	}
	dedup := notify.NewDeduplicator(
		redisstore.NewKeySet(rdb, cfg.Redis.KeyPrefix),
		redisstore.NewNotificationStore(rdb, cfg.Redis.KeyPrefix, cfg.Notifications.MaxStored),
		redisstore.NewPreferenceStore(rdb, cfg.Redis.KeyPrefix, prefs),
		appLogger,
		opts...,
	)

	store := state.NewStore()
	matches := service.NewMatchController(service.Deps{
		Store:        store,
		Matches:      postgres.NewMatchRepository(pool),
		Achievements: postgres.NewAchievementRepository(pool),
		Certificates: postgres.NewCertificateRepository(pool),
		Feed:         postgres.NewFeedRepository(pool),
		Publisher:    redisstore.NewFeedPublisher(rdb, cfg.Redis.KeyPrefix, cfg.Redis.FeedStreamMaxLen),
		Rosters:      postgres.NewRosterRepository(pool),
		Tx:           postgres.NewTxManager(pool),
		Notifier:     dedup,
		Identity:     service.ContextIdentity{},
		Tournaments:  service.NewTournamentNotifier(dedup),
	}, appLogger)

	// a failed warm-up is not fatal; the local store fills as matches are touched
	if err := matches.Refresh(ctx); err != nil {
		appLogger.Warn().Err(err).Msg("initial match load failed")
	}

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), handler.CORS(cfg.App.CORSOrigins))
	handler.Register(router, map[string]handler.Pinger{
		"postgres": postgres.NewPinger(pool),
		"redis":    redisstore.NewPinger(rdb),
	}, handler.Services{
		Matches:       matches,
		Stats:         service.NewStatsService(store, appLogger),
		Notifications: dedup,
	}, appLogger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info().Str("addr", srv.Addr).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// gctx ends on a signal or when the listener fails
		<-gctx.Done()
		appLogger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
