package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/saumyapn/folio/internal/api"
	"github.com/saumyapn/folio/internal/auth"
	"github.com/saumyapn/folio/internal/config"
	"github.com/saumyapn/folio/internal/db"
	"github.com/saumyapn/folio/internal/logger"
	"github.com/saumyapn/folio/internal/services"
)

func main() {
	seed := flag.Bool("seed", false, "load the demo portfolio before serving")
	flag.Parse()

	log := logger.New("server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	if *seed {
		if err := db.Seed(database); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
		log.Info().Msg("seed data loaded")
	}

	repositories := db.NewRepositories(database)
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	handler := api.NewHandler(
		services.NewAuthService(repositories.Profiles, tokenManager, log),
		services.NewProfileService(repositories.Profiles),
		services.NewProjectService(repositories.Projects),
		services.NewSkillService(repositories.Skills),
		tokenManager,
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:               "Folio",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(handler.RequestLogger)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("folio listening")
	if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
