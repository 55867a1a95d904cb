// @title Trivia Board API
// @version 1.0
// @description Trivia quizzes from the Open Trivia Database with users, score submission and a leaderboard.
// @contact.name API Support
// @license.name MIT
// @host localhost:4000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "trivia-board/cmd/api/docs"
	"trivia-board/internal/adapter/opentdb"
	"trivia-board/internal/config"
	"trivia-board/internal/database"
	"trivia-board/internal/domain"
	"trivia-board/internal/handler"
	"trivia-board/internal/logger"
	"trivia-board/internal/metrics"
	"trivia-board/internal/middleware"
	"trivia-board/internal/repository"
	"trivia-board/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.MustRegister(registry)

	// Initialize repositories
	userRepository := repository.NewSQLXUserRepository(db)
	scoreRepository := repository.NewSQLXScoreRepository(db)

	// Question source
	sourceHTTPClient := &http.Client{Timeout: cfg.QuestionSource.Timeout}
	questionSource := opentdb.NewClient(cfg.QuestionSource.BaseURL, sourceHTTPClient, appLogger)

	// Initialize services
	quizService := service.NewQuizService(questionSource, domain.NewAssembler(cfg.Quiz.ShuffleAnswers))
	userService := service.NewUserService(userRepository)
	scoreService := service.NewScoreService(userRepository, scoreRepository)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)
	userHandler := handler.NewUserHandler(userService)
	scoreHandler := handler.NewScoreHandler(scoreService)
	healthHandler := handler.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(requestLogger())
	app.Use(middleware.Metrics())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	apiGroup := app.Group("/api")

	apiGroup.Get("/users", userHandler.ListUsers)
	apiGroup.Get("/users/:username", userHandler.GetUser)
	apiGroup.Post("/users", userHandler.CreateUser)

	apiGroup.Get("/categories", quizHandler.GetCategories)
	apiGroup.Post("/quiz", quizHandler.GenerateQuiz)

	apiGroup.Get("/leaderboard", scoreHandler.GetLeaderboard)
	apiGroup.Post("/scores", scoreHandler.SubmitScore)

	if cfg.Server.StaticDir != "" {
		app.Static("/", cfg.Server.StaticDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}
