package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/tutorly/quizengine/internal/api"
	"github.com/tutorly/quizengine/internal/event"
	"github.com/tutorly/quizengine/internal/generator"
	"github.com/tutorly/quizengine/internal/infrastructure/config"
	"github.com/tutorly/quizengine/internal/metrics"
	"github.com/tutorly/quizengine/internal/service"
	"github.com/tutorly/quizengine/internal/store"

	_ "github.com/tutorly/quizengine/docs" // generated swagger docs
)

// @title           Quiz Engine API
// @version         1.0
// @description     Assembles quizzes from stored and generated questions, scores attempts and composes unit, subject and comprehensive assessments.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	gen := newGenerator(cfg, db)
	logger.Info("question generator configured", "provider", cfg.GeneratorProvider)

	var publisher event.Publisher = event.Nop{}
	if cfg.RabbitMQURI != "" {
		p, err := event.NewAMQPPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			// Events are a side channel; run without them.
			logger.Error("failed to connect to event bus, events disabled", "error", err)
		} else {
			publisher = p
		}
	}
	defer publisher.Close()

	bank := service.NewQuestionBankService(db, gen, logger)
	stats := service.NewStatsRecorder(bank, cfg.StatsWorkers, cfg.StatsQueue, logger)
	defer stats.Close()

	quizSvc := service.NewQuizService(bank, db, stats, publisher, logger)
	composer := service.NewComposer(bank, db, publisher, logger)
	handler := api.NewHandler(quizSvc, composer, bank, db, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      90 * time.Second, // generation can be slow
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "store", cfg.StoreDriver)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.StoreDriver == "mongo" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	}
	return store.NewSQLite(cfg.SQLitePath)
}

func newGenerator(cfg *config.Config, lessons generator.LessonSource) generator.Generator {
	switch cfg.GeneratorProvider {
	case "openai":
		return generator.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, lessons)
	case "none":
		return generator.Nop{}
	default:
		return generator.NewOllamaGenerator(cfg.LLMURL, cfg.LLMModel, lessons)
	}
}
