package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"mathflow/backend/internal/api"
	"mathflow/backend/internal/classifier"
	"mathflow/backend/internal/config"
	"mathflow/backend/internal/database"
	"mathflow/backend/internal/llm"
	"mathflow/backend/internal/repository"
	"mathflow/backend/internal/service"
)

const shutdownTimeout = 15 * time.Second

// App holds the long-lived resources of a running backend.
type App struct {
	DB     *sql.DB
	Server *http.Server

	closers []func() error
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", app.Server.Addr)
		serveErr <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
		return 0
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		return 1
	}
	slog.Info("Server stopped")
	return 0
}

// NewApp builds every collaborator from cfg. The caller owns the returned App
// and must Close it.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app := &App{DB: db}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	if strings.TrimSpace(cfg.GroqAPIKey) == "" {
		slog.Warn("GROQ_API_KEY is empty; reasoning calls will be rejected by the provider")
	}
	groq := llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.ReasoningModel, cfg.VisionModel)

	visionGemini := strings.EqualFold(cfg.VisionProvider, "gemini")
	reasoningGemini := strings.EqualFold(cfg.ReasoningProvider, "gemini")

	var gemini *llm.GeminiClient
	if visionGemini || reasoningGemini {
		gemini, err = llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		app.closers = append(app.closers, gemini.Close)
	}

	var recognizer llm.Recognizer = groq
	if visionGemini {
		recognizer = gemini
	}

	// The reasoner also lists the models the settings are validated against.
	var reasoner llm.Reasoner = groq
	var lister llm.ModelLister = groq
	reasoningModel := cfg.ReasoningModel
	if reasoningGemini {
		reasoner, lister = gemini, gemini
		reasoningModel = cfg.GeminiModel
	}
	slog.Info("Providers selected",
		"vision", strings.ToLower(cfg.VisionProvider),
		"reasoning", strings.ToLower(cfg.ReasoningProvider),
		"reasoning_model", reasoningModel,
	)

	policy := classifier.DefaultPolicy()
	if cfg.ClassifierPolicyFile != "" {
		policy, err = classifier.LoadPolicy(cfg.ClassifierPolicyFile)
		if err != nil {
			app.Close()
			return nil, err
		}
	}
	if cfg.ClassifierOptOut {
		policy.OptOut = true
	}
	cls := classifier.New(policy)

	journalRepo := repository.NewSQLiteJournal(db)
	settingsRepo := repository.NewSQLiteSettings(db)

	defaults := service.Settings{
		ReasoningModel:    reasoningModel,
		SampleCount:       cfg.SampleCount,
		SelectionStrategy: cfg.SelectionStrategy,
	}
	settingsService := service.NewSettingsService(settingsRepo, lister, defaults)
	appSettings, err := settingsService.InitAndGet(context.Background())
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize application settings: %w", err)
	}
	slog.Info("Loaded application settings",
		"reasoning_model", appSettings.ReasoningModel,
		"sample_count", appSettings.SampleCount,
		"selection_strategy", appSettings.SelectionStrategy,
	)

	tutorService := service.NewTutorService(reasoner, recognizer, cls, settingsService, journalRepo, service.TutorOptions{
		SampleTimeout: cfg.SampleTimeout(),
		Defaults:      defaults,
	})
	speechService := service.NewSpeechService(llm.NewTranslateTTS(cfg.TTSURL), cfg.TTSLanguage)
	modelService := service.NewModelService(lister)
	journalService := service.NewJournalService(journalRepo)

	router := api.NewRouter(api.Handlers{
		Problem:  api.NewProblemHandler(tutorService),
		Speech:   api.NewSpeechHandler(speechService),
		Settings: api.NewSettingsHandler(settingsService, modelService),
		Journal:  api.NewJournalHandler(journalService),
	}, cfg.AllowedOrigins(), cfg.RequestTimeout())

	app.Server = &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		// Math requests fan out to several slow completions.
		WriteTimeout: cfg.RequestTimeout() + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return app, nil
}

// Close releases provider clients and the database.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			slog.Warn("Failed to close provider client", "error", err)
		}
	}
	a.closers = nil
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
		a.DB = nil
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
