package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice_control_system/internal/handlers"
	"voice_control_system/internal/intent"
	"voice_control_system/internal/logger"
	"voice_control_system/internal/repository"
	"voice_control_system/internal/repository/db"
	"voice_control_system/internal/server"
	"voice_control_system/internal/service"
	"voice_control_system/internal/stt"

	"github.com/spf13/viper"
)

const (
	defaultDBPath        = "app.db"
	defaultUploadsDir    = "uploads"
	defaultTokenTTL      = 12 * time.Hour
	defaultRetentionTick = time.Hour
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// speech stack: transcription engine + intent classifier
	engine, err := buildSpeechEngine(log)
	if err != nil {
		log.Fatalw("failed to init speech engine", "err", err)
	}
	classifier := buildClassifier(log)

	// wire dependencies
	uploadsDir := stringOr("uploads.dir", defaultUploadsDir)
	repos := repository.NewRepository(database)
	services := service.NewService(repos, engine, classifier, service.Config{
		SigningKey:     viper.GetString("auth.signing_key"),
		TokenTTL:       durationOr("auth.token_ttl", defaultTokenTTL),
		UploadsDir:     uploadsDir,
		AudioRetention: viper.GetDuration("retention.max_age"),
	})
	apiHandler := handlers.NewHandler(services, log, uploadsDir)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// prune stored recordings in the background
	go services.Retention.Run(ctx, durationOr("retention.tick", defaultRetentionTick))

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", defaultDBPath)
		dbPath = defaultDBPath
	}
	return db.InitDB(dbPath)
}

// buildSpeechEngine selects the transcription backend from config.
// Without a whisper model path the endpoint stays up but fails fast.
func buildSpeechEngine(log *logger.Logger) (stt.Engine, error) {
	switch name := viper.GetString("stt.engine"); name {
	case "whisper":
		modelPath := viper.GetString("stt.model_path")
		log.Infow("loading whisper model", "path", modelPath)
		return stt.NewWhisper(modelPath, viper.GetString("stt.language"))
	case "", "disabled":
		log.Infow("speech engine disabled; transcription requests will be rejected")
		return stt.Disabled{}, nil
	default:
		log.Infow("unknown stt.engine; speech disabled", "engine", name)
		return stt.Disabled{}, nil
	}
}

// buildClassifier selects the intent backend from config. The keyword
// matcher needs no external service and is the default.
func buildClassifier(log *logger.Logger) intent.Classifier {
	switch name := viper.GetString("nlu.engine"); name {
	case "openai":
		apiKey := viper.GetString("nlu.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			log.Infow("nlu.engine=openai but no API key; falling back to keyword matcher")
			return intent.NewKeywordClassifier()
		}
		return intent.NewOpenAIClassifier(apiKey, viper.GetString("nlu.model"))
	case "", "keyword":
		return intent.NewKeywordClassifier()
	default:
		log.Infow("unknown nlu.engine; using keyword matcher", "engine", name)
		return intent.NewKeywordClassifier()
	}
}

func stringOr(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := viper.GetDuration(key); v > 0 {
		return v
	}
	return fallback
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
