package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/cmd"
	"backoffice/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultGridFilterRetention     = 90 * 24 * time.Hour
	defaultGridFilterPurgeSchedule = "0 30 3 * * *"
	shutdownTimeout                = 10 * time.Second
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustGormOpen(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	err := startWebServer(app, configs.HTTPPort)
	jobManager.StopAll()
	if err != nil {
		log.Fatalf("Web server stopped: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using the process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		Languages:               goDotEnvVariable("LANGUAGES"),
		DefaultLanguage:         goDotEnvVariable("DEFAULT_LANGUAGE"),
		FlashHashKey:            goDotEnvVariable("FLASH_HASH_KEY"),
		FlashBlockKey:           goDotEnvVariable("FLASH_BLOCK_KEY"),
		GridFilterRetention:     defaultGridFilterRetention,
		GridFilterPurgeSchedule: goDotEnvVariable("GRID_FILTER_PURGE_SCHEDULE"),
		MailTemplatesURL:        goDotEnvVariable("MAIL_TEMPLATES_URL"),
	}

	if raw := goDotEnvVariable("GRID_FILTER_RETENTION"); raw != "" {
		retention, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Error parsing GRID_FILTER_RETENTION: %v", err)
		}
		config.GridFilterRetention = retention
	}
	if config.GridFilterPurgeSchedule == "" {
		config.GridFilterPurgeSchedule = defaultGridFilterPurgeSchedule
	}
	if config.Languages == "" {
		config.Languages = "en:English"
	}
	if config.DefaultLanguage == "" {
		config.DefaultLanguage = "en"
	}
	return config
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

// startWebServer serves until a shutdown signal arrives or the listener fails, and
// returns the listener error if any.
func startWebServer(app cmd.CompositionRoot, port string) error {
	e, err := app.CreateEcho()
	if err != nil {
		return fmt.Errorf("build web server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, e, fmt.Sprintf("0.0.0.0:%s", port))
}

func serve(ctx context.Context, e *echo.Echo, address string) error {
	startErr := make(chan error, 1)
	go func() {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			startErr <- err
		}
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-startErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		e.Logger.Error(shutdownErr)
	}
	return err
}
