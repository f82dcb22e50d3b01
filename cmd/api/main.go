package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/numduration/internal/domain/port/core"
	"github.com/amirhossein-jamali/numduration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/numduration/internal/domain/usecase/conversion"

	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/metrics"
	timeProvider "github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := newLogger(cfg.Logger.Format)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Initialize use cases
	var conversionUseCase usecase.ConversionUseCase = conversion.NewService(tp, appLogger)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		conversionUseCase = metrics.InstrumentConversion(conversionUseCase, m)
	}

	durationHandler := handler.NewDurationHandler(conversionUseCase, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, m)
	routes.SetupRoutes(router, durationHandler)
	if m != nil {
		routes.SetupMetrics(router, m, cfg.Metrics.Path)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"metrics": cfg.Metrics.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			_ = appLogger.Flush()
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newLogger builds the logger for the configured format. An empty format
// falls back to the default console logger.
func newLogger(format string) coreport.Logger {
	switch format {
	case "json":
		return logger.NewZapLogger(true)
	case "console":
		return logger.NewZapLogger(false)
	default:
		return logger.NewDefaultLogger()
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if f := cfg.Logger.Format; f != "" && f != "json" && f != "console" {
		return fmt.Errorf("invalid logger.format value: %s, must be json or console", f)
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/': %q", cfg.Metrics.Path)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: questionable production configuration: %v", warnings)
		}
	}

	return nil
}
