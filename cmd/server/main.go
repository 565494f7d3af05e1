// Package main provides the entry point for the analysis API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/value-edge/internal/analysis"
	"github.com/yourusername/value-edge/internal/config"
	"github.com/yourusername/value-edge/internal/health"
	"github.com/yourusername/value-edge/internal/logger"
	"github.com/yourusername/value-edge/internal/narrative"
	"github.com/yourusername/value-edge/internal/server"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"config":      cfg.String(),
	}).Info("Value Edge analysis server starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire the reasoning service when configured; the engine runs fine
	// without it.
	var (
		generator narrative.Generator = narrative.Noop{}
		pinger    health.Pinger
	)
	if cfg.NarrativeEnabled() {
		client := narrative.NewClient(&cfg.Narrative, appLog)
		defer client.Close()

		generator = narrative.NewCachedGenerator(client,
			time.Duration(cfg.Narrative.CacheTTLSeconds)*time.Second,
			cfg.Narrative.CacheMaxSize,
			appLog,
		)
		pinger = client

		appLog.WithField("narrative_url", cfg.Narrative.BaseURL).Info("Reasoning service client initialized")
	} else {
		appLog.Info("Reasoning service disabled; analyses will carry no narrative text")
	}

	analyzer := analysis.NewAnalyzer(
		cfg.Analysis.StrengthWeights,
		analysis.Thresholds{
			MinExpectedValue: cfg.Analysis.MinExpectedValue,
			MinConfidence:    cfg.Analysis.MinConfidence,
		},
		cfg.Analysis.DrawBand,
		generator,
		appLog,
	)

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Commit:      GitCommit,
		Logger:      appLog,
		Narrative:   pinger,
	})
	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}
	healthServer.SetReady(true)

	apiServer := server.New(analyzer, &cfg.Server, &cfg.Metrics, appLog)

	errChan := make(chan error, 1)
	go func() {
		errChan <- apiServer.Start(ctx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		appLog.WithField("signal", sig).Info("Shutdown signal received")
	case err := <-errChan:
		if err != nil {
			appLog.WithError(err).Error("API server error")
		}
	}

	healthServer.SetReady(false)
	cancel()

	// Give in-flight requests time to drain
	time.Sleep(2 * time.Second)

	appLog.Info("Value Edge analysis server shut down")
}
