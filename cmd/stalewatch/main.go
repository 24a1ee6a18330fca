package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/aleister1102/stalewatch/internal/directory"
	"github.com/aleister1102/stalewatch/internal/feed"
	"github.com/aleister1102/stalewatch/internal/httpclient"
	"github.com/aleister1102/stalewatch/internal/inventory"
	"github.com/aleister1102/stalewatch/internal/logger"
	"github.com/aleister1102/stalewatch/internal/notifier"
	"github.com/aleister1102/stalewatch/internal/runner"
)

// Exit codes: 0 clean run (per-host failures included), 1 global dependency
// failure, 2 configuration or usage error.
const (
	exitOK           = 0
	exitRunFailed    = 1
	exitConfigFailed = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Printf("[FATAL] Could not load config from '%s': %v", flags.GlobalConfigFile, err)
		return exitConfigFailed
	}
	if flags.LogLevel != "" {
		gCfg.LogConfig.LogLevel = flags.LogLevel
	}

	runID := time.Now().Format("20060102-150405")
	zLogger, err := logger.NewWithRunID(gCfg.LogConfig, runID)
	if err != nil {
		log.Printf("[FATAL] Could not initialize logger: %v", err)
		return exitConfigFailed
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Error().Err(err).Msg("Configuration validation failed")
		return exitConfigFailed
	}
	zLogger.Info().Str("run_id", runID).Bool("dry_run", flags.DryRun).Msg("Configuration validated, starting run")

	retryHandler := httpclient.NewRetryHandler(httpclient.RetryHandlerConfig{
		MaxRetries:       gCfg.RetryConfig.MaxRetries,
		BaseDelay:        time.Duration(gCfg.RetryConfig.BaseDelaySecs) * time.Second,
		MaxDelay:         time.Duration(gCfg.RetryConfig.MaxDelaySecs) * time.Second,
		EnableJitter:     true,
		RetryStatusCodes: httpclient.DefaultRetryStatusCodes,
	}, zLogger)

	httpClient, err := httpclient.NewHTTPClientBuilder(zLogger).
		WithRetryHandler(retryHandler).
		Build()
	if err != nil {
		zLogger.Error().Err(err).Msg("Could not build HTTP client")
		return exitConfigFailed
	}

	var dedupeStore *notifier.DedupeStore
	if gCfg.NotificationConfig.Dedupe.Enabled {
		dedupeStore, err = notifier.NewDedupeStore(gCfg.NotificationConfig.Dedupe, zLogger)
		if err != nil {
			// Dedupe is an optional bolt-on; a broken store must not block
			// reminders, so continue without it.
			zLogger.Warn().Err(err).Msg("Could not open dedupe store, continuing without suppression")
			dedupeStore = nil
		} else {
			defer func() {
				if closeErr := dedupeStore.Close(); closeErr != nil {
					zLogger.Warn().Err(closeErr).Msg("Could not close dedupe store")
				}
			}()
		}
	}

	feedClient := feed.NewClient(gCfg.FeedConfig, httpClient, zLogger)
	inventoryClient := inventory.NewClient(gCfg.InventoryConfig, httpClient, zLogger)
	directoryClient := directory.NewClient(gCfg.DirectoryConfig, httpClient, zLogger)
	chatClient := notifier.NewChatClient(gCfg.NotificationConfig, httpClient, zLogger)
	notificationHelper := notifier.NewNotificationHelper(chatClient, dedupeStore, flags.DryRun, zLogger)

	orchestrator := runner.NewOrchestrator(
		feedClient,
		inventoryClient,
		directoryClient,
		notificationHelper,
		gCfg.RunnerConfig,
		runID,
		zLogger,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	summary, err := orchestrator.RunOnce(ctx)
	if err != nil {
		var globalErr *runner.GlobalDependencyError
		if errors.As(err, &globalErr) {
			zLogger.Error().Err(err).Str("stage", globalErr.Stage).Msg("Run aborted on global dependency failure")
		} else {
			zLogger.Error().Err(err).Msg("Run failed")
		}
		return exitRunFailed
	}

	zLogger.Info().
		Str("summary", summary.String()).
		Int("host_errors", len(summary.HostErrors)).
		Msg("Run finished")
	return exitOK
}
