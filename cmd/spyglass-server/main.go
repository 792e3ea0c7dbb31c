package main

import (
	"time"

	"spyglass/internal/handlers"
	"spyglass/internal/metrics"
	"spyglass/internal/pipeline"
	"spyglass/internal/scheduler"
	"spyglass/pkg/config"
	"spyglass/pkg/logging"
	"spyglass/pkg/monitoring"
	"spyglass/pkg/server"
	"spyglass/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("spyglass-server")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Spyglass Server (Analytics Artifact API)")

	inputPath := config.RequireEnv("INPUT_PATH")
	outputDir := config.GetEnv("OUTPUT_DIR", "./out")
	brand := config.GetEnv("BRAND_KEYWORD", "shoffr")
	refreshInterval := time.Duration(config.GetEnvInt("REFRESH_INTERVAL_MINUTES", 60)) * time.Minute

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("spyglass-server", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("spyglass-server", version.Version, version.GitCommit)

	// Add health checks
	healthChecker.AddCheck("input", monitoring.FileReadableHealthCheck("input", inputPath))
	healthChecker.AddCheck("artifacts", monitoring.ArtifactHealthCheck(outputDir, pipeline.DashboardArtifact, 2*refreshInterval))
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"INPUT_PATH":    inputPath,
		"OUTPUT_DIR":    outputDir,
		"BRAND_KEYWORD": brand,
	}))

	// Create custom pipeline metrics
	serviceMetrics := &metrics.Metrics{
		PipelineRuns:   metricsCollector.NewCounter("pipeline_runs_total", "Pipeline runs executed", []string{"status"}),
		RunDuration:    metricsCollector.NewHistogram("pipeline_run_duration_seconds", "Pipeline run duration", []string{"status"}, nil),
		PostsProcessed: metricsCollector.NewGauge("posts_processed", "Posts normalized in the last successful run", []string{"input"}),
		ArtifactWrites: metricsCollector.NewCounter("artifact_writes_total", "Artifacts written", []string{"artifact"}),
	}

	runner := pipeline.NewRunner(pipeline.Config{
		InputPath: inputPath,
		OutputDir: outputDir,
		Brand:     brand,
	}, logger, serviceMetrics)

	// Initialize and start the refresh scheduler
	taskScheduler := scheduler.NewScheduler(runner, refreshInterval, logger)
	taskScheduler.Start()
	defer taskScheduler.Stop()

	// Setup router with unified monitoring
	router := server.SetupServiceRouter(logger, "spyglass-server", healthChecker, metricsCollector)

	handlers.Init(outputDir, logger)
	api := router.Group("/api")
	{
		api.GET("/posts", handlers.GetPosts)
		api.GET("/analytics", handlers.GetAnalytics)
		api.GET("/dashboard", handlers.GetDashboard)
	}

	// Start HTTP server with graceful shutdown
	serverConfig := server.DefaultConfig("spyglass-server", "18080")
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
}
