package main

import (
	"context"

	"spyglass/internal/pipeline"
	"spyglass/pkg/config"
	"spyglass/pkg/logging"
	"spyglass/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("spyglass")

	// Load environment variables
	config.LoadEnv(logger)

	logger.WithFields(logging.Fields{
		"version": version.Version,
		"commit":  version.GetShortCommit(),
	}).Info("Starting Spyglass (LinkedIn Analytics Pipeline)")

	inputPath := config.RequireEnv("INPUT_PATH")
	outputDir := config.GetEnv("OUTPUT_DIR", "./out")
	brand := config.GetEnv("BRAND_KEYWORD", "shoffr")

	runner := pipeline.NewRunner(pipeline.Config{
		InputPath: inputPath,
		OutputDir: outputDir,
		Brand:     brand,
	}, logger, nil)

	result, err := runner.Run(context.Background())
	if err != nil {
		logger.WithError(err).Fatal("Pipeline run failed")
	}

	logger.WithFields(logging.Fields{
		"posts":      result.Posts,
		"artifacts":  result.Artifacts,
		"output_dir": outputDir,
	}).Info("Artifacts written")
}
