// Package pipeline orchestrates one batch run: read the raw dataset,
// normalize and classify every row, aggregate, generate the review boards,
// assemble the presentation document and write the three artifacts.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spyglass/internal/analytics"
	"spyglass/internal/dashboard"
	"spyglass/internal/ingest"
	"spyglass/internal/metrics"
	"spyglass/internal/reports"
	"spyglass/internal/sentiment"
	"spyglass/pkg/logging"
	"spyglass/pkg/models"
)

// Artifact file names, also served by the HTTP handlers in server mode.
const (
	PostsArtifact     = "posts.json"
	AnalyticsArtifact = "analytics.json"
	DashboardArtifact = "dashboard.json"
)

// Config carries the per-run parameters.
type Config struct {
	InputPath string
	OutputDir string
	Brand     string
}

// Result summarizes a completed run.
type Result struct {
	Posts     int
	Artifacts []string
	Duration  time.Duration
}

// Runner executes batch runs. Safe to reuse; each run recomputes everything
// from the input file.
type Runner struct {
	cfg     Config
	logger  logging.Logger
	metrics *metrics.Metrics
	nowFn   func() time.Time
}

// NewRunner creates a runner. The metrics argument may be nil in one-shot
// mode where no collector is running.
func NewRunner(cfg Config, logger logging.Logger, m *metrics.Metrics) *Runner {
	return &Runner{
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		nowFn:   time.Now,
	}
}

// Run executes one full pipeline pass. The wall clock is captured once at
// the start so defaults and relative timestamps stay consistent within the
// run and reruns over the same input are byte-identical.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	now := r.nowFn().UTC()

	result, err := r.run(ctx, now)
	result.Duration = time.Since(start)
	r.observe(result, err)

	if err != nil {
		return result, err
	}

	r.logger.WithFields(logging.Fields{
		"posts":       result.Posts,
		"artifacts":   len(result.Artifacts),
		"output_dir":  r.cfg.OutputDir,
		"duration_ms": result.Duration.Milliseconds(),
	}).Info("Pipeline run completed")
	return result, nil
}

func (r *Runner) run(ctx context.Context, now time.Time) (Result, error) {
	rows, err := ingest.ReadFile(r.cfg.InputPath)
	if err != nil {
		return Result{}, fmt.Errorf("reading input %s: %w", r.cfg.InputPath, err)
	}
	r.logger.WithFields(logging.Fields{
		"input": r.cfg.InputPath,
		"rows":  len(rows),
	}).Info("Input dataset loaded")

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	classifier := sentiment.NewClassifier(sentiment.DefaultLexicon())
	posts := ingest.NewIngestor(classifier).Normalize(rows, now)

	aggregate := analytics.Compute(posts)
	bundle := reports.NewGenerator(r.cfg.Brand, now).Generate(posts, aggregate)
	doc := dashboard.Assemble(aggregate, bundle, now)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating output dir: %w", err)
	}

	artifacts := []struct {
		name string
		data interface{}
	}{
		{PostsArtifact, models.PostList{Posts: posts}},
		{AnalyticsArtifact, aggregate},
		{DashboardArtifact, doc},
	}

	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(r.cfg.OutputDir, a.name)
		if err := writeArtifact(path, a.data); err != nil {
			return Result{}, fmt.Errorf("writing %s: %w", a.name, err)
		}
		if r.metrics != nil {
			r.metrics.ArtifactWrites.WithLabelValues(a.name).Inc()
		}
		written = append(written, path)
	}

	return Result{Posts: len(posts), Artifacts: written}, nil
}

func (r *Runner) observe(result Result, err error) {
	if r.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	r.metrics.PipelineRuns.WithLabelValues(status).Inc()
	r.metrics.RunDuration.WithLabelValues(status).Observe(result.Duration.Seconds())
	if err == nil {
		r.metrics.PostsProcessed.WithLabelValues(filepath.Base(r.cfg.InputPath)).Set(float64(result.Posts))
	}
}

// writeArtifact writes JSON via a temp file and rename, so readers never
// observe a half-written artifact.
func writeArtifact(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
