package scheduler

import (
	"context"
	"time"

	"spyglass/internal/pipeline"
	"spyglass/pkg/logging"
)

// Scheduler periodically re-runs the analytics pipeline so the served
// artifacts track the input dataset in server mode.
type Scheduler struct {
	logger   logging.Logger
	runner   *pipeline.Runner
	interval time.Duration
	ticker   *time.Ticker
	stopChan chan bool
}

// NewScheduler creates a scheduler around an existing pipeline runner.
func NewScheduler(runner *pipeline.Runner, interval time.Duration, logger logging.Logger) *Scheduler {
	return &Scheduler{
		logger:   logger,
		runner:   runner,
		interval: interval,
		stopChan: make(chan bool),
	}
}

// Start begins the refresh loop and kicks off an immediate first run so the
// artifacts exist before the first request arrives.
func (s *Scheduler) Start() {
	s.logger.WithFields(logging.Fields{
		"interval": s.interval,
	}).Info("Starting pipeline refresh scheduler")

	s.ticker = time.NewTicker(s.interval)
	go s.runRefreshLoop()

	go func() {
		s.logger.Info("Running initial pipeline refresh")
		s.refresh()
	}()
}

// Stop stops the refresh loop.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping pipeline refresh scheduler")

	if s.ticker != nil {
		s.ticker.Stop()
	}

	close(s.stopChan)
}

func (s *Scheduler) runRefreshLoop() {
	for {
		select {
		case <-s.ticker.C:
			s.logger.Info("Running scheduled pipeline refresh")
			s.refresh()
		case <-s.stopChan:
			s.logger.Info("Stopping refresh loop")
			return
		}
	}
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := s.runner.Run(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Pipeline refresh failed")
		return
	}
	s.logger.WithFields(logging.Fields{
		"posts": result.Posts,
	}).Info("Pipeline refresh completed")
}

// TriggerRefresh runs the pipeline immediately, outside the schedule.
func (s *Scheduler) TriggerRefresh() error {
	s.logger.Info("Manually triggering pipeline refresh")
	_, err := s.runner.Run(context.Background())
	return err
}
