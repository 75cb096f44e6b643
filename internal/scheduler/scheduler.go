package scheduler

import (
	"context"
	"errors"
	"log/slog"

	"tweet_relay/internal/domain"
)

// Cycler runs one full polling pass over every watched handle.
type Cycler interface {
	Cycle(ctx context.Context) (*domain.CycleStats, error)
}

// Sleeper blocks for a jittered number of seconds drawn from [low, high].
type Sleeper interface {
	Sleep(ctx context.Context, low, high float64) error
}

// Scheduler drives the infinite polling loop, sleeping a jittered
// interval between cycles. It stops on context cancellation or when a
// cycle surfaces an account-wide authorization failure.
type Scheduler struct {
	cycler  Cycler
	sleeper Sleeper
	low     float64
	high    float64
	logger  *slog.Logger
}

func NewScheduler(cycler Cycler, sleeper Sleeper, low, high float64, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cycler:  cycler,
		sleeper: sleeper,
		low:     low,
		high:    high,
		logger:  logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "sleep_low_seconds", s.low, "sleep_high_seconds", s.high)

	for {
		if err := s.runCycle(ctx); err != nil {
			return err
		}

		if err := s.sleeper.Sleep(ctx, s.low, s.high); err != nil {
			if errors.Is(err, context.Canceled) {
				s.logger.Info("scheduler stopped")
			}
			return err
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) error {
	stats, err := s.cycler.Cycle(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrUnauthorized):
		s.logger.Error("authorization failed, shutting down", "error", err)
		return err
	case errors.Is(err, context.Canceled):
		s.logger.Info("scheduler stopped")
		return err
	default:
		// Cycle-level failures heal on the next poll.
		s.logger.Error("cycle failed", "error", err)
		if stats != nil {
			s.logger.Debug("partial cycle stats", "fetched", stats.Fetched, "errors", stats.Errors)
		}
		return nil
	}
}
