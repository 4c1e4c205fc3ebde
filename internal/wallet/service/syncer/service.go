package syncer

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/clock"
	"go.uber.org/zap"
)

// Service schedules passes on an interval and on demand.
type Service struct {
	runner   Runner
	health   HealthReporter
	interval time.Duration
	triggers chan string
	logger   *zap.Logger
}

// NewService builds a Service. health may be nil.
func NewService(runner Runner, health HealthReporter, interval time.Duration, logger *zap.Logger) (*Service, error) {
	if runner == nil {
		return nil, errors.New("sync runner is required")
	}
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &Service{
		runner:   runner,
		health:   health,
		interval: interval,
		triggers: make(chan string, triggerQueueSize),
		logger:   logger.Named("scheduler"),
	}, nil
}

// Trigger requests an immediate pass for accountID, or for all accounts when empty.
// It reports false when the request queue is full.
func (s *Service) Trigger(accountID string) bool {
	select {
	case s.triggers <- accountID:
		return true
	default:
		s.logger.Warn("trigger queue full, dropping request", zap.String("account", accountID))
		return false
	}
}

// Run executes passes until the context is canceled. Failed passes are logged
// and retried on the next tick.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("scheduler started", zap.Duration("interval", s.interval))
	accountID := ""
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.runOnce(ctx, accountID)

		id, triggered, err := clock.WaitOrSignal(ctx, s.interval, s.triggers)
		if err != nil {
			return err
		}
		accountID = ""
		if triggered {
			accountID = id
		}
	}
}

func (s *Service) runOnce(ctx context.Context, accountID string) {
	report, err := s.runner.Run(ctx, accountID)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("sync pass failed, retrying on next tick",
			zap.String("account", accountID),
			zap.Error(err),
		)
		s.setServing(false)
		return
	}
	if report.Skipped {
		s.logger.Debug("sync pass skipped", zap.String("account", accountID))
		return
	}
	s.setServing(true)
}

func (s *Service) setServing(serving bool) {
	if s.health != nil {
		s.health.SetServing(serving)
	}
}
