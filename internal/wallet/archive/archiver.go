// Package archive copies newly synced transactions into the analytical store.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/events"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/batcher"
	"go.uber.org/zap"
)

const (
	consumerID         = events.ConsumerID("transaction-archive")
	defaultFlushSize   = 500
	defaultFlushPeriod = 5 * time.Second
	channelCapacity    = 64
)

type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	// RPS caps insert batches per second; zero means unlimited.
	RPS int
}

// Archiver consumes transactions-updated events and writes them in batches.
// It subscribes on construction so events published before Run starts are buffered.
type Archiver struct {
	bus      Subscriber
	repo     Repository
	cfg      Config
	consumer *events.Consumer
	stop     context.CancelFunc
	logger   *zap.Logger
}

func New(bus Subscriber, repo Repository, cfg Config, logger *zap.Logger) (*Archiver, error) {
	if bus == nil {
		return nil, errors.New("event subscriber is required")
	}
	if repo == nil {
		return nil, errors.New("archive repository is required")
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushPeriod
	}

	consumerCtx, stop := context.WithCancel(context.Background())
	consumer := &events.Consumer{
		ID:      consumerID,
		Context: consumerCtx,
		Channel: make(chan *events.Event, channelCapacity),
	}
	if err := bus.Subscribe(consumer); err != nil {
		stop()
		return nil, fmt.Errorf("subscribe archive: %w", err)
	}

	return &Archiver{
		bus:      bus,
		repo:     repo,
		cfg:      cfg,
		consumer: consumer,
		stop:     stop,
		logger:   logger.Named("archive"),
	}, nil
}

// Run consumes events until ctx ends. Buffered events are drained and flushed before it returns.
func (a *Archiver) Run(ctx context.Context) error {
	defer func() {
		a.stop()
		a.bus.Unsubscribe(a.consumer)
	}()

	b := batcher.New(a.logger, a.repo.InsertAccountTransactions, a.cfg.FlushSize, a.cfg.FlushInterval, a.cfg.RPS)
	b.Start(context.WithoutCancel(ctx))
	defer b.Stop()

	for {
		select {
		case <-ctx.Done():
			a.drain(context.WithoutCancel(ctx), b)
			return nil
		case ev := <-a.consumer.Channel:
			if err := a.handle(ctx, b, ev); err != nil {
				if ctx.Err() != nil {
					a.drain(context.WithoutCancel(ctx), b)
					return nil
				}
				return err
			}
		}
	}
}

func (a *Archiver) drain(ctx context.Context, b *batcher.Batcher[model.ArchivedTransaction]) {
	for {
		select {
		case ev := <-a.consumer.Channel:
			if err := a.handle(ctx, b, ev); err != nil {
				a.logger.Warn("dropping event while stopping", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (a *Archiver) handle(ctx context.Context, b *batcher.Batcher[model.ArchivedTransaction], ev *events.Event) error {
	if ev == nil || ev.Name != events.TransactionsUpdated {
		return nil
	}
	payload, ok := ev.Data.(model.TransactionsUpdatedEvent)
	if !ok {
		a.logger.Warn("unexpected event payload", zap.String("event", ev.Name))
		return nil
	}
	for _, tx := range payload.Transactions {
		row, err := ToArchived(tx)
		if err != nil {
			a.logger.Warn("skipping transaction", zap.String("signature", tx.Signature), zap.Error(err))
			continue
		}
		if err := b.Add(ctx, row); err != nil {
			return fmt.Errorf("queue %s: %w", tx.Signature, err)
		}
	}
	return nil
}

// ToArchived flattens tx into an archive row with the full record as JSON payload.
func ToArchived(tx model.Transaction) (model.ArchivedTransaction, error) {
	payload, err := json.Marshal(tx)
	if err != nil {
		return model.ArchivedTransaction{}, fmt.Errorf("encode transaction: %w", err)
	}
	return model.ArchivedTransaction{
		Network:   tx.Network,
		AccountID: tx.AccountID,
		Signature: tx.Signature,
		Slot:      tx.Slot,
		Timestamp: tx.Timestamp,
		Status:    tx.Status,
		Type:      tx.Type,
		Payload:   string(payload),
	}, nil
}
