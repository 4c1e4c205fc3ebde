// Package events fans sync change events out to in-process consumers.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"go.uber.org/zap"
)

const (
	TransactionsUpdated = "transactions_updated"
	AssetListChanged    = "asset_list_changed"
	BalancesChanged     = "balances_changed"
)

// Event is one published change. Data holds the matching model event value.
type Event struct {
	Name string
	Data any
}

type ConsumerID string

// Consumer receives events on Channel until its Context ends or it unsubscribes.
type Consumer struct {
	ID      ConsumerID
	Context context.Context
	Channel chan *Event
}

type Metrics interface {
	ObserveDelivery(event string, err error)
}

// Bus delivers every event to every subscribed consumer. Publishing blocks on a
// full consumer channel until the event is taken or one of the contexts ends.
type Bus struct {
	mu        sync.RWMutex
	consumers []*Consumer
	metrics   Metrics
	logger    *zap.Logger
}

func NewBus(metrics Metrics, logger *zap.Logger) (*Bus, error) {
	if metrics == nil {
		return nil, errors.New("event bus metrics is required")
	}
	return &Bus{metrics: metrics, logger: logger.Named("eventBus")}, nil
}

func (b *Bus) Subscribe(consumer *Consumer) error {
	if consumer == nil || consumer.Channel == nil {
		return errors.New("consumer channel is required")
	}
	if consumer.Context == nil {
		consumer.Context = context.Background()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.consumers {
		if c.ID == consumer.ID {
			return fmt.Errorf("consumer %s already subscribed", consumer.ID)
		}
	}
	b.consumers = append(b.consumers, consumer)
	b.logger.Info("consumer subscribed", zap.String("consumer_id", string(consumer.ID)))
	return nil
}

func (b *Bus) Unsubscribe(consumer *Consumer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, c := range b.consumers {
		if c.ID == consumer.ID {
			b.consumers = append(b.consumers[:i:i], b.consumers[i+1:]...)
			b.logger.Info("consumer unsubscribed", zap.String("consumer_id", string(consumer.ID)))
			return
		}
	}
}

func (b *Bus) snapshot() []*Consumer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]*Consumer(nil), b.consumers...)
}

// Publish delivers event to all consumers in subscription order. Consumers whose
// context has ended are skipped. It returns the publish context error if that ends first.
func (b *Bus) Publish(ctx context.Context, event *Event) error {
	for _, consumer := range b.snapshot() {
		err := b.deliver(ctx, consumer, event)
		b.metrics.ObserveDelivery(event.Name, err)
		if err != nil {
			return fmt.Errorf("deliver %s to %s: %w", event.Name, consumer.ID, err)
		}
	}
	b.logger.Debug("event published", zap.String("event", event.Name))
	return nil
}

func (b *Bus) deliver(ctx context.Context, consumer *Consumer, event *Event) error {
	select {
	case consumer.Channel <- event:
		return nil
	case <-consumer.Context.Done():
		b.logger.Debug("consumer gone, skipping", zap.String("consumer_id", string(consumer.ID)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bus) TransactionsUpdated(ctx context.Context, event model.TransactionsUpdatedEvent) error {
	return b.Publish(ctx, &Event{Name: TransactionsUpdated, Data: event})
}

func (b *Bus) AssetListChanged(ctx context.Context, event model.AssetListChangedEvent) error {
	return b.Publish(ctx, &Event{Name: AssetListChanged, Data: event})
}

func (b *Bus) BalancesChanged(ctx context.Context, event model.BalancesChangedEvent) error {
	return b.Publish(ctx, &Event{Name: BalancesChanged, Data: event})
}
