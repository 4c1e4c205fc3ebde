// Package syncer runs incremental synchronization passes over tracked accounts.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownAccount is returned when a pass is requested for an account the directory does not list.
var ErrUnknownAccount = errors.New("unknown account")

var errLockHeld = errors.New("sync lock held")

// Config tunes an Engine. Zero values fall back to defaults, except HistoryLimit
// where zero keeps the whole history and LockTTL where a negative value disables expiry.
type Config struct {
	Networks       []model.Network
	SignatureLimit int
	HistoryLimit   int
	WorkerCount    int
	LockTTL        time.Duration
}

// Report summarizes one pass.
type Report struct {
	PassID          uuid.UUID `json:"passId"`
	Skipped         bool      `json:"skipped"`
	Accounts        int       `json:"accounts"`
	NewTransactions int       `json:"newTransactions"`
	Dropped         int       `json:"dropped"`
	Events          int       `json:"events"`
}

// Engine performs single-flight sync passes. Concurrent passes are collapsed
// through a flag persisted in the state store.
type Engine struct {
	store     StateStore
	directory AccountDirectory
	sink      EventSink
	metrics   EngineMetrics
	logger    *zap.Logger

	collector SignatureCollector
	fetcher   TransactionFetcher
	refresher AssetRefresher

	signatureLimit int
	historyLimit   int
	lockTTL        time.Duration
	now            func() time.Time
}

// NewEngine builds an Engine with dependencies.
func NewEngine(
	store StateStore,
	source ChainSource,
	directory AccountDirectory,
	sink EventSink,
	metrics EngineMetrics,
	cfg Config,
	logger *zap.Logger,
) (*Engine, error) {
	switch {
	case store == nil:
		return nil, errors.New("state store is required")
	case source == nil:
		return nil, errors.New("chain source is required")
	case directory == nil:
		return nil, errors.New("account directory is required")
	case sink == nil:
		return nil, errors.New("event sink is required")
	case metrics == nil:
		return nil, errors.New("sync engine metrics is required")
	case len(cfg.Networks) == 0:
		return nil, errors.New("at least one network is required")
	}
	if cfg.SignatureLimit <= 0 {
		cfg.SignatureLimit = DefaultSignatureLimit
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultWorkerCount
	}
	switch {
	case cfg.LockTTL == 0:
		cfg.LockTTL = DefaultLockTTL
	case cfg.LockTTL < 0:
		cfg.LockTTL = 0
	}
	if cfg.HistoryLimit < 0 {
		cfg.HistoryLimit = 0
	}

	networks := sortedNetworks(cfg.Networks)
	logger = logger.Named("syncer")
	return &Engine{
		store:     store,
		directory: directory,
		sink:      sink,
		metrics:   metrics,
		logger:    logger,
		collector: &signatureCollector{
			source:   source,
			networks: networks,
			limit:    cfg.SignatureLimit,
			workers:  cfg.WorkerCount,
			logger:   logger.Named("collector"),
		},
		fetcher: &transactionFetcher{
			source:   source,
			networks: networks,
			metrics:  metrics,
			logger:   logger.Named("fetcher"),
		},
		refresher:      &assetRefresher{directory: directory},
		signatureLimit: cfg.SignatureLimit,
		historyLimit:   cfg.HistoryLimit,
		lockTTL:        cfg.LockTTL,
		now:            time.Now,
	}, nil
}

// Run performs one pass over all accounts, or over accountID when it is not empty.
// A pass that finds the lock held returns a skipped report and no error.
func (e *Engine) Run(ctx context.Context, accountID string) (report Report, err error) {
	started := time.Now()
	report.PassID = uuid.New()
	logger := e.logger.With(zap.String("pass", report.PassID.String()))
	if accountID != "" {
		logger = logger.With(zap.String("account", accountID))
	}
	defer func() {
		e.metrics.ObservePass(err, report.Skipped, report.NewTransactions, started)
	}()

	state, err := e.store.Get(ctx)
	if err != nil {
		return report, fmt.Errorf("read sync state: %w", err)
	}
	if state.IsFetchingTransactions && !state.LockExpired(e.now(), e.lockTTL) {
		logger.Debug("pass already in flight, skipping")
		report.Skipped = true
		return report, nil
	}

	state, err = e.acquire(ctx, logger)
	if errors.Is(err, errLockHeld) {
		logger.Debug("lost lock race, skipping")
		report.Skipped = true
		return report, nil
	}
	if err != nil {
		return report, err
	}

	released := false
	defer func() {
		if released {
			return
		}
		if relErr := e.release(context.WithoutCancel(ctx)); relErr != nil {
			logger.Error("release sync lock failed", zap.Error(relErr))
		}
	}()

	outcome, err := e.pass(ctx, accountID, state)
	if err != nil {
		logger.Error("sync pass failed", zap.Error(err))
		return report, err
	}

	var appended map[string][]model.Transaction
	_, err = e.store.Update(ctx, func(s model.SyncState) (model.SyncState, error) {
		appended = e.merge(&s, outcome)
		s.IsFetchingTransactions = false
		s.LockAcquiredAt = time.Time{}
		return s, nil
	})
	if err != nil {
		err = fmt.Errorf("persist sync state: %w", err)
		logger.Error("sync pass failed", zap.Error(err))
		return report, err
	}
	released = true

	report.Accounts = len(outcome.accounts)
	report.Dropped = outcome.fetched.Dropped
	for _, txs := range appended {
		report.NewTransactions += len(txs)
	}
	report.Events = e.emit(ctx, logger, outcome, appended)

	logger.Info("sync pass finished",
		zap.Int("accounts", report.Accounts),
		zap.Int("new_transactions", report.NewTransactions),
		zap.Int("dropped", report.Dropped),
		zap.Int("events", report.Events),
		zap.Duration("took", time.Since(started)),
	)
	return report, nil
}

type passOutcome struct {
	accounts  []model.Account
	index     SignatureIndex
	fetched   FetchResult
	snapshots map[string]AssetSnapshot
}

func (e *Engine) pass(ctx context.Context, accountID string, state model.SyncState) (passOutcome, error) {
	accounts, err := e.accounts(ctx, accountID)
	if err != nil {
		return passOutcome{}, err
	}

	index, err := e.collector.Collect(ctx, accounts, state)
	if err != nil {
		return passOutcome{}, err
	}

	fetched, err := e.fetcher.Fetch(ctx, accounts, index)
	if err != nil {
		return passOutcome{}, fmt.Errorf("fetch transactions: %w", err)
	}

	snapshots := make(map[string]AssetSnapshot, len(accounts))
	for _, account := range accounts {
		snap, err := e.refresher.Refresh(ctx, account.ID, state.Assets[account.ID], state.Balances[account.ID])
		if err != nil {
			return passOutcome{}, err
		}
		snapshots[account.ID] = snap
	}

	return passOutcome{
		accounts:  accounts,
		index:     index,
		fetched:   fetched,
		snapshots: snapshots,
	}, nil
}

func (e *Engine) accounts(ctx context.Context, accountID string) ([]model.Account, error) {
	accounts, err := e.directory.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	if accountID == "" {
		return accounts, nil
	}
	for _, account := range accounts {
		if account.ID == accountID {
			return []model.Account{account}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, accountID)
}

func (e *Engine) acquire(ctx context.Context, logger *zap.Logger) (model.SyncState, error) {
	var (
		stale      bool
		acquiredAt time.Time
	)
	state, err := e.store.Update(ctx, func(s model.SyncState) (model.SyncState, error) {
		now := e.now()
		if s.IsFetchingTransactions {
			if !s.LockExpired(now, e.lockTTL) {
				return s, errLockHeld
			}
			stale = true
			acquiredAt = s.LockAcquiredAt
		}
		s.IsFetchingTransactions = true
		s.LockAcquiredAt = now
		return s, nil
	})
	if err != nil {
		if errors.Is(err, errLockHeld) {
			return state, errLockHeld
		}
		return state, fmt.Errorf("acquire sync lock: %w", err)
	}
	if stale {
		logger.Warn("taking over stale sync lock",
			zap.Time("acquired_at", acquiredAt),
			zap.Duration("ttl", e.lockTTL),
		)
	}
	return state, nil
}

func (e *Engine) release(ctx context.Context) error {
	_, err := e.store.Update(ctx, func(s model.SyncState) (model.SyncState, error) {
		s.IsFetchingTransactions = false
		s.LockAcquiredAt = time.Time{}
		return s, nil
	})
	return err
}

// merge folds a pass outcome into s and returns the transactions appended per account.
func (e *Engine) merge(s *model.SyncState, outcome passOutcome) map[string][]model.Transaction {
	if s.Signatures == nil {
		s.Signatures = make(map[string]map[model.Network][]string)
	}
	if s.Transactions == nil {
		s.Transactions = make(map[string][]model.Transaction)
	}
	if s.Assets == nil {
		s.Assets = make(map[string][]model.AssetID)
	}
	if s.Balances == nil {
		s.Balances = make(map[string]map[model.AssetID]model.Balance)
	}

	appended := make(map[string][]model.Transaction)
	for _, account := range outcome.accounts {
		id := account.ID

		stored := make(map[string]struct{}, len(s.Transactions[id]))
		for _, tx := range s.Transactions[id] {
			stored[tx.Signature] = struct{}{}
		}
		for _, tx := range outcome.fetched.Transactions[id] {
			if _, ok := stored[tx.Signature]; ok {
				continue
			}
			stored[tx.Signature] = struct{}{}
			appended[id] = append(appended[id], tx)
		}
		if len(appended[id]) > 0 {
			history := append(s.Transactions[id], appended[id]...)
			if e.historyLimit > 0 && len(history) > e.historyLimit {
				history = history[len(history)-e.historyLimit:]
			}
			s.Transactions[id] = history
		}

		for network, window := range outcome.index.Window[id] {
			if s.Signatures[id] == nil {
				s.Signatures[id] = make(map[model.Network][]string)
			}
			s.Signatures[id][network] = mergeKnown(
				s.Signatures[id][network],
				window,
				outcome.fetched.Resolved[network],
				knownWindowFactor*e.signatureLimit,
			)
		}

		if snap, ok := outcome.snapshots[id]; ok {
			s.Assets[id] = snap.Assets
			s.Balances[id] = snap.Balances
		}
	}
	return appended
}

// emit publishes change events per account after the state is persisted.
// Delivery failures are logged and counted but do not fail the pass.
func (e *Engine) emit(ctx context.Context, logger *zap.Logger, outcome passOutcome, appended map[string][]model.Transaction) int {
	sent := 0
	deliver := func(event, accountID string, err error) {
		e.metrics.ObserveEvent(event, err)
		if err != nil {
			logger.Warn("event delivery failed",
				zap.String("event", event),
				zap.String("account", accountID),
				zap.Error(err),
			)
			return
		}
		sent++
	}

	for _, account := range outcome.accounts {
		id := account.ID
		if txs := appended[id]; len(txs) > 0 {
			err := e.sink.TransactionsUpdated(ctx, model.TransactionsUpdatedEvent{AccountID: id, Transactions: txs})
			deliver(EventTransactionsUpdated, id, err)
		}

		snap, ok := outcome.snapshots[id]
		if !ok {
			continue
		}
		if !snap.AssetDiff.IsEmpty() {
			err := e.sink.AssetListChanged(ctx, model.AssetListChangedEvent{AccountID: id, Diff: snap.AssetDiff})
			deliver(EventAssetListChanged, id, err)
		}
		if !snap.BalanceDiff.IsEmpty() {
			err := e.sink.BalancesChanged(ctx, model.BalancesChangedEvent{
				AccountID: id,
				Balances:  snap.BalanceDiff.Updated(),
				Deleted:   snap.BalanceDiff.DeletedAssets(),
			})
			deliver(EventBalancesChanged, id, err)
		}
	}
	return sent
}

func sortedNetworks(networks []model.Network) []model.Network {
	out := append([]model.Network(nil), networks...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
