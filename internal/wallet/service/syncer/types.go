package syncer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/solana"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StateStore interface {
		Get(ctx context.Context) (model.SyncState, error)
		Set(ctx context.Context, state model.SyncState) error
		Update(ctx context.Context, fn func(model.SyncState) (model.SyncState, error)) (model.SyncState, error)
	}
	AccountDirectory interface {
		ListAccounts(ctx context.Context) ([]model.Account, error)
		ListAccountAssets(ctx context.Context, accountID string) ([]model.AssetID, error)
		GetAccountBalances(ctx context.Context, accountID string, assets []model.AssetID) (map[model.AssetID]model.Balance, error)
	}
	EventSink interface {
		AssetListChanged(ctx context.Context, event model.AssetListChangedEvent) error
		BalancesChanged(ctx context.Context, event model.BalancesChangedEvent) error
		TransactionsUpdated(ctx context.Context, event model.TransactionsUpdatedEvent) error
	}
	ChainSource interface {
		LatestSignatures(ctx context.Context, network model.Network, address string, limit int) ([]string, error)
		FetchTransactions(ctx context.Context, network model.Network, signatures []string) (map[string]*solana.Transaction, error)
	}

	SignatureCollector interface {
		Collect(ctx context.Context, accounts []model.Account, state model.SyncState) (SignatureIndex, error)
	}
	TransactionFetcher interface {
		Fetch(ctx context.Context, accounts []model.Account, index SignatureIndex) (FetchResult, error)
	}
	AssetRefresher interface {
		Refresh(ctx context.Context, accountID string, prevAssets []model.AssetID, prevBalances map[model.AssetID]model.Balance) (AssetSnapshot, error)
	}

	EngineMetrics interface {
		ObservePass(err error, skipped bool, newTransactions int, started time.Time)
		ObserveDropped(network string, n int)
		ObserveEvent(event string, err error)
	}

	Runner interface {
		Run(ctx context.Context, accountID string) (Report, error)
	}
	HealthReporter interface {
		SetServing(serving bool)
	}
)
