package syncer

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/solana"
	"go.uber.org/zap"
)

// FetchResult holds mapped transactions and the signatures that no longer need fetching.
type FetchResult struct {
	// Transactions per account, ordered by timestamp then slot.
	Transactions map[string][]model.Transaction
	// Resolved lists signatures per network that came back with a definitive answer,
	// including records that were dropped as unmappable.
	Resolved map[model.Network]map[string]struct{}
	Dropped  int
}

// Count returns the number of mapped transactions across accounts.
func (r FetchResult) Count() int {
	n := 0
	for _, txs := range r.Transactions {
		n += len(txs)
	}
	return n
}

type transactionFetcher struct {
	source   ChainSource
	networks []model.Network
	metrics  EngineMetrics
	logger   *zap.Logger
}

// Fetch issues one bulk request per network that has new signatures. A failed
// network is logged and skipped so its signatures are retried on the next pass.
func (f *transactionFetcher) Fetch(ctx context.Context, accounts []model.Account, index SignatureIndex) (FetchResult, error) {
	result := FetchResult{
		Transactions: make(map[string][]model.Transaction),
		Resolved:     make(map[model.Network]map[string]struct{}),
	}

	for _, network := range f.networks {
		sigs := index.ByNetwork[network]
		if len(sigs) == 0 {
			continue
		}
		logger := f.logger.With(zap.String("network", string(network)))

		fetched, err := f.source.FetchTransactions(ctx, network, sigs)
		if err != nil {
			if ctx.Err() != nil {
				return FetchResult{}, ctx.Err()
			}
			logger.Error("bulk transaction fetch failed, leaving signatures for next pass",
				zap.Int("signatures", len(sigs)),
				zap.Error(err),
			)
			continue
		}

		resolved := make(map[string]struct{}, len(fetched))
		for sig := range fetched {
			resolved[sig] = struct{}{}
		}
		result.Resolved[network] = resolved

		dropped := 0
		for _, account := range accounts {
			for _, sig := range index.ByAccount[account.ID][network] {
				raw, ok := fetched[sig]
				if !ok {
					continue
				}
				tx, err := solana.MapTransaction(raw, network, account)
				if err != nil {
					dropped++
					logger.Warn("dropping unmappable transaction",
						zap.String("account", account.ID),
						zap.String("signature", sig),
						zap.Error(err),
					)
					continue
				}
				result.Transactions[account.ID] = append(result.Transactions[account.ID], tx)
			}
		}
		f.metrics.ObserveDropped(string(network), dropped)
		result.Dropped += dropped
		logger.Debug("transactions fetched",
			zap.Int("requested", len(sigs)),
			zap.Int("returned", len(fetched)),
			zap.Int("dropped", dropped),
		)
	}

	for id := range result.Transactions {
		model.SortTransactions(result.Transactions[id])
	}
	return result, nil
}
