package syncer

import "time"

const (
	DefaultSignatureLimit = 50
	DefaultWorkerCount    = 8
	DefaultLockTTL        = 15 * time.Minute
	DefaultSyncInterval   = 1 * time.Minute

	// known signatures kept per (account, network), as a multiple of the signature limit
	knownWindowFactor = 2

	triggerQueueSize = 16
)

const (
	EventTransactionsUpdated = "transactions_updated"
	EventAssetListChanged    = "asset_list_changed"
	EventBalancesChanged     = "balances_changed"
)
