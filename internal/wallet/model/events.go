package model

// AssetListChangedEvent reports assets that appeared or disappeared for an account.
type AssetListChangedEvent struct {
	AccountID string        `json:"accountId"`
	Diff      AssetListDiff `json:"diff"`
}

// BalancesChangedEvent carries new values of added or changed balances.
type BalancesChangedEvent struct {
	AccountID string              `json:"accountId"`
	Balances  map[AssetID]Balance `json:"balances"`
	Deleted   []AssetID           `json:"deleted,omitempty"`
}

// TransactionsUpdatedEvent carries transactions appended to an account's history.
type TransactionsUpdatedEvent struct {
	AccountID    string        `json:"accountId"`
	Transactions []Transaction `json:"transactions"`
}
