package model

import "time"

// SyncState is the persisted mirror of tracked accounts plus the single-flight flag.
type SyncState struct {
	IsFetchingTransactions bool      `json:"isFetchingTransactions"`
	LockAcquiredAt         time.Time `json:"lockAcquiredAt"`

	// Signatures holds known signatures per account and network, newest first.
	Signatures   map[string]map[Network][]string `json:"signatures"`
	Transactions map[string][]Transaction        `json:"transactions"`
	Assets       map[string][]AssetID            `json:"assets"`
	Balances     map[string]map[AssetID]Balance  `json:"balances"`
}

// Clone returns a deep copy of the maps and slices held by the state.
func (s SyncState) Clone() SyncState {
	out := SyncState{
		IsFetchingTransactions: s.IsFetchingTransactions,
		LockAcquiredAt:         s.LockAcquiredAt,
	}
	if s.Signatures != nil {
		out.Signatures = make(map[string]map[Network][]string, len(s.Signatures))
		for account, byNetwork := range s.Signatures {
			cp := make(map[Network][]string, len(byNetwork))
			for network, sigs := range byNetwork {
				cp[network] = append([]string(nil), sigs...)
			}
			out.Signatures[account] = cp
		}
	}
	if s.Transactions != nil {
		out.Transactions = make(map[string][]Transaction, len(s.Transactions))
		for account, txs := range s.Transactions {
			out.Transactions[account] = append([]Transaction(nil), txs...)
		}
	}
	if s.Assets != nil {
		out.Assets = make(map[string][]AssetID, len(s.Assets))
		for account, ids := range s.Assets {
			out.Assets[account] = append([]AssetID(nil), ids...)
		}
	}
	if s.Balances != nil {
		out.Balances = make(map[string]map[AssetID]Balance, len(s.Balances))
		for account, balances := range s.Balances {
			cp := make(map[AssetID]Balance, len(balances))
			for id, b := range balances {
				cp[id] = b
			}
			out.Balances[account] = cp
		}
	}
	return out
}

// KnownSignatures returns the known set for one account and network.
func (s SyncState) KnownSignatures(accountID string, network Network) map[string]struct{} {
	sigs := s.Signatures[accountID][network]
	out := make(map[string]struct{}, len(sigs))
	for _, sig := range sigs {
		out[sig] = struct{}{}
	}
	return out
}

// LockExpired reports whether a held lock is older than ttl. A zero ttl never expires.
// A held lock without an acquisition time has no age and never expires; it is cleared
// by resetting the lock explicitly.
func (s SyncState) LockExpired(now time.Time, ttl time.Duration) bool {
	if !s.IsFetchingTransactions || ttl <= 0 || s.LockAcquiredAt.IsZero() {
		return false
	}
	return now.Sub(s.LockAcquiredAt) > ttl
}
