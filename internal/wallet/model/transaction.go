package model

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type TxStatus string

const (
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

type TxType string

const (
	TxSend    TxType = "send"
	TxReceive TxType = "receive"
	TxSwap    TxType = "swap"
	TxUnknown TxType = "unknown"
)

// Movement is a value transfer of one asset seen from the account's point of view.
type Movement struct {
	Address string          `json:"address"`
	Asset   AssetID         `json:"asset"`
	Amount  decimal.Decimal `json:"amount"`
}

// Transaction is a normalized on-chain transaction attributed to one account.
type Transaction struct {
	Signature string     `json:"signature"`
	Network   Network    `json:"network"`
	AccountID string     `json:"accountId"`
	Slot      uint64     `json:"slot"`
	Timestamp time.Time  `json:"timestamp"`
	Status    TxStatus   `json:"status"`
	Type      TxType     `json:"type"`
	From      []Movement `json:"from"`
	To        []Movement `json:"to"`
	Fees      []Movement `json:"fees"`
}

// SortTransactions orders by timestamp ascending, then slot, then signature.
func SortTransactions(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Timestamp.Equal(txs[j].Timestamp) {
			return txs[i].Timestamp.Before(txs[j].Timestamp)
		}
		if txs[i].Slot != txs[j].Slot {
			return txs[i].Slot < txs[j].Slot
		}
		return txs[i].Signature < txs[j].Signature
	})
}

// ArchivedTransaction is one row of the transaction archive.
type ArchivedTransaction struct {
	Network   Network
	AccountID string
	Signature string
	Slot      uint64
	Timestamp time.Time
	Status    TxStatus
	Type      TxType
	Payload   string
}
