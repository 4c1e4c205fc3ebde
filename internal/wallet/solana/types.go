// Package solana reads account history and holdings over the RPC pipeline
// and normalizes transactions into wallet records.
package solana

import (
	"bytes"
	"encoding/json"
)

const (
	TokenProgramID     = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	Token2022ProgramID = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
)

// SignatureInfo is one entry of getSignaturesForAddress.
type SignatureInfo struct {
	Signature string          `json:"signature"`
	Slot      uint64          `json:"slot"`
	Err       json.RawMessage `json:"err"`
	BlockTime *int64          `json:"blockTime"`
}

// Transaction is a getTransaction result in jsonParsed encoding.
type Transaction struct {
	Slot        uint64           `json:"slot"`
	BlockTime   *int64           `json:"blockTime"`
	Meta        *TransactionMeta `json:"meta"`
	Transaction TransactionBody  `json:"transaction"`
}

type TransactionBody struct {
	Signatures []string `json:"signatures"`
	Message    Message  `json:"message"`
}

type Message struct {
	AccountKeys []AccountKey `json:"accountKeys"`
}

// AccountKey accepts both the parsed object form and the plain string form.
type AccountKey struct {
	Pubkey   string `json:"pubkey"`
	Signer   bool   `json:"signer"`
	Writable bool   `json:"writable"`
}

func (k *AccountKey) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		return json.Unmarshal(data, &k.Pubkey)
	}
	type plain AccountKey
	return json.Unmarshal(data, (*plain)(k))
}

type TransactionMeta struct {
	Err               json.RawMessage `json:"err"`
	Fee               uint64          `json:"fee"`
	PreBalances       []uint64        `json:"preBalances"`
	PostBalances      []uint64        `json:"postBalances"`
	PreTokenBalances  []TokenBalance  `json:"preTokenBalances"`
	PostTokenBalances []TokenBalance  `json:"postTokenBalances"`
}

// Failed reports whether the transaction executed with an error.
func (m *TransactionMeta) Failed() bool {
	trimmed := bytes.TrimSpace(m.Err)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

type TokenBalance struct {
	AccountIndex  int         `json:"accountIndex"`
	Mint          string      `json:"mint"`
	Owner         string      `json:"owner"`
	ProgramID     string      `json:"programId"`
	UITokenAmount TokenAmount `json:"uiTokenAmount"`
}

type TokenAmount struct {
	Amount         string `json:"amount"`
	Decimals       int    `json:"decimals"`
	UIAmountString string `json:"uiAmountString"`
}

// TokenAccount is a parsed SPL token account held by an owner.
type TokenAccount struct {
	Pubkey  string
	Mint    string
	Owner   string
	Program string
	Amount  TokenAmount
}

type contextValue[T any] struct {
	Value T `json:"value"`
}

type rawTokenAccount struct {
	Pubkey  string `json:"pubkey"`
	Account struct {
		Data struct {
			Program string `json:"program"`
			Parsed  struct {
				Info struct {
					Mint        string      `json:"mint"`
					Owner       string      `json:"owner"`
					TokenAmount TokenAmount `json:"tokenAmount"`
				} `json:"info"`
			} `json:"parsed"`
		} `json:"data"`
	} `json:"account"`
}
