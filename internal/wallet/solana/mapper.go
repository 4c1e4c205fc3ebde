package solana

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/safe"
	"github.com/shopspring/decimal"
)

const lamportsExponent = -9

// ErrMissingField marks a transaction that lacks data required for mapping.
var ErrMissingField = errors.New("missing required transaction field")

// LamportsToSOL scales a lamport amount to SOL.
func LamportsToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), lamportsExponent)
}

// TokenAmountToDecimal scales a raw token amount by its decimals.
func TokenAmountToDecimal(amount TokenAmount) (decimal.Decimal, error) {
	raw, ok := new(big.Int).SetString(amount.Amount, 10)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("invalid token amount %q", amount.Amount)
	}
	decimals, err := safe.Uint32(amount.Decimals)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("token decimals: %w", err)
	}
	return decimal.NewFromBigInt(raw, -int32(decimals)), nil
}

// MapTransaction normalizes tx from the point of view of the account at address.
func MapTransaction(tx *Transaction, network model.Network, account model.Account) (model.Transaction, error) {
	if tx == nil {
		return model.Transaction{}, fmt.Errorf("%w: transaction", ErrMissingField)
	}
	if len(tx.Transaction.Signatures) == 0 {
		return model.Transaction{}, fmt.Errorf("%w: signatures", ErrMissingField)
	}
	if tx.Meta == nil {
		return model.Transaction{}, fmt.Errorf("%w: meta", ErrMissingField)
	}
	keys := tx.Transaction.Message.AccountKeys
	if len(keys) == 0 {
		return model.Transaction{}, fmt.Errorf("%w: account keys", ErrMissingField)
	}
	if tx.BlockTime == nil {
		return model.Transaction{}, fmt.Errorf("%w: block time", ErrMissingField)
	}
	blockTime, err := safe.Uint64(*tx.BlockTime)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("block time: %w", err)
	}
	meta := tx.Meta
	if len(meta.PreBalances) != len(keys) || len(meta.PostBalances) != len(keys) {
		return model.Transaction{}, fmt.Errorf("%w: balances for %d account keys", ErrMissingField, len(keys))
	}

	out := model.Transaction{
		Signature: tx.Transaction.Signatures[0],
		Network:   network,
		AccountID: account.ID,
		Slot:      tx.Slot,
		Timestamp: time.Unix(int64(blockTime), 0).UTC(),
		Status:    model.TxConfirmed,
	}
	if meta.Failed() {
		out.Status = model.TxFailed
	}

	native := model.NativeAsset(network)
	if idx := keyIndex(keys, account.Address); idx >= 0 {
		pre := new(big.Int).SetUint64(meta.PreBalances[idx])
		delta := new(big.Int).Sub(new(big.Int).SetUint64(meta.PostBalances[idx]), pre)
		if idx == 0 && meta.Fee > 0 {
			fee := new(big.Int).SetUint64(meta.Fee)
			delta.Add(delta, fee)
			out.Fees = append(out.Fees, model.Movement{
				Address: account.Address,
				Asset:   native,
				Amount:  decimal.NewFromBigInt(fee, lamportsExponent),
			})
		}
		addMovement(&out, account.Address, native, decimal.NewFromBigInt(delta, lamportsExponent))
	}

	tokenDeltas, err := ownerTokenDeltas(meta, account.Address)
	if err != nil {
		return model.Transaction{}, err
	}
	mints := make([]string, 0, len(tokenDeltas))
	for mint := range tokenDeltas {
		mints = append(mints, mint)
	}
	sort.Strings(mints)
	for _, mint := range mints {
		addMovement(&out, account.Address, model.TokenAsset(network, mint), tokenDeltas[mint])
	}

	out.Type = classify(out)
	return out, nil
}

func keyIndex(keys []AccountKey, address string) int {
	for i, k := range keys {
		if k.Pubkey == address {
			return i
		}
	}
	return -1
}

func ownerTokenDeltas(meta *TransactionMeta, owner string) (map[string]decimal.Decimal, error) {
	deltas := make(map[string]decimal.Decimal)
	apply := func(balances []TokenBalance, sign int64) error {
		for _, b := range balances {
			if b.Owner != owner || b.Mint == "" {
				continue
			}
			amount, err := TokenAmountToDecimal(b.UITokenAmount)
			if err != nil {
				return fmt.Errorf("token balance of %s: %w", b.Mint, err)
			}
			deltas[b.Mint] = deltas[b.Mint].Add(amount.Mul(decimal.NewFromInt(sign)))
		}
		return nil
	}
	if err := apply(meta.PreTokenBalances, -1); err != nil {
		return nil, err
	}
	if err := apply(meta.PostTokenBalances, 1); err != nil {
		return nil, err
	}
	return deltas, nil
}

func addMovement(tx *model.Transaction, address string, asset model.AssetID, delta decimal.Decimal) {
	switch delta.Sign() {
	case -1:
		tx.From = append(tx.From, model.Movement{Address: address, Asset: asset, Amount: delta.Neg()})
	case 1:
		tx.To = append(tx.To, model.Movement{Address: address, Asset: asset, Amount: delta})
	}
}

func classify(tx model.Transaction) model.TxType {
	switch {
	case len(tx.From) > 0 && len(tx.To) > 0:
		return model.TxSwap
	case len(tx.From) > 0:
		return model.TxSend
	case len(tx.To) > 0:
		return model.TxReceive
	default:
		return model.TxUnknown
	}
}
