package syncer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// AssetSnapshot is the current holdings of one account and their difference to the stored ones.
type AssetSnapshot struct {
	Assets      []model.AssetID
	Balances    map[model.AssetID]model.Balance
	AssetDiff   model.AssetListDiff
	BalanceDiff model.BalanceDiff
}

// DiffAssets returns ids present only in curr as added and only in prev as removed, both sorted.
func DiffAssets(prev, curr []model.AssetID) model.AssetListDiff {
	prevSet := make(map[model.AssetID]struct{}, len(prev))
	for _, id := range prev {
		prevSet[id] = struct{}{}
	}
	currSet := make(map[model.AssetID]struct{}, len(curr))
	for _, id := range curr {
		currSet[id] = struct{}{}
	}

	var diff model.AssetListDiff
	for id := range currSet {
		if _, ok := prevSet[id]; !ok {
			diff.Added = append(diff.Added, id)
		}
	}
	for id := range prevSet {
		if _, ok := currSet[id]; !ok {
			diff.Removed = append(diff.Removed, id)
		}
	}
	model.SortAssets(diff.Added)
	model.SortAssets(diff.Removed)
	return diff
}

// DiffBalances compares two balance maps by key. Values are compared numerically.
func DiffBalances(prev, curr map[model.AssetID]model.Balance) model.BalanceDiff {
	diff := model.BalanceDiff{
		Added:   make(map[model.AssetID]model.Balance),
		Deleted: make(map[model.AssetID]model.Balance),
		Changed: make(map[model.AssetID]model.Balance),
	}
	for id, b := range curr {
		old, ok := prev[id]
		switch {
		case !ok:
			diff.Added[id] = b
		case !old.Equal(b):
			diff.Changed[id] = b
		}
	}
	for id, b := range prev {
		if _, ok := curr[id]; !ok {
			diff.Deleted[id] = b
		}
	}
	return diff
}

type assetRefresher struct {
	directory AccountDirectory
}

func (r *assetRefresher) Refresh(
	ctx context.Context,
	accountID string,
	prevAssets []model.AssetID,
	prevBalances map[model.AssetID]model.Balance,
) (AssetSnapshot, error) {
	assets, err := r.directory.ListAccountAssets(ctx, accountID)
	if err != nil {
		return AssetSnapshot{}, fmt.Errorf("list assets of %s: %w", accountID, err)
	}
	assets = model.SortAssets(append([]model.AssetID(nil), assets...))

	balances, err := r.directory.GetAccountBalances(ctx, accountID, assets)
	if err != nil {
		return AssetSnapshot{}, fmt.Errorf("get balances of %s: %w", accountID, err)
	}
	if balances == nil {
		balances = make(map[model.AssetID]model.Balance)
	}

	return AssetSnapshot{
		Assets:      assets,
		Balances:    balances,
		AssetDiff:   DiffAssets(prevAssets, assets),
		BalanceDiff: DiffBalances(prevBalances, balances),
	}, nil
}
