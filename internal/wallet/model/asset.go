package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	NativeNamespace = "native"
	TokenNamespace  = "token"

	NativeSymbol = "SOL"
)

// AssetID identifies a holding on one network, formatted as <network>/<namespace>:<reference>.
type AssetID string

// NativeAsset returns the identifier of the network's native currency.
func NativeAsset(network Network) AssetID {
	return AssetID(fmt.Sprintf("%s/%s:%s", network, NativeNamespace, NativeSymbol))
}

// TokenAsset returns the identifier of a token mint on the network.
func TokenAsset(network Network, mint string) AssetID {
	return AssetID(fmt.Sprintf("%s/%s:%s", network, TokenNamespace, mint))
}

// Parse splits the identifier into its parts.
func (a AssetID) Parse() (Network, string, string, error) {
	network, rest, ok := strings.Cut(string(a), "/")
	if !ok || network == "" {
		return "", "", "", fmt.Errorf("asset id %q: missing network", a)
	}
	namespace, reference, ok := strings.Cut(rest, ":")
	if !ok || namespace == "" || reference == "" {
		return "", "", "", fmt.Errorf("asset id %q: missing namespace or reference", a)
	}
	return Network(network), namespace, reference, nil
}

// Network returns the network part or an empty string for malformed ids.
func (a AssetID) Network() Network {
	network, _, _, err := a.Parse()
	if err != nil {
		return ""
	}
	return network
}

// SortAssets orders ids lexicographically in place and returns them.
func SortAssets(ids []AssetID) []AssetID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Balance is the amount held of one asset.
type Balance struct {
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
}

// Equal compares numeric value and unit, ignoring decimal representation.
func (b Balance) Equal(other Balance) bool {
	return b.Unit == other.Unit && b.Amount.Equal(other.Amount)
}

// AssetListDiff is the set difference between two asset lists.
type AssetListDiff struct {
	Added   []AssetID `json:"added"`
	Removed []AssetID `json:"removed"`
}

func (d AssetListDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// BalanceDiff is the key-level difference between two balance maps.
type BalanceDiff struct {
	Added   map[AssetID]Balance `json:"added"`
	Deleted map[AssetID]Balance `json:"deleted"`
	Changed map[AssetID]Balance `json:"changed"`
}

func (d BalanceDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Deleted) == 0 && len(d.Changed) == 0
}

// Updated merges added and changed entries, holding the new values.
func (d BalanceDiff) Updated() map[AssetID]Balance {
	out := make(map[AssetID]Balance, len(d.Added)+len(d.Changed))
	for id, b := range d.Added {
		out[id] = b
	}
	for id, b := range d.Changed {
		out[id] = b
	}
	return out
}

// DeletedAssets lists deleted keys in stable order.
func (d BalanceDiff) DeletedAssets() []AssetID {
	out := make([]AssetID, 0, len(d.Deleted))
	for id := range d.Deleted {
		out = append(out, id)
	}
	return SortAssets(out)
}
