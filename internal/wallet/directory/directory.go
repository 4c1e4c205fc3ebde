// Package directory lists tracked accounts and reads their holdings from chain.
package directory

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/solana"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Directory serves a fixed set of configured accounts.
type Directory struct {
	accounts []model.Account
	byID     map[string]model.Account
	networks []model.Network
	reader   ChainReader
	logger   *zap.Logger
}

func New(accounts []model.Account, networks []model.Network, reader ChainReader, logger *zap.Logger) (*Directory, error) {
	if reader == nil {
		return nil, errors.New("chain reader is required")
	}
	if len(networks) == 0 {
		return nil, errors.New("at least one network is required")
	}
	byID := make(map[string]model.Account, len(accounts))
	for _, account := range accounts {
		if err := account.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[account.ID]; dup {
			return nil, fmt.Errorf("duplicate account id %s", account.ID)
		}
		byID[account.ID] = account
	}
	nets := append([]model.Network(nil), networks...)
	sort.Slice(nets, func(i, j int) bool { return nets[i] < nets[j] })

	return &Directory{
		accounts: append([]model.Account(nil), accounts...),
		byID:     byID,
		networks: nets,
		reader:   reader,
		logger:   logger.Named("directory"),
	}, nil
}

func (d *Directory) ListAccounts(context.Context) ([]model.Account, error) {
	return append([]model.Account(nil), d.accounts...), nil
}

// Account returns the configured account with id.
func (d *Directory) Account(id string) (model.Account, bool) {
	account, ok := d.byID[id]
	return account, ok
}

// ListAccountAssets returns the native asset of every network plus each token
// mint the account holds a non-zero amount of.
func (d *Directory) ListAccountAssets(ctx context.Context, accountID string) ([]model.AssetID, error) {
	account, err := d.lookup(accountID)
	if err != nil {
		return nil, err
	}

	var assets []model.AssetID
	for _, network := range d.networks {
		assets = append(assets, model.NativeAsset(network))

		holdings, err := d.tokenHoldings(ctx, network, account.Address)
		if err != nil {
			return nil, err
		}
		for mint, amount := range holdings {
			if amount.IsZero() {
				continue
			}
			assets = append(assets, model.TokenAsset(network, mint))
		}
	}
	return model.SortAssets(assets), nil
}

// GetAccountBalances reads the balance of every requested asset. Token assets the
// account no longer holds are omitted.
func (d *Directory) GetAccountBalances(ctx context.Context, accountID string, assets []model.AssetID) (map[model.AssetID]model.Balance, error) {
	account, err := d.lookup(accountID)
	if err != nil {
		return nil, err
	}

	byNetwork := make(map[model.Network][]model.AssetID)
	for _, id := range assets {
		network, _, _, err := id.Parse()
		if err != nil {
			return nil, err
		}
		byNetwork[network] = append(byNetwork[network], id)
	}

	out := make(map[model.AssetID]model.Balance, len(assets))
	for _, network := range d.networks {
		ids := byNetwork[network]
		if len(ids) == 0 {
			continue
		}
		var holdings map[string]decimal.Decimal
		for _, id := range ids {
			_, namespace, reference, _ := id.Parse()
			switch namespace {
			case model.NativeNamespace:
				lamports, err := d.reader.GetBalance(ctx, network, account.Address)
				if err != nil {
					return nil, fmt.Errorf("native balance of %s on %s: %w", accountID, network, err)
				}
				out[id] = model.Balance{Amount: solana.LamportsToSOL(lamports), Unit: model.NativeSymbol}
			case model.TokenNamespace:
				if holdings == nil {
					holdings, err = d.tokenHoldings(ctx, network, account.Address)
					if err != nil {
						return nil, err
					}
				}
				amount, ok := holdings[reference]
				if !ok {
					continue
				}
				out[id] = model.Balance{Amount: amount, Unit: reference}
			default:
				d.logger.Warn("unsupported asset namespace", zap.String("asset", string(id)))
			}
		}
	}
	return out, nil
}

func (d *Directory) lookup(accountID string) (model.Account, error) {
	account, ok := d.byID[accountID]
	if !ok {
		return model.Account{}, fmt.Errorf("account %s is not configured", accountID)
	}
	return account, nil
}

// tokenHoldings sums token accounts per mint.
func (d *Directory) tokenHoldings(ctx context.Context, network model.Network, owner string) (map[string]decimal.Decimal, error) {
	accounts, err := d.reader.GetTokenAccounts(ctx, network, owner)
	if err != nil {
		return nil, fmt.Errorf("token accounts of %s on %s: %w", owner, network, err)
	}
	out := make(map[string]decimal.Decimal, len(accounts))
	for _, ta := range accounts {
		amount, err := solana.TokenAmountToDecimal(ta.Amount)
		if err != nil {
			d.logger.Warn("skipping token account with invalid amount",
				zap.String("token_account", ta.Pubkey),
				zap.String("mint", ta.Mint),
				zap.Error(err),
			)
			continue
		}
		out[ta.Mint] = out[ta.Mint].Add(amount)
	}
	return out, nil
}
