package directory

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/solana"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainReader interface {
		GetBalance(ctx context.Context, network model.Network, address string) (uint64, error)
		GetTokenAccounts(ctx context.Context, network model.Network, owner string) ([]solana.TokenAccount, error)
	}
)
