package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/syncer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Runner interface {
		Run(ctx context.Context, accountID string) (syncer.Report, error)
	}
	StateReader interface {
		Get(ctx context.Context) (model.SyncState, error)
	}
	AccountLookup interface {
		Account(id string) (model.Account, bool)
	}
)
