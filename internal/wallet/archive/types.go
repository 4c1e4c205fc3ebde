package archive

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/events"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertAccountTransactions(ctx context.Context, txs []model.ArchivedTransaction) error
	}
	Subscriber interface {
		Subscribe(consumer *events.Consumer) error
		Unsubscribe(consumer *events.Consumer)
	}
)
