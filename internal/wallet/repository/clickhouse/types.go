package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}
	Batch interface {
		Append(v ...interface{}) error
		Send() error
	}
)
