package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

const insertAccountTransactionsQuery = `
INSERT INTO wallet_transactions (
	network,
	account_id,
	signature,
	slot,
	timestamp,
	status,
	type,
	payload
) VALUES`

// InsertAccountTransactions stores archived transactions in ClickHouse.
func (r *Repository) InsertAccountTransactions(ctx context.Context, txs []model.ArchivedTransaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_account_transactions", firstNetwork(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertAccountTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare account transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			string(tx.Network),
			tx.AccountID,
			tx.Signature,
			tx.Slot,
			tx.Timestamp,
			string(tx.Status),
			string(tx.Type),
			tx.Payload,
		); err != nil {
			return fmt.Errorf("append account transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert account transactions: %w", err)
	}
	return nil
}

func firstNetwork(txs []model.ArchivedTransaction) model.Network {
	if len(txs) == 0 {
		return ""
	}
	return txs[0].Network
}
