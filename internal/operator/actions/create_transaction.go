package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// CreateTransaction inserts one ledger entry. The amount in Row is already
// signed and the session already resolved by the time the action is queued.
type CreateTransaction struct {
	Row transaction.TransactionCreate

	// Created holds the persisted row after Perform succeeds.
	Created *transaction.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transaction.Insert(ctx, &t.Row)
	if err != nil {
		return err
	}

	t.Created = row
	return nil
}
