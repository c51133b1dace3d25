package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	exec bob.Executor
}

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{exec: exec}
}

// Insert persists one ledger entry and returns the stored row, including the
// database-assigned created_at.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	query := psql.Insert(
		im.Into("transactions", "id", "title", "amount", "session_id"),
		im.Values(psql.Arg(create.ID, create.Title, create.Amount, create.SessionID)),
		im.Returning("id", "title", "amount", "session_id", "created_at"),
	)

	return bob.One(ctx, w.exec, query, scan.StructMapper[*Transaction]())
}
