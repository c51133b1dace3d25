package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a ledger entry row. Rows are append-only: nothing
// updates or deletes them after insert.
type Transaction struct {
	ID        uuid.UUID       `db:"id"`
	Title     string          `db:"title"`
	Amount    decimal.Decimal `db:"amount"`
	SessionID string          `db:"session_id"`
	CreatedAt time.Time       `db:"created_at"`
}

// TransactionCreate is the input for inserting a new ledger entry. Amount is
// already signed; created_at is assigned by the database.
type TransactionCreate struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	SessionID string
}

// ITransactionReader defines the read operations over the transactions table.
// Every query is scoped to a single session; there is no unscoped read path.
type ITransactionReader interface {
	ListBySession(ctx context.Context, sessionID string) ([]*Transaction, error)
	FindBySessionAndID(ctx context.Context, sessionID string, id uuid.UUID) (*Transaction, error)
	SumBySession(ctx context.Context, sessionID string) (decimal.Decimal, error)
}
