package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListBySession returns every transaction owned by the session in insertion
// order. An unknown session yields an empty result, not an error.
func (r *Reader) ListBySession(ctx context.Context, sessionID string) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns("id", "title", "amount", "session_id", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.Quote("session_id").EQ(psql.Arg(sessionID))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)

	return bob.All(ctx, r.exec, query, scan.StructMapper[*Transaction]())
}

// FindBySessionAndID returns the transaction only when both id and session
// match. A row owned by another session is reported the same way as a row
// that does not exist.
func (r *Reader) FindBySessionAndID(ctx context.Context, sessionID string, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns("id", "title", "amount", "session_id", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("session_id").EQ(psql.Arg(sessionID))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// SumBySession returns the signed sum of all amounts in the session. The
// COALESCE keeps the aggregate at zero for a session with no rows.
func (r *Reader) SumBySession(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("session_id").EQ(psql.Arg(sessionID))),
	)

	return bob.One(ctx, r.exec, query, scan.SingleColumnMapper[decimal.Decimal])
}
