package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/session"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// actionProcessor is the write path: it runs an action inside a store
// transaction and blocks until it commits or fails.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// LedgerService handles ledger business logic. Reads go straight to storage;
// the single write goes through the operator queue.
type LedgerService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *storage.Storage, op actionProcessor) *LedgerService {
	return &LedgerService{storage: store, operator: op}
}

// ListTransactions returns every transaction recorded under the session, in
// insertion order. An unknown session yields an empty slice.
func (s *LedgerService) ListTransactions(ctx context.Context, sessionToken string) ([]Transaction, error) {
	rows, err := s.storage.Transactions.ListBySession(ctx, sessionToken)
	if err != nil {
		return nil, &StoreError{Op: "list transactions", Err: err}
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = storageTransactionToTransaction(row)
	}
	return converted, nil
}

// GetTransaction returns the transaction with the given id if it belongs to
// the session. A missing row and a row owned by another session both return
// nil without error.
func (s *LedgerService) GetTransaction(ctx context.Context, sessionToken string, id string) (*Transaction, error) {
	transactionID, err := uuid.FromString(id)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"id"}}
	}

	row, err := s.storage.Transactions.FindBySessionAndID(ctx, sessionToken, transactionID)
	if err != nil {
		return nil, &StoreError{Op: "find transaction", Err: err}
	}
	if row == nil {
		return nil, nil
	}

	converted := storageTransactionToTransaction(row)
	return &converted, nil
}

// SummarizeTransactions returns the signed sum of all amounts in the
// session. A session with no transactions sums to zero.
func (s *LedgerService) SummarizeTransactions(ctx context.Context, sessionToken string) (decimal.Decimal, error) {
	total, err := s.storage.Transactions.SumBySession(ctx, sessionToken)
	if err != nil {
		return decimal.Zero, &StoreError{Op: "summarize transactions", Err: err}
	}
	return total, nil
}

// CreateTransaction validates the input, resolves the session (minting a
// token when none was presented), derives the signed amount, and persists
// one row. The returned Resolution tells the boundary whether a new session
// cookie must be set.
func (s *LedgerService) CreateTransaction(ctx context.Context, create CreateTransaction) (*Transaction, session.Resolution, error) {
	if err := create.Validate(); err != nil {
		return nil, session.Resolution{}, err
	}

	resolution, err := session.Resolve(create.SessionToken, true)
	if err != nil {
		return nil, session.Resolution{}, err
	}

	transactionID, err := uuid.NewV4()
	if err != nil {
		return nil, session.Resolution{}, err
	}

	action := &actions.CreateTransaction{
		Row: transaction.TransactionCreate{
			ID:        transactionID,
			Title:     create.Title,
			Amount:    create.SignedAmount(),
			SessionID: resolution.Token,
		},
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return nil, session.Resolution{}, &StoreError{Op: "insert transaction", Err: err}
	}

	created := storageTransactionToTransaction(action.Created)
	return &created, resolution, nil
}

func storageTransactionToTransaction(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:        row.ID,
		Title:     row.Title,
		Amount:    row.Amount,
		SessionID: row.SessionID,
		CreatedAt: row.CreatedAt,
	}
}
