package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// mockTransactionReader is a mock for transaction.ITransactionReader.
type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) ListBySession(ctx context.Context, sessionID string) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionReader) FindBySessionAndID(ctx context.Context, sessionID string, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, sessionID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionReader) SumBySession(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// fakeProcessor stands in for the operator: it captures the queued action
// and simulates the insert by echoing the row back with a creation time.
type fakeProcessor struct {
	err       error
	createdAt time.Time
	action    *actions.CreateTransaction
}

func (p *fakeProcessor) Process(ctx context.Context, action actions.IAction) error {
	create, ok := action.(*actions.CreateTransaction)
	if !ok {
		return errors.New("unexpected action type")
	}
	p.action = create

	if p.err != nil {
		return p.err
	}

	create.Created = &transaction.Transaction{
		ID:        create.Row.ID,
		Title:     create.Row.Title,
		Amount:    create.Row.Amount,
		SessionID: create.Row.SessionID,
		CreatedAt: p.createdAt,
	}
	return nil
}

func newTestService(t *testing.T) (*LedgerService, *mockTransactionReader, *fakeProcessor) {
	t.Helper()
	mockReader := &mockTransactionReader{}
	processor := &fakeProcessor{createdAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := &storage.Storage{Transactions: mockReader}
	svc := NewLedgerService(store, processor)
	return svc, mockReader, processor
}

func makeStorageRows(sessionID string, amounts ...string) []*transaction.Transaction {
	rows := make([]*transaction.Transaction, len(amounts))
	for i, amount := range amounts {
		rows[i] = &transaction.Transaction{
			ID:        uuid.Must(uuid.NewV4()),
			Title:     "Item",
			Amount:    decimal.RequireFromString(amount),
			SessionID: sessionID,
			CreatedAt: time.Date(2025, 6, 1, 12, 0, i, 0, time.UTC),
		}
	}
	return rows
}

// -- ListTransactions tests --

func TestListTransactions_MapsRows(t *testing.T) {
	svc, mockReader, _ := newTestService(t)

	rows := makeStorageRows("session-a", "5000", "-1200")
	mockReader.On("ListBySession", mock.Anything, "session-a").Return(rows, nil)

	transactions, err := svc.ListTransactions(context.Background(), "session-a")

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, rows[0].ID, transactions[0].ID)
	assert.Equal(t, "session-a", transactions[0].SessionID)
	assert.True(t, transactions[1].Amount.Equal(decimal.RequireFromString("-1200")))
}

func TestListTransactions_EmptySession(t *testing.T) {
	svc, mockReader, _ := newTestService(t)

	mockReader.On("ListBySession", mock.Anything, "session-a").
		Return([]*transaction.Transaction{}, nil)

	transactions, err := svc.ListTransactions(context.Background(), "session-a")

	assert.NoError(t, err)
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
}

func TestListTransactions_StoreError(t *testing.T) {
	svc, mockReader, _ := newTestService(t)

	storeFailure := errors.New("connection refused")
	mockReader.On("ListBySession", mock.Anything, "session-a").Return(nil, storeFailure)

	transactions, err := svc.ListTransactions(context.Background(), "session-a")

	assert.Nil(t, transactions)
	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
	assert.ErrorIs(t, err, storeFailure)
}

// -- GetTransaction tests --

func TestGetTransaction_MalformedID(t *testing.T) {
	svc, mockReader, _ := newTestService(t)

	tx, err := svc.GetTransaction(context.Background(), "session-a", "not-a-uuid")

	assert.Nil(t, tx)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"id"}, validationErr.Fields)
	mockReader.AssertNotCalled(t, "FindBySessionAndID")
}

func TestGetTransaction_NotFound(t *testing.T) {
	svc, mockReader, _ := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockReader.On("FindBySessionAndID", mock.Anything, "session-b", id).Return(nil, nil)

	tx, err := svc.GetTransaction(context.Background(), "session-b", id.String())

	assert.NoError(t, err, "not-found is a result, not an error")
	assert.Nil(t, tx)
}

func TestGetTransaction_Found(t *testing.T) {
	svc, mockReader, _ := newTestService(t)

	row := makeStorageRows("session-a", "42.50")[0]
	mockReader.On("FindBySessionAndID", mock.Anything, "session-a", row.ID).Return(row, nil)

	tx, err := svc.GetTransaction(context.Background(), "session-a", row.ID.String())

	assert.NoError(t, err)
	assert.NotNil(t, tx)
	assert.Equal(t, row.ID, tx.ID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("42.50")))
}

func TestGetTransaction_StoreError(t *testing.T) {
	svc, mockReader, _ := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockReader.On("FindBySessionAndID", mock.Anything, "session-a", id).
		Return(nil, errors.New("database unavailable"))

	tx, err := svc.GetTransaction(context.Background(), "session-a", id.String())

	assert.Nil(t, tx)
	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
}

// -- SummarizeTransactions tests --

func TestSummarizeTransactions_Total(t *testing.T) {
	svc, mockReader, _ := newTestService(t)

	mockReader.On("SumBySession", mock.Anything, "session-a").
		Return(decimal.RequireFromString("3800"), nil)

	total, err := svc.SummarizeTransactions(context.Background(), "session-a")

	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("3800")))
}

func TestSummarizeTransactions_EmptySessionIsZero(t *testing.T) {
	svc, mockReader, _ := newTestService(t)

	mockReader.On("SumBySession", mock.Anything, "session-a").Return(decimal.Zero, nil)

	total, err := svc.SummarizeTransactions(context.Background(), "session-a")

	assert.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestSummarizeTransactions_StoreError(t *testing.T) {
	svc, mockReader, _ := newTestService(t)

	mockReader.On("SumBySession", mock.Anything, "session-a").
		Return(decimal.Zero, errors.New("database unavailable"))

	_, err := svc.SummarizeTransactions(context.Background(), "session-a")

	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
}

// -- CreateTransaction tests --

func TestCreateTransaction_ReusesPresentedToken(t *testing.T) {
	svc, _, processor := newTestService(t)

	created, resolution, err := svc.CreateTransaction(context.Background(), CreateTransaction{
		Title:        "New Transaction",
		Amount:       decimal.RequireFromString("5000"),
		Type:         EntryTypeCredit,
		SessionToken: "session-a",
	})

	assert.NoError(t, err)
	assert.False(t, resolution.IsNew)
	assert.Equal(t, "session-a", resolution.Token)
	assert.Equal(t, "session-a", created.SessionID)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("5000")))
	assert.Equal(t, processor.createdAt, created.CreatedAt)
}

func TestCreateTransaction_MintsSessionWhenAbsent(t *testing.T) {
	svc, _, processor := newTestService(t)

	created, resolution, err := svc.CreateTransaction(context.Background(), CreateTransaction{
		Title:  "New Transaction",
		Amount: decimal.RequireFromString("5000"),
		Type:   EntryTypeCredit,
	})

	assert.NoError(t, err)
	assert.True(t, resolution.IsNew)
	_, parseErr := uuid.FromString(resolution.Token)
	assert.NoError(t, parseErr)
	assert.Equal(t, resolution.Token, created.SessionID)
	assert.Equal(t, resolution.Token, processor.action.Row.SessionID)
}

func TestCreateTransaction_DebitStoredNegative(t *testing.T) {
	svc, _, processor := newTestService(t)

	created, _, err := svc.CreateTransaction(context.Background(), CreateTransaction{
		Title:        "rent",
		Amount:       decimal.RequireFromString("1200"),
		Type:         EntryTypeDebit,
		SessionToken: "session-a",
	})

	assert.NoError(t, err)
	assert.True(t, processor.action.Row.Amount.Equal(decimal.RequireFromString("-1200")))
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("-1200")))
}

func TestCreateTransaction_ValidationBeforeStore(t *testing.T) {
	svc, _, processor := newTestService(t)

	created, _, err := svc.CreateTransaction(context.Background(), CreateTransaction{
		Title:        "",
		Amount:       decimal.RequireFromString("10"),
		Type:         EntryTypeCredit,
		SessionToken: "session-a",
	})

	assert.Nil(t, created)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"title"}, validationErr.Fields)
	assert.Nil(t, processor.action, "no store access on validation failure")
}

func TestCreateTransaction_StoreError(t *testing.T) {
	svc, _, processor := newTestService(t)
	processor.err = errors.New("connection refused")

	created, _, err := svc.CreateTransaction(context.Background(), CreateTransaction{
		Title:        "Test",
		Amount:       decimal.RequireFromString("10"),
		Type:         EntryTypeCredit,
		SessionToken: "session-a",
	})

	assert.Nil(t, created)
	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
	assert.ErrorIs(t, err, processor.err)
}
