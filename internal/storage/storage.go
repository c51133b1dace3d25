package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type Storage struct {
	DB           *sql.DB
	bdb          bob.DB
	Transactions transaction.ITransactionReader
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bdb := bob.NewDB(db)

	return &Storage{
		DB:           db,
		bdb:          bdb,
		Transactions: transaction.NewReader(bdb),
	}
}

// Write begins a transaction and returns a Writer bound to it. The caller
// owns Commit/Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	writer := NewWriter(tx)
	return &writer, nil
}
