package service

import (
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Ledger *LedgerService
}

// NewService creates a new Service with the given storage and write path.
func NewService(store *storage.Storage, op actionProcessor) *Service {
	return &Service{
		Ledger: NewLedgerService(store, op),
	}
}
