package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry. It is not stored: only its sign
// effect on the amount is persisted.
type EntryType string

const (
	EntryTypeCredit EntryType = "credit"
	EntryTypeDebit  EntryType = "debit"
)

// Transaction represents a ledger entry in the service layer. Entries are
// immutable once written.
type Transaction struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	SessionID string
	CreatedAt time.Time
}

// CreateTransaction is the input for recording a new ledger entry.
// SessionToken is empty when the client has no session yet; creation mints
// one rather than rejecting the request.
type CreateTransaction struct {
	Title        string
	Amount       decimal.Decimal
	Type         EntryType
	SessionToken string
}

// Validate checks the input shape. A supplied amount must be strictly
// positive so the stored sign always identifies the entry type.
func (c CreateTransaction) Validate() error {
	var fields []string

	if c.Title == "" {
		fields = append(fields, "title")
	}
	if !c.Amount.IsPositive() {
		fields = append(fields, "amount")
	}
	if c.Type != EntryTypeCredit && c.Type != EntryTypeDebit {
		fields = append(fields, "type")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// SignedAmount derives the stored amount: credits stay positive, debits are
// negated.
func (c CreateTransaction) SignedAmount() decimal.Decimal {
	if c.Type == EntryTypeDebit {
		return c.Amount.Neg()
	}
	return c.Amount
}
