package transaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
)

// Transaction is the API response model for a ledger entry.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        string `json:"id" doc:"Transaction UUID"`
	Title     string `json:"title" doc:"Free-text label"`
	Amount    string `json:"amount" doc:"Signed decimal amount, negative for debits"`
	SessionID string `json:"sessionId" doc:"Owning session token"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func serviceTransactionToTransaction(tx service.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID.String(),
		Title:     tx.Title,
		Amount:    tx.Amount.String(),
		SessionID: tx.SessionID,
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
	}
}

// mapServiceError translates the service error taxonomy into huma status
// errors. Not-found is handled by the individual handlers because it is a
// result, not an error.
func mapServiceError(err error, message string) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return huma.NewError(http.StatusUnprocessableEntity, validationErr.Error())
	}

	if errors.Is(err, session.ErrUnauthorized) {
		return huma.NewError(http.StatusUnauthorized, "missing session cookie")
	}

	return huma.NewError(http.StatusInternalServerError, message, err)
}
