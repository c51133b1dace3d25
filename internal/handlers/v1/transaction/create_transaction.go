package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
)

// CreateTransactionBody is the request body for recording a ledger entry.
type CreateTransactionBody struct {
	Title  string `json:"title" required:"true" minLength:"1" doc:"Free-text label"`
	Amount string `json:"amount" required:"true" doc:"Positive decimal amount; the type determines the stored sign"`
	Type   string `json:"type" required:"true" enum:"credit,debit" doc:"Entry type"`
}

// CreateTransactionInput is the Huma input for recording a ledger entry.
// The session cookie is optional: creation mints a session when absent.
type CreateTransactionInput struct {
	SessionID string `cookie:"sessionId" doc:"Session token, omitted on first contact"`
	Body      CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for a recorded entry.
type CreateTransactionResponseBody struct {
	Transaction Transaction `json:"transaction" doc:"The persisted ledger entry"`
}

// CreateTransactionOutput is the Huma output for recording a ledger entry.
// SetCookie is populated only when a session token was newly minted.
type CreateTransactionOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
	Body      CreateTransactionResponseBody
}

// transactionCreator is the interface for recording ledger entries.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create service.CreateTransaction) (*service.Transaction, session.Resolution, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	LedgerService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{LedgerService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Record transaction",
		Description:   "Records a credit or debit under the caller's session, minting a session when none is presented.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusUnprocessableEntity, "invalid amount", err)
	}

	created, resolution, err := h.LedgerService.CreateTransaction(ctx, service.CreateTransaction{
		Title:        input.Body.Title,
		Amount:       amount,
		Type:         service.EntryType(input.Body.Type),
		SessionToken: input.SessionID,
	})
	if err != nil {
		return nil, mapServiceError(err, "failed to create transaction")
	}

	out := &CreateTransactionOutput{
		Body: CreateTransactionResponseBody{
			Transaction: serviceTransactionToTransaction(*created),
		},
	}
	if resolution.IsNew {
		out.SetCookie = []http.Cookie{session.Cookie(resolution.Token)}
	}

	return out, nil
}
