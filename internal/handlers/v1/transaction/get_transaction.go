package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
)

// GetTransactionInput is the Huma input for fetching one ledger entry.
type GetTransactionInput struct {
	ID        string `path:"id" doc:"Transaction UUID"`
	SessionID string `cookie:"sessionId" doc:"Session token"`
}

// GetTransactionResponseBody is the response body for fetching one entry.
type GetTransactionResponseBody struct {
	Transaction Transaction `json:"transaction" doc:"The requested ledger entry"`
}

// GetTransactionOutput is the Huma output for fetching one ledger entry.
type GetTransactionOutput struct {
	Body GetTransactionResponseBody
}

// transactionGetter is the interface for fetching a single transaction.
type transactionGetter interface {
	GetTransaction(ctx context.Context, sessionToken string, id string) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transaction/{id}.
type GetTransactionHandler struct {
	LedgerService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{LedgerService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}",
		Summary:     "Get transaction",
		Description: "Returns one transaction by id. Entries owned by other sessions are reported as not found.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	resolution, err := session.Resolve(input.SessionID, false)
	if err != nil {
		return nil, mapServiceError(err, "failed to resolve session")
	}

	tx, err := h.LedgerService.GetTransaction(ctx, resolution.Token, input.ID)
	if err != nil {
		return nil, mapServiceError(err, "failed to get transaction")
	}
	if tx == nil {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}

	return &GetTransactionOutput{
		Body: GetTransactionResponseBody{
			Transaction: serviceTransactionToTransaction(*tx),
		},
	}, nil
}
