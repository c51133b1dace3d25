package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/session"
)

// TransactionSummaryInput is the Huma input for the session balance.
type TransactionSummaryInput struct {
	SessionID string `cookie:"sessionId" doc:"Session token"`
}

// Summary is the API model for the session aggregate.
type Summary struct {
	Total string `json:"total" doc:"Signed sum of every amount in the session, 0 when empty"`
}

// TransactionSummaryResponseBody is the response body for the session balance.
type TransactionSummaryResponseBody struct {
	Summary Summary `json:"summary"`
}

// TransactionSummaryOutput is the Huma output for the session balance.
type TransactionSummaryOutput struct {
	Body TransactionSummaryResponseBody
}

// transactionSummarizer is the interface for computing the session balance.
type transactionSummarizer interface {
	SummarizeTransactions(ctx context.Context, sessionToken string) (decimal.Decimal, error)
}

// TransactionSummaryHandler handles GET /v1/transaction/summary.
type TransactionSummaryHandler struct {
	LedgerService transactionSummarizer
}

// NewTransactionSummaryHandler creates a new TransactionSummaryHandler.
func NewTransactionSummaryHandler(svc transactionSummarizer) *TransactionSummaryHandler {
	return &TransactionSummaryHandler{LedgerService: svc}
}

// Register registers the transaction summary endpoint with the Huma API.
func (h *TransactionSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-summary",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/summary",
		Summary:     "Transaction summary",
		Description: "Returns the running balance of the caller's session.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *TransactionSummaryHandler) handle(ctx context.Context, input *TransactionSummaryInput) (*TransactionSummaryOutput, error) {
	resolution, err := session.Resolve(input.SessionID, false)
	if err != nil {
		return nil, mapServiceError(err, "failed to resolve session")
	}

	total, err := h.LedgerService.SummarizeTransactions(ctx, resolution.Token)
	if err != nil {
		return nil, mapServiceError(err, "failed to summarize transactions")
	}

	return &TransactionSummaryOutput{
		Body: TransactionSummaryResponseBody{
			Summary: Summary{Total: total.String()},
		},
	}, nil
}
