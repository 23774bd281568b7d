// Package interfaces defines service contracts for TTYF
package interfaces

import (
	"context"

	"github.com/ttyf-labs/ttyf/internal/models"
)

// BankingClient provides access to the upstream banking-data API.
// Implementations normalize raw API records into models entities; raw
// shapes never leak past this boundary.
type BankingClient interface {
	// ListAccounts retrieves the accounts reachable with an access token.
	ListAccounts(ctx context.Context, accessToken string) ([]models.Account, error)

	// ListTransactions retrieves all transactions for one account within
	// an inclusive YYYY-MM-DD date range, following upstream pagination.
	// Account context fields are left for the caller to denormalize.
	ListTransactions(ctx context.Context, accessToken, accountID, startDate, endDate string) ([]models.Transaction, error)
}
