package interfaces

import (
	"context"

	"github.com/ttyf-labs/ttyf/internal/models"
)

// AccountService fetches and normalizes account data per connection.
type AccountService interface {
	// GetItem fetches the accounts for one named connection.
	GetItem(ctx context.Context, name string) (*models.Item, error)

	// ListItems fetches accounts for every registered connection, in
	// registry order. Any single failure aborts the whole call.
	ListItems(ctx context.Context) ([]*models.Item, error)
}

// TransactionService fetches, merges, and filters transactions across
// all connections.
type TransactionService interface {
	// FetchAll returns the merged transaction batch for a date range,
	// optionally restricted to accounts of one type. An empty
	// accountType means no filter.
	FetchAll(ctx context.Context, startDate, endDate string, accountType models.AccountType) (*models.TransactionBatch, error)

	// ByVendor returns the transactions whose merchant (or, failing
	// that, name) contains the vendor string, case-insensitively.
	ByVendor(ctx context.Context, vendor, startDate, endDate string) (*models.TransactionBatch, error)
}

// ReportService builds derived reports from account and transaction
// data. Every method recomputes from freshly fetched upstream state.
type ReportService interface {
	// NetWorth partitions accounts into assets and liabilities and
	// computes their difference.
	NetWorth(ctx context.Context) (*models.NetWorthReport, error)

	// CurrentLiabilities reports credit-card and loan balances.
	CurrentLiabilities(ctx context.Context) (*models.LiabilitiesReport, error)

	// TransactionSummary fetches a date range and breaks it down by
	// account and category.
	TransactionSummary(ctx context.Context, startDate, endDate string, accountType models.AccountType) (*models.TransactionSummary, error)

	// CategorizedSummary fetches a date range and groups it by primary
	// category.
	CategorizedSummary(ctx context.Context, startDate, endDate string) (*models.CategorizedSummary, error)
}
