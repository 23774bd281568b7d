// Package transactions fetches and merges transactions across connections
package transactions

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ttyf-labs/ttyf/internal/common"
	"github.com/ttyf-labs/ttyf/internal/interfaces"
	"github.com/ttyf-labs/ttyf/internal/models"
)

// Service implements TransactionService
type Service struct {
	accounts interfaces.AccountService
	client   interfaces.BankingClient
	logger   *common.Logger
}

// NewService creates a new transaction service
func NewService(accounts interfaces.AccountService, client interfaces.BankingClient, logger *common.Logger) *Service {
	return &Service{
		accounts: accounts,
		client:   client,
		logger:   logger,
	}
}

func validateDate(label, value string) error {
	if _, err := time.Parse(models.DateFormat, value); err != nil {
		return fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", label, value)
	}
	return nil
}

// FetchAll pulls every connection's accounts, optionally filters them by
// type, fetches each remaining account's transactions for the inclusive
// date range, and merges them into one batch sorted by date descending.
// Totals are computed from the full merged set.
func (s *Service) FetchAll(ctx context.Context, startDate, endDate string, accountType models.AccountType) (*models.TransactionBatch, error) {
	if err := validateDate("start date", startDate); err != nil {
		return nil, err
	}
	if err := validateDate("end date", endDate); err != nil {
		return nil, err
	}

	items, err := s.accounts.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	type accountContext struct {
		account     models.Account
		accessToken string
	}

	var selected []accountContext
	for _, item := range items {
		for _, account := range item.Accounts {
			if accountType != "" && account.Type != accountType {
				continue
			}
			selected = append(selected, accountContext{account: account, accessToken: item.AccessToken})
		}
	}

	// No matching accounts is an empty result, not an error
	if len(selected) == 0 {
		return &models.TransactionBatch{Transactions: []models.Transaction{}}, nil
	}

	var merged []models.Transaction
	for _, ac := range selected {
		txns, err := s.client.ListTransactions(ctx, ac.accessToken, ac.account.AccountID, startDate, endDate)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch transactions for account %s (%s..%s): %w",
				ac.account.AccountID, startDate, endDate, err)
		}

		for i := range txns {
			txns[i].AccountName = ac.account.Name
			txns[i].AccountType = ac.account.Type
			txns[i].AccountSubtype = ac.account.Subtype
		}
		merged = append(merged, txns...)
	}

	// Most recent first; ties keep merge order
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})

	total := 0.0
	for _, txn := range merged {
		total += txn.Amount
	}

	s.logger.Debug().
		Int("accounts", len(selected)).
		Int("transactions", len(merged)).
		Str("start", startDate).
		Str("end", endDate).
		Msg("Fetched transactions")

	return &models.TransactionBatch{
		Transactions:      merged,
		TotalTransactions: len(merged),
		TotalAmount:       models.Round2(total),
	}, nil
}

// ByVendor returns the transactions whose merchant name (or, when the
// merchant is absent, transaction name) contains the vendor string.
// Matching is case-insensitive and the query is trimmed; the candidate
// string is not. Count and amount are recomputed over the filtered set.
func (s *Service) ByVendor(ctx context.Context, vendor, startDate, endDate string) (*models.TransactionBatch, error) {
	batch, err := s.FetchAll(ctx, startDate, endDate, "")
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(vendor))

	filtered := []models.Transaction{}
	total := 0.0
	for _, txn := range batch.Transactions {
		candidate := txn.Name
		if txn.MerchantName != nil {
			candidate = *txn.MerchantName
		}
		if strings.Contains(strings.ToLower(candidate), query) {
			filtered = append(filtered, txn)
			total += txn.Amount
		}
	}

	return &models.TransactionBatch{
		Transactions:      filtered,
		TotalTransactions: len(filtered),
		TotalAmount:       models.Round2(total),
	}, nil
}
