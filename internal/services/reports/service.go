// Package reports derives net worth, liability, and summary views from
// fetched account and transaction data. Every builder is a pure
// function of freshly fetched upstream state.
package reports

import (
	"context"

	"github.com/ttyf-labs/ttyf/internal/common"
	"github.com/ttyf-labs/ttyf/internal/interfaces"
	"github.com/ttyf-labs/ttyf/internal/models"
)

// Service implements ReportService
type Service struct {
	accounts     interfaces.AccountService
	transactions interfaces.TransactionService
	logger       *common.Logger
}

// NewService creates a new report service
func NewService(accounts interfaces.AccountService, transactions interfaces.TransactionService, logger *common.Logger) *Service {
	return &Service{
		accounts:     accounts,
		transactions: transactions,
		logger:       logger,
	}
}

// NetWorth fetches all accounts and partitions them into assets and
// liabilities.
func (s *Service) NetWorth(ctx context.Context) (*models.NetWorthReport, error) {
	items, err := s.accounts.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return buildNetWorth(items)
}

// CurrentLiabilities fetches all accounts and reports credit-card and
// loan balances.
func (s *Service) CurrentLiabilities(ctx context.Context) (*models.LiabilitiesReport, error) {
	items, err := s.accounts.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return buildLiabilities(items)
}

// TransactionSummary fetches a date range and breaks it down by account
// and category.
func (s *Service) TransactionSummary(ctx context.Context, startDate, endDate string, accountType models.AccountType) (*models.TransactionSummary, error) {
	batch, err := s.transactions.FetchAll(ctx, startDate, endDate, accountType)
	if err != nil {
		return nil, err
	}
	return Summarize(batch), nil
}

// CategorizedSummary fetches a date range and groups it by primary
// category.
func (s *Service) CategorizedSummary(ctx context.Context, startDate, endDate string) (*models.CategorizedSummary, error) {
	batch, err := s.transactions.FetchAll(ctx, startDate, endDate, "")
	if err != nil {
		return nil, err
	}
	return Categorize(batch, startDate, endDate), nil
}
