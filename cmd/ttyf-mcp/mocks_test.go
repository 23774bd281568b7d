package main

import (
	"context"
	"fmt"

	"github.com/ttyf-labs/ttyf/internal/models"
)

// --- mockAccountService ---

type mockAccountService struct {
	getItemFn   func(ctx context.Context, name string) (*models.Item, error)
	listItemsFn func(ctx context.Context) ([]*models.Item, error)
}

func (m *mockAccountService) GetItem(ctx context.Context, name string) (*models.Item, error) {
	if m.getItemFn != nil {
		return m.getItemFn(ctx, name)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAccountService) ListItems(ctx context.Context) ([]*models.Item, error) {
	if m.listItemsFn != nil {
		return m.listItemsFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

// --- mockTransactionService ---

type mockTransactionService struct {
	fetchAllFn func(ctx context.Context, startDate, endDate string, accountType models.AccountType) (*models.TransactionBatch, error)
	byVendorFn func(ctx context.Context, vendor, startDate, endDate string) (*models.TransactionBatch, error)
}

func (m *mockTransactionService) FetchAll(ctx context.Context, startDate, endDate string, accountType models.AccountType) (*models.TransactionBatch, error) {
	if m.fetchAllFn != nil {
		return m.fetchAllFn(ctx, startDate, endDate, accountType)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTransactionService) ByVendor(ctx context.Context, vendor, startDate, endDate string) (*models.TransactionBatch, error) {
	if m.byVendorFn != nil {
		return m.byVendorFn(ctx, vendor, startDate, endDate)
	}
	return nil, fmt.Errorf("not implemented")
}

// --- mockReportService ---

type mockReportService struct {
	netWorthFn           func(ctx context.Context) (*models.NetWorthReport, error)
	liabilitiesFn        func(ctx context.Context) (*models.LiabilitiesReport, error)
	summaryFn            func(ctx context.Context, startDate, endDate string, accountType models.AccountType) (*models.TransactionSummary, error)
	categorizedSummaryFn func(ctx context.Context, startDate, endDate string) (*models.CategorizedSummary, error)
}

func (m *mockReportService) NetWorth(ctx context.Context) (*models.NetWorthReport, error) {
	if m.netWorthFn != nil {
		return m.netWorthFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockReportService) CurrentLiabilities(ctx context.Context) (*models.LiabilitiesReport, error) {
	if m.liabilitiesFn != nil {
		return m.liabilitiesFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockReportService) TransactionSummary(ctx context.Context, startDate, endDate string, accountType models.AccountType) (*models.TransactionSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, startDate, endDate, accountType)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockReportService) CategorizedSummary(ctx context.Context, startDate, endDate string) (*models.CategorizedSummary, error) {
	if m.categorizedSummaryFn != nil {
		return m.categorizedSummaryFn(ctx, startDate, endDate)
	}
	return nil, fmt.Errorf("not implemented")
}
