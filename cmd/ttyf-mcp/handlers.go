package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ttyf-labs/ttyf/internal/common"
	"github.com/ttyf-labs/ttyf/internal/interfaces"
	"github.com/ttyf-labs/ttyf/internal/models"
	"github.com/ttyf-labs/ttyf/internal/services/taxonomy"
)

// requestDateRange resolves the optional start_date/end_date parameters,
// defaulting to the last 14 days through today.
func requestDateRange(request mcp.CallToolRequest) (string, string) {
	defaults := models.DefaultDateRange()
	start := request.GetString("start_date", defaults.StartDate)
	end := request.GetString("end_date", defaults.EndDate)
	return start, end
}

// requestAccountType resolves the optional account_type parameter.
// Empty means no filter; anything outside the closed set is rejected
// rather than silently coerced.
func requestAccountType(request mcp.CallToolRequest) (models.AccountType, error) {
	raw := request.GetString("account_type", "")
	if raw == "" {
		return "", nil
	}
	parsed := models.ParseAccountType(raw)
	if parsed == models.AccountTypeOther && raw != string(models.AccountTypeOther) {
		return "", fmt.Errorf("unknown account_type %q: expected credit, depository, investment, loan, or other", raw)
	}
	return parsed, nil
}

// handleListAllAccounts implements the list_all_accounts tool
func handleListAllAccounts(accountService interfaces.AccountService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := accountService.ListItems(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Listing accounts failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(items)
	}
}

// handleGetAccountsByConnection implements the get_accounts_by_connection tool
func handleGetAccountsByConnection(accountService interfaces.AccountService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil || name == "" {
			return errorResult("Error: name parameter is required"), nil
		}

		item, err := accountService.GetItem(ctx, name)
		if err != nil {
			logger.Error().Err(err).Str("connection", name).Msg("Account fetch failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(item)
	}
}

// handleGetAllTransactions implements the get_all_transactions tool
func handleGetAllTransactions(transactionService interfaces.TransactionService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start, end := requestDateRange(request)
		accountType, err := requestAccountType(request)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		batch, err := transactionService.FetchAll(ctx, start, end, accountType)
		if err != nil {
			logger.Error().Err(err).Str("start", start).Str("end", end).Msg("Transaction fetch failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(batch)
	}
}

// handleGetTransactionSummary implements the get_transaction_summary tool
func handleGetTransactionSummary(reportService interfaces.ReportService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start, end := requestDateRange(request)
		accountType, err := requestAccountType(request)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		summary, err := reportService.TransactionSummary(ctx, start, end, accountType)
		if err != nil {
			logger.Error().Err(err).Str("start", start).Str("end", end).Msg("Transaction summary failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(summary)
	}
}

// handleGetNetWorth implements the get_net_worth tool
func handleGetNetWorth(reportService interfaces.ReportService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := reportService.NetWorth(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Net worth calculation failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// handleGetCurrentLiabilities implements the get_current_liabilities tool
func handleGetCurrentLiabilities(reportService interfaces.ReportService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := reportService.CurrentLiabilities(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Liabilities report failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// handleGetCategoryTaxonomy implements the get_category_taxonomy tool
func handleGetCategoryTaxonomy(logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := taxonomy.Load()
		if err != nil {
			logger.Error().Err(err).Msg("Category taxonomy load failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

// handleGetCategorizedSummary implements the get_categorized_summary tool
func handleGetCategorizedSummary(reportService interfaces.ReportService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start, err := request.RequireString("start_date")
		if err != nil || start == "" {
			return errorResult("Error: start_date parameter is required"), nil
		}
		end, err := request.RequireString("end_date")
		if err != nil || end == "" {
			return errorResult("Error: end_date parameter is required"), nil
		}

		summary, err := reportService.CategorizedSummary(ctx, start, end)
		if err != nil {
			logger.Error().Err(err).Str("start", start).Str("end", end).Msg("Categorized summary failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(summary)
	}
}

// handleGetTransactionsByVendor implements the get_transactions_by_vendor tool
func handleGetTransactionsByVendor(transactionService interfaces.TransactionService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		vendor, err := request.RequireString("vendor")
		if err != nil || vendor == "" {
			return errorResult("Error: vendor parameter is required"), nil
		}
		start, end := requestDateRange(request)

		batch, err := transactionService.ByVendor(ctx, vendor, start, end)
		if err != nil {
			logger.Error().Err(err).Str("vendor", vendor).Msg("Vendor filter failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(batch)
	}
}

// Helper functions

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error: failed to encode result: %v", err)), nil
	}
	return textResult(string(data)), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
