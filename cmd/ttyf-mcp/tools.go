package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createListAllAccountsTool returns the list_all_accounts tool definition
func createListAllAccountsTool() mcp.Tool {
	return mcp.NewTool("list_all_accounts",
		mcp.WithDescription("List all financial accounts across every linked connection, with balances, types, and subtypes."),
	)
}

// createGetAccountsByConnectionTool returns the get_accounts_by_connection tool definition
func createGetAccountsByConnectionTool() mcp.Tool {
	return mcp.NewTool("get_accounts_by_connection",
		mcp.WithDescription("Get the accounts for one named financial connection."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the connection as saved in the registry (e.g., 'chase')"),
		),
	)
}

// createGetAllTransactionsTool returns the get_all_transactions tool definition
func createGetAllTransactionsTool() mcp.Tool {
	return mcp.NewTool("get_all_transactions",
		mcp.WithDescription("Get all transactions across every account within a date range, sorted most recent first. Large result sets are returned in a compact form."),
		mcp.WithString("start_date",
			mcp.Description("Start date in YYYY-MM-DD format (default: 14 days ago)"),
		),
		mcp.WithString("end_date",
			mcp.Description("End date in YYYY-MM-DD format (default: today)"),
		),
		mcp.WithString("account_type",
			mcp.Description("Restrict to accounts of one type: credit, depository, investment, loan, other"),
		),
	)
}

// createGetTransactionSummaryTool returns the get_transaction_summary tool definition
func createGetTransactionSummaryTool() mcp.Tool {
	return mcp.NewTool("get_transaction_summary",
		mcp.WithDescription("Summarize transactions within a date range with per-account and per-category breakdowns."),
		mcp.WithString("start_date",
			mcp.Description("Start date in YYYY-MM-DD format (default: 14 days ago)"),
		),
		mcp.WithString("end_date",
			mcp.Description("End date in YYYY-MM-DD format (default: today)"),
		),
		mcp.WithString("account_type",
			mcp.Description("Restrict to accounts of one type: credit, depository, investment, loan, other"),
		),
	)
}

// createGetNetWorthTool returns the get_net_worth tool definition
func createGetNetWorthTool() mcp.Tool {
	return mcp.NewTool("get_net_worth",
		mcp.WithDescription("Calculate total net worth by summing asset account balances and subtracting liabilities. This is the only tool needed for net worth."),
	)
}

// createGetCurrentLiabilitiesTool returns the get_current_liabilities tool definition
func createGetCurrentLiabilitiesTool() mcp.Tool {
	return mcp.NewTool("get_current_liabilities",
		mcp.WithDescription("Get current liabilities: credit card balances with utilization, and outstanding loans."),
	)
}

// createGetCategoryTaxonomyTool returns the get_category_taxonomy tool definition
func createGetCategoryTaxonomyTool() mcp.Tool {
	return mcp.NewTool("get_category_taxonomy",
		mcp.WithDescription("Get the reference table of transaction categories with their sub-categories and descriptions."),
	)
}

// createGetCategorizedSummaryTool returns the get_categorized_summary tool definition
func createGetCategorizedSummaryTool() mcp.Tool {
	return mcp.NewTool("get_categorized_summary",
		mcp.WithDescription("Get a per-category summary of transactions within a date range, including each category's transactions."),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Start date in YYYY-MM-DD format"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("End date in YYYY-MM-DD format"),
		),
	)
}

// createGetTransactionsByVendorTool returns the get_transactions_by_vendor tool definition
func createGetTransactionsByVendorTool() mcp.Tool {
	return mcp.NewTool("get_transactions_by_vendor",
		mcp.WithDescription("Get all transactions matching a vendor name, matched against the merchant name (or transaction name) case-insensitively."),
		mcp.WithString("vendor",
			mcp.Required(),
			mcp.Description("Vendor to filter by (e.g., 'Amazon')"),
		),
		mcp.WithString("start_date",
			mcp.Description("Start date in YYYY-MM-DD format (default: 14 days ago)"),
		),
		mcp.WithString("end_date",
			mcp.Description("End date in YYYY-MM-DD format (default: today)"),
		),
	)
}
