package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ttyf-labs/ttyf/internal/clients/plaid"
	"github.com/ttyf-labs/ttyf/internal/common"
	"github.com/ttyf-labs/ttyf/internal/services/accounts"
	"github.com/ttyf-labs/ttyf/internal/services/reports"
	"github.com/ttyf-labs/ttyf/internal/services/transactions"
	"github.com/ttyf-labs/ttyf/internal/storage/keyring"
	"github.com/ttyf-labs/ttyf/internal/storage/registry"
)

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// resolveConfigPath checks TTYF_CONFIG, then the binary directory,
// then the development fallback. Missing files are fine: LoadConfig
// falls back to defaults plus environment overrides.
func resolveConfigPath() string {
	if path := os.Getenv("TTYF_CONFIG"); path != "" {
		return path
	}
	path := filepath.Join(getBinaryDir(), "ttyf.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = "config/ttyf.toml"
	}
	return path
}

func run() error {
	// Load .env if present so credentials can live alongside the binary.
	_ = godotenv.Load()

	config, err := common.LoadConfig(resolveConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Info().
		Str("environment", config.Environment).
		Str("registry", config.Registry.Path).
		Msg("Starting ttyf MCP server")

	// Initialize storage
	secrets := keyring.NewStore()
	connectionRegistry := registry.New(config.Registry.Path, secrets, logger)
	if err := connectionRegistry.Load(); err != nil {
		return fmt.Errorf("failed to load connection registry: %w", err)
	}

	// Initialize Plaid client
	plaidClient := plaid.NewClient(
		config.Clients.Plaid.ClientID,
		config.Clients.Plaid.Secret,
		plaid.WithBaseURL(config.ResolveBaseURL()),
		plaid.WithLogger(logger),
		plaid.WithRateLimit(config.Clients.Plaid.RateLimit),
		plaid.WithTimeout(config.Clients.Plaid.GetTimeout()),
	)

	// Initialize services
	accountService := accounts.NewService(connectionRegistry, plaidClient, logger)
	transactionService := transactions.NewService(accountService, plaidClient, logger)
	reportService := reports.NewService(accountService, transactionService, logger)

	// Create MCP server and register tools
	mcpServer := server.NewMCPServer(
		"ttyf",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createListAllAccountsTool(), handleListAllAccounts(accountService, logger))
	mcpServer.AddTool(createGetAccountsByConnectionTool(), handleGetAccountsByConnection(accountService, logger))
	mcpServer.AddTool(createGetAllTransactionsTool(), handleGetAllTransactions(transactionService, logger))
	mcpServer.AddTool(createGetTransactionSummaryTool(), handleGetTransactionSummary(reportService, logger))
	mcpServer.AddTool(createGetNetWorthTool(), handleGetNetWorth(reportService, logger))
	mcpServer.AddTool(createGetCurrentLiabilitiesTool(), handleGetCurrentLiabilities(reportService, logger))
	mcpServer.AddTool(createGetCategoryTaxonomyTool(), handleGetCategoryTaxonomy(logger))
	mcpServer.AddTool(createGetCategorizedSummaryTool(), handleGetCategorizedSummary(reportService, logger))
	mcpServer.AddTool(createGetTransactionsByVendorTool(), handleGetTransactionsByVendor(transactionService, logger))

	logger.Info().Str("version", common.GetVersion()).Msg("Serving MCP over stdio")

	return server.ServeStdio(mcpServer)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ttyf: %v\n", err)
		os.Exit(1)
	}
}
