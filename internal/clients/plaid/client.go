// Package plaid provides a client for the Plaid banking-data API
package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ttyf-labs/ttyf/internal/common"
	"github.com/ttyf-labs/ttyf/internal/models"
)

const (
	DefaultBaseURL   = common.SandboxBaseURL
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second

	// transactionPageSize is the per-request count for /transactions/get.
	transactionPageSize = 100
)

// Client implements the BankingClient interface
type Client struct {
	baseURL    string
	clientID   string
	secret     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Plaid client
func NewClient(clientID, secret string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		clientID: clientID,
		secret:   secret,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// post performs a rate-limited POST request with the client credentials
// injected into the body. Non-200 responses become UpstreamRequestError.
func (c *Client) post(ctx context.Context, path string, body map[string]any, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	body["client_id"] = c.clientID
	body["secret"] = c.secret

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	reqID := uuid.NewString()[:8]
	c.logger.Debug().Str("endpoint", path).Str("request_id", reqID).Msg("Plaid API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error().Str("endpoint", path).Str("request_id", reqID).Int("status", resp.StatusCode).Msg("Plaid API error")
		return &models.UpstreamRequestError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// ListAccounts retrieves and normalizes the accounts for an access token.
func (c *Client) ListAccounts(ctx context.Context, accessToken string) ([]models.Account, error) {
	var resp accountsResponse
	if err := c.post(ctx, "/accounts/get", map[string]any{
		"access_token": accessToken,
	}, &resp); err != nil {
		return nil, err
	}

	accounts := make([]models.Account, len(resp.Accounts))
	for i, raw := range resp.Accounts {
		accounts[i] = models.Account{
			AccountID: raw.AccountID,
			Name:      raw.Name,
			Mask:      raw.Mask,
			Type:      models.ParseAccountType(raw.Type),
			Subtype:   raw.Subtype,
			Balances: models.Balance{
				Available:    raw.Balances.Available,
				Current:      raw.Balances.Current,
				Limit:        raw.Balances.Limit,
				CurrencyCode: raw.Balances.ISOCurrencyCode,
			},
			HolderCategory: raw.HolderCategory,
			OfficialName:   raw.OfficialName,
		}
	}

	return accounts, nil
}

// ListTransactions retrieves all transactions for one account within an
// inclusive date range, following upstream pagination. Account context
// fields are left empty for the caller to fill.
func (c *Client) ListTransactions(ctx context.Context, accessToken, accountID, startDate, endDate string) ([]models.Transaction, error) {
	var transactions []models.Transaction

	offset := 0
	for {
		var resp transactionsResponse
		if err := c.post(ctx, "/transactions/get", map[string]any{
			"access_token": accessToken,
			"start_date":   startDate,
			"end_date":     endDate,
			"options": map[string]any{
				"account_ids": []string{accountID},
				"count":       transactionPageSize,
				"offset":      offset,
			},
		}, &resp); err != nil {
			return nil, err
		}

		for _, raw := range resp.Transactions {
			transactions = append(transactions, normalizeTransaction(raw))
		}

		offset += len(resp.Transactions)
		if offset >= resp.TotalTransactions || len(resp.Transactions) == 0 {
			break
		}
	}

	return transactions, nil
}

func normalizeTransaction(raw rawTransaction) models.Transaction {
	txn := models.Transaction{
		AccountID:          raw.AccountID,
		Amount:             raw.Amount,
		Date:               raw.Date,
		Datetime:           raw.Datetime,
		AuthorizedDate:     raw.AuthorizedDate,
		AuthorizedDatetime: raw.AuthorizedDatetime,
		Name:               raw.Name,
		MerchantName:       raw.MerchantName,
		Pending:            raw.Pending,
		Website:            raw.Website,
	}
	if raw.ISOCurrencyCode != nil {
		txn.CurrencyCode = *raw.ISOCurrencyCode
	}
	if raw.PersonalFinanceCategory != nil {
		txn.Category = &models.Category{
			Primary:         raw.PersonalFinanceCategory.Primary,
			Detailed:        raw.PersonalFinanceCategory.Detailed,
			ConfidenceLevel: raw.PersonalFinanceCategory.ConfidenceLevel,
		}
	}
	return txn
}

type accountsResponse struct {
	Accounts []rawAccount `json:"accounts"`
}

type rawAccount struct {
	AccountID      string  `json:"account_id"`
	Name           string  `json:"name"`
	Mask           string  `json:"mask"`
	OfficialName   *string `json:"official_name"`
	Type           string  `json:"type"`
	Subtype        string  `json:"subtype"`
	HolderCategory *string `json:"holder_category"`
	Balances       struct {
		Available       *float64 `json:"available"`
		Current         *float64 `json:"current"`
		Limit           *float64 `json:"limit"`
		ISOCurrencyCode *string  `json:"iso_currency_code"`
	} `json:"balances"`
}

type transactionsResponse struct {
	Transactions      []rawTransaction `json:"transactions"`
	TotalTransactions int              `json:"total_transactions"`
}

type rawTransaction struct {
	AccountID               string       `json:"account_id"`
	Amount                  float64      `json:"amount"`
	Date                    string       `json:"date"`
	Datetime                *string      `json:"datetime"`
	AuthorizedDate          *string      `json:"authorized_date"`
	AuthorizedDatetime      *string      `json:"authorized_datetime"`
	Name                    string       `json:"name"`
	MerchantName            *string      `json:"merchant_name"`
	Pending                 bool         `json:"pending"`
	ISOCurrencyCode         *string      `json:"iso_currency_code"`
	Website                 *string      `json:"website"`
	PersonalFinanceCategory *rawCategory `json:"personal_finance_category"`
}

type rawCategory struct {
	Primary         string `json:"primary"`
	Detailed        string `json:"detailed"`
	ConfidenceLevel string `json:"confidence_level"`
}
