package models

// AccountBreakdown is a per-account aggregate over a transaction batch.
type AccountBreakdown struct {
	AccountName        string  `json:"account_name"`
	TotalAmount        float64 `json:"total_amount"`
	TransactionCount   int     `json:"transaction_count"`
	AverageTransaction float64 `json:"average_transaction"`
}

// CategoryBreakdown is a per-category aggregate over a transaction batch.
type CategoryBreakdown struct {
	Category           string  `json:"category"`
	TotalAmount        float64 `json:"total_amount"`
	TransactionCount   int     `json:"transaction_count"`
	AverageTransaction float64 `json:"average_transaction"`
}

// TransactionSummary is the account/category breakdown view of a batch.
// DateRange is nil when the batch is empty.
type TransactionSummary struct {
	DateRange                *DateRange          `json:"date_range"`
	TotalTransactions        int                 `json:"total_transactions"`
	TotalAmount              float64             `json:"total_amount"`
	AverageTransactionAmount float64             `json:"average_transaction_amount"`
	AccountBreakdown         []AccountBreakdown  `json:"account_breakdown"`
	CategoryBreakdown        []CategoryBreakdown `json:"category_breakdown"`
}

// AccountGroup is one side of the net worth partition.
type AccountGroup struct {
	Accounts []Account `json:"accounts"`
	Total    float64   `json:"total"`
}

// NetWorthReport partitions accounts into assets and liabilities.
// Accounts of type "other" appear in neither bucket.
type NetWorthReport struct {
	Assets      AccountGroup `json:"assets"`
	Liabilities AccountGroup `json:"liabilities"`
	NetWorth    float64      `json:"net_worth"`
}

// CreditCardLiability is a credit-card account's contribution to the
// liabilities report. An overpaid card keeps its non-positive amount
// with utilization forced to 0.
type CreditCardLiability struct {
	AccountID    string      `json:"account_id"`
	Name         string      `json:"name"`
	Mask         string      `json:"mask"`
	Type         AccountType `json:"type"`
	Subtype      string      `json:"subtype"`
	Amount       float64     `json:"amount"`
	Limit        float64     `json:"limit"`
	Utilization  float64     `json:"utilization"`
	CurrencyCode *string     `json:"iso_currency_code"`
}

// LoanLiability is a loan account's contribution to the liabilities
// report. Loans with non-positive balances are not emitted.
type LoanLiability struct {
	AccountID    string      `json:"account_id"`
	Name         string      `json:"name"`
	Mask         string      `json:"mask"`
	Type         AccountType `json:"type"`
	Subtype      string      `json:"subtype"`
	Amount       float64     `json:"amount"`
	CurrencyCode *string     `json:"iso_currency_code"`
}

// CreditCardGroup aggregates credit-card liabilities.
type CreditCardGroup struct {
	Accounts []CreditCardLiability `json:"accounts"`
	Total    float64               `json:"total"`
}

// LoanGroup aggregates loan liabilities.
type LoanGroup struct {
	Accounts []LoanLiability `json:"accounts"`
	Total    float64         `json:"total"`
}

// LiabilitiesReport groups current liabilities by kind.
type LiabilitiesReport struct {
	CreditCards      CreditCardGroup `json:"credit_cards"`
	Loans            LoanGroup       `json:"loans"`
	TotalLiabilities float64         `json:"total_liabilities"`
}

// CategorySummary is one category's slice of a categorized summary.
// Transactions hold compact projections sorted by date descending.
type CategorySummary struct {
	TotalAmount        float64              `json:"total_amount"`
	TransactionCount   int                  `json:"transaction_count"`
	AverageTransaction float64              `json:"average_transaction"`
	Transactions       []CompactTransaction `json:"transactions"`
}

// CategorizedSummary groups a date range's transactions by primary
// category. DateRange reflects the returned transactions' dates, falling
// back to the requested range when the result is empty.
type CategorizedSummary struct {
	Categories        map[string]CategorySummary `json:"categories"`
	TotalTransactions int                        `json:"total_transactions"`
	TotalAmount       float64                    `json:"total_amount"`
	DateRange         DateRange                  `json:"date_range"`
}

// CategoryTaxonomyEntry is one row of the static category reference table.
type CategoryTaxonomyEntry struct {
	PrimaryCategory string `json:"primary_category"`
	SubCategory     string `json:"sub_category"`
	Description     string `json:"description"`
}
