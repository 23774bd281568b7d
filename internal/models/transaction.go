package models

import (
	"encoding/json"
	"math"
	"time"
)

// CompactThreshold is the batch size above which outward transaction
// lists are projected to their compact form.
const CompactThreshold = 20

// DateFormat is the calendar-date layout used on every tool boundary.
const DateFormat = "2006-01-02"

// Category is the personal-finance category attached to a transaction.
type Category struct {
	Primary         string `json:"primary"`
	Detailed        string `json:"detailed"`
	ConfidenceLevel string `json:"confidence_level"`
}

// UncategorizedKey is the grouping key for transactions without a category.
const UncategorizedKey = "Uncategorized"

// UncategorizedCategory is the synthetic category substituted when a
// transaction carries none.
func UncategorizedCategory() Category {
	return Category{
		Primary:         UncategorizedKey,
		Detailed:        UncategorizedKey,
		ConfidenceLevel: "LOW",
	}
}

// Transaction is a normalized transaction with its account context
// denormalized on for downstream grouping.
type Transaction struct {
	AccountID          string      `json:"account_id"`
	Amount             float64     `json:"amount"`
	Date               string      `json:"date"`
	Datetime           *string     `json:"datetime,omitempty"`
	AuthorizedDate     *string     `json:"authorized_date,omitempty"`
	AuthorizedDatetime *string     `json:"authorized_datetime,omitempty"`
	Name               string      `json:"name"`
	MerchantName       *string     `json:"merchant_name"`
	Pending            bool        `json:"pending"`
	Category           *Category   `json:"category"`
	CurrencyCode       string      `json:"iso_currency_code"`
	Website            *string     `json:"website,omitempty"`
	AccountName        string      `json:"account_name"`
	AccountType        AccountType `json:"account_type"`
	AccountSubtype     string      `json:"account_subtype"`
}

// CompactTransaction is the lossy outward projection of a transaction,
// used to bound payload size on large result sets. It is one-way: the
// dropped fields are not recoverable.
type CompactTransaction struct {
	Amount       float64   `json:"amount"`
	MerchantName *string   `json:"merchant_name"`
	Name         string    `json:"name"`
	Date         string    `json:"date"`
	Category     *Category `json:"category"`
}

// Compact projects the transaction to its compact form.
func (t *Transaction) Compact() CompactTransaction {
	return CompactTransaction{
		Amount:       t.Amount,
		MerchantName: t.MerchantName,
		Name:         t.Name,
		Date:         t.Date,
		Category:     t.Category,
	}
}

// TransactionBatch is the result of a transaction fetch. Transactions
// always holds full records so aggregation never works from a compacted
// view; compaction applies only when the batch is serialized.
type TransactionBatch struct {
	Transactions      []Transaction
	TotalTransactions int
	TotalAmount       float64
}

// Compacted reports whether serialization projects the batch's records.
func (b TransactionBatch) Compacted() bool {
	return len(b.Transactions) > CompactThreshold
}

// MarshalJSON serializes the batch, projecting records to their compact
// form when the batch exceeds CompactThreshold. Totals are carried as
// computed from the full set.
func (b TransactionBatch) MarshalJSON() ([]byte, error) {
	payload := struct {
		Transactions      any     `json:"transactions"`
		TotalTransactions int     `json:"total_transactions"`
		TotalAmount       float64 `json:"total_amount"`
	}{
		TotalTransactions: b.TotalTransactions,
		TotalAmount:       b.TotalAmount,
	}

	if b.Compacted() {
		compact := make([]CompactTransaction, len(b.Transactions))
		for i := range b.Transactions {
			compact[i] = b.Transactions[i].Compact()
		}
		payload.Transactions = compact
	} else {
		txns := b.Transactions
		if txns == nil {
			txns = []Transaction{}
		}
		payload.Transactions = txns
	}

	return json.Marshal(payload)
}

// DateRange is an inclusive calendar-date range.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DefaultDateRange returns the default query window: the last 14 days
// through today.
func DefaultDateRange() DateRange {
	now := time.Now()
	return DateRange{
		StartDate: now.AddDate(0, 0, -14).Format(DateFormat),
		EndDate:   now.Format(DateFormat),
	}
}

// Round2 rounds a monetary value to 2 decimal places. Aggregates are
// summed at full precision and rounded once, at presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
