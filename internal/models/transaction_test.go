package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func makeTransactions(n int) []Transaction {
	txns := make([]Transaction, n)
	for i := range txns {
		txns[i] = Transaction{
			AccountID:      "acc-1",
			Amount:         10.50,
			Date:           "2026-08-15",
			Name:           "Coffee",
			MerchantName:   strPtr("Blue Bottle"),
			Pending:        false,
			CurrencyCode:   "USD",
			AccountName:    "Checking",
			AccountType:    AccountTypeDepository,
			AccountSubtype: SubtypeChecking,
		}
	}
	return txns
}

func TestTransactionBatch_MarshalFullBelowThreshold(t *testing.T) {
	batch := TransactionBatch{
		Transactions:      makeTransactions(20),
		TotalTransactions: 20,
		TotalAmount:       210.00,
	}

	if batch.Compacted() {
		t.Fatal("batch of exactly 20 must not compact (threshold is >20)")
	}

	data, err := json.Marshal(batch)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Full records keep their account context
	if !strings.Contains(string(data), `"account_id"`) {
		t.Error("full serialization should include account_id")
	}
	if !strings.Contains(string(data), `"pending"`) {
		t.Error("full serialization should include pending")
	}
}

func TestTransactionBatch_MarshalCompactAboveThreshold(t *testing.T) {
	batch := TransactionBatch{
		Transactions:      makeTransactions(21),
		TotalTransactions: 21,
		TotalAmount:       220.50,
	}

	if !batch.Compacted() {
		t.Fatal("batch of 21 must compact")
	}

	data, err := json.Marshal(batch)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if strings.Contains(string(data), `"account_id"`) {
		t.Error("compact serialization must drop account_id")
	}
	if strings.Contains(string(data), `"pending"`) {
		t.Error("compact serialization must drop pending")
	}

	// Totals still reflect the full set
	var decoded struct {
		Transactions      []CompactTransaction `json:"transactions"`
		TotalTransactions int                  `json:"total_transactions"`
		TotalAmount       float64              `json:"total_amount"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.TotalTransactions != 21 {
		t.Errorf("total_transactions = %d, want 21", decoded.TotalTransactions)
	}
	if decoded.TotalAmount != 220.50 {
		t.Errorf("total_amount = %v, want 220.50", decoded.TotalAmount)
	}
	if len(decoded.Transactions) != 21 {
		t.Errorf("compact list length = %d, want 21", len(decoded.Transactions))
	}
}

func TestTransactionBatch_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(TransactionBatch{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"transactions":[]`) {
		t.Errorf("empty batch should serialize an empty list, got %s", data)
	}
}

func TestTransaction_Compact(t *testing.T) {
	txn := makeTransactions(1)[0]
	txn.Category = &Category{Primary: "FOOD_AND_DRINK", Detailed: "FOOD_AND_DRINK_COFFEE", ConfidenceLevel: "HIGH"}

	compact := txn.Compact()
	if compact.Amount != txn.Amount || compact.Name != txn.Name || compact.Date != txn.Date {
		t.Error("compact projection should retain amount, name, and date")
	}
	if compact.Category == nil || compact.Category.Primary != "FOOD_AND_DRINK" {
		t.Error("compact projection should retain the category")
	}
	if compact.MerchantName == nil || *compact.MerchantName != "Blue Bottle" {
		t.Error("compact projection should retain the merchant name")
	}
}

func TestParseAccountType(t *testing.T) {
	cases := map[string]AccountType{
		"credit":     AccountTypeCredit,
		"depository": AccountTypeDepository,
		"investment": AccountTypeInvestment,
		"loan":       AccountTypeLoan,
		"other":      AccountTypeOther,
		"brokerage":  AccountTypeOther,
		"":           AccountTypeOther,
	}
	for raw, want := range cases {
		if got := ParseAccountType(raw); got != want {
			t.Errorf("ParseAccountType(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{10.333, 10.33},
		{10.678, 10.68},
		{-15.128, -15.13},
		{0, 0},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDefaultDateRange(t *testing.T) {
	r := DefaultDateRange()

	end, err := time.Parse(DateFormat, r.EndDate)
	if err != nil {
		t.Fatalf("end date %q not parseable: %v", r.EndDate, err)
	}
	start, err := time.Parse(DateFormat, r.StartDate)
	if err != nil {
		t.Fatalf("start date %q not parseable: %v", r.StartDate, err)
	}
	if diff := end.Sub(start); diff != 14*24*time.Hour {
		t.Errorf("range spans %v, want 14 days", diff)
	}
}
