package reports

import (
	"testing"

	"github.com/ttyf-labs/ttyf/internal/models"
)

func TestCategorize_GroupsWithCompactTransactions(t *testing.T) {
	batch := batchOf(
		summaryTxn("Checking", "FOOD_AND_DRINK", "2026-08-05", 12),
		summaryTxn("Checking", "FOOD_AND_DRINK", "2026-08-15", 8),
		summaryTxn("Checking", "TRAVEL", "2026-08-10", 300),
	)

	summary := Categorize(batch, "2026-08-01", "2026-08-31")

	food, ok := summary.Categories["FOOD_AND_DRINK"]
	if !ok {
		t.Fatal("missing FOOD_AND_DRINK group")
	}
	if food.TotalAmount != 20 || food.TransactionCount != 2 || food.AverageTransaction != 10 {
		t.Errorf("food group = %+v", food)
	}

	// Per-group transactions sorted by date descending
	if food.Transactions[0].Date != "2026-08-15" || food.Transactions[1].Date != "2026-08-05" {
		t.Errorf("group transactions out of order: %v, %v", food.Transactions[0].Date, food.Transactions[1].Date)
	}

	if summary.TotalTransactions != 3 || summary.TotalAmount != 320 {
		t.Errorf("totals = %d/%v", summary.TotalTransactions, summary.TotalAmount)
	}
}

func TestCategorize_UncategorizedFallback(t *testing.T) {
	batch := batchOf(
		summaryTxn("Checking", "", "2026-08-10", 42),
	)

	summary := Categorize(batch, "2026-08-01", "2026-08-31")

	group, ok := summary.Categories[models.UncategorizedKey]
	if !ok {
		t.Fatal("transaction without a category should group under Uncategorized")
	}
	if group.TotalAmount != 42 {
		t.Errorf("group total = %v", group.TotalAmount)
	}
}

func TestCategorize_DateRangeFromReturnedTransactions(t *testing.T) {
	batch := batchOf(
		summaryTxn("Checking", "TRAVEL", "2026-08-07", 1),
		summaryTxn("Checking", "TRAVEL", "2026-08-21", 1),
	)

	summary := Categorize(batch, "2026-08-01", "2026-08-31")

	// Covers the data actually returned, not the requested window
	if summary.DateRange.StartDate != "2026-08-07" || summary.DateRange.EndDate != "2026-08-21" {
		t.Errorf("date range = %+v", summary.DateRange)
	}
}

func TestCategorize_EmptyFallsBackToRequestedRange(t *testing.T) {
	summary := Categorize(batchOf(), "2026-08-01", "2026-08-31")

	if summary.DateRange.StartDate != "2026-08-01" || summary.DateRange.EndDate != "2026-08-31" {
		t.Errorf("date range = %+v, want the requested strings", summary.DateRange)
	}
	if summary.TotalTransactions != 0 || len(summary.Categories) != 0 {
		t.Error("empty batch should yield an empty summary")
	}
}
