package reports

import (
	"sort"

	"github.com/ttyf-labs/ttyf/internal/models"
)

// Summarize breaks a transaction batch down by account name and by
// primary category. It works from the batch's full transaction set;
// compaction never affects the math. Breakdown lists sort by total
// amount descending.
func Summarize(batch *models.TransactionBatch) *models.TransactionSummary {
	accountTotals := map[string]float64{}
	accountCounts := map[string]int{}
	categoryTotals := map[string]float64{}
	categoryCounts := map[string]int{}

	var dateRange *models.DateRange
	for _, txn := range batch.Transactions {
		if dateRange == nil {
			dateRange = &models.DateRange{StartDate: txn.Date, EndDate: txn.Date}
		} else {
			if txn.Date < dateRange.StartDate {
				dateRange.StartDate = txn.Date
			}
			if txn.Date > dateRange.EndDate {
				dateRange.EndDate = txn.Date
			}
		}

		key := models.UncategorizedKey
		if txn.Category != nil {
			key = txn.Category.Primary
		}

		accountTotals[txn.AccountName] += txn.Amount
		accountCounts[txn.AccountName]++
		categoryTotals[key] += txn.Amount
		categoryCounts[key]++
	}

	accountBreakdown := make([]models.AccountBreakdown, 0, len(accountTotals))
	for name, total := range accountTotals {
		accountBreakdown = append(accountBreakdown, models.AccountBreakdown{
			AccountName:        name,
			TotalAmount:        models.Round2(total),
			TransactionCount:   accountCounts[name],
			AverageTransaction: models.Round2(total / float64(accountCounts[name])),
		})
	}

	categoryBreakdown := make([]models.CategoryBreakdown, 0, len(categoryTotals))
	for name, total := range categoryTotals {
		categoryBreakdown = append(categoryBreakdown, models.CategoryBreakdown{
			Category:           name,
			TotalAmount:        models.Round2(total),
			TransactionCount:   categoryCounts[name],
			AverageTransaction: models.Round2(total / float64(categoryCounts[name])),
		})
	}

	sort.Slice(accountBreakdown, func(i, j int) bool {
		return accountBreakdown[i].TotalAmount > accountBreakdown[j].TotalAmount
	})
	sort.Slice(categoryBreakdown, func(i, j int) bool {
		return categoryBreakdown[i].TotalAmount > categoryBreakdown[j].TotalAmount
	})

	average := 0.0
	if batch.TotalTransactions > 0 {
		average = models.Round2(batch.TotalAmount / float64(batch.TotalTransactions))
	}

	return &models.TransactionSummary{
		DateRange:                dateRange,
		TotalTransactions:        batch.TotalTransactions,
		TotalAmount:              batch.TotalAmount,
		AverageTransactionAmount: average,
		AccountBreakdown:         accountBreakdown,
		CategoryBreakdown:        categoryBreakdown,
	}
}
