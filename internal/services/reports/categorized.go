package reports

import (
	"sort"

	"github.com/ttyf-labs/ttyf/internal/models"
)

// Categorize groups a batch's transactions by primary category
// (transactions without one land under "Uncategorized"). Each group
// carries its total, count, average, and its transactions as compact
// projections sorted by date descending. The reported date range covers
// the returned transactions' dates; an empty batch falls back to the
// requested start/end strings as given.
func Categorize(batch *models.TransactionBatch, startDate, endDate string) *models.CategorizedSummary {
	groups := map[string][]models.Transaction{}
	totals := map[string]float64{}

	total := 0.0
	for _, txn := range batch.Transactions {
		key := models.UncategorizedKey
		if txn.Category != nil {
			key = txn.Category.Primary
		}
		groups[key] = append(groups[key], txn)
		totals[key] += txn.Amount
		total += txn.Amount
	}

	categories := make(map[string]models.CategorySummary, len(groups))
	for key, txns := range groups {
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Date > txns[j].Date
		})

		compact := make([]models.CompactTransaction, len(txns))
		for i := range txns {
			compact[i] = txns[i].Compact()
		}

		categories[key] = models.CategorySummary{
			TotalAmount:        models.Round2(totals[key]),
			TransactionCount:   len(txns),
			AverageTransaction: models.Round2(totals[key] / float64(len(txns))),
			Transactions:       compact,
		}
	}

	dateRange := models.DateRange{StartDate: startDate, EndDate: endDate}
	if len(batch.Transactions) > 0 {
		dateRange.StartDate = batch.Transactions[0].Date
		dateRange.EndDate = batch.Transactions[0].Date
		for _, txn := range batch.Transactions[1:] {
			if txn.Date < dateRange.StartDate {
				dateRange.StartDate = txn.Date
			}
			if txn.Date > dateRange.EndDate {
				dateRange.EndDate = txn.Date
			}
		}
	}

	return &models.CategorizedSummary{
		Categories:        categories,
		TotalTransactions: len(batch.Transactions),
		TotalAmount:       models.Round2(total),
		DateRange:         dateRange,
	}
}
