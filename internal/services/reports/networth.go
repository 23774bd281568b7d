package reports

import "github.com/ttyf-labs/ttyf/internal/models"

func isAsset(t models.AccountType) bool {
	return t == models.AccountTypeDepository || t == models.AccountTypeInvestment
}

func isLiability(t models.AccountType) bool {
	return t == models.AccountTypeCredit || t == models.AccountTypeLoan
}

// buildNetWorth partitions accounts by type and sums each bucket's
// current balance. Accounts of type "other" land in neither bucket;
// that exclusion matches the data this migrated from and is kept
// deliberately. An asset or liability account without a current balance
// fails with MissingBalanceError rather than counting as zero.
func buildNetWorth(items []*models.Item) (*models.NetWorthReport, error) {
	assets := []models.Account{}
	liabilities := []models.Account{}

	for _, item := range items {
		for _, account := range item.Accounts {
			switch {
			case isLiability(account.Type):
				liabilities = append(liabilities, account)
			case isAsset(account.Type):
				assets = append(assets, account)
			}
		}
	}

	totalAssets := 0.0
	for _, account := range assets {
		if account.Balances.Current == nil {
			return nil, &models.MissingBalanceError{AccountID: account.AccountID, AccountName: account.Name}
		}
		totalAssets += *account.Balances.Current
	}

	totalLiabilities := 0.0
	for _, account := range liabilities {
		if account.Balances.Current == nil {
			return nil, &models.MissingBalanceError{AccountID: account.AccountID, AccountName: account.Name}
		}
		totalLiabilities += *account.Balances.Current
	}

	return &models.NetWorthReport{
		Assets:      models.AccountGroup{Accounts: assets, Total: totalAssets},
		Liabilities: models.AccountGroup{Accounts: liabilities, Total: totalLiabilities},
		NetWorth:    totalAssets - totalLiabilities,
	}, nil
}
