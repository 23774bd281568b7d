package reports

import "github.com/ttyf-labs/ttyf/internal/models"

func isCreditCard(account models.Account) bool {
	return account.Type == models.AccountTypeCredit && account.Subtype == models.SubtypeCreditCard
}

func isLoan(account models.Account) bool {
	return account.Type == models.AccountTypeLoan
}

// buildLiabilities classifies accounts into credit cards and loans.
// Positive balances contribute at face value. A credit card with a
// non-positive balance is recorded as overpaid with utilization forced
// to 0; a loan with a non-positive balance is dropped entirely. The
// asymmetry is intentional and preserved from the source data model.
func buildLiabilities(items []*models.Item) (*models.LiabilitiesReport, error) {
	creditCards := []models.CreditCardLiability{}
	loans := []models.LoanLiability{}

	for _, item := range items {
		for _, account := range item.Accounts {
			if !isCreditCard(account) && !isLoan(account) {
				continue
			}
			if account.Balances.Current == nil {
				return nil, &models.MissingBalanceError{AccountID: account.AccountID, AccountName: account.Name}
			}
			current := *account.Balances.Current

			switch {
			case current > 0 && isCreditCard(account):
				creditCards = append(creditCards, creditCardLiability(account, current, utilization(current, account.Balances.Limit)))
			case current > 0 && isLoan(account):
				loans = append(loans, models.LoanLiability{
					AccountID:    account.AccountID,
					Name:         account.Name,
					Mask:         account.Mask,
					Type:         account.Type,
					Subtype:      account.Subtype,
					Amount:       current,
					CurrencyCode: account.Balances.CurrencyCode,
				})
			case isCreditCard(account):
				// Overpaid card: amount kept as-is, utilization zeroed
				creditCards = append(creditCards, creditCardLiability(account, current, 0))
			}
		}
	}

	creditTotal := 0.0
	for _, cc := range creditCards {
		creditTotal += cc.Amount
	}
	loanTotal := 0.0
	for _, loan := range loans {
		loanTotal += loan.Amount
	}

	return &models.LiabilitiesReport{
		CreditCards:      models.CreditCardGroup{Accounts: creditCards, Total: creditTotal},
		Loans:            models.LoanGroup{Accounts: loans, Total: loanTotal},
		TotalLiabilities: creditTotal + loanTotal,
	}, nil
}

func creditCardLiability(account models.Account, amount, util float64) models.CreditCardLiability {
	limit := 0.0
	if account.Balances.Limit != nil {
		limit = *account.Balances.Limit
	}
	return models.CreditCardLiability{
		AccountID:    account.AccountID,
		Name:         account.Name,
		Mask:         account.Mask,
		Type:         account.Type,
		Subtype:      account.Subtype,
		Amount:       amount,
		Limit:        limit,
		Utilization:  util,
		CurrencyCode: account.Balances.CurrencyCode,
	}
}

func utilization(current float64, limit *float64) float64 {
	if limit == nil || *limit <= 0 {
		return 0
	}
	return current / *limit
}
