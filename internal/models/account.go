// Package models defines the normalized data entities shared across TTYF
package models

// AccountType classifies an account at the normalization boundary.
// Unknown upstream values map to AccountTypeOther rather than failing.
type AccountType string

const (
	AccountTypeCredit     AccountType = "credit"
	AccountTypeDepository AccountType = "depository"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeOther      AccountType = "other"
)

// ParseAccountType normalizes a raw upstream account type string.
func ParseAccountType(s string) AccountType {
	switch AccountType(s) {
	case AccountTypeCredit, AccountTypeDepository, AccountTypeInvestment, AccountTypeLoan:
		return AccountType(s)
	default:
		return AccountTypeOther
	}
}

// Account subtypes observed upstream. Subtype stays a free string on the
// Account; only the values the aggregation logic branches on are named.
const (
	SubtypeChecking   = "checking"
	SubtypeSavings    = "savings"
	SubtypeCreditCard = "credit card"
	SubtypeMortgage   = "mortgage"
	SubtypeStudent    = "student"
)

// Balance holds the balance set reported for an account. Fields the
// institution did not report are nil, never zero.
type Balance struct {
	Available    *float64 `json:"available"`
	Current      *float64 `json:"current"`
	Limit        *float64 `json:"limit"`
	CurrencyCode *string  `json:"iso_currency_code"`
}

// Account is a normalized financial account belonging to one connection.
type Account struct {
	AccountID      string      `json:"account_id"`
	Name           string      `json:"name"`
	Mask           string      `json:"mask"`
	Type           AccountType `json:"type"`
	Subtype        string      `json:"subtype"`
	Balances       Balance     `json:"balances"`
	HolderCategory *string     `json:"holder_category,omitempty"`
	OfficialName   *string     `json:"official_name,omitempty"`
}

// Connection is a stored (name, credential, institution id) triple from
// the connection registry.
type Connection struct {
	Name        string
	AccessToken string
	ItemID      string
}

// Item is a named connection together with its fetched accounts.
// The access token is carried for downstream transaction fetches but is
// never serialized into tool output.
type Item struct {
	Name        string    `json:"name"`
	Accounts    []Account `json:"accounts"`
	ItemID      string    `json:"item_id,omitempty"`
	AccessToken string    `json:"-"`
}
