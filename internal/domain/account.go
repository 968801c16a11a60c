package domain

import "fmt"

// AccountType classifies an account for sign conventions and reporting.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Valid reports whether the account type is one of the five known types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account is a validated (code, name, type) triple from the chart of
// accounts. Accounts are immutable and compared by value.
type Account struct {
	Code NonEmptyString
	Name NonEmptyString
	Type AccountType
}

// NewAccount validates raw inputs and builds an Account.
func NewAccount(code, name string, accountType AccountType) (Account, error) {
	accountCode, err := NewNonEmptyString(code)
	if err != nil {
		return Account{}, fmt.Errorf("account code: %w", err)
	}

	accountName, err := NewNonEmptyString(name)
	if err != nil {
		return Account{}, fmt.Errorf("account name: %w", err)
	}

	if !accountType.Valid() {
		return Account{}, fmt.Errorf("%w: %q", ErrUnknownAccountType, accountType)
	}

	return Account{
		Code: accountCode,
		Name: accountName,
		Type: accountType,
	}, nil
}
