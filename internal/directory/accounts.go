// Package directory provides the static account master: the read-only chart
// of accounts journal lines are validated against.
package directory

import (
	"fmt"
	"sort"

	"github.com/iho/gojournal/internal/domain"
)

// Directory is an in-memory account master keyed by account code. It is
// read-only after construction and safe for concurrent use.
type Directory struct {
	byCode map[string]domain.Account
}

type seed struct {
	code string
	name string
	typ  domain.AccountType
}

var chartOfAccounts = []seed{
	// Assets
	{"1010", "Cash", domain.Asset},
	{"1020", "Checking account", domain.Asset},
	{"1030", "Savings account", domain.Asset},
	{"1210", "Accounts receivable", domain.Asset},
	{"1410", "Inventory", domain.Asset},
	{"1610", "Buildings", domain.Asset},
	{"1620", "Equipment", domain.Asset},

	// Liabilities
	{"2110", "Accounts payable", domain.Liability},
	{"2210", "Short-term loans", domain.Liability},
	{"2310", "Accrued expenses", domain.Liability},
	{"2410", "Customer deposits", domain.Liability},

	// Equity
	{"3110", "Share capital", domain.Equity},
	{"3210", "Retained earnings", domain.Equity},

	// Revenue
	{"4010", "Sales", domain.Revenue},
	{"4110", "Interest income", domain.Revenue},
	{"4210", "Miscellaneous income", domain.Revenue},

	// Expenses
	{"5010", "Purchases", domain.Expense},
	{"5110", "Salaries", domain.Expense},
	{"5120", "Bonuses", domain.Expense},
	{"5210", "Rent", domain.Expense},
	{"5220", "Utilities", domain.Expense},
	{"5230", "Communication", domain.Expense},
	{"5240", "Supplies", domain.Expense},
	{"5310", "Interest expense", domain.Expense},
}

// New builds the directory from the built-in chart of accounts.
func New() *Directory {
	byCode := make(map[string]domain.Account, len(chartOfAccounts))
	for _, s := range chartOfAccounts {
		account, err := domain.NewAccount(s.code, s.name, s.typ)
		if err != nil {
			// The chart is static data; a bad entry is a programming error.
			panic(fmt.Sprintf("invalid chart of accounts entry %s: %v", s.code, err))
		}
		byCode[account.Code.String()] = account
	}
	return &Directory{byCode: byCode}
}

// FindByCode looks up an account by its code.
func (d *Directory) FindByCode(code domain.NonEmptyString) (domain.Account, error) {
	account, ok := d.byCode[code.String()]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, code)
	}
	return account, nil
}

// All returns every account, sorted by code.
func (d *Directory) All() []domain.Account {
	accounts := make([]domain.Account, 0, len(d.byCode))
	for _, account := range d.byCode {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Code.String() < accounts[j].Code.String()
	})
	return accounts
}
