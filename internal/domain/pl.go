package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AccountBalance is one line of a report: an account and its net balance.
type AccountBalance struct {
	AccountCode string
	AccountName string
	Balance     decimal.Decimal
}

// ProfitAndLoss is a read model over stored journal lines: revenue and
// expense items with their totals and the resulting profit.
type ProfitAndLoss struct {
	RevenueItems []AccountBalance
	ExpenseItems []AccountBalance
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	Profit       decimal.Decimal
}

// ProfitAndLossFrom builds the report from a set of journal lines.
func ProfitAndLossFrom(lines []JournalLine) ProfitAndLoss {
	revenueItems := accountBalances(lines, Revenue)
	expenseItems := accountBalances(lines, Expense)

	totalRevenue := decimal.Zero
	for _, item := range revenueItems {
		totalRevenue = totalRevenue.Add(item.Balance)
	}

	totalExpense := decimal.Zero
	for _, item := range expenseItems {
		totalExpense = totalExpense.Add(item.Balance)
	}

	return ProfitAndLoss{
		RevenueItems: revenueItems,
		ExpenseItems: expenseItems,
		TotalRevenue: totalRevenue,
		TotalExpense: totalExpense,
		Profit:       totalRevenue.Sub(totalExpense),
	}
}

// accountBalances nets the lines of one account type into per-account
// balances, sorted by account code.
func accountBalances(lines []JournalLine, accountType AccountType) []AccountBalance {
	var filtered []JournalLine
	for _, line := range lines {
		if line.Account.Type == accountType {
			filtered = append(filtered, line)
		}
	}

	totals := AggregateByAccount(filtered, NormalizeSign)

	balances := make([]AccountBalance, 0, len(totals))
	for account, balance := range totals {
		balances = append(balances, AccountBalance{
			AccountCode: account.Code.String(),
			AccountName: account.Name.String(),
			Balance:     balance,
		})
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].AccountCode < balances[j].AccountCode
	})

	return balances
}
