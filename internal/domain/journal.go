package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalHeader identifies a journal entry and carries its posting date.
// The id is fixed at registration.
type JournalHeader struct {
	ID   ID[JournalHeader]
	Date time.Time
}

// JournalLine is a single posting: an account, an amount, and a memo.
type JournalLine struct {
	Account     Account
	Amount      Amount
	Description string
}

// SumDebits totals the unsigned magnitudes of every debit line. Signed lines
// are converted to the unsigned representation through the inverse sign table
// before being counted.
func SumDebits(lines []JournalLine) decimal.Decimal {
	return sumBySide(lines, Debit)
}

// SumCredits totals the unsigned magnitudes of every credit line.
func SumCredits(lines []JournalLine) decimal.Decimal {
	return sumBySide(lines, Credit)
}

func sumBySide(lines []JournalLine, side Side) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		unsigned := line.Amount.ToUnsigned(line.Account.Type, DenormalizeSign)
		if unsigned.Side == side {
			total = total.Add(unsigned.Magnitude.Decimal())
		}
	}
	return total
}

// AggregateByAccount groups lines by account and nets each group into a
// single signed total using the given sign table.
func AggregateByAccount(lines []JournalLine, normalize NormalizeFunc) map[Account]decimal.Decimal {
	totals := make(map[Account]decimal.Decimal)
	for _, line := range lines {
		signed := line.Amount.ToSigned(line.Account.Type, normalize)
		totals[line.Account] = totals[line.Account].Add(signed.Value)
	}
	return totals
}
