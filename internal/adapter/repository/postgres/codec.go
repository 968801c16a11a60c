package postgres

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/iho/gojournal/internal/domain"
)

// lineRecord is the storage form of a journal line. A nil side means the
// amount is the signed representation; otherwise the amount is an unsigned
// magnitude posted on that side.
type lineRecord struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	AccountType string          `json:"account_type"`
	Side        *string         `json:"side,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func lineToRecord(line domain.JournalLine) lineRecord {
	record := lineRecord{
		AccountCode: line.Account.Code.String(),
		AccountName: line.Account.Name.String(),
		AccountType: string(line.Account.Type),
		Description: line.Description,
	}

	switch amount := line.Amount.(type) {
	case domain.Unsigned:
		side := string(amount.Side)
		record.Side = &side
		record.Amount = amount.Magnitude.Decimal()
	case domain.Signed:
		record.Amount = amount.Value
	}

	return record
}

func recordToLine(record lineRecord) (domain.JournalLine, error) {
	account, err := domain.NewAccount(record.AccountCode, record.AccountName, domain.AccountType(record.AccountType))
	if err != nil {
		return domain.JournalLine{}, fmt.Errorf("corrupt line for account %q: %w", record.AccountCode, err)
	}

	var amount domain.Amount
	if record.Side != nil {
		unsigned, err := domain.NewUnsigned(record.Amount, domain.Side(*record.Side))
		if err != nil {
			return domain.JournalLine{}, fmt.Errorf("corrupt amount for account %q: %w", record.AccountCode, err)
		}
		amount = unsigned
	} else {
		amount = domain.NewSigned(record.Amount)
	}

	return domain.JournalLine{
		Account:     account,
		Amount:      amount,
		Description: record.Description,
	}, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
