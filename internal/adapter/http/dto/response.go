package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// JournalLineResponse represents one posting in API responses. Amounts are
// always reported in the unsigned representation.
type JournalLineResponse struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	AccountType string          `json:"account_type"`
	Side        string          `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// LineFromDomain converts a domain journal line to a response.
func LineFromDomain(line domain.JournalLine) JournalLineResponse {
	unsigned := line.Amount.ToUnsigned(line.Account.Type, domain.DenormalizeSign)

	return JournalLineResponse{
		AccountCode: line.Account.Code.String(),
		AccountName: line.Account.Name.String(),
		AccountType: string(line.Account.Type),
		Side:        string(unsigned.Side),
		Amount:      unsigned.Magnitude.Decimal(),
		Description: line.Description,
	}
}

// LinesFromDomain converts domain journal lines to responses.
func LinesFromDomain(lines []domain.JournalLine) []JournalLineResponse {
	result := make([]JournalLineResponse, len(lines))
	for i, line := range lines {
		result[i] = LineFromDomain(line)
	}
	return result
}

// JournalResponse represents a journal snapshot in API responses.
type JournalResponse struct {
	ID      string                `json:"id"`
	Date    time.Time             `json:"date"`
	Status  string                `json:"status"`
	Version int                   `json:"version"`
	Lines   []JournalLineResponse `json:"lines"`
}

// JournalFromDomain converts a domain snapshot to a response.
func JournalFromDomain(snapshot *domain.JournalSnapshot) *JournalResponse {
	return &JournalResponse{
		ID:      snapshot.ID.String(),
		Date:    snapshot.Date,
		Status:  string(snapshot.Status),
		Version: snapshot.Version,
		Lines:   LinesFromDomain(snapshot.Lines),
	}
}

// JournalsFromDomain converts domain snapshots to responses.
func JournalsFromDomain(snapshots []*domain.JournalSnapshot) []*JournalResponse {
	result := make([]*JournalResponse, len(snapshots))
	for i, snapshot := range snapshots {
		result[i] = JournalFromDomain(snapshot)
	}
	return result
}

// JournalEventResponse represents one history record in API responses.
type JournalEventResponse struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	RecordedAt time.Time `json:"recorded_at"`
}

// HistoryFromRecords converts event records to responses.
func HistoryFromRecords(records []usecase.JournalEventRecord) []JournalEventResponse {
	result := make([]JournalEventResponse, len(records))
	for i, record := range records {
		result[i] = JournalEventResponse{
			EventID:    record.EventID,
			Type:       eventTypeName(record.Event),
			RecordedAt: record.RecordedAt,
		}
	}
	return result
}

func eventTypeName(event domain.JournalEvent) string {
	switch event.(type) {
	case domain.Registered:
		return "REGISTERED"
	case domain.Corrected:
		return "CORRECTED"
	case domain.Approved:
		return "APPROVED"
	default:
		return "UNKNOWN"
	}
}

// AccountResponse represents a directory account in API responses.
type AccountResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(account domain.Account) AccountResponse {
	return AccountResponse{
		Code: account.Code.String(),
		Name: account.Name.String(),
		Type: string(account.Type),
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []domain.Account) []AccountResponse {
	result := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		result[i] = AccountFromDomain(account)
	}
	return result
}

// AccountBalanceResponse represents one report line in API responses.
type AccountBalanceResponse struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Balance     decimal.Decimal `json:"balance"`
}

// ProfitAndLossResponse represents the P&L report in API responses.
type ProfitAndLossResponse struct {
	RevenueItems []AccountBalanceResponse `json:"revenue_items"`
	ExpenseItems []AccountBalanceResponse `json:"expense_items"`
	TotalRevenue decimal.Decimal          `json:"total_revenue"`
	TotalExpense decimal.Decimal          `json:"total_expense"`
	Profit       decimal.Decimal          `json:"profit"`
}

// ProfitAndLossFromDomain converts the domain report to a response.
func ProfitAndLossFromDomain(report domain.ProfitAndLoss) *ProfitAndLossResponse {
	return &ProfitAndLossResponse{
		RevenueItems: balancesFromDomain(report.RevenueItems),
		ExpenseItems: balancesFromDomain(report.ExpenseItems),
		TotalRevenue: report.TotalRevenue,
		TotalExpense: report.TotalExpense,
		Profit:       report.Profit,
	}
}

func balancesFromDomain(balances []domain.AccountBalance) []AccountBalanceResponse {
	result := make([]AccountBalanceResponse, len(balances))
	for i, balance := range balances {
		result[i] = AccountBalanceResponse{
			AccountCode: balance.AccountCode,
			AccountName: balance.AccountName,
			Balance:     balance.Balance,
		}
	}
	return result
}

// ProductResponse represents a catalog product in API responses.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ProductFromDomain converts a domain product to a response.
func ProductFromDomain(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name.String(),
		Description: product.Description.String(),
		Category:    product.Category.String(),
	}
}

// ProductsFromDomain converts domain products to responses.
func ProductsFromDomain(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, len(products))
	for i, product := range products {
		result[i] = ProductFromDomain(product)
	}
	return result
}

// StockingResponse represents the catalog's intake state.
type StockingResponse struct {
	Suspended bool   `json:"suspended"`
	Reason    string `json:"reason,omitempty"`
}

// StockingFromDomain converts a stocking state to a response.
func StockingFromDomain(stocking domain.Stocking) StockingResponse {
	return StockingResponse{
		Suspended: stocking.Suspended,
		Reason:    stocking.Reason.String(),
	}
}
