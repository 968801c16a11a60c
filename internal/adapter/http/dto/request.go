package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gojournal/internal/usecase"
)

// JournalLineRequest is one posting in a journal entry request. Either side
// and amount are set (unsigned representation) or signed_value is set.
type JournalLineRequest struct {
	AccountCode string           `json:"account_code"`
	Side        string           `json:"side,omitempty"`
	Amount      decimal.Decimal  `json:"amount,omitempty"`
	SignedValue *decimal.Decimal `json:"signed_value,omitempty"`
	Description string           `json:"description"`
}

// RegisterJournalRequest represents a request to register a journal entry.
type RegisterJournalRequest struct {
	Date  time.Time            `json:"date"`
	Lines []JournalLineRequest `json:"lines"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterJournalRequest) ToUseCaseInput() usecase.RegisterJournalInput {
	return usecase.RegisterJournalInput{
		Date:  r.Date,
		Lines: linesToUseCaseInput(r.Lines),
	}
}

// CorrectJournalRequest represents a request to correct a journal entry.
type CorrectJournalRequest struct {
	Date  time.Time            `json:"date"`
	Lines []JournalLineRequest `json:"lines"`
}

// ToUseCaseInput converts to use case input.
func (r *CorrectJournalRequest) ToUseCaseInput(journalID string) usecase.CorrectJournalInput {
	return usecase.CorrectJournalInput{
		JournalID: journalID,
		Date:      r.Date,
		Lines:     linesToUseCaseInput(r.Lines),
	}
}

func linesToUseCaseInput(lines []JournalLineRequest) []usecase.JournalLineInput {
	inputs := make([]usecase.JournalLineInput, len(lines))
	for i, line := range lines {
		inputs[i] = usecase.JournalLineInput{
			AccountCode: line.AccountCode,
			Side:        line.Side,
			Amount:      line.Amount,
			SignedValue: line.SignedValue,
			Description: line.Description,
		}
	}
	return inputs
}

// AddProductRequest represents a request to add a product to the catalog.
type AddProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ToUseCaseInput converts to use case input.
func (r *AddProductRequest) ToUseCaseInput() usecase.AddProductInput {
	return usecase.AddProductInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
	}
}

// UpdateProductRequest represents a request to change a product's metadata.
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateProductRequest) ToUseCaseInput(productID string) usecase.UpdateProductInput {
	return usecase.UpdateProductInput{
		ProductID:   productID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
	}
}

// SuspendStockingRequest represents a request to halt catalog intake.
type SuspendStockingRequest struct {
	Reason string `json:"reason"`
}
