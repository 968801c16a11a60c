package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/infrastructure/metrics"
)

// JournalUseCase handles journal entry business logic on top of the pure
// registration pipeline: request shaping, correction, approval, reads.
type JournalUseCase struct {
	snapshots SnapshotRepository
	events    EventLog
	directory AccountDirectory
	metrics   *metrics.Metrics
}

// NewJournalUseCase creates a new JournalUseCase. metrics may be nil.
func NewJournalUseCase(
	snapshots SnapshotRepository,
	events EventLog,
	directory AccountDirectory,
	m *metrics.Metrics,
) *JournalUseCase {
	return &JournalUseCase{
		snapshots: snapshots,
		events:    events,
		directory: directory,
		metrics:   m,
	}
}

// JournalLineInput is one requested posting. Either Side+Amount (unsigned
// representation) or SignedValue must be set.
type JournalLineInput struct {
	AccountCode string
	Side        string
	Amount      decimal.Decimal
	SignedValue *decimal.Decimal
	Description string
}

// RegisterJournalInput is the transport-shaped registration request.
type RegisterJournalInput struct {
	Date  time.Time
	Lines []JournalLineInput
}

// Register validates and persists a new journal entry, returning the stored
// snapshot (version 1, status REGISTERED).
func (uc *JournalUseCase) Register(ctx context.Context, input RegisterJournalInput) (*domain.JournalSnapshot, error) {
	header := domain.JournalHeader{
		ID:   domain.NewID[domain.JournalHeader](),
		Date: input.Date,
	}

	lines, err := uc.buildLines(input.Lines)
	if err != nil {
		uc.countRejected()
		return nil, err
	}

	registered, err := RegisterJournalEntry(ctx, uc.directory.FindByCode, uc.snapshots.Save, RegisterJournalEntryRequest{
		Header: header,
		Lines:  lines,
	})
	if err != nil {
		uc.countRejected()
		return nil, err
	}

	if err := uc.events.Append(ctx, registered); err != nil {
		return nil, newSaveFailed(err)
	}

	if uc.metrics != nil {
		uc.metrics.JournalsRegistered.Inc()
		total, _ := domain.SumDebits(registered.Lines).Float64()
		uc.metrics.JournalAmount.Observe(total)
	}

	return uc.snapshots.FindByID(ctx, header.ID)
}

// CorrectJournalInput replaces an entry's date and lines.
type CorrectJournalInput struct {
	JournalID string
	Date      time.Time
	Lines     []JournalLineInput
}

// Correct fetches the prior registered state, applies the correction command
// and persists the Corrected event.
func (uc *JournalUseCase) Correct(ctx context.Context, input CorrectJournalInput) (*domain.JournalSnapshot, error) {
	id, err := domain.ParseID[domain.JournalHeader](input.JournalID)
	if err != nil {
		return nil, &ValidationFailed{Reason: err.Error()}
	}

	snapshot, err := uc.snapshots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The aggregate only corrects an in-hand registration; reconstitute it
	// from the snapshot.
	prior := domain.Registered{
		Header: domain.JournalHeader{ID: snapshot.ID, Date: snapshot.Date},
		Lines:  snapshot.Lines,
	}

	lines, err := uc.buildLines(input.Lines)
	if err != nil {
		uc.countRejected()
		return nil, err
	}

	header := domain.JournalHeader{ID: snapshot.ID, Date: input.Date}

	corrected, err := domain.Correct(prior, header, lines)
	if err != nil {
		uc.countRejected()
		return nil, &ValidationFailed{Reason: err.Error()}
	}

	if _, err := uc.snapshots.Save(ctx, corrected); err != nil {
		return nil, newSaveFailed(err)
	}

	if err := uc.events.Append(ctx, corrected); err != nil {
		return nil, newSaveFailed(err)
	}

	if uc.metrics != nil {
		uc.metrics.JournalsCorrected.Inc()
	}

	return uc.snapshots.FindByID(ctx, id)
}

// Approve marks an entry approved. The aggregate command is unconditional;
// only the snapshot store checks that the entry exists.
func (uc *JournalUseCase) Approve(ctx context.Context, journalID string) (*domain.JournalSnapshot, error) {
	id, err := domain.ParseID[domain.JournalHeader](journalID)
	if err != nil {
		return nil, &ValidationFailed{Reason: err.Error()}
	}

	approved := domain.Approve(id)

	if _, err := uc.snapshots.Save(ctx, approved); err != nil {
		return nil, newSaveFailed(err)
	}

	if err := uc.events.Append(ctx, approved); err != nil {
		return nil, newSaveFailed(err)
	}

	if uc.metrics != nil {
		uc.metrics.JournalsApproved.Inc()
	}

	return uc.snapshots.FindByID(ctx, id)
}

// Get retrieves the current snapshot of a journal entry.
func (uc *JournalUseCase) Get(ctx context.Context, journalID string) (*domain.JournalSnapshot, error) {
	id, err := domain.ParseID[domain.JournalHeader](journalID)
	if err != nil {
		return nil, &ValidationFailed{Reason: err.Error()}
	}
	return uc.snapshots.FindByID(ctx, id)
}

// List returns every stored snapshot.
func (uc *JournalUseCase) List(ctx context.Context) ([]*domain.JournalSnapshot, error) {
	return uc.snapshots.ListSnapshots(ctx)
}

// History returns the append-only event history of a journal entry.
func (uc *JournalUseCase) History(ctx context.Context, journalID string) ([]JournalEventRecord, error) {
	id, err := domain.ParseID[domain.JournalHeader](journalID)
	if err != nil {
		return nil, &ValidationFailed{Reason: err.Error()}
	}
	return uc.events.History(ctx, id)
}

func (uc *JournalUseCase) buildLines(inputs []JournalLineInput) ([]domain.JournalLine, error) {
	lines := make([]domain.JournalLine, 0, len(inputs))
	for i, input := range inputs {
		code, err := domain.NewNonEmptyString(input.AccountCode)
		if err != nil {
			return nil, &ValidationFailed{Reason: fmt.Sprintf("line %d: account code: %v", i+1, err)}
		}

		account, err := uc.directory.FindByCode(code)
		if err != nil {
			return nil, &ValidationFailed{Reason: fmt.Sprintf("invalid account reference %q: %v", code, err)}
		}

		amount, err := buildAmount(input)
		if err != nil {
			return nil, &ValidationFailed{Reason: fmt.Sprintf("line %d: %v", i+1, err)}
		}

		lines = append(lines, domain.JournalLine{
			Account:     account,
			Amount:      amount,
			Description: input.Description,
		})
	}
	return lines, nil
}

func buildAmount(input JournalLineInput) (domain.Amount, error) {
	if input.SignedValue != nil {
		return domain.NewSigned(*input.SignedValue), nil
	}

	side := domain.Side(strings.ToUpper(input.Side))
	if !side.Valid() {
		return nil, fmt.Errorf("side must be DEBIT or CREDIT, got %q", input.Side)
	}

	return domain.NewUnsigned(input.Amount, side)
}

func (uc *JournalUseCase) countRejected() {
	if uc.metrics != nil {
		uc.metrics.JournalsRejected.Inc()
	}
}
