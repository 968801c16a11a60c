package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/iho/gojournal/internal/domain"
)

// FindAccountFunc resolves an account code against the account master.
type FindAccountFunc func(code domain.NonEmptyString) (domain.Account, error)

// SaveEventFunc persists a journal event and returns the persisted event.
// It is contractually expected to return the same variant it was given.
type SaveEventFunc func(ctx context.Context, event domain.JournalEvent) (domain.JournalEvent, error)

// RegisterJournalEntryRequest is the input of the registration pipeline.
type RegisterJournalEntryRequest struct {
	Header domain.JournalHeader
	Lines  []domain.JournalLine
}

// RegistrationError is the closed set of failures the registration pipeline
// can produce: ValidationFailed or SaveFailed.
type RegistrationError interface {
	error
	isRegistrationError()
}

// ValidationFailed means the request itself is wrong (unknown account,
// too few lines, unbalanced entry). The caller can correct and resubmit;
// the pipeline never retries it.
type ValidationFailed struct {
	Reason string
}

func (e *ValidationFailed) Error() string      { return e.Reason }
func (*ValidationFailed) isRegistrationError() {}

// SaveFailed means the persistence collaborator reported a failure. The
// message is propagated verbatim; the pipeline performs no retry.
type SaveFailed struct {
	Message string
	cause   error
}

func (e *SaveFailed) Error() string      { return e.Message }
func (e *SaveFailed) Unwrap() error      { return e.cause }
func (*SaveFailed) isRegistrationError() {}

func newSaveFailed(err error) *SaveFailed {
	return &SaveFailed{Message: err.Error(), cause: err}
}

// RegisterJournalEntry orchestrates journal registration through injected
// collaborators: every line's account is validated against findAccount, the
// aggregate command runs, and the resulting event is handed to saveEvent.
// Steps before persistence are pure and safely retryable in isolation.
func RegisterJournalEntry(
	ctx context.Context,
	findAccount FindAccountFunc,
	saveEvent SaveEventFunc,
	request RegisterJournalEntryRequest,
) (domain.Registered, error) {
	if err := requireExistingAccounts(request.Lines, findAccount); err != nil {
		return domain.Registered{}, &ValidationFailed{Reason: err.Error()}
	}

	event, err := domain.Register(request.Header, request.Lines)
	if err != nil {
		var rejected *domain.Rejected
		if errors.As(err, &rejected) {
			return domain.Registered{}, &ValidationFailed{Reason: rejected.Reason}
		}
		return domain.Registered{}, &ValidationFailed{Reason: err.Error()}
	}

	persisted, err := saveEvent(ctx, event)
	if err != nil {
		return domain.Registered{}, newSaveFailed(err)
	}

	registered, ok := persisted.(domain.Registered)
	if !ok {
		// The sink returning a different variant than it was given is a
		// broken contract, not a recoverable condition.
		panic(fmt.Sprintf("event sink returned %T for a Registered event", persisted))
	}

	return registered, nil
}

func requireExistingAccounts(lines []domain.JournalLine, findAccount FindAccountFunc) error {
	for _, line := range lines {
		if _, err := findAccount(line.Account.Code); err != nil {
			return fmt.Errorf("invalid account reference %q: %v", line.Account.Code, err)
		}
	}
	return nil
}
