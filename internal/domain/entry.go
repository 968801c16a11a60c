package domain

import "fmt"

// JournalEvent is the closed set of events a journal entry aggregate can
// emit: Registered, Corrected, and Approved. Consumers match exhaustively.
type JournalEvent interface {
	isJournalEvent()
}

// Registered is emitted when a balanced entry is first recorded.
type Registered struct {
	Header JournalHeader
	Lines  []JournalLine
}

// Corrected replaces the lines of a previously registered entry.
type Corrected struct {
	JournalID ID[JournalHeader]
	Header    JournalHeader
	Lines     []JournalLine
}

// Approved marks an entry as approved.
type Approved struct {
	JournalID ID[JournalHeader]
}

func (Registered) isJournalEvent() {}
func (Corrected) isJournalEvent()  {}
func (Approved) isJournalEvent()   {}

// EventJournalID extracts the journal id an event applies to.
func EventJournalID(event JournalEvent) ID[JournalHeader] {
	switch e := event.(type) {
	case Registered:
		return e.Header.ID
	case Corrected:
		return e.JournalID
	case Approved:
		return e.JournalID
	default:
		panic(fmt.Sprintf("unknown journal event %T", event))
	}
}

// Rejected is the aggregate-level command failure. It carries the journal id
// for traceability even before any snapshot exists.
type Rejected struct {
	JournalID ID[JournalHeader]
	Reason    string
}

func (r *Rejected) Error() string {
	return r.Reason
}

// Register records a new journal entry. The entry must have at least two
// lines and its debits must equal its credits by numeric value. On failure
// the returned error is a *Rejected carrying the header's id.
func Register(header JournalHeader, lines []JournalLine) (Registered, error) {
	if err := requireMinimumTwoLines(lines); err != nil {
		return Registered{}, &Rejected{JournalID: header.ID, Reason: err.Error()}
	}
	if err := requireBalancedEntry(lines); err != nil {
		return Registered{}, &Rejected{JournalID: header.ID, Reason: err.Error()}
	}
	return Registered{Header: header, Lines: lines}, nil
}

// Correct replaces a registered entry's header and lines under the same
// invariants. Correction is only expressible against an in-hand Registered
// value; callers fetch the prior state themselves.
func Correct(journal Registered, header JournalHeader, lines []JournalLine) (Corrected, error) {
	if err := requireMinimumTwoLines(lines); err != nil {
		return Corrected{}, &Rejected{JournalID: journal.Header.ID, Reason: err.Error()}
	}
	if err := requireBalancedEntry(lines); err != nil {
		return Corrected{}, &Rejected{JournalID: journal.Header.ID, Reason: err.Error()}
	}
	return Corrected{JournalID: journal.Header.ID, Header: header, Lines: lines}, nil
}

// Approve marks an entry approved. The command is total: whether the id
// refers to a stored entry is the persistence layer's concern, not the
// aggregate's.
func Approve(journalID ID[JournalHeader]) Approved {
	return Approved{JournalID: journalID}
}

func requireMinimumTwoLines(lines []JournalLine) error {
	if len(lines) >= 2 {
		return nil
	}
	return fmt.Errorf("journal entry must have at least 2 lines (current: %d)", len(lines))
}

func requireBalancedEntry(lines []JournalLine) error {
	totalDebits := SumDebits(lines)
	totalCredits := SumCredits(lines)

	// Equal compares by numeric value, so 10000 and 10000.00 balance.
	if totalDebits.Equal(totalCredits) {
		return nil
	}
	return fmt.Errorf("journal entry must balance: debits (%s) != credits (%s)", totalDebits, totalCredits)
}
