package domain

import "time"

// JournalStatus is the lifecycle state of a stored journal entry.
type JournalStatus string

const (
	StatusRegistered JournalStatus = "REGISTERED"
	StatusCorrected  JournalStatus = "CORRECTED"
	StatusApproved   JournalStatus = "APPROVED"
)

// JournalSnapshot is the current projected state of a journal entry. The
// version increases by exactly 1 per applied event and starts at 1.
type JournalSnapshot struct {
	ID      ID[JournalHeader]
	Date    time.Time
	Lines   []JournalLine
	Status  JournalStatus
	Version int
}
