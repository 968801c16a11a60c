package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/usecase"
)

// EventLog implements usecase.EventLog with a mutex-guarded map of per-journal
// event histories.
type EventLog struct {
	mu      sync.RWMutex
	records map[domain.ID[domain.JournalHeader]][]usecase.JournalEventRecord
	idGen   usecase.IDGenerator
}

// NewEventLog creates an empty EventLog. Event record ids come from idGen.
func NewEventLog(idGen usecase.IDGenerator) *EventLog {
	return &EventLog{
		records: make(map[domain.ID[domain.JournalHeader]][]usecase.JournalEventRecord),
		idGen:   idGen,
	}
}

// Append adds an event to the journal's history.
func (l *EventLog) Append(ctx context.Context, event domain.JournalEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := domain.EventJournalID(event)
	l.records[id] = append(l.records[id], usecase.JournalEventRecord{
		EventID:    l.idGen.Generate(),
		Event:      event,
		RecordedAt: time.Now().UTC(),
	})
	return nil
}

// History returns the journal's events in append order.
func (l *EventLog) History(ctx context.Context, id domain.ID[domain.JournalHeader]) ([]usecase.JournalEventRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records, ok := l.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrJournalNotFound, id)
	}
	return append([]usecase.JournalEventRecord(nil), records...), nil
}
