// Package memory provides in-memory repository implementations. They are the
// default backend and the reference semantics for the persistent ones.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/iho/gojournal/internal/domain"
)

// SnapshotRepository implements usecase.SnapshotRepository with a mutex-guarded
// map. The lock serializes mutations per store, which subsumes the required
// per-id serialization, and gives readers a consistent snapshot.
type SnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[domain.ID[domain.JournalHeader]]domain.JournalSnapshot
}

// NewSnapshotRepository creates an empty SnapshotRepository.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{
		snapshots: make(map[domain.ID[domain.JournalHeader]]domain.JournalSnapshot),
	}
}

// Save applies a journal event to the projection.
//
// Registered creates the snapshot at version 1; a second Registered for the
// same id overwrites it. Corrected and Approved require an existing snapshot
// and bump its version by exactly 1. Approved has no status precondition.
func (r *SnapshotRepository) Save(ctx context.Context, event domain.JournalEvent) (domain.JournalEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch e := event.(type) {
	case domain.Registered:
		r.snapshots[e.Header.ID] = domain.JournalSnapshot{
			ID:      e.Header.ID,
			Date:    e.Header.Date,
			Lines:   copyLines(e.Lines),
			Status:  domain.StatusRegistered,
			Version: 1,
		}

	case domain.Corrected:
		current, ok := r.snapshots[e.JournalID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrJournalNotFound, e.JournalID)
		}
		current.Date = e.Header.Date
		current.Lines = copyLines(e.Lines)
		current.Status = domain.StatusCorrected
		current.Version++
		r.snapshots[e.JournalID] = current

	case domain.Approved:
		current, ok := r.snapshots[e.JournalID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrJournalNotFound, e.JournalID)
		}
		current.Status = domain.StatusApproved
		current.Version++
		r.snapshots[e.JournalID] = current

	default:
		return nil, fmt.Errorf("unknown journal event %T", event)
	}

	return event, nil
}

// FindByID returns the current snapshot for a journal id.
func (r *SnapshotRepository) FindByID(ctx context.Context, id domain.ID[domain.JournalHeader]) (*domain.JournalSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrJournalNotFound, id)
	}

	snapshot.Lines = copyLines(snapshot.Lines)
	return &snapshot, nil
}

// ListAllLines returns every stored line, grouped by entry with entries
// ordered by date descending. Line order within an entry is preserved.
func (r *SnapshotRepository) ListAllLines(ctx context.Context) ([]domain.JournalLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ordered := r.sortedByDateDesc()

	var lines []domain.JournalLine
	for _, snapshot := range ordered {
		lines = append(lines, snapshot.Lines...)
	}
	return lines, nil
}

// ListSnapshots returns every snapshot ordered by date descending.
func (r *SnapshotRepository) ListSnapshots(ctx context.Context) ([]*domain.JournalSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ordered := r.sortedByDateDesc()

	snapshots := make([]*domain.JournalSnapshot, 0, len(ordered))
	for _, snapshot := range ordered {
		copied := snapshot
		copied.Lines = copyLines(snapshot.Lines)
		snapshots = append(snapshots, &copied)
	}
	return snapshots, nil
}

func (r *SnapshotRepository) sortedByDateDesc() []domain.JournalSnapshot {
	ordered := make([]domain.JournalSnapshot, 0, len(r.snapshots))
	for _, snapshot := range r.snapshots {
		ordered = append(ordered, snapshot)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.After(ordered[j].Date)
	})
	return ordered
}

func copyLines(lines []domain.JournalLine) []domain.JournalLine {
	return append([]domain.JournalLine(nil), lines...)
}
