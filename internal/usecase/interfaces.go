package usecase

import (
	"context"
	"time"

	"github.com/iho/gojournal/internal/domain"
)

// SnapshotRepository is the keyed, versioned projection of journal entries.
// Save applies a journal event: Registered creates (or overwrites) the
// snapshot at version 1; Corrected and Approved require an existing snapshot
// and bump its version by exactly 1.
type SnapshotRepository interface {
	Save(ctx context.Context, event domain.JournalEvent) (domain.JournalEvent, error)
	FindByID(ctx context.Context, id domain.ID[domain.JournalHeader]) (*domain.JournalSnapshot, error)
	// ListAllLines returns every stored line, grouped by entry with entries
	// ordered by date descending; line order within an entry is preserved.
	ListAllLines(ctx context.Context) ([]domain.JournalLine, error)
	ListSnapshots(ctx context.Context) ([]*domain.JournalSnapshot, error)
}

// AccountDirectory is the static account master collaborator.
type AccountDirectory interface {
	FindByCode(code domain.NonEmptyString) (domain.Account, error)
	All() []domain.Account
}

// JournalEventRecord is one entry of a journal's append-only history.
type JournalEventRecord struct {
	EventID    string
	Event      domain.JournalEvent
	RecordedAt time.Time
}

// EventLog is the append-only history of journal events per journal id.
type EventLog interface {
	Append(ctx context.Context, event domain.JournalEvent) error
	History(ctx context.Context, id domain.ID[domain.JournalHeader]) ([]JournalEventRecord, error)
}

// ProductRepository stores the product catalog, its display order, and the
// catalog's stocking state.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product, order domain.DisplayOrder) error
	FindProduct(ctx context.Context, id domain.ID[domain.Product]) (domain.Product, error)
	ProductNames(ctx context.Context) (domain.ProductNames, error)
	DisplayOrder(ctx context.Context) (domain.DisplayOrder, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	Stocking(ctx context.Context) (domain.Stocking, error)
	SaveStocking(ctx context.Context, stocking domain.Stocking) error
}

// IDGenerator generates unique IDs for event records.
type IDGenerator interface {
	Generate() string
}
