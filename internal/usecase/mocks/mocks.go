// Package mocks provides hand-rolled mocks for the usecase collaborator
// interfaces. Each mock has a working in-memory default and per-method
// function overrides for failure injection.
package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/usecase"
)

// MockSnapshotRepository is a mock implementation of usecase.SnapshotRepository.
type MockSnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[domain.ID[domain.JournalHeader]]*domain.JournalSnapshot

	SaveFunc     func(ctx context.Context, event domain.JournalEvent) (domain.JournalEvent, error)
	FindByIDFunc func(ctx context.Context, id domain.ID[domain.JournalHeader]) (*domain.JournalSnapshot, error)
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		snapshots: make(map[domain.ID[domain.JournalHeader]]*domain.JournalSnapshot),
	}
}

func (m *MockSnapshotRepository) Save(ctx context.Context, event domain.JournalEvent) (domain.JournalEvent, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, event)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch e := event.(type) {
	case domain.Registered:
		m.snapshots[e.Header.ID] = &domain.JournalSnapshot{
			ID:      e.Header.ID,
			Date:    e.Header.Date,
			Lines:   e.Lines,
			Status:  domain.StatusRegistered,
			Version: 1,
		}
	case domain.Corrected:
		current, ok := m.snapshots[e.JournalID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrJournalNotFound, e.JournalID)
		}
		current.Date = e.Header.Date
		current.Lines = e.Lines
		current.Status = domain.StatusCorrected
		current.Version++
	case domain.Approved:
		current, ok := m.snapshots[e.JournalID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrJournalNotFound, e.JournalID)
		}
		current.Status = domain.StatusApproved
		current.Version++
	}

	return event, nil
}

func (m *MockSnapshotRepository) FindByID(ctx context.Context, id domain.ID[domain.JournalHeader]) (*domain.JournalSnapshot, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot, ok := m.snapshots[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrJournalNotFound, id)
	}
	copied := *snapshot
	return &copied, nil
}

func (m *MockSnapshotRepository) ListAllLines(ctx context.Context) ([]domain.JournalLine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ordered := make([]*domain.JournalSnapshot, 0, len(m.snapshots))
	for _, snapshot := range m.snapshots {
		ordered = append(ordered, snapshot)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date.After(ordered[j].Date)
	})

	var lines []domain.JournalLine
	for _, snapshot := range ordered {
		lines = append(lines, snapshot.Lines...)
	}
	return lines, nil
}

func (m *MockSnapshotRepository) ListSnapshots(ctx context.Context) ([]*domain.JournalSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshots := make([]*domain.JournalSnapshot, 0, len(m.snapshots))
	for _, snapshot := range m.snapshots {
		copied := *snapshot
		snapshots = append(snapshots, &copied)
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Date.After(snapshots[j].Date)
	})
	return snapshots, nil
}

// MockEventLog is a mock implementation of usecase.EventLog.
type MockEventLog struct {
	mu      sync.RWMutex
	records map[domain.ID[domain.JournalHeader]][]usecase.JournalEventRecord
	nextID  int

	AppendFunc func(ctx context.Context, event domain.JournalEvent) error
}

func NewMockEventLog() *MockEventLog {
	return &MockEventLog{
		records: make(map[domain.ID[domain.JournalHeader]][]usecase.JournalEventRecord),
	}
}

func (m *MockEventLog) Append(ctx context.Context, event domain.JournalEvent) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, event)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := domain.EventJournalID(event)
	m.nextID++
	m.records[id] = append(m.records[id], usecase.JournalEventRecord{
		EventID:    fmt.Sprintf("event-%d", m.nextID),
		Event:      event,
		RecordedAt: time.Now().UTC(),
	})
	return nil
}

func (m *MockEventLog) History(ctx context.Context, id domain.ID[domain.JournalHeader]) ([]usecase.JournalEventRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrJournalNotFound, id)
	}
	return append([]usecase.JournalEventRecord(nil), records...), nil
}

// MockProductRepository is a mock implementation of usecase.ProductRepository.
type MockProductRepository struct {
	mu       sync.RWMutex
	products map[domain.ID[domain.Product]]domain.Product
	order    domain.DisplayOrder
	stocking domain.Stocking

	SaveProductFunc  func(ctx context.Context, product domain.Product, order domain.DisplayOrder) error
	StockingFunc     func(ctx context.Context) (domain.Stocking, error)
	SaveStockingFunc func(ctx context.Context, stocking domain.Stocking) error
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[domain.ID[domain.Product]]domain.Product),
	}
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product, order domain.DisplayOrder) error {
	if m.SaveProductFunc != nil {
		return m.SaveProductFunc(ctx, product, order)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
	m.order = order
	return nil
}

func (m *MockProductRepository) FindProduct(ctx context.Context, id domain.ID[domain.Product]) (domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	product, ok := m.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return product, nil
}

func (m *MockProductRepository) ProductNames(ctx context.Context) (domain.ProductNames, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make(domain.ProductNames, 0, len(m.products))
	for _, product := range m.products {
		names = append(names, product.Name)
	}
	return names, nil
}

func (m *MockProductRepository) DisplayOrder(ctx context.Context) (domain.DisplayOrder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(domain.DisplayOrder(nil), m.order...), nil
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]domain.Product, 0, len(m.order))
	for _, id := range m.order {
		if product, ok := m.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (m *MockProductRepository) Stocking(ctx context.Context) (domain.Stocking, error) {
	if m.StockingFunc != nil {
		return m.StockingFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stocking, nil
}

func (m *MockProductRepository) SaveStocking(ctx context.Context, stocking domain.Stocking) error {
	if m.SaveStockingFunc != nil {
		return m.SaveStockingFunc(ctx, stocking)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stocking = stocking
	return nil
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "test-id"
}
