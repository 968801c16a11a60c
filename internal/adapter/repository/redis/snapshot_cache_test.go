package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gojournal/internal/adapter/repository/memory"
	"github.com/iho/gojournal/internal/domain"
)

func registeredEvent(t *testing.T) domain.Registered {
	t.Helper()

	cash, err := domain.NewAccount("1010", "Cash", domain.Asset)
	if err != nil {
		t.Fatal(err)
	}
	sales, err := domain.NewAccount("4010", "Sales", domain.Revenue)
	if err != nil {
		t.Fatal(err)
	}
	debit, err := domain.NewUnsigned(decimal.NewFromInt(10000), domain.Debit)
	if err != nil {
		t.Fatal(err)
	}
	credit, err := domain.NewUnsigned(decimal.NewFromInt(10000), domain.Credit)
	if err != nil {
		t.Fatal(err)
	}

	return domain.Registered{
		Header: domain.JournalHeader{
			ID:   domain.NewID[domain.JournalHeader](),
			Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		Lines: []domain.JournalLine{
			{Account: cash, Amount: debit, Description: "cash sale"},
			{Account: sales, Amount: credit, Description: "cash sale"},
		},
	}
}

func TestSnapshotCacheServesFromCache(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	inner := memory.NewSnapshotRepository()
	cache := NewSnapshotCache(inner, client, time.Minute, nil)
	ctx := context.Background()

	event := registeredEvent(t)
	if _, err := cache.Save(ctx, event); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// First read fills the cache from the inner repository.
	first, err := cache.FindByID(ctx, event.Header.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if first.Version != 1 {
		t.Fatalf("expected version 1, got %d", first.Version)
	}

	// Mutate the inner repository behind the cache's back; the cached
	// snapshot must still be served.
	if _, err := inner.Save(ctx, domain.Approved{JournalID: event.Header.ID}); err != nil {
		t.Fatalf("inner save failed: %v", err)
	}

	second, err := cache.FindByID(ctx, event.Header.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if second.Version != 1 {
		t.Fatalf("expected cached version 1, got %d", second.Version)
	}
}

func TestSnapshotCacheInvalidatesOnSave(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	inner := memory.NewSnapshotRepository()
	cache := NewSnapshotCache(inner, client, time.Minute, nil)
	ctx := context.Background()

	event := registeredEvent(t)
	if _, err := cache.Save(ctx, event); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := cache.FindByID(ctx, event.Header.ID); err != nil {
		t.Fatalf("find failed: %v", err)
	}

	// Approving through the cache invalidates the cached snapshot.
	if _, err := cache.Save(ctx, domain.Approved{JournalID: event.Header.ID}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	snapshot, err := cache.FindByID(ctx, event.Header.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if snapshot.Version != 2 {
		t.Fatalf("expected version 2 after invalidation, got %d", snapshot.Version)
	}
	if snapshot.Status != domain.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", snapshot.Status)
	}
}

func TestSnapshotCacheMissFallsThrough(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	inner := memory.NewSnapshotRepository()
	cache := NewSnapshotCache(inner, client, time.Minute, nil)

	_, err := cache.FindByID(context.Background(), domain.NewID[domain.JournalHeader]())
	if !errors.Is(err, domain.ErrJournalNotFound) {
		t.Fatalf("expected ErrJournalNotFound, got %v", err)
	}
}

func TestSnapshotCodecRoundTrip(t *testing.T) {
	event := registeredEvent(t)
	snapshot := &domain.JournalSnapshot{
		ID:      event.Header.ID,
		Date:    event.Header.Date,
		Lines:   event.Lines,
		Status:  domain.StatusRegistered,
		Version: 1,
	}

	raw, err := encodeSnapshot(snapshot)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	restored, err := decodeSnapshot(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if restored.ID != snapshot.ID {
		t.Errorf("expected id %s, got %s", snapshot.ID, restored.ID)
	}
	if !restored.Date.Equal(snapshot.Date) {
		t.Errorf("expected date %s, got %s", snapshot.Date, restored.Date)
	}
	if restored.Status != snapshot.Status || restored.Version != snapshot.Version {
		t.Errorf("expected %s v%d, got %s v%d", snapshot.Status, snapshot.Version, restored.Status, restored.Version)
	}
	if len(restored.Lines) != len(snapshot.Lines) {
		t.Fatalf("expected %d lines, got %d", len(snapshot.Lines), len(restored.Lines))
	}
	for i, line := range restored.Lines {
		if line.Account != snapshot.Lines[i].Account {
			t.Errorf("line %d: expected account %v, got %v", i, snapshot.Lines[i].Account, line.Account)
		}
	}
}
