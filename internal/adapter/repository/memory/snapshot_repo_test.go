package memory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gojournal/internal/domain"
)

func testLines(t *testing.T, magnitude int64) []domain.JournalLine {
	t.Helper()

	cash, err := domain.NewAccount("1010", "Cash", domain.Asset)
	if err != nil {
		t.Fatal(err)
	}
	sales, err := domain.NewAccount("4010", "Sales", domain.Revenue)
	if err != nil {
		t.Fatal(err)
	}

	debit, err := domain.NewUnsigned(decimal.NewFromInt(magnitude), domain.Debit)
	if err != nil {
		t.Fatal(err)
	}
	credit, err := domain.NewUnsigned(decimal.NewFromInt(magnitude), domain.Credit)
	if err != nil {
		t.Fatal(err)
	}

	return []domain.JournalLine{
		{Account: cash, Amount: debit, Description: "cash sale"},
		{Account: sales, Amount: credit, Description: "cash sale"},
	}
}

func register(t *testing.T, repo *SnapshotRepository, date time.Time, magnitude int64) domain.Registered {
	t.Helper()

	event := domain.Registered{
		Header: domain.JournalHeader{ID: domain.NewID[domain.JournalHeader](), Date: date},
		Lines:  testLines(t, magnitude),
	}
	if _, err := repo.Save(context.Background(), event); err != nil {
		t.Fatalf("failed to save Registered: %v", err)
	}
	return event
}

func TestSnapshotRepository_Registered(t *testing.T) {
	repo := NewSnapshotRepository()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	event := register(t, repo, date, 10000)

	snapshot, err := repo.FindByID(context.Background(), event.Header.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.Version != 1 {
		t.Errorf("expected version 1, got %d", snapshot.Version)
	}
	if snapshot.Status != domain.StatusRegistered {
		t.Errorf("expected REGISTERED, got %s", snapshot.Status)
	}
	if !snapshot.Date.Equal(date) {
		t.Errorf("expected date %s, got %s", date, snapshot.Date)
	}
	if len(snapshot.Lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(snapshot.Lines))
	}
}

func TestSnapshotRepository_ReRegisterOverwrites(t *testing.T) {
	repo := NewSnapshotRepository()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	event := register(t, repo, date, 10000)

	// Re-registering the same id overwrites the snapshot back to version 1.
	second := domain.Registered{Header: event.Header, Lines: testLines(t, 500)}
	if _, err := repo.Save(context.Background(), second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot, err := repo.FindByID(context.Background(), event.Header.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.Version != 1 {
		t.Errorf("expected version 1 after overwrite, got %d", snapshot.Version)
	}
}

func TestSnapshotRepository_Corrected(t *testing.T) {
	repo := NewSnapshotRepository()

	event := register(t, repo, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 10000)

	newDate := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	corrected := domain.Corrected{
		JournalID: event.Header.ID,
		Header:    domain.JournalHeader{ID: event.Header.ID, Date: newDate},
		Lines:     testLines(t, 8000),
	}
	if _, err := repo.Save(context.Background(), corrected); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot, err := repo.FindByID(context.Background(), event.Header.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.Version != 2 {
		t.Errorf("expected version 2, got %d", snapshot.Version)
	}
	if snapshot.Status != domain.StatusCorrected {
		t.Errorf("expected CORRECTED, got %s", snapshot.Status)
	}
	if !snapshot.Date.Equal(newDate) {
		t.Errorf("expected date %s, got %s", newDate, snapshot.Date)
	}
}

func TestSnapshotRepository_Corrected_NotFound(t *testing.T) {
	repo := NewSnapshotRepository()
	missing := domain.NewID[domain.JournalHeader]()

	corrected := domain.Corrected{
		JournalID: missing,
		Header:    domain.JournalHeader{ID: missing, Date: time.Now()},
		Lines:     testLines(t, 1000),
	}

	_, err := repo.Save(context.Background(), corrected)
	if !errors.Is(err, domain.ErrJournalNotFound) {
		t.Fatalf("expected ErrJournalNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), missing.String()) {
		t.Errorf("expected error to name id %s, got %q", missing, err.Error())
	}
}

func TestSnapshotRepository_Approved(t *testing.T) {
	repo := NewSnapshotRepository()

	event := register(t, repo, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 10000)

	// Approve bumps the version and sets the status regardless of prior
	// status, including when already approved.
	for want := 2; want <= 3; want++ {
		if _, err := repo.Save(context.Background(), domain.Approved{JournalID: event.Header.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snapshot, err := repo.FindByID(context.Background(), event.Header.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snapshot.Version != want {
			t.Errorf("expected version %d, got %d", want, snapshot.Version)
		}
		if snapshot.Status != domain.StatusApproved {
			t.Errorf("expected APPROVED, got %s", snapshot.Status)
		}
	}
}

func TestSnapshotRepository_Approved_NotFound(t *testing.T) {
	repo := NewSnapshotRepository()
	missing := domain.NewID[domain.JournalHeader]()

	_, err := repo.Save(context.Background(), domain.Approved{JournalID: missing})
	if !errors.Is(err, domain.ErrJournalNotFound) {
		t.Fatalf("expected ErrJournalNotFound, got %v", err)
	}
}

func TestSnapshotRepository_FindByID_NotFound(t *testing.T) {
	repo := NewSnapshotRepository()
	missing := domain.NewID[domain.JournalHeader]()

	_, err := repo.FindByID(context.Background(), missing)
	if !errors.Is(err, domain.ErrJournalNotFound) {
		t.Fatalf("expected ErrJournalNotFound, got %v", err)
	}
}

func TestSnapshotRepository_ListAllLines_OrderedByDateDescending(t *testing.T) {
	repo := NewSnapshotRepository()

	register(t, repo, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 100)
	register(t, repo, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), 300)
	register(t, repo, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 200)

	lines, err := repo.ListAllLines(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}

	// The 03-20 entry's lines come first, then 02-10's, then 01-15's;
	// within each entry the stored order (debit then credit) is preserved.
	wantMagnitudes := []int64{300, 300, 200, 200, 100, 100}
	wantSides := []domain.Side{domain.Debit, domain.Credit, domain.Debit, domain.Credit, domain.Debit, domain.Credit}
	for i, line := range lines {
		unsigned := line.Amount.ToUnsigned(line.Account.Type, domain.DenormalizeSign)
		if !unsigned.Magnitude.Decimal().Equal(decimal.NewFromInt(wantMagnitudes[i])) {
			t.Errorf("line %d: expected magnitude %d, got %s", i, wantMagnitudes[i], unsigned.Magnitude.Decimal())
		}
		if unsigned.Side != wantSides[i] {
			t.Errorf("line %d: expected side %s, got %s", i, wantSides[i], unsigned.Side)
		}
	}
}

func TestSnapshotRepository_ListSnapshots(t *testing.T) {
	repo := NewSnapshotRepository()

	register(t, repo, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 100)
	register(t, repo, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), 300)

	snapshots, err := repo.ListSnapshots(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snapshots))
	}
	if !snapshots[0].Date.After(snapshots[1].Date) {
		t.Errorf("expected newest first, got %s then %s", snapshots[0].Date, snapshots[1].Date)
	}
}
