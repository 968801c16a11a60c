package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gojournal/internal/directory"
	"github.com/iho/gojournal/internal/usecase"
	"github.com/iho/gojournal/internal/usecase/mocks"
)

func TestReportUseCase_ProfitAndLoss(t *testing.T) {
	snapshots := mocks.NewMockSnapshotRepository()
	events := mocks.NewMockEventLog()
	journals := usecase.NewJournalUseCase(snapshots, events, directory.New(), nil)
	reports := usecase.NewReportUseCase(snapshots)

	// A cash sale and a rent payment.
	if _, err := journals.Register(context.Background(), cashSalesInput(10000, 10000)); err != nil {
		t.Fatal(err)
	}
	rent := usecase.RegisterJournalInput{
		Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		Lines: []usecase.JournalLineInput{
			{AccountCode: "5210", Side: "DEBIT", Amount: decimal.NewFromInt(3000)},
			{AccountCode: "1010", Side: "CREDIT", Amount: decimal.NewFromInt(3000)},
		},
	}
	if _, err := journals.Register(context.Background(), rent); err != nil {
		t.Fatal(err)
	}

	pl, err := reports.ProfitAndLoss(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !pl.TotalRevenue.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("expected total revenue 10000, got %s", pl.TotalRevenue)
	}
	if !pl.TotalExpense.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected total expense 3000, got %s", pl.TotalExpense)
	}
	if !pl.Profit.Equal(decimal.NewFromInt(7000)) {
		t.Errorf("expected profit 7000, got %s", pl.Profit)
	}
}

func TestReportUseCase_AllLines_NewestEntryFirst(t *testing.T) {
	snapshots := mocks.NewMockSnapshotRepository()
	events := mocks.NewMockEventLog()
	journals := usecase.NewJournalUseCase(snapshots, events, directory.New(), nil)
	reports := usecase.NewReportUseCase(snapshots)

	dates := []time.Time{
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		input := cashSalesInput(10000, 10000)
		input.Date = date
		if _, err := journals.Register(context.Background(), input); err != nil {
			t.Fatal(err)
		}
	}

	lines, err := reports.AllLines(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
}
