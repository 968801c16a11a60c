package postgres

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gojournal/internal/domain"
)

func testCodecLines(t *testing.T) []domain.JournalLine {
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

	return []domain.JournalLine{
		{Account: cash, Amount: debit, Description: "cash sale"},
		{Account: sales, Amount: domain.NewSigned(decimal.NewFromInt(10000)), Description: "cash sale"},
	}
}

func TestLineRecordRoundTrip(t *testing.T) {
	for _, line := range testCodecLines(t) {
		record := lineToRecord(line)

		restored, err := recordToLine(record)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if restored.Account != line.Account {
			t.Errorf("expected account %v, got %v", line.Account, restored.Account)
		}
		if restored.Description != line.Description {
			t.Errorf("expected description %q, got %q", line.Description, restored.Description)
		}

		// The representation must survive: unsigned stays unsigned, signed
		// stays signed, with equal decimals.
		switch want := line.Amount.(type) {
		case domain.Unsigned:
			got, ok := restored.Amount.(domain.Unsigned)
			if !ok {
				t.Fatalf("expected Unsigned, got %T", restored.Amount)
			}
			if got.Side != want.Side || !got.Magnitude.Decimal().Equal(want.Magnitude.Decimal()) {
				t.Errorf("expected %v %s, got %v %s", want.Magnitude.Decimal(), want.Side, got.Magnitude.Decimal(), got.Side)
			}
		case domain.Signed:
			got, ok := restored.Amount.(domain.Signed)
			if !ok {
				t.Fatalf("expected Signed, got %T", restored.Amount)
			}
			if !got.Value.Equal(want.Value) {
				t.Errorf("expected %v, got %v", want.Value, got.Value)
			}
		}
	}
}

func TestRecordToLine_CorruptAccount(t *testing.T) {
	_, err := recordToLine(lineRecord{
		AccountCode: "",
		AccountName: "Cash",
		AccountType: string(domain.Asset),
		Amount:      decimal.NewFromInt(100),
	})
	if err == nil {
		t.Fatal("expected error for empty account code")
	}
}

func TestEventCodecRoundTrip(t *testing.T) {
	id := domain.NewID[domain.JournalHeader]()
	lines := testCodecLines(t)

	registered := domain.Registered{
		Header: domain.JournalHeader{ID: id},
		Lines:  lines,
	}

	eventType, payload, err := encodeEvent(registered)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eventType != eventTypeRegistered {
		t.Fatalf("expected %s, got %s", eventTypeRegistered, eventType)
	}

	decoded, err := decodeEvent(eventType, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored, ok := decoded.(domain.Registered)
	if !ok {
		t.Fatalf("expected Registered, got %T", decoded)
	}
	if restored.Header.ID != id {
		t.Errorf("expected id %s, got %s", id, restored.Header.ID)
	}
	if len(restored.Lines) != len(lines) {
		t.Errorf("expected %d lines, got %d", len(lines), len(restored.Lines))
	}
}

func TestDecodeEvent_UnknownType(t *testing.T) {
	_, err := decodeEvent("DELETED", eventPayload{JournalID: domain.NewID[domain.JournalHeader]().String()})
	if err == nil {
		t.Fatal("expected error for unknown event type")
	}
}
