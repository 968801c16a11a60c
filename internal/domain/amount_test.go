package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestUnsigned_ToSigned(t *testing.T) {
	tests := []struct {
		name        string
		accountType AccountType
		side        Side
		magnitude   int64
		want        int64
	}{
		{name: "asset debit is positive", accountType: Asset, side: Debit, magnitude: 10000, want: 10000},
		{name: "asset credit is negative", accountType: Asset, side: Credit, magnitude: 10000, want: -10000},
		{name: "revenue credit is positive", accountType: Revenue, side: Credit, magnitude: 5000, want: 5000},
		{name: "revenue debit is negative", accountType: Revenue, side: Debit, magnitude: 5000, want: -5000},
		{name: "liability credit is positive", accountType: Liability, side: Credit, magnitude: 700, want: 700},
		{name: "expense debit is positive", accountType: Expense, side: Debit, magnitude: 300, want: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsigned, err := NewUnsigned(decimal.NewFromInt(tt.magnitude), tt.side)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			signed := unsigned.ToSigned(tt.accountType, NormalizeSign)
			if !signed.Value.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("expected %d, got %s", tt.want, signed.Value)
			}
		})
	}
}

func TestAmount_RoundTrip(t *testing.T) {
	accountTypes := []AccountType{Asset, Liability, Equity, Revenue, Expense}
	sides := []Side{Debit, Credit}

	for _, accountType := range accountTypes {
		for _, side := range sides {
			unsigned, err := NewUnsigned(decimal.RequireFromString("1234.56"), side)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			signed := unsigned.ToSigned(accountType, NormalizeSign)
			back := signed.ToUnsigned(accountType, DenormalizeSign)

			if back.Side != unsigned.Side {
				t.Errorf("%s/%s: side changed to %s", accountType, side, back.Side)
			}
			if !back.Magnitude.Decimal().Equal(unsigned.Magnitude.Decimal()) {
				t.Errorf("%s/%s: magnitude changed to %s", accountType, side, back.Magnitude.Decimal())
			}

			// The signed direction round-trips too for nonzero values.
			again := back.ToSigned(accountType, NormalizeSign)
			if !again.Value.Equal(signed.Value) {
				t.Errorf("%s/%s: signed value changed to %s", accountType, side, again.Value)
			}
		}
	}
}

func TestSigned_ToUnsigned_ZeroDefaultsPositive(t *testing.T) {
	zero := NewSigned(decimal.Zero)

	unsigned := zero.ToUnsigned(Asset, DenormalizeSign)
	if unsigned.Side != Debit {
		t.Errorf("expected zero to denormalize as DEBIT for asset, got %s", unsigned.Side)
	}

	unsigned = zero.ToUnsigned(Revenue, DenormalizeSign)
	if unsigned.Side != Credit {
		t.Errorf("expected zero to denormalize as CREDIT for revenue, got %s", unsigned.Side)
	}
}

func TestAmount_ConvertingIsIdentityOnSameRepresentation(t *testing.T) {
	unsigned, _ := NewUnsigned(decimal.NewFromInt(42), Debit)
	if got := unsigned.ToUnsigned(Asset, DenormalizeSign); got != unsigned {
		t.Errorf("expected identity, got %+v", got)
	}

	signed := NewSigned(decimal.NewFromInt(-42))
	if got := signed.ToSigned(Asset, NormalizeSign); !got.Value.Equal(signed.Value) {
		t.Errorf("expected identity, got %+v", got)
	}
}
