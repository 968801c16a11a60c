package domain

import "testing"

func TestNormalizeSign(t *testing.T) {
	tests := []struct {
		accountType AccountType
		side        Side
		want        int
	}{
		{Asset, Debit, 1},
		{Asset, Credit, -1},
		{Expense, Debit, 1},
		{Expense, Credit, -1},
		{Liability, Debit, -1},
		{Liability, Credit, 1},
		{Equity, Debit, -1},
		{Equity, Credit, 1},
		{Revenue, Debit, -1},
		{Revenue, Credit, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType)+"/"+string(tt.side), func(t *testing.T) {
			if got := NormalizeSign(tt.accountType, tt.side); got != tt.want {
				t.Errorf("NormalizeSign(%s, %s) = %d, want %d", tt.accountType, tt.side, got, tt.want)
			}
		})
	}
}

func TestDenormalizeSign_InvertsNormalizeSign(t *testing.T) {
	accountTypes := []AccountType{Asset, Liability, Equity, Revenue, Expense}
	sides := []Side{Debit, Credit}

	for _, accountType := range accountTypes {
		for _, side := range sides {
			sign := NormalizeSign(accountType, side)
			recovered := DenormalizeSign(accountType, sign > 0)
			if recovered != side {
				t.Errorf("DenormalizeSign(%s, %v) = %s, want %s", accountType, sign > 0, recovered, side)
			}
		}
	}
}
