package domain

// Side is the side of a posting.
type Side string

const (
	Debit  Side = "DEBIT"
	Credit Side = "CREDIT"
)

// Valid reports whether the side is DEBIT or CREDIT.
func (s Side) Valid() bool {
	return s == Debit || s == Credit
}

// NormalizeSign maps an (account type, side) pair to a numeric sign for
// uniform signed arithmetic. A debit increases ASSET and EXPENSE accounts and
// decreases the rest; a credit is the mirror image. This table is the single
// source of truth for every sign-sensitive computation.
func NormalizeSign(accountType AccountType, side Side) int {
	switch accountType {
	case Asset, Expense:
		if side == Debit {
			return 1
		}
		return -1
	default: // Liability, Equity, Revenue
		if side == Debit {
			return -1
		}
		return 1
	}
}

// DenormalizeSign is the inverse of NormalizeSign: it reads the same table in
// reverse, recovering the posting side from the sign of a normalized value.
func DenormalizeSign(accountType AccountType, isPositive bool) Side {
	switch accountType {
	case Asset, Expense:
		if isPositive {
			return Debit
		}
		return Credit
	default: // Liability, Equity, Revenue
		if isPositive {
			return Credit
		}
		return Debit
	}
}
