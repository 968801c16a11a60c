package domain

import "github.com/shopspring/decimal"

// NormalizeFunc maps (account type, side) to a numeric sign.
type NormalizeFunc func(AccountType, Side) int

// DenormalizeFunc maps (account type, positivity) back to a posting side.
type DenormalizeFunc func(AccountType, bool) Side

// Amount is a monetary amount in one of two representations: an unsigned
// magnitude tagged with a posting side, or a single signed value. The two
// convert losslessly through the sign normalization table.
type Amount interface {
	// ToSigned converts to the signed representation using the given table.
	ToSigned(accountType AccountType, normalize NormalizeFunc) Signed
	// ToUnsigned converts to the unsigned representation using the inverse table.
	ToUnsigned(accountType AccountType, denormalize DenormalizeFunc) Unsigned

	isAmount()
}

// Unsigned is a strictly positive magnitude plus a debit/credit tag.
type Unsigned struct {
	Magnitude PositiveDecimal
	Side      Side
}

// NewUnsigned validates the magnitude and builds an Unsigned amount.
func NewUnsigned(magnitude decimal.Decimal, side Side) (Unsigned, error) {
	positive, err := NewPositiveDecimal(magnitude)
	if err != nil {
		return Unsigned{}, err
	}
	return Unsigned{Magnitude: positive, Side: side}, nil
}

func (u Unsigned) isAmount() {}

func (u Unsigned) ToSigned(accountType AccountType, normalize NormalizeFunc) Signed {
	sign := normalize(accountType, u.Side)
	return Signed{Value: u.Magnitude.Decimal().Mul(decimal.NewFromInt(int64(sign)))}
}

func (u Unsigned) ToUnsigned(AccountType, DenormalizeFunc) Unsigned {
	return u
}

// Signed is a single signed decimal value. A zero value has no well-defined
// side; denormalization treats it as positive.
type Signed struct {
	Value decimal.Decimal
}

// NewSigned builds a Signed amount.
func NewSigned(value decimal.Decimal) Signed {
	return Signed{Value: value}
}

func (s Signed) isAmount() {}

func (s Signed) ToSigned(AccountType, NormalizeFunc) Signed {
	return s
}

func (s Signed) ToUnsigned(accountType AccountType, denormalize DenormalizeFunc) Unsigned {
	return Unsigned{
		Magnitude: trustedPositiveDecimal(s.Value.Abs()),
		Side:      denormalize(accountType, !s.Value.IsNegative()),
	}
}
