package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NonEmptyString is a string that is guaranteed to contain at least one
// non-whitespace character. The zero value is invalid; construction goes
// through NewNonEmptyString only.
type NonEmptyString struct {
	value string
}

// NewNonEmptyString validates and wraps a raw string.
func NewNonEmptyString(raw string) (NonEmptyString, error) {
	if strings.TrimSpace(raw) == "" {
		return NonEmptyString{}, ErrEmptyString
	}
	return NonEmptyString{value: raw}, nil
}

func (s NonEmptyString) String() string {
	return s.value
}

// PositiveDecimal is a decimal guaranteed to be strictly greater than zero.
type PositiveDecimal struct {
	value decimal.Decimal
}

// NewPositiveDecimal validates and wraps a decimal value.
func NewPositiveDecimal(value decimal.Decimal) (PositiveDecimal, error) {
	if value.LessThanOrEqual(decimal.Zero) {
		return PositiveDecimal{}, ErrNotPositive
	}
	return PositiveDecimal{value: value}, nil
}

// trustedPositiveDecimal skips validation for values already known positive,
// such as the absolute value of a nonzero decimal.
func trustedPositiveDecimal(value decimal.Decimal) PositiveDecimal {
	return PositiveDecimal{value: value}
}

// Decimal returns the wrapped value.
func (p PositiveDecimal) Decimal() decimal.Decimal {
	return p.value
}

// Add sums two positive decimals. The sum of two positives is positive, so
// this cannot fail.
func (p PositiveDecimal) Add(other PositiveDecimal) PositiveDecimal {
	return PositiveDecimal{value: p.value.Add(other.value)}
}

// AddDecimal adds an arbitrary decimal, re-validating positivity.
func (p PositiveDecimal) AddDecimal(value decimal.Decimal) (PositiveDecimal, error) {
	return NewPositiveDecimal(p.value.Add(value))
}

// Sub subtracts another positive decimal, re-validating positivity.
func (p PositiveDecimal) Sub(other PositiveDecimal) (PositiveDecimal, error) {
	return NewPositiveDecimal(p.value.Sub(other.value))
}

// SubDecimal subtracts an arbitrary decimal, re-validating positivity.
func (p PositiveDecimal) SubDecimal(value decimal.Decimal) (PositiveDecimal, error) {
	return NewPositiveDecimal(p.value.Sub(value))
}

// Cmp compares two positive decimals by numeric value.
func (p PositiveDecimal) Cmp(other PositiveDecimal) int {
	return p.value.Cmp(other.value)
}

// PositiveInt is an int guaranteed to be strictly greater than zero.
type PositiveInt struct {
	value int
}

// NewPositiveInt validates and wraps an int.
func NewPositiveInt(value int) (PositiveInt, error) {
	if value <= 0 {
		return PositiveInt{}, ErrNotPositive
	}
	return PositiveInt{value: value}, nil
}

// Int returns the wrapped value.
func (p PositiveInt) Int() int {
	return p.value
}

// Add sums two positive ints.
func (p PositiveInt) Add(other PositiveInt) PositiveInt {
	return PositiveInt{value: p.value + other.value}
}

// Sub subtracts another positive int, re-validating positivity.
func (p PositiveInt) Sub(other PositiveInt) (PositiveInt, error) {
	return NewPositiveInt(p.value - other.value)
}

// ID is an opaque identifier tied to an entity type at compile time, so a
// journal id cannot be passed where a product id is expected.
type ID[T any] struct {
	value uuid.UUID
}

// NewID generates a fresh random identifier.
func NewID[T any]() ID[T] {
	return ID[T]{value: uuid.New()}
}

// ParseID parses an identifier from its string form.
func ParseID[T any](raw string) (ID[T], error) {
	u, err := uuid.Parse(raw)
	if err != nil {
		return ID[T]{}, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return ID[T]{value: u}, nil
}

func (id ID[T]) String() string {
	return id.value.String()
}

// IsZero reports whether the id has not been assigned.
func (id ID[T]) IsZero() bool {
	return id.value == uuid.Nil
}
