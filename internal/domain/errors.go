package domain

import "errors"

var (
	// Guarded primitive errors
	ErrEmptyString = errors.New("string cannot be empty or blank")
	ErrNotPositive = errors.New("value must be a positive number")

	// Account errors
	ErrUnknownAccountType = errors.New("unknown account type")
	ErrAccountNotFound    = errors.New("account does not exist")

	// Journal errors
	ErrJournalNotFound = errors.New("journal not found")

	// Product errors
	ErrProductNameTaken    = errors.New("product name already exists")
	ErrMaxProductsExceeded = errors.New("maximum product count exceeded")
	ErrProductNotFound     = errors.New("product not found")
	ErrStockingSuspended   = errors.New("stocking is suspended")
)
