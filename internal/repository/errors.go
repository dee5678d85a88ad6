package repository

import "errors"

var (
	// ErrNotFound is returned by conditional updates that matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrInsufficientFunds is returned when a balance mutation would drive
	// the balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrDuplicateEmail is returned when an insert hits the users email
	// unique constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)
