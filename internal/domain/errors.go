package domain

import "errors"

var (
	// Participant errors
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrInvalidName          = errors.New("name cannot be empty")
	ErrDuplicateParticipant = errors.New("duplicate participant in share set")

	// Expense errors
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrAmountNotFinite     = errors.New("amount must be a finite number")
	ErrMissingPayer        = errors.New("expense requires a payer")
	ErrEmptyParticipantSet = errors.New("expense requires at least one participant")
	ErrUnknownParticipant  = errors.New("unknown participant referenced")

	// Dataset errors
	ErrUnsupportedSchema = errors.New("unsupported dataset schema version")
	ErrInvalidCurrency   = errors.New("invalid currency code")
	ErrDuplicateID       = errors.New("duplicate id in dataset")
	ErrDanglingReference = errors.New("expense references a participant not in the dataset")
)
