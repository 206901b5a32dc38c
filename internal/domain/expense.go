package domain

import (
	"math"
	"time"
)

// Expense represents a shared cost fronted by one participant.
// The share set may or may not include the payer: a payer outside the set
// fronted money they owe no part of.
type Expense struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	Amount         float64   `json:"amount"`
	PayerID        string    `json:"payerId"`
	ParticipantIDs []string  `json:"participantIds"`
	SpentOn        time.Time `json:"spentOn,omitzero"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Validate checks the expense against the API-boundary rules. The balance
// computation itself is more permissive and silently skips malformed
// expenses; this validation exists so that stored data is well-formed.
func (e *Expense) Validate() error {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return ErrAmountNotFinite
	}

	if e.Amount <= 0 {
		return ErrInvalidAmount
	}

	if e.PayerID == "" {
		return ErrMissingPayer
	}

	if len(e.ParticipantIDs) == 0 {
		return ErrEmptyParticipantSet
	}

	seen := make(map[string]bool, len(e.ParticipantIDs))
	for _, id := range e.ParticipantIDs {
		if id == "" {
			return ErrUnknownParticipant
		}
		if seen[id] {
			return ErrDuplicateParticipant
		}
		seen[id] = true
	}

	return nil
}

// Splittable reports whether the expense contributes to balances.
// Mirrors the skip rules of the balance computation.
func (e *Expense) Splittable() bool {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return false
	}

	return e.Amount > 0 && len(e.ParticipantIDs) > 0
}
