package dto

import (
	"time"

	"github.com/splitpot/splitpot/internal/usecase"
)

// CreateParticipantRequest represents a request to register a participant.
type CreateParticipantRequest struct {
	Name string `json:"name"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateParticipantRequest) ToUseCaseInput() usecase.CreateParticipantInput {
	return usecase.CreateParticipantInput{Name: r.Name}
}

// UpdateParticipantRequest represents a request to rename a participant.
type UpdateParticipantRequest struct {
	Name string `json:"name"`
}

// ExpenseRequest represents a request to log or replace an expense.
type ExpenseRequest struct {
	Description    string     `json:"description"`
	Amount         float64    `json:"amount"`
	PayerID        string     `json:"payerId"`
	ParticipantIDs []string   `json:"participantIds"`
	SpentOn        *time.Time `json:"spentOn,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ExpenseRequest) ToUseCaseInput() usecase.CreateExpenseInput {
	input := usecase.CreateExpenseInput{
		Description:    r.Description,
		Amount:         r.Amount,
		PayerID:        r.PayerID,
		ParticipantIDs: r.ParticipantIDs,
	}
	if r.SpentOn != nil {
		input.SpentOn = *r.SpentOn
	}

	return input
}
