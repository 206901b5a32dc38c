package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitpot/splitpot/internal/domain"
)

// ParticipantResponse represents a participant in API responses.
type ParticipantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ParticipantFromDomain converts a domain participant to a response.
func ParticipantFromDomain(p *domain.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

// ParticipantsFromDomain converts domain participants to responses.
func ParticipantsFromDomain(participants []*domain.Participant) []*ParticipantResponse {
	result := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		result[i] = ParticipantFromDomain(p)
	}
	return result
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID             string     `json:"id"`
	Description    string     `json:"description"`
	Amount         float64    `json:"amount"`
	PayerID        string     `json:"payerId"`
	ParticipantIDs []string   `json:"participantIds"`
	SpentOn        *time.Time `json:"spentOn,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) *ExpenseResponse {
	resp := &ExpenseResponse{
		ID:             e.ID,
		Description:    e.Description,
		Amount:         e.Amount,
		PayerID:        e.PayerID,
		ParticipantIDs: e.ParticipantIDs,
		CreatedAt:      e.CreatedAt,
	}
	if !e.SpentOn.IsZero() {
		spentOn := e.SpentOn
		resp.SpentOn = &spentOn
	}
	return resp
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []*domain.Expense) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = ExpenseFromDomain(e)
	}
	return result
}

// BalancesResponse represents per-participant balances. Amounts are rounded
// to two decimal places for display; the unrounded values stay internal.
type BalancesResponse struct {
	Balances map[string]decimal.Decimal `json:"balances"`
}

// BalancesFromDomain converts raw balances to a rounded response.
func BalancesFromDomain(balances map[string]float64) *BalancesResponse {
	rounded := make(map[string]decimal.Decimal, len(balances))
	for id, b := range balances {
		rounded[id] = roundMoney(b)
	}
	return &BalancesResponse{Balances: rounded}
}

// SettlementResponse represents one transfer of the settlement plan.
type SettlementResponse struct {
	FromID string          `json:"fromId"`
	ToID   string          `json:"toId"`
	Amount decimal.Decimal `json:"amount"`
}

// SettlementsResponse represents the ordered settlement plan.
type SettlementsResponse struct {
	Settlements []SettlementResponse `json:"settlements"`
}

// SettlementsFromDomain converts domain settlements to a rounded response.
func SettlementsFromDomain(settlements []domain.Settlement) *SettlementsResponse {
	result := make([]SettlementResponse, len(settlements))
	for i, s := range settlements {
		result[i] = SettlementResponse{
			FromID: s.FromID,
			ToID:   s.ToID,
			Amount: roundMoney(s.Amount),
		}
	}
	return &SettlementsResponse{Settlements: result}
}

// CheckResponse represents the zero-sum invariant check result. The sum is
// reported unrounded: rounding could mask the very drift being checked for.
type CheckResponse struct {
	Balanced bool    `json:"balanced"`
	Sum      float64 `json:"sum"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func roundMoney(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
