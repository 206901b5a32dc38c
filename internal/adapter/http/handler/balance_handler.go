package handler

import (
	"context"
	"net/http"

	"github.com/splitpot/splitpot/internal/adapter/http/dto"
	"github.com/splitpot/splitpot/internal/domain"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	Balances(ctx context.Context) (map[string]float64, error)
	Settlements(ctx context.Context) ([]domain.Settlement, error)
	CheckZeroSum(ctx context.Context) (bool, float64, error)
}

// BalanceHandler serves the derived views: balances, the settlement plan,
// and the zero-sum check.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// Balances returns each participant's net balance.
func (h *BalanceHandler) Balances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.balanceUC.Balances(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalancesFromDomain(balances))
}

// Settlements returns the ordered transfer plan.
func (h *BalanceHandler) Settlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := h.balanceUC.Settlements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute settlements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SettlementsFromDomain(settlements))
}

// Check reports whether all balances sum to zero.
func (h *BalanceHandler) Check(w http.ResponseWriter, r *http.Request) {
	balanced, sum, err := h.balanceUC.CheckZeroSum(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CheckResponse{
		Balanced: balanced,
		Sum:      sum,
	})
}
