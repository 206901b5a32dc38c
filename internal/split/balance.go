// Package split holds the pure balance and settlement computations. Both
// functions are stateless and deterministic; callers recompute them from a
// full snapshot on every change rather than patching results incrementally.
package split

import (
	"math"

	"github.com/splitpot/splitpot/internal/domain"
)

// Balances derives each participant's net balance from the expense list.
// Positive means the participant is owed money, negative means they owe.
// Every known participant appears in the result, zero balances included.
//
// Each splittable expense is divided equally across its share set. A share
// member who is also the payer is credited amount-share; everyone else in
// the set is debited their share. A payer outside the set is credited the
// full amount: they fronted money they owe no part of.
//
// Expenses with a non-positive or non-finite amount, or an empty share set,
// contribute nothing. That is policy, not validation: malformed expenses
// are skipped silently so a stray row can never poison the whole map.
// Participant ids not present in the participants list stay in the divisor
// but receive no debit or credit.
func Balances(participants []*domain.Participant, expenses []*domain.Expense) map[string]float64 {
	balances := make(map[string]float64, len(participants))
	for _, p := range participants {
		balances[p.ID] = 0
	}

	for _, e := range expenses {
		if !splittable(e) {
			continue
		}

		share := e.Amount / float64(len(e.ParticipantIDs))

		payerInSet := false
		for _, id := range e.ParticipantIDs {
			if id == e.PayerID {
				payerInSet = true
			}

			if _, known := balances[id]; !known {
				continue
			}

			if id == e.PayerID {
				balances[id] += e.Amount - share
			} else {
				balances[id] -= share
			}
		}

		if !payerInSet {
			if _, known := balances[e.PayerID]; known {
				balances[e.PayerID] += e.Amount
			}
		}
	}

	return balances
}

func splittable(e *domain.Expense) bool {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return false
	}

	return e.Amount > 0 && len(e.ParticipantIDs) > 0
}
