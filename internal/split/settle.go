package split

import (
	"math"
	"sort"

	"github.com/splitpot/splitpot/internal/domain"
)

// Tolerance is the band around zero inside which a balance counts as
// settled. It absorbs the floating-point noise of repeated equal splits;
// a balance of exactly ±Tolerance is treated as zero.
const Tolerance = 0.005

// Plan produces the list of transfers that brings every balance to zero,
// greedily matching the largest debtor against the largest creditor. The
// greedy match keeps the transfer count low but is not a proven minimum.
//
// The sum of the emitted amounts equals the sum of all positive balances
// (modulo the tolerance band), and applying every transfer settles every
// participant.
func Plan(balances map[string]float64) []domain.Settlement {
	type stake struct {
		id        string
		remaining float64
	}

	var debtors, creditors []stake
	for id, b := range balances {
		switch {
		case b < -Tolerance:
			debtors = append(debtors, stake{id: id, remaining: -b})
		case b > Tolerance:
			creditors = append(creditors, stake{id: id, remaining: b})
		}
	}

	// Largest first; ties broken by id so the plan is deterministic
	// regardless of map iteration order.
	byAmount := func(s []stake) func(int, int) bool {
		return func(i, j int) bool {
			if s[i].remaining != s[j].remaining {
				return s[i].remaining > s[j].remaining
			}
			return s[i].id < s[j].id
		}
	}
	sort.Slice(debtors, byAmount(debtors))
	sort.Slice(creditors, byAmount(creditors))

	var transfers []domain.Settlement

	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		pay := math.Min(debtors[i].remaining, creditors[j].remaining)

		transfers = append(transfers, domain.Settlement{
			FromID: debtors[i].id,
			ToID:   creditors[j].id,
			Amount: pay,
		})

		debtors[i].remaining -= pay
		creditors[j].remaining -= pay

		// Both cursors may advance in the same step when debtor and
		// creditor zero out together.
		if debtors[i].remaining <= Tolerance {
			i++
		}
		if creditors[j].remaining <= Tolerance {
			j++
		}
	}

	return transfers
}
