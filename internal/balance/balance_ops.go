package balance

import balanceerrors "go-leave/internal/balance/errors"

// Debit subtracts days from the balance. The caller persists the result
// inside its own transaction; a failed transaction discards the mutation
// along with everything else.
func Debit(b *LeaveBalance, days int) error {
	if b.RemainingDays < days {
		return balanceerrors.InsufficientBalance(b.RemainingDays, days)
	}
	b.RemainingDays -= days
	return nil
}

// Credit adds days back unconditionally. Only the reject rollback path uses
// it, so the result may exceed the type's annual quota until the next quota
// adjustment caps it.
func Credit(b *LeaveBalance, days int) {
	b.RemainingDays += days
}

// AdjustForQuotaChange applies a leave type quota change to every balance of
// that type: a raise grants the difference to everyone, a cut clamps any
// balance above the new quota down to it.
func AdjustForQuotaChange(balances []LeaveBalance, oldMax, newMax int) {
	if newMax == oldMax {
		return
	}

	for i := range balances {
		if newMax > oldMax {
			balances[i].RemainingDays += newMax - oldMax
		} else if balances[i].RemainingDays > newMax {
			balances[i].RemainingDays = newMax
		}
	}
}
