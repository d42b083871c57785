// Package atm holds the account and transaction engine: the rules that
// govern how deposits, withdrawals and transfers mutate balance and
// daily-limit state, PIN authentication with lockout, and the bounded
// transaction history.
package atm

import (
	"github.com/teller-cli/teller/internal/constants"
	"github.com/teller-cli/teller/internal/money"
)

var (
	dailyLimit     = money.MustParse(constants.DailyLimit)
	depositCeiling = money.MustParse(constants.DepositCeiling)
	transferFee    = money.MustParse(constants.TransferFee)
)

// Account is the single persisted account behind the terminal. It is
// mutated only by committed Engine operations and PIN changes; invariants
// balance >= 0 and dailyWithdrawn <= dailyLimit hold after every commit.
//
// DailyWithdrawn is cumulative and carries across sessions; there is no
// day-boundary reset.
type Account struct {
	Balance        money.Amount
	Pin            string
	DailyWithdrawn money.Amount
}

// NewDefaultAccount returns the account state used when no persisted
// snapshot can be loaded.
func NewDefaultAccount() *Account {
	return &Account{
		Balance:        money.MustParse(constants.DefaultBalance),
		Pin:            constants.DefaultPin,
		DailyWithdrawn: money.Zero(),
	}
}

// DailyRemaining is the withdrawal allowance left today, never negative.
func (a *Account) DailyRemaining() money.Amount {
	remaining := dailyLimit.Sub(a.DailyWithdrawn)
	if remaining.IsNegative() {
		return money.Zero()
	}
	return remaining
}
