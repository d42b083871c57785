package views

import (
	"github.com/pterm/pterm"

	"github.com/teller-cli/teller/internal/atm"
	"github.com/teller-cli/teller/internal/constants"
)

// RenderBalance displays the current balance and remaining daily
// withdrawal allowance.
func RenderBalance(info atm.BalanceInfo) {
	pterm.DefaultSection.Println("Balance")
	pterm.Printf("Current Balance: %s%s\n", constants.CurrencySymbol, info.Balance)
	pterm.Printf("Daily Withdrawal Remaining: %s%s\n", constants.CurrencySymbol, info.DailyRemaining)
}
