package views

import (
	"github.com/pterm/pterm"

	"github.com/teller-cli/teller/internal/atm"
	"github.com/teller-cli/teller/internal/constants"
)

// RenderReceipt displays a committed operation: what moved and the
// balance before and after.
func RenderReceipt(verb string, receipt atm.Receipt) {
	pterm.Success.Printf("%s %s%s\n", verb, constants.CurrencySymbol, receipt.Amount)
	pterm.Printf("Previous balance: %s%s\n", constants.CurrencySymbol, receipt.PreviousBalance)
	pterm.Printf("New balance: %s%s\n", constants.CurrencySymbol, receipt.NewBalance)
}

// RenderTransferQuote displays the cost breakdown awaiting confirmation.
func RenderTransferQuote(quote *atm.TransferQuote) {
	pterm.DefaultSection.Println("Transfer Quote")
	pterm.Printf("Transfer to: %s\n", quote.MaskedAccount)
	pterm.Printf("Amount: %s%s\n", constants.CurrencySymbol, quote.Amount)
	pterm.Printf("Fee: %s%s\n", constants.CurrencySymbol, quote.Fee)
	pterm.Printf("Total: %s%s\n", constants.CurrencySymbol, quote.Total)
}
