package views

import (
	"github.com/pterm/pterm"

	"github.com/teller-cli/teller/internal/atm"
	"github.com/teller-cli/teller/internal/constants"
)

type HistoryView struct{}

func NewHistoryView() *HistoryView {
	return &HistoryView{}
}

// Render displays the given records (oldest first) as a table, colored by
// transaction type.
func (v *HistoryView) Render(records []atm.Record) error {
	if len(records) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Transaction History (last %d)", len(records))

	tableData := pterm.TableData{
		{"Date & Time", "Type", "Amount", "Balance"},
	}

	for _, r := range records {
		var coloredType, coloredAmount string

		amountStr := constants.CurrencySymbol + r.Amount.String()
		if r.Amount.IsNegative() {
			amountStr = "-" + constants.CurrencySymbol + r.Amount.Neg().String()
		}

		switch r.Type {
		case constants.TypeDeposit:
			coloredType = pterm.Green(r.Type)
			coloredAmount = pterm.Green(amountStr)
		case constants.TypeWithdrawal:
			coloredType = pterm.Red(r.Type)
			coloredAmount = pterm.Red(amountStr)
		case constants.TypeTransfer:
			coloredType = pterm.Blue(r.Type)
			coloredAmount = pterm.Blue(amountStr)
		default:
			coloredType = r.Type
			coloredAmount = amountStr
		}

		tableData = append(tableData, []string{
			r.Timestamp,
			coloredType,
			coloredAmount,
			constants.CurrencySymbol + r.Balance.String(),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions shown\n", len(records))
	return nil
}
