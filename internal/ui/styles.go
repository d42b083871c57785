package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// PrintScreenTitle renders a full-width banner, used for the welcome and
// menu screens.
func PrintScreenTitle(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

// PrintSectionTitle renders a secondary heading above receipts and tables.
func PrintSectionTitle(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}
