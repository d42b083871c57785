package prompts

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/teller-cli/teller/internal/constants"
	"github.com/teller-cli/teller/internal/ui"
	"github.com/teller-cli/teller/internal/validation"
)

// Menu actions, in display order.
const (
	ActionBalance  = "Check Balance"
	ActionDeposit  = "Deposit"
	ActionWithdraw = "Withdraw"
	ActionTransfer = "Transfer"
	ActionHistory  = "Transaction History"
	ActionPin      = "Change PIN"
	ActionExit     = "Exit"
)

var menuActions = []string{
	ActionBalance,
	ActionDeposit,
	ActionWithdraw,
	ActionTransfer,
	ActionHistory,
	ActionPin,
	ActionExit,
}

// PromptMenu shows the main menu and returns the chosen action.
func PromptMenu() (string, error) {
	return PromptSelect("ATM MENU", menuActions, ActionBalance)
}

// PromptPin asks for a PIN with masked input. Format validation is left
// to the caller so a wrongly-shaped candidate still consumes a lockout
// attempt, matching the card reader's behavior.
func PromptPin(message string) (string, error) {
	var pin string
	err := survey.AskOne(&survey.Password{Message: message}, &pin, ui.PinIconOption())
	return strings.TrimSpace(pin), err
}

// PromptNewPin asks for a new PIN with inline format validation.
func PromptNewPin(message string) (string, error) {
	var pin string
	err := survey.AskOne(
		&survey.Password{Message: message},
		&pin,
		ui.PinIconOption(),
		survey.WithValidator(func(val interface{}) error {
			s, _ := val.(string)
			return validation.ValidatePin(s)
		}),
	)
	return strings.TrimSpace(pin), err
}

// PromptDepositAmount asks for a deposit amount.
func PromptDepositAmount() (string, error) {
	return PromptAmount(
		"Deposit amount ("+constants.CurrencySymbol+"):",
		"Maximum "+constants.CurrencySymbol+constants.DepositCeiling+" per deposit",
		validation.ValidateAmount,
	)
}

// PromptWithdrawAmount asks for a withdrawal amount.
func PromptWithdrawAmount() (string, error) {
	return PromptAmount(
		"Withdrawal amount ("+constants.CurrencySymbol+"):",
		"Multiples of "+constants.CurrencySymbol+"100 only",
		validation.ValidateAmount,
	)
}

// PromptTransferDetails asks for the recipient account and amount.
func PromptTransferDetails() (accountNo, rawAmount string, err error) {
	accountNo, err = PromptInput(
		"Recipient account (10 digits):",
		"",
		validation.ValidateAccountNumber,
	)
	if err != nil {
		return "", "", err
	}

	rawAmount, err = PromptAmount(
		"Transfer amount ("+constants.CurrencySymbol+"):",
		"A "+constants.CurrencySymbol+constants.TransferFee+" fee applies",
		validation.ValidateAmount,
	)
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(accountNo), rawAmount, nil
}
