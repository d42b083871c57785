// Package validation holds the inline validators wired into the
// interactive prompts, so bad input is rejected before it reaches the
// engine.
package validation

import (
	"fmt"
	"strings"

	"github.com/teller-cli/teller/internal/constants"
	"github.com/teller-cli/teller/internal/money"
)

// ValidateAmount checks that the input parses as a positive decimal
// amount. Used as a huh input validator.
func ValidateAmount(val string) error {
	_, err := money.Parse(strings.TrimSpace(val))
	return err
}

// ValidatePin checks the 4-numeric-digit PIN format.
func ValidatePin(val string) error {
	pin := strings.TrimSpace(val)
	if len(pin) != constants.PinLength {
		return fmt.Errorf("PIN must be %d digits", constants.PinLength)
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return fmt.Errorf("PIN must contain only digits")
		}
	}
	return nil
}

// ValidateAccountNumber checks the 10-decimal-digit account number format.
func ValidateAccountNumber(val string) error {
	accountNo := strings.TrimSpace(val)
	if len(accountNo) != constants.AccountNoLen {
		return fmt.Errorf("account number must be %d digits", constants.AccountNoLen)
	}
	for _, c := range accountNo {
		if c < '0' || c > '9' {
			return fmt.Errorf("account number must contain only digits")
		}
	}
	return nil
}
