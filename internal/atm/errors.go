package atm

import (
	"errors"
	"fmt"

	"github.com/teller-cli/teller/internal/money"
)

var (
	ErrDepositCeiling       = errors.New("maximum deposit amount is ₹1,00,000.00")
	ErrInvalidDenomination  = errors.New("amount must be in multiples of ₹100")
	ErrInvalidAccountNumber = errors.New("invalid account number, must be 10 digits")
	ErrCardLocked           = errors.New("card locked due to too many failed attempts")
	ErrIncorrectPin         = errors.New("incorrect current PIN")
	ErrInvalidPinFormat     = errors.New("PIN must be 4 digits")
	ErrPinMismatch          = errors.New("PINs do not match")
	ErrQuoteCommitted       = errors.New("transfer quote already committed")
)

// DailyLimitError reports a withdrawal that would push the cumulative daily
// total past the limit, carrying the remaining allowance.
type DailyLimitError struct {
	Remaining money.Amount
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("daily limit exceeded, remaining: ₹%s", e.Remaining)
}

// InsufficientFundsError reports an operation whose total exceeds the
// available balance.
type InsufficientFundsError struct {
	Available money.Amount
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds, available: ₹%s", e.Available)
}

// AuthAttemptError reports a rejected PIN with the attempts left before the
// card locks.
type AuthAttemptError struct {
	AttemptsRemaining int
}

func (e *AuthAttemptError) Error() string {
	return fmt.Sprintf("incorrect PIN, %d attempts remaining", e.AttemptsRemaining)
}
