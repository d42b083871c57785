package atm

import (
	"github.com/teller-cli/teller/internal/constants"
)

// Authenticator gates access to the engine with a PIN, allowing
// MaxPinAttempts failures before the card locks. Locked is terminal for
// the session.
type Authenticator struct {
	account        *Account
	authenticated  bool
	failedAttempts int
}

func NewAuthenticator(account *Account) *Authenticator {
	return &Authenticator{account: account}
}

func (au *Authenticator) Authenticated() bool {
	return au.authenticated
}

func (au *Authenticator) Locked() bool {
	return au.failedAttempts >= constants.MaxPinAttempts
}

// SubmitPin checks a candidate PIN. Already-authenticated sessions succeed
// without touching the attempt counter. A mismatch increments the counter
// and returns AuthAttemptError until the counter reaches the maximum, at
// which point this and every later call fails with ErrCardLocked.
func (au *Authenticator) SubmitPin(candidate string) error {
	if au.authenticated {
		return nil
	}
	if au.Locked() {
		return ErrCardLocked
	}

	if candidate == au.account.Pin {
		au.authenticated = true
		au.failedAttempts = 0
		return nil
	}

	au.failedAttempts++
	if au.Locked() {
		return ErrCardLocked
	}
	return &AuthAttemptError{AttemptsRemaining: constants.MaxPinAttempts - au.failedAttempts}
}

// ChangePin replaces the stored PIN after checking the current PIN, the
// new PIN's format and its confirmation. A wrong current PIN does not
// consume a lockout attempt, and a successful change leaves the
// authentication state untouched.
func (au *Authenticator) ChangePin(current, newPin, confirm string) error {
	if current != au.account.Pin {
		return ErrIncorrectPin
	}
	if !validPin(newPin) {
		return ErrInvalidPinFormat
	}
	if newPin != confirm {
		return ErrPinMismatch
	}

	au.account.Pin = newPin
	return nil
}

func validPin(pin string) bool {
	if len(pin) != constants.PinLength {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
