package cmd

import (
	"errors"

	"github.com/pterm/pterm"

	"github.com/teller-cli/teller/internal/app"
	"github.com/teller-cli/teller/internal/atm"
	"github.com/teller-cli/teller/internal/constants"
	"github.com/teller-cli/teller/internal/errhandler"
	"github.com/teller-cli/teller/internal/ui"
	"github.com/teller-cli/teller/internal/ui/prompts"
	"github.com/teller-cli/teller/internal/ui/views"
)

// sessionRunner drives one authenticated terminal session: PIN gate,
// menu loop, and the save-on-exit guarantee. State is persisted on every
// way out, including prompt interrupts and card lockout.
type sessionRunner struct {
	app *app.App
}

func (r *sessionRunner) Run() error {
	defer r.save()

	ui.PrintScreenTitle("Welcome to ATM System")
	r.app.Logger.Info("session started")

	if ok := r.authenticate(); !ok {
		return nil
	}

	r.menuLoop()

	pterm.Println("Thank you for using ATM System!")
	r.app.Logger.Info("session ended")
	return nil
}

// authenticate runs the PIN gate. Returns false when the session must end
// without reaching the menu (lockout or user abort).
func (r *sessionRunner) authenticate() bool {
	for !r.app.Auth.Authenticated() {
		pin, err := prompts.PromptPin("Enter PIN:")
		if err != nil {
			r.cancelled(err)
			return false
		}

		err = r.app.Auth.SubmitPin(pin)
		switch {
		case err == nil:
			// authenticated

		case errors.Is(err, atm.ErrCardLocked):
			pterm.Error.Println(capitalize(err.Error()))
			r.app.Logger.Warn("card locked")
			return false

		default:
			var attemptErr *atm.AuthAttemptError
			if errors.As(err, &attemptErr) {
				pterm.Warning.Println(capitalize(err.Error()))
				continue
			}
			pterm.Error.Println(capitalize(err.Error()))
			return false
		}
	}
	return true
}

func (r *sessionRunner) menuLoop() {
	for {
		pterm.Println()
		action, err := prompts.PromptMenu()
		if err != nil {
			r.cancelled(err)
			return
		}

		if action == prompts.ActionExit {
			return
		}

		if err := r.dispatch(action); err != nil {
			if errhandler.IsInterrupt(err) {
				pterm.Warning.Println("Operation Cancelled")
				continue
			}
			pterm.Error.Println(capitalize(err.Error()))
		}
	}
}

func (r *sessionRunner) dispatch(action string) error {
	switch action {
	case prompts.ActionBalance:
		views.RenderBalance(r.app.Engine.Balance())
		return nil
	case prompts.ActionDeposit:
		return r.deposit()
	case prompts.ActionWithdraw:
		return r.withdraw()
	case prompts.ActionTransfer:
		return r.transfer()
	case prompts.ActionHistory:
		return views.NewHistoryView().Render(r.app.Ledger.Recent(constants.HistoryView))
	case prompts.ActionPin:
		return r.changePin()
	}
	return nil
}

func (r *sessionRunner) deposit() error {
	raw, err := prompts.PromptDepositAmount()
	if err != nil {
		return err
	}

	receipt, err := r.app.Engine.Deposit(raw)
	if err != nil {
		return err
	}

	views.RenderReceipt("Deposited", receipt)
	r.app.RecordJournal()
	return nil
}

func (r *sessionRunner) withdraw() error {
	raw, err := prompts.PromptWithdrawAmount()
	if err != nil {
		return err
	}

	receipt, err := r.app.Engine.Withdraw(raw)
	if err != nil {
		return err
	}

	views.RenderReceipt("Withdrew", receipt)
	r.app.RecordJournal()
	return nil
}

func (r *sessionRunner) transfer() error {
	accountNo, raw, err := prompts.PromptTransferDetails()
	if err != nil {
		return err
	}

	quote, err := r.app.Engine.QuoteTransfer(accountNo, raw)
	if err != nil {
		return err
	}

	views.RenderTransferQuote(quote)

	confirmed, err := prompts.PromptConfirm("Confirm transfer?", false)
	if err != nil {
		return err
	}
	if !confirmed {
		pterm.Warning.Println("Transfer cancelled")
		return nil
	}

	receipt, err := r.app.Engine.CommitTransfer(quote)
	if err != nil {
		return err
	}

	views.RenderReceipt("Transferred", receipt)
	r.app.RecordJournal()
	return nil
}

func (r *sessionRunner) changePin() error {
	current, err := prompts.PromptPin("Enter current PIN:")
	if err != nil {
		return err
	}
	newPin, err := prompts.PromptNewPin("Enter new 4-digit PIN:")
	if err != nil {
		return err
	}
	confirm, err := prompts.PromptPin("Confirm new PIN:")
	if err != nil {
		return err
	}

	if err := r.app.Auth.ChangePin(current, newPin, confirm); err != nil {
		return err
	}

	pterm.Success.Println("PIN changed successfully!")
	return nil
}

func (r *sessionRunner) cancelled(err error) {
	if errhandler.IsInterrupt(err) {
		pterm.Warning.Println("Session terminated")
		return
	}
	pterm.Error.Println(capitalize(err.Error()))
}

// save persists account state and history; failures are logged by
// App.Save, the session just surfaces a warning.
func (r *sessionRunner) save() {
	if err := r.app.Save(); err != nil {
		pterm.Warning.Println("Could not save account data, recent activity may be lost")
	}
}
