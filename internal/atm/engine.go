package atm

import (
	"github.com/teller-cli/teller/internal/constants"
	"github.com/teller-cli/teller/internal/money"
)

// Engine applies monetary operations to a single account under the
// validation and limit rules, appending a ledger record for every commit.
// It assumes the caller has already authenticated; each operation either
// fully commits or leaves no state change.
type Engine struct {
	account *Account
	ledger  *Ledger
}

func NewEngine(account *Account, ledger *Ledger) *Engine {
	return &Engine{account: account, ledger: ledger}
}

// BalanceInfo is the result of a balance inquiry.
type BalanceInfo struct {
	Balance        money.Amount
	DailyRemaining money.Amount
}

// Receipt summarizes a committed deposit or withdrawal.
type Receipt struct {
	PreviousBalance money.Amount
	Amount          money.Amount
	NewBalance      money.Amount
}

func (e *Engine) Balance() BalanceInfo {
	return BalanceInfo{
		Balance:        e.account.Balance,
		DailyRemaining: e.account.DailyRemaining(),
	}
}

// Deposit validates the raw amount, rejects deposits above the ceiling,
// then commits the balance change and ledger record.
func (e *Engine) Deposit(rawAmount string) (Receipt, error) {
	amount, err := money.Parse(rawAmount)
	if err != nil {
		return Receipt{}, err
	}
	if amount.GreaterThan(depositCeiling) {
		return Receipt{}, ErrDepositCeiling
	}

	previous := e.account.Balance
	e.account.Balance = previous.Add(amount)
	e.ledger.Append(newRecord(constants.TypeDeposit, amount, e.account.Balance))

	return Receipt{PreviousBalance: previous, Amount: amount, NewBalance: e.account.Balance}, nil
}

// Withdraw validates the raw amount and applies the checks in fixed
// order: note denomination, then daily limit, then funds. On commit it
// debits the balance and adds to the cumulative daily total.
func (e *Engine) Withdraw(rawAmount string) (Receipt, error) {
	amount, err := money.Parse(rawAmount)
	if err != nil {
		return Receipt{}, err
	}
	if !amount.IsNoteMultiple() {
		return Receipt{}, ErrInvalidDenomination
	}
	if e.account.DailyWithdrawn.Add(amount).GreaterThan(dailyLimit) {
		return Receipt{}, &DailyLimitError{Remaining: e.account.DailyRemaining()}
	}
	if amount.GreaterThan(e.account.Balance) {
		return Receipt{}, &InsufficientFundsError{Available: e.account.Balance}
	}

	previous := e.account.Balance
	e.account.Balance = previous.Sub(amount)
	e.account.DailyWithdrawn = e.account.DailyWithdrawn.Add(amount)
	e.ledger.Append(newRecord(constants.TypeWithdrawal, amount.Neg(), e.account.Balance))

	return Receipt{PreviousBalance: previous, Amount: amount, NewBalance: e.account.Balance}, nil
}

// TransferQuote is the first phase of a transfer: the computed cost
// presented for confirmation. Nothing is committed until CommitTransfer.
type TransferQuote struct {
	MaskedAccount string
	Amount        money.Amount
	Fee           money.Amount
	Total         money.Amount

	committed bool
}

// QuoteTransfer validates the destination account and amount, checks that
// the total including the fee is covered, and returns a quote. No state
// changes until the quote is committed.
func (e *Engine) QuoteTransfer(accountNo, rawAmount string) (*TransferQuote, error) {
	if !validAccountNo(accountNo) {
		return nil, ErrInvalidAccountNumber
	}
	amount, err := money.Parse(rawAmount)
	if err != nil {
		return nil, err
	}

	total := amount.Add(transferFee)
	if total.GreaterThan(e.account.Balance) {
		return nil, &InsufficientFundsError{Available: e.account.Balance}
	}

	return &TransferQuote{
		MaskedAccount: "****" + accountNo[len(accountNo)-4:],
		Amount:        amount,
		Fee:           transferFee,
		Total:         total,
	}, nil
}

// CommitTransfer debits the quoted total and records the transfer. The
// fee is part of the debit but not itemized in the ledger record, and
// transfers do not count against the daily withdrawal total. A declined
// quote is simply never committed.
func (e *Engine) CommitTransfer(quote *TransferQuote) (Receipt, error) {
	if quote.committed {
		return Receipt{}, ErrQuoteCommitted
	}
	if quote.Total.GreaterThan(e.account.Balance) {
		return Receipt{}, &InsufficientFundsError{Available: e.account.Balance}
	}

	previous := e.account.Balance
	e.account.Balance = previous.Sub(quote.Total)
	e.ledger.Append(newRecord(constants.TypeTransfer, quote.Amount.Neg(), e.account.Balance))
	quote.committed = true

	return Receipt{PreviousBalance: previous, Amount: quote.Amount, NewBalance: e.account.Balance}, nil
}

func validAccountNo(accountNo string) bool {
	if len(accountNo) != constants.AccountNoLen {
		return false
	}
	for _, c := range accountNo {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
