package store

import (
	"github.com/teller-cli/teller/internal/atm"
	"github.com/teller-cli/teller/internal/money"
)

// NewSnapshot captures the current account state and history for saving.
func NewSnapshot(account *atm.Account, ledger *atm.Ledger) Snapshot {
	records := ledger.All()
	transactions := make([]PersistTransaction, 0, len(records))
	for _, r := range records {
		transactions = append(transactions, PersistTransaction{
			Type:      r.Type,
			Amount:    r.Amount.String(),
			Balance:   r.Balance.String(),
			Timestamp: r.Timestamp,
		})
	}

	return Snapshot{
		Balance:        account.Balance.String(),
		Pin:            account.Pin,
		Transactions:   transactions,
		DailyWithdrawn: account.DailyWithdrawn.String(),
	}
}

// Restore rebuilds account state and history from a validated snapshot.
func Restore(snap Snapshot) (*atm.Account, *atm.Ledger, error) {
	balance, err := money.FromString(snap.Balance)
	if err != nil {
		return nil, nil, err
	}
	dailyWithdrawn, err := money.FromString(snap.DailyWithdrawn)
	if err != nil {
		return nil, nil, err
	}

	records := make([]atm.Record, 0, len(snap.Transactions))
	for _, tx := range snap.Transactions {
		amount, err := money.FromString(tx.Amount)
		if err != nil {
			return nil, nil, err
		}
		txBalance, err := money.FromString(tx.Balance)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, atm.Record{
			Type:      tx.Type,
			Amount:    amount,
			Balance:   txBalance,
			Timestamp: tx.Timestamp,
		})
	}

	account := &atm.Account{
		Balance:        balance,
		Pin:            snap.Pin,
		DailyWithdrawn: dailyWithdrawn,
	}
	return account, atm.RestoreLedger(records), nil
}
