package atm

import (
	"time"

	"github.com/teller-cli/teller/internal/constants"
	"github.com/teller-cli/teller/internal/money"
)

// Record is one committed balance-affecting operation. Amount is signed:
// positive for deposits, negative for withdrawals and transfers. Records
// are immutable once appended.
type Record struct {
	Type      string
	Amount    money.Amount
	Balance   money.Amount
	Timestamp string
}

func newRecord(recType string, amount, balance money.Amount) Record {
	return Record{
		Type:      recType,
		Amount:    amount,
		Balance:   balance,
		Timestamp: time.Now().Format(constants.TimestampFormat),
	}
}

// Ledger is the bounded insertion-ordered transaction history. When the
// cap is exceeded the oldest records are dropped first.
type Ledger struct {
	records []Record
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// RestoreLedger rebuilds a ledger from persisted records, applying the
// same cap as live appends.
func RestoreLedger(records []Record) *Ledger {
	l := &Ledger{}
	for _, r := range records {
		l.Append(r)
	}
	return l
}

func (l *Ledger) Append(r Record) {
	l.records = append(l.records, r)
	if len(l.records) > constants.HistoryCap {
		l.records = l.records[len(l.records)-constants.HistoryCap:]
	}
}

// Recent returns up to n most recent records in chronological order
// (most recent last). The returned slice is a copy.
func (l *Ledger) Recent(n int) []Record {
	if n > len(l.records) {
		n = len(l.records)
	}
	out := make([]Record, n)
	copy(out, l.records[len(l.records)-n:])
	return out
}

// All returns a copy of the full retained history.
func (l *Ledger) All() []Record {
	return l.Recent(len(l.records))
}

func (l *Ledger) Len() int {
	return len(l.records)
}
