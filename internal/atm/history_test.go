package atm

import (
	"fmt"
	"testing"

	"github.com/teller-cli/teller/internal/constants"
	"github.com/teller-cli/teller/internal/money"
)

func testRecord(i int) Record {
	return Record{
		Type:      constants.TypeDeposit,
		Amount:    money.MustParse("10.00"),
		Balance:   money.MustParse("100.00"),
		Timestamp: fmt.Sprintf("2025-01-01 00:%02d", i%60),
	}
}

func TestLedgerCapsAtFifty(t *testing.T) {
	ledger := NewLedger()

	for i := 0; i < 51; i++ {
		r := testRecord(i)
		r.Timestamp = fmt.Sprintf("record-%d", i)
		ledger.Append(r)
	}

	if ledger.Len() != constants.HistoryCap {
		t.Fatalf("ledger length = %d, want %d", ledger.Len(), constants.HistoryCap)
	}

	all := ledger.All()
	if all[0].Timestamp != "record-1" {
		t.Fatalf("oldest record = %s, want record-1 (record-0 evicted)", all[0].Timestamp)
	}
	if all[len(all)-1].Timestamp != "record-50" {
		t.Fatalf("newest record = %s, want record-50", all[len(all)-1].Timestamp)
	}
}

func TestRecentReturnsChronological(t *testing.T) {
	ledger := NewLedger()
	for i := 0; i < 5; i++ {
		r := testRecord(i)
		r.Timestamp = fmt.Sprintf("record-%d", i)
		ledger.Append(r)
	}

	recent := ledger.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("Recent(3) returned %d records", len(recent))
	}
	for i, want := range []string{"record-2", "record-3", "record-4"} {
		if recent[i].Timestamp != want {
			t.Fatalf("recent[%d] = %s, want %s", i, recent[i].Timestamp, want)
		}
	}

	// Asking for more than exists returns what there is.
	if got := ledger.Recent(100); len(got) != 5 {
		t.Fatalf("Recent(100) returned %d records, want 5", len(got))
	}
}

func TestRecentDoesNotAliasInternalStorage(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(testRecord(0))

	recent := ledger.Recent(1)
	recent[0].Type = "Tampered"

	if got := ledger.Recent(1)[0].Type; got != constants.TypeDeposit {
		t.Fatalf("caller mutation leaked into ledger: %s", got)
	}
}

func TestRestoreLedgerAppliesCap(t *testing.T) {
	records := make([]Record, 60)
	for i := range records {
		records[i] = testRecord(i)
		records[i].Timestamp = fmt.Sprintf("record-%d", i)
	}

	ledger := RestoreLedger(records)
	if ledger.Len() != constants.HistoryCap {
		t.Fatalf("restored ledger length = %d, want %d", ledger.Len(), constants.HistoryCap)
	}
	if got := ledger.All()[0].Timestamp; got != "record-10" {
		t.Fatalf("oldest restored record = %s, want record-10", got)
	}
}
