package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/teller-cli/teller/internal/atm"
	"github.com/teller-cli/teller/internal/money"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teller.json")

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load of missing file returned error: %v", err)
	}
	if !reflect.DeepEqual(snap, DefaultSnapshot()) {
		t.Fatalf("snapshot = %+v, want defaults", snap)
	}
}

func TestLoadCorruptFileFallsBackWithError(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", "{{{"},
		{"bad balance", `{"balance":"lots","pin":"1234","transactions":[],"daily_withdrawn":"0.00"}`},
		{"negative balance", `{"balance":"-10.00","pin":"1234","transactions":[],"daily_withdrawn":"0.00"}`},
		{"bad transaction amount", `{"balance":"5000.00","pin":"1234","transactions":[{"type":"Deposit","amount":"x","balance":"5000.00","timestamp":"t"}],"daily_withdrawn":"0.00"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "teller.json")
			if err := os.WriteFile(path, []byte(c.content), 0644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			snap, err := Load(path)
			if err == nil {
				t.Fatalf("Load of corrupt file returned no error")
			}
			if !reflect.DeepEqual(snap, DefaultSnapshot()) {
				t.Fatalf("snapshot = %+v, want defaults", snap)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teller.json")

	account := &atm.Account{
		Balance:        money.MustParse("6595.00"),
		Pin:            "5678",
		DailyWithdrawn: money.MustParse("300.00"),
	}
	ledger := atm.NewLedger()
	ledger.Append(atm.Record{
		Type:      "Deposit",
		Amount:    money.MustParse("2000.00"),
		Balance:   money.MustParse("7000.00"),
		Timestamp: "2025-06-01 10:30",
	})
	ledger.Append(atm.Record{
		Type:      "Withdrawal",
		Amount:    money.MustParse("-300.00"),
		Balance:   money.MustParse("6700.00"),
		Timestamp: "2025-06-01 10:31",
	})

	if err := Save(path, NewSnapshot(account, ledger)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	restored, restoredLedger, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if restored.Balance.String() != "6595.00" {
		t.Fatalf("balance = %s, want 6595.00", restored.Balance)
	}
	if restored.Pin != "5678" {
		t.Fatalf("pin = %s, want 5678", restored.Pin)
	}
	if restored.DailyWithdrawn.String() != "300.00" {
		t.Fatalf("daily withdrawn = %s, want 300.00", restored.DailyWithdrawn)
	}

	records := restoredLedger.All()
	if len(records) != 2 {
		t.Fatalf("restored %d records, want 2", len(records))
	}
	if records[1].Amount.String() != "-300.00" || records[1].Timestamp != "2025-06-01 10:31" {
		t.Fatalf("unexpected restored record: %+v", records[1])
	}

	// String-decimal equality end to end.
	resaved := NewSnapshot(restored, restoredLedger)
	if !reflect.DeepEqual(snap, resaved) {
		t.Fatalf("snapshot changed across round-trip:\n got %+v\nwant %+v", resaved, snap)
	}
}

func TestSaveIsAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teller.json")

	if err := Save(path, DefaultSnapshot()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind after save")
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if snap.Balance != "5000.00" {
		t.Fatalf("balance = %s, want 5000.00", snap.Balance)
	}
}
