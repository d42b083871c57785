package store

// Snapshot is the persisted account state. All decimal values travel as
// strings so the on-disk representation stays exact.
type Snapshot struct {
	Balance        string               `json:"balance"`
	Pin            string               `json:"pin"`
	Transactions   []PersistTransaction `json:"transactions"`
	DailyWithdrawn string               `json:"daily_withdrawn"`
}

// PersistTransaction is one history record in the snapshot. Amount is
// signed (negative for withdrawals and transfers).
type PersistTransaction struct {
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	Balance   string `json:"balance"`
	Timestamp string `json:"timestamp"`
}
