package constants

const (
	// Transaction record types
	TypeDeposit    = "Deposit"
	TypeWithdrawal = "Withdrawal"
	TypeTransfer   = "Transfer"

	// Timestamp Layout (minute resolution, matches persisted history)
	TimestampFormat = "2006-01-02 15:04"
)

const (
	MaxPinAttempts = 3
	PinLength      = 4
	AccountNoLen   = 10
	HistoryCap     = 50
	HistoryView    = 10
)

const (
	DefaultBalance = "5000.00"
	DefaultPin     = "1234"
	DailyLimit     = "50000.00"
	DepositCeiling = "100000.00"
	TransferFee    = "5.00"
	CurrencySymbol = "₹"
)
