package economy

// EconomyError is a custom error type for economy-related errors
type EconomyError string

// Error implements the error interface
func (e EconomyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidAmount     EconomyError = "amount must be greater than zero"
	ErrInsufficientFunds EconomyError = "not enough money"
	ErrSelfPayment       EconomyError = "you cannot pay yourself"
	ErrNotFound          EconomyError = "no account on record"
	ErrNilConfig         EconomyError = "config cannot be nil"
	ErrNilLedger         EconomyError = "ledger repository cannot be nil"
	ErrNilRoller         EconomyError = "random source cannot be nil"
	ErrNilClock          EconomyError = "clock cannot be nil"
	ErrNilProgression    EconomyError = "progression table cannot be nil"
)
