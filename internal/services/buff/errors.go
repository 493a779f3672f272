package buff

// BuffError is a custom error type for luck boost errors
type BuffError string

// Error implements the error interface
func (e BuffError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientFunds BuffError = "not enough money for a luck boost"
	ErrOnCooldown        BuffError = "luck boost is still on cooldown"
	ErrNilConfig         BuffError = "config cannot be nil"
	ErrNilLedger         BuffError = "ledger repository cannot be nil"
	ErrNilClock          BuffError = "clock cannot be nil"
)
