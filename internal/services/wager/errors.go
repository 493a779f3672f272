package wager

// WagerError is a custom error type for wager-related errors
type WagerError string

// Error implements the error interface
func (e WagerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidAmount     WagerError = "stake must be greater than zero"
	ErrBetTooSmall       WagerError = "stake is below the table minimum"
	ErrBetTooLarge       WagerError = "stake is above the table maximum"
	ErrInsufficientFunds WagerError = "not enough money"
	ErrNoActiveRound     WagerError = "no round is open in this channel"
	ErrRoundResolving    WagerError = "the wheel is already spinning"
	ErrNilConfig         WagerError = "config cannot be nil"
	ErrNilLedger         WagerError = "ledger repository cannot be nil"
	ErrNilBuff           WagerError = "buff service cannot be nil"
	ErrNilRoller         WagerError = "random source cannot be nil"
	ErrNilClock          WagerError = "clock cannot be nil"
	ErrNilNotifier       WagerError = "notifier cannot be nil"
)
