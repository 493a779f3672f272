package wager

import "context"

// Service defines the interface for wagering operations
type Service interface {
	// Coinflip settles a double-or-nothing flip immediately
	Coinflip(ctx context.Context, input *CoinflipInput) (*CoinflipOutput, error)

	// PlaceBet admits a roulette bet, opening a round in the channel when
	// none is running. The stake is debited at admission.
	PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error)

	// CancelRound aborts a channel's round before it resolves, stopping
	// its timers and refunding every admitted stake
	CancelRound(ctx context.Context, input *CancelRoundInput) (*CancelRoundOutput, error)

	// ActiveRound returns a snapshot of the channel's round, if any
	ActiveRound(channelID string) (*RoundSnapshot, bool)
}
