package wager

import (
	"context"
	"time"

	"github.com/hustlebot/hustle/internal/common/clock"
	"github.com/hustlebot/hustle/internal/common/uuid"
	ledgerRepo "github.com/hustlebot/hustle/internal/repositories/ledger"
	"github.com/hustlebot/hustle/internal/roulette"
	"github.com/hustlebot/hustle/internal/rng"
	"github.com/hustlebot/hustle/internal/services/buff"
)

// RoundPhase is the lifecycle phase of a roulette round
type RoundPhase string

const (
	// PhaseOpen means the round is accepting bets
	PhaseOpen RoundPhase = "open"

	// PhaseClosing means last call went out; bets are still accepted
	PhaseClosing RoundPhase = "closing"

	// PhaseResolving means the outcome is being drawn and settled
	PhaseResolving RoundPhase = "resolving"
)

// Notifier receives round lifecycle events. Calls arrive from the round's
// timer goroutine, never from a command handler's goroutine.
type Notifier interface {
	// RoundLastCall announces the betting window is about to close
	RoundLastCall(ctx context.Context, snapshot *RoundSnapshot)

	// RoundResolved announces the drawn outcome and every bet's result
	RoundResolved(ctx context.Context, result *RoundResult)
}

// Config holds configuration for the wager service
type Config struct {
	// MinBet and MaxBet bound a single stake in dollars
	MinBet float64
	MaxBet float64

	// Window is how long a round accepts bets before the wheel spins
	Window time.Duration

	// LastCall is how long before the spin the last-call notice goes out
	LastCall time.Duration

	// CoinflipWinChance is the unboosted coinflip win probability
	CoinflipWinChance float64

	// Repository dependencies
	Ledger ledgerRepo.Repository

	// Service dependencies
	Buff     buff.Service
	Roller   rng.Source
	Clock    clock.Clock
	Notifier Notifier

	// UUID generates round IDs; defaults to the real generator
	UUID uuid.UUID
}

// PlacedBet is one admitted roulette bet. The stake has already left the
// bettor's account.
type PlacedBet struct {
	UserID   string
	UserName string
	Bet      *roulette.Bet
	Stake    float64

	// Salvage marks a boosted color bet; a losing salvage bet gets one
	// extra draw against the salvage chance
	Salvage bool
}

// RoundSnapshot is a read-only copy of a round's state
type RoundSnapshot struct {
	RoundID   string
	ChannelID string
	Phase     RoundPhase
	Bets      []PlacedBet
	OpenedAt  time.Time
	ClosesAt  time.Time
}

// BetResult is one bet's settlement
type BetResult struct {
	PlacedBet

	// Multiplier applied to the stake; zero for a losing bet
	Multiplier float64

	Won      bool
	Salvaged bool

	// Payout credited; zero for a losing bet
	Payout float64

	// Balance after settlement; unchanged for a losing bet
	Balance float64
}

// RoundResult is the outcome of one settled round
type RoundResult struct {
	RoundID   string
	ChannelID string
	Outcome   roulette.Outcome
	Results   []BetResult

	TotalStaked float64
	TotalPaid   float64
}

// CoinflipInput contains parameters for a double-or-nothing coinflip
type CoinflipInput struct {
	UserID   string
	UserName string
	Amount   float64
}

// CoinflipOutput contains the result of a coinflip
type CoinflipOutput struct {
	Won bool

	// Payout credited on a win (double the stake); zero on a loss
	Payout float64

	// Balance after settlement
	Balance float64

	// Boosted is true when a luck boost use skewed the flip
	Boosted bool

	// BoostUsesLeft after any consumption; meaningless unless Boosted
	BoostUsesLeft int
}

// PlaceBetInput contains parameters for joining or opening a roulette round
type PlaceBetInput struct {
	ChannelID string
	UserID    string
	UserName  string

	// Bet is the raw descriptor, e.g. "17", "red", "odd", "1st12"
	Bet string

	Amount float64
}

// PlaceBetOutput contains the result of admitting a roulette bet
type PlaceBetOutput struct {
	// Bet as parsed
	Bet *roulette.Bet

	// Opened is true when this bet started a new round
	Opened bool

	// Salvage is true when a boost use was spent to protect this bet
	Salvage bool

	// ClosesAt is when the wheel spins
	ClosesAt time.Time

	// Balance after the stake was debited
	Balance float64

	// Participants admitted so far, this bet included
	Participants int
}

// CancelRoundInput contains parameters for aborting an open round
type CancelRoundInput struct {
	ChannelID string
}

// CancelRoundOutput contains the result of aborting a round
type CancelRoundOutput struct {
	// Refunded is how many stakes were returned
	Refunded int

	// Total dollars returned
	Total float64
}
