package economy

import (
	"context"

	"github.com/hustlebot/hustle/internal/common/clock"
	"github.com/hustlebot/hustle/internal/models"
	"github.com/hustlebot/hustle/internal/progression"
	ledgerRepo "github.com/hustlebot/hustle/internal/repositories/ledger"
	"github.com/hustlebot/hustle/internal/reward"
	"github.com/hustlebot/hustle/internal/rng"
)

// LeaderboardKind selects which leaderboard to read
type LeaderboardKind string

const (
	// LeaderboardMoney ranks accounts by wallet balance
	LeaderboardMoney LeaderboardKind = "money"

	// LeaderboardJobs ranks accounts by lifetime jobs worked
	LeaderboardJobs LeaderboardKind = "jobs"
)

// Announcer broadcasts noteworthy work results beyond the invoking
// channel. Special jobs and the top rarity classes qualify.
type Announcer interface {
	WorkHighlight(ctx context.Context, userID string, out *WorkOutput)
}

// Config holds configuration for the economy service
type Config struct {
	// BaseOdds are the trigger probabilities in normal operation
	BaseOdds reward.Odds

	// OverrideOdds are forced while override mode is on: elevated trigger
	// probabilities and a fixed test distribution
	OverrideOdds reward.Odds

	// LeaderboardSize caps leaderboard rows
	LeaderboardSize int

	// FishPenaltyRate is the wallet fraction /fish takes
	FishPenaltyRate float64

	// Announcer receives highlight-worthy work results; nil disables
	// broadcasts
	Announcer Announcer

	// Repository dependencies
	Ledger ledgerRepo.Repository

	// Service dependencies
	Progression *progression.Table
	Roller      rng.Source
	Clock       clock.Clock
}

// WorkInput contains parameters for a work action
type WorkInput struct {
	// UserID is the Discord user ID of the worker
	UserID string

	// UserName is the display name, cached for leaderboards
	UserName string
}

// WorkOutput contains the result of a work action
type WorkOutput struct {
	// Special is true when a special event job landed
	Special bool

	// Class is the rarity class, or the special's name bucket
	Class string

	// Label is the job description or special flavor line
	Label string

	// BasePayout is the payout before any tip
	BasePayout float64

	// Tip is the landed tip, nil when none
	Tip *reward.Tip

	// TotalPayout is the credited amount after the tip multiplier
	TotalPayout float64

	// Balance is the wallet balance after the credit
	Balance float64

	// TierName is the progression tier the roll used (empty for specials)
	TierName string

	// NewBest is true when this payout became the account's best
	NewBest bool
}

// GetBalanceInput contains parameters for a balance check
type GetBalanceInput struct {
	UserID   string
	UserName string
}

// GetBalanceOutput contains the result of a balance check
type GetBalanceOutput struct {
	Balance float64
}

// PayInput contains parameters for a transfer between users
type PayInput struct {
	FromUserID string
	FromName   string
	ToUserID   string
	ToName     string
	Amount     float64
}

// PayOutput contains the balances after a transfer
type PayOutput struct {
	Amount      float64
	FromBalance float64
	ToBalance   float64
}

// FishInput contains parameters for a fishing attempt
type FishInput struct {
	UserID   string
	UserName string
}

// FishOutput contains the result of a fishing attempt
type FishOutput struct {
	// Penalized is false when the wallet was already empty
	Penalized bool

	// Penalty is the amount taken
	Penalty float64

	// Balance is the wallet balance after the penalty
	Balance float64
}

// GetProgressInput contains parameters for a progress summary
type GetProgressInput struct {
	UserID string
}

// NextUnlock describes the tier a user is working toward
type NextUnlock struct {
	// Name of the next tier
	Name string

	// JobsRemaining until the tier unlocks
	JobsRemaining int
}

// GetProgressOutput contains a user's progression summary
type GetProgressOutput struct {
	// Counts per rarity class (plus the special bucket)
	Counts map[string]int

	// Total lifetime jobs
	Total int

	// Tier is the active progression tier
	Tier progression.Tier

	// Next is nil when the user has reached the top tier
	Next *NextUnlock

	// BestPayout is nil when the user has never been paid
	BestPayout *models.PayoutRecord
}

// LeaderboardInput contains parameters for reading a leaderboard
type LeaderboardInput struct {
	Kind LeaderboardKind
}

// LeaderboardOutput contains leaderboard rows, best first
type LeaderboardOutput struct {
	Kind    LeaderboardKind
	Entries []ledgerRepo.LeaderboardEntry
}

// ResetAccountInput contains parameters for an admin single-account reset
type ResetAccountInput struct {
	UserID string
}

// SetOverrideModeInput toggles override mode
type SetOverrideModeInput struct {
	Enabled bool
}

// SetOverrideModeOutput reports the mode now in effect
type SetOverrideModeOutput struct {
	Enabled bool
}
