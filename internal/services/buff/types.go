package buff

import (
	"time"

	"github.com/hustlebot/hustle/internal/common/clock"
	ledgerRepo "github.com/hustlebot/hustle/internal/repositories/ledger"
	"github.com/hustlebot/hustle/internal/models"
)

// Config holds configuration for the buff service
type Config struct {
	// Price of one luck boost in dollars
	Price float64

	// GrantUses is how many qualifying wagers one purchase covers
	GrantUses int

	// Cooldown between purchases, set once at purchase time
	Cooldown time.Duration

	// BoostedWinChance replaces the 0.5 coinflip win probability while
	// the boost is active
	BoostedWinChance float64

	// SalvageChance is the probability a boosted, losing, salvage-eligible
	// bet is converted to a win
	SalvageChance float64

	// SalvageMultiplier is the payout multiplier of a salvaged bet
	SalvageMultiplier float64

	// Repository dependencies
	Ledger ledgerRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// PurchaseInput contains parameters for buying a luck boost
type PurchaseInput struct {
	// UserID is the Discord user ID of the buyer
	UserID string
}

// PurchaseOutput contains the result of buying a luck boost
type PurchaseOutput struct {
	// Record is the freshly granted boost
	Record *models.BuffRecord

	// Balance is the wallet balance after the purchase
	Balance float64

	// Price paid
	Price float64
}

// StatusInput contains parameters for reading a user's boost state
type StatusInput struct {
	UserID string
}

// StatusOutput contains a user's boost state; Record is nil when the user
// never bought a boost
type StatusOutput struct {
	Record *models.BuffRecord

	// Active reports whether uses remain
	Active bool
}

// ConsumeInput contains parameters for spending one boost use
type ConsumeInput struct {
	UserID string
}

// ConsumeOutput contains the uses left after consumption
type ConsumeOutput struct {
	Remaining int

	// Consumed is false when there was nothing to spend
	Consumed bool
}
