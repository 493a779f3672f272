package buff

import "context"

// Service defines the interface for luck boost operations
type Service interface {
	// Purchase buys a luck boost: debits the price, grants the configured
	// uses, and starts the cooldown
	Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error)

	// Status reports a user's current boost state
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)

	// Consume spends one boost use; a no-op when none remain
	Consume(ctx context.Context, input *ConsumeInput) (*ConsumeOutput, error)

	// BoostedWinChance is the coinflip win probability while boosted
	BoostedWinChance() float64

	// SalvageChance is the probability a boosted losing color bet is salvaged
	SalvageChance() float64

	// SalvageMultiplier is the stake multiplier paid on a salvaged bet
	SalvageMultiplier() float64
}
