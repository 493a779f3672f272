package models

import (
	"time"
)

// BuffRecord tracks a user's luck boost: a consumable, time-gated modifier
type BuffRecord struct {
	// UserID is the Discord user ID the boost belongs to
	UserID string

	// Uses is how many qualifying wagers the boost still covers
	Uses int

	// CooldownUntil is when the boost may be purchased again. It is set
	// once at purchase and never extended by use.
	CooldownUntil time.Time

	// PurchasedAt is when the boost was bought
	PurchasedAt time.Time
}

// Active reports whether the boost still has uses left
func (b *BuffRecord) Active() bool {
	return b != nil && b.Uses > 0
}
