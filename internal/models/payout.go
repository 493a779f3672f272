package models

import (
	"time"
)

// PayoutRecord is the highest single payout an account has received
type PayoutRecord struct {
	// Amount is the payout in dollars, after any tip multiplier
	Amount float64

	// Label is the job description that produced the payout
	Label string

	// Class is the rarity class (or special name) of the job
	Class string

	// Timestamp is when the payout happened
	Timestamp time.Time
}
