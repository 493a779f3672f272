package roulette

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidBet is returned when a raw bet is outside the supported vocabulary
var ErrInvalidBet = errors.New("invalid bet: try red, black, green, odd, even, 1-18, 19-36, 1st12, 2nd12, 3rd12, or a number (0-36, 00)")

// BetKind classifies a wager
type BetKind string

const (
	BetKindStraight BetKind = "straight"
	BetKindColor    BetKind = "color"
	BetKindParity   BetKind = "parity"
	BetKindHalf     BetKind = "half"
	BetKindDozen    BetKind = "dozen"
)

// Bet is a validated wager descriptor
type Bet struct {
	// Kind classifies the wager
	Kind BetKind

	// Value is the normalized raw value: "17", "00", "red", "odd",
	// "1-18", "1st12", ...
	Value string
}

// ParseBet validates a raw bet string against the fixed vocabulary
func ParseBet(raw string) (*Bet, error) {
	v := strings.ToLower(strings.TrimSpace(raw))

	switch v {
	case "red", "black", "green":
		return &Bet{Kind: BetKindColor, Value: v}, nil
	case "odd", "even":
		return &Bet{Kind: BetKindParity, Value: v}, nil
	case "1-18", "19-36":
		return &Bet{Kind: BetKindHalf, Value: v}, nil
	case "1st12", "2nd12", "3rd12":
		return &Bet{Kind: BetKindDozen, Value: v}, nil
	case "00":
		return &Bet{Kind: BetKindStraight, Value: v}, nil
	}

	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 36 {
		return &Bet{Kind: BetKindStraight, Value: strconv.Itoa(n)}, nil
	}

	return nil, ErrInvalidBet
}

// SalvageEligible reports whether a losing bet of this shape qualifies for
// the luck boost's salvage draw. Only the red/black color bets do.
func (b *Bet) SalvageEligible() bool {
	return b.Kind == BetKindColor && b.Value != string(ColorGreen)
}
