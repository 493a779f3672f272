package roulette

// Multipliers on stake per bet category
const (
	StraightMultiplier = 35
	GreenMultiplier    = 35
	ColorMultiplier    = 2
	ParityMultiplier   = 2
	HalfMultiplier     = 2
	DozenMultiplier    = 3
)

type payoutRule struct {
	matches func(*Bet, Outcome) bool
	mult    float64
}

// The rule table is evaluated per category and the best payout wins.
// A bet can match more than one category (a "green" color bet matches both
// the color rule at 2x and the zero-category rule at 35x); multipliers are
// never summed.
var payoutRules = []payoutRule{
	{
		// straight number, including 00
		matches: func(b *Bet, o Outcome) bool {
			return b.Kind == BetKindStraight && b.Value == o.Slot
		},
		mult: StraightMultiplier,
	},
	{
		// red/black/green color match
		matches: func(b *Bet, o Outcome) bool {
			return b.Kind == BetKindColor && b.Value == string(o.Color)
		},
		mult: ColorMultiplier,
	},
	{
		// the zero-category bet: "green" covers both zero pockets
		matches: func(b *Bet, o Outcome) bool {
			return b.Kind == BetKindColor && b.Value == string(ColorGreen) && o.Color == ColorGreen
		},
		mult: GreenMultiplier,
	},
	{
		matches: func(b *Bet, o Outcome) bool {
			if b.Kind != BetKindParity || o.Zero() {
				return false
			}
			if b.Value == "odd" {
				return o.Number%2 == 1
			}
			return o.Number%2 == 0
		},
		mult: ParityMultiplier,
	},
	{
		matches: func(b *Bet, o Outcome) bool {
			if b.Kind != BetKindHalf || o.Zero() {
				return false
			}
			if b.Value == "1-18" {
				return o.Number >= 1 && o.Number <= 18
			}
			return o.Number >= 19 && o.Number <= 36
		},
		mult: HalfMultiplier,
	},
	{
		matches: func(b *Bet, o Outcome) bool {
			if b.Kind != BetKindDozen || o.Zero() {
				return false
			}
			switch b.Value {
			case "1st12":
				return o.Number >= 1 && o.Number <= 12
			case "2nd12":
				return o.Number >= 13 && o.Number <= 24
			default:
				return o.Number >= 25 && o.Number <= 36
			}
		},
		mult: DozenMultiplier,
	},
}

// Multiplier returns the payout multiplier for a bet against an outcome:
// the maximum across every matching category, or 0 for a losing bet.
func Multiplier(b *Bet, o Outcome) float64 {
	best := 0.0
	for _, rule := range payoutRules {
		if rule.mult > best && rule.matches(b, o) {
			best = rule.mult
		}
	}
	return best
}
