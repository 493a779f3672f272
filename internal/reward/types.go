package reward

// Class is a job rarity class
type Class string

const (
	ClassCommon    Class = "common"
	ClassUncommon  Class = "uncommon"
	ClassRare      Class = "rare"
	ClassEpic      Class = "epic"
	ClassLegendary Class = "legendary"
	ClassSecret    Class = "secret"

	// ClassSpecial is the counter bucket for special event jobs. It never
	// appears in a distribution; specials are rolled through their own gate.
	ClassSpecial Class = "special"
)

// RarityOrder pins the walk order for cumulative-weight selection.
// Map iteration order is not a substitute; selection must be reproducible.
var RarityOrder = []Class{
	ClassCommon,
	ClassUncommon,
	ClassRare,
	ClassEpic,
	ClassLegendary,
	ClassSecret,
}

// Distribution maps rarity classes to relative weights
type Distribution map[Class]float64

// Total sums the positive weights in rarity order
func (d Distribution) Total() float64 {
	total := 0.0
	for _, c := range RarityOrder {
		if w := d[c]; w > 0 {
			total += w
		}
	}
	return total
}

// PayoutRange is an inclusive dollar range a payout is drawn from
type PayoutRange struct {
	Min float64
	Max float64
}

// JobClass holds the payout range and label pool for one rarity class
type JobClass struct {
	Payout PayoutRange
	Labels []string
}

// SpecialJob is a special event job rolled independently of rarity classes
type SpecialJob struct {
	// Name identifies the special (also used as an announce emoji key)
	Name string

	// Flavor is the message shown when the special lands
	Flavor string

	// Payout is the dollar range for the special
	Payout PayoutRange

	// UsesRareGate marks the rarest special: after the global special
	// trigger it still needs a 1-in-N integer draw (N from Odds.RareGateOneIn)
	UsesRareGate bool

	// PassChance, when positive, is a flat secondary gate applied after the
	// global special trigger. Zero means the special always passes.
	PassChance float64
}

// TipTier is one band of tip multipliers with a selection weight
type TipTier struct {
	Name   string
	Emoji  string
	Flavor string
	Mult   PayoutRange
	Weight float64
}

// Odds carries every tunable trigger probability for a roll. It is passed
// by value into each roll so override mode is a parameter, not shared state.
type Odds struct {
	// SpecialChance is the probability a work action tries a special job
	SpecialChance float64

	// RareGateOneIn is the N of the rarest special's 1-in-N secondary gate
	RareGateOneIn int

	// TipChance is the probability any tip happens on a roll
	TipChance float64

	// Override, when non-nil, replaces the tier distribution for job rolls
	Override Distribution
}

// JobOutcome is the result of a normal rarity roll
type JobOutcome struct {
	Class  Class
	Label  string
	Payout float64
}

// SpecialOutcome is the result of a special event roll
type SpecialOutcome struct {
	Name   string
	Flavor string
	Payout float64
}

// Tip is a landed tip multiplier
type Tip struct {
	Name   string
	Emoji  string
	Flavor string
	Mult   float64
}
