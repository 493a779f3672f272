// Package progression maps a user's lifetime job count onto a progression
// tier, which selects the rarity distribution their work rolls use.
package progression

import (
	"github.com/hustlebot/hustle/internal/reward"
)

// TableError represents a progression table construction error
type TableError string

func (e TableError) Error() string {
	return string(e)
}

const (
	// ErrEmptyTable is returned when a table has no tiers
	ErrEmptyTable = TableError("progression table needs at least one tier")

	// ErrUnorderedTiers is returned when thresholds do not start at zero
	// or are not strictly increasing
	ErrUnorderedTiers = TableError("tier thresholds must start at zero and strictly increase")
)

// Tier is one milestone on the progression ladder
type Tier struct {
	// Ordinal is the tier's position in the ladder, starting at 0
	Ordinal int

	// Name is the display name of the tier
	Name string

	// MinJobs is the lifetime job count needed to reach the tier
	MinJobs int

	// Distribution is the rarity distribution active at this tier
	Distribution reward.Distribution
}

// Table is an ordered list of tiers with strictly increasing thresholds
type Table struct {
	tiers []Tier
}

// NewTable builds a table from tiers ordered by threshold. The first tier
// must start at zero so every count resolves, and thresholds must strictly
// increase. Ordinals are assigned from position.
func NewTable(tiers []Tier) (*Table, error) {
	if len(tiers) == 0 {
		return nil, ErrEmptyTable
	}
	if tiers[0].MinJobs != 0 {
		return nil, ErrUnorderedTiers
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].MinJobs <= tiers[i-1].MinJobs {
			return nil, ErrUnorderedTiers
		}
	}

	owned := make([]Tier, len(tiers))
	copy(owned, tiers)
	for i := range owned {
		owned[i].Ordinal = i
	}
	return &Table{tiers: owned}, nil
}

// TierFor returns the tier with the greatest threshold at or below the
// given lifetime job count. Counts below every threshold get the lowest tier.
func (t *Table) TierFor(totalJobs int) Tier {
	current := t.tiers[0]
	for _, tier := range t.tiers {
		if totalJobs >= tier.MinJobs {
			current = tier
		}
	}
	return current
}

// Next returns the tier after the given one, or false at the top
func (t *Table) Next(tier Tier) (Tier, bool) {
	if tier.Ordinal+1 < len(t.tiers) {
		return t.tiers[tier.Ordinal+1], true
	}
	return Tier{}, false
}

// Tiers returns the ordered tier list
func (t *Table) Tiers() []Tier {
	return t.tiers
}

// DefaultTable is the shipped ladder. Rarity weights shift toward the high
// end as users put in more jobs; the entry tier mirrors the classic odds.
func DefaultTable() *Table {
	return &Table{tiers: []Tier{
		{
			Ordinal: 0, Name: "Odd-Jobber", MinJobs: 0,
			Distribution: reward.Distribution{
				reward.ClassCommon:    55,
				reward.ClassUncommon:  25,
				reward.ClassRare:      12,
				reward.ClassEpic:      6,
				reward.ClassLegendary: 2,
				reward.ClassSecret:    0.1,
			},
		},
		{
			Ordinal: 1, Name: "Go-Getter", MinJobs: 250,
			Distribution: reward.Distribution{
				reward.ClassCommon:    48,
				reward.ClassUncommon:  27,
				reward.ClassRare:      15,
				reward.ClassEpic:      7,
				reward.ClassLegendary: 2.8,
				reward.ClassSecret:    0.2,
			},
		},
		{
			Ordinal: 2, Name: "Hustler", MinJobs: 1000,
			Distribution: reward.Distribution{
				reward.ClassCommon:    40,
				reward.ClassUncommon:  28,
				reward.ClassRare:      18,
				reward.ClassEpic:      9,
				reward.ClassLegendary: 4.5,
				reward.ClassSecret:    0.5,
			},
		},
		{
			Ordinal: 3, Name: "Operator", MinJobs: 5000,
			Distribution: reward.Distribution{
				reward.ClassCommon:    32,
				reward.ClassUncommon:  28,
				reward.ClassRare:      21,
				reward.ClassEpic:      12,
				reward.ClassLegendary: 6,
				reward.ClassSecret:    1,
			},
		},
		{
			Ordinal: 4, Name: "Mogul", MinJobs: 20000,
			Distribution: reward.Distribution{
				reward.ClassCommon:    25,
				reward.ClassUncommon:  26,
				reward.ClassRare:      23,
				reward.ClassEpic:      15,
				reward.ClassLegendary: 9,
				reward.ClassSecret:    2,
			},
		},
	}}
}
