// Package reward turns a work action into a rarity class, a flavor label,
// and a payout. All rolls are pure functions over an Odds value and a
// random source; callers own persistence of the results.
package reward

import (
	"github.com/hustlebot/hustle/internal/common/money"
	"github.com/hustlebot/hustle/internal/rng"
)

// RollSpecial tries the special event gate. It returns nil when no special
// lands, which is the overwhelmingly common case.
func RollSpecial(odds Odds, src rng.Source) *SpecialOutcome {
	if src.Float64() > odds.SpecialChance {
		return nil
	}

	job := specialJobs[src.Intn(len(specialJobs))]

	// Secondary per-definition gates
	if job.UsesRareGate {
		oneIn := odds.RareGateOneIn
		if oneIn < 1 {
			oneIn = 1
		}
		if src.Intn(oneIn) != 0 {
			return nil
		}
	} else if job.PassChance > 0 && src.Float64() > job.PassChance {
		return nil
	}

	return &SpecialOutcome{
		Name:   job.Name,
		Flavor: job.Flavor,
		Payout: money.Round2(src.Uniform(job.Payout.Min, job.Payout.Max)),
	}
}

// RollJob performs the weighted rarity roll against a distribution. A
// distribution with no positive weight falls back to all-common.
func RollJob(dist Distribution, src rng.Source) JobOutcome {
	total := dist.Total()
	if total <= 0 {
		dist = Distribution{ClassCommon: 100}
		total = 100
	}

	pick := src.Uniform(0, total)
	chosen := ClassCommon
	cum := 0.0
	for _, c := range RarityOrder {
		w := dist[c]
		if w <= 0 {
			continue
		}
		cum += w
		if pick < cum {
			chosen = c
			break
		}
	}

	jc := jobTable[chosen]
	return JobOutcome{
		Class:  chosen,
		Label:  jc.Labels[src.Intn(len(jc.Labels))],
		Payout: money.Round2(src.Uniform(jc.Payout.Min, jc.Payout.Max)),
	}
}

// RollTip tries for a tip multiplier. Returns nil when no tip lands.
func RollTip(odds Odds, src rng.Source) *Tip {
	if src.Float64() > odds.TipChance {
		return nil
	}

	total := 0.0
	for _, t := range tipTiers {
		total += t.Weight
	}

	pick := src.Uniform(0, total)
	chosen := tipTiers[len(tipTiers)-1]
	cum := 0.0
	for _, t := range tipTiers {
		cum += t.Weight
		if pick < cum {
			chosen = t
			break
		}
	}

	return &Tip{
		Name:   chosen.Name,
		Emoji:  chosen.Emoji,
		Flavor: chosen.Flavor,
		Mult:   money.Round2(src.Uniform(chosen.Mult.Min, chosen.Mult.Max)),
	}
}
