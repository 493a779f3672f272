// Package roulette models an American double-zero wheel: the 38-slot
// outcome space, the bet vocabulary, and the payout rules.
package roulette

import (
	"strconv"

	"github.com/hustlebot/hustle/internal/rng"
)

// Color is the color partition of the wheel
type Color string

const (
	ColorRed   Color = "red"
	ColorBlack Color = "black"
	ColorGreen Color = "green"
)

// Slots on the wheel: 0-36 plus the double zero
const (
	SlotCount      = 38
	DoubleZeroSlot = 37
)

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Outcome is one drawn wheel result
type Outcome struct {
	// Slot is the display label: "0".."36" or "00"
	Slot string

	// Number is the numeric value; 0 for both zero pockets
	Number int

	// DoubleZero marks the "00" pocket
	DoubleZero bool

	// Color is derived from the fixed wheel partition
	Color Color
}

// Zero reports whether the outcome is either zero pocket
func (o Outcome) Zero() bool {
	return o.Number == 0
}

// OutcomeForSlot maps a slot index in [0, SlotCount) to its outcome
func OutcomeForSlot(slot int) Outcome {
	if slot == DoubleZeroSlot {
		return Outcome{Slot: "00", Number: 0, DoubleZero: true, Color: ColorGreen}
	}

	out := Outcome{Slot: strconv.Itoa(slot), Number: slot}
	switch {
	case slot == 0:
		out.Color = ColorGreen
	case redNumbers[slot]:
		out.Color = ColorRed
	default:
		out.Color = ColorBlack
	}
	return out
}

// Spin draws one outcome uniformly from the full wheel
func Spin(src rng.Source) Outcome {
	return OutcomeForSlot(src.Intn(SlotCount))
}
