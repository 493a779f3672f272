// Package money holds the couple of helpers the economy uses for dollar
// amounts: cent rounding and display formatting.
package money

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds a dollar amount to cents
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Format renders a dollar amount as "$1,234.56"
func Format(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	whole, cents := parts[0], parts[1]

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}

	out := fmt.Sprintf("$%s.%s", b.String(), cents)
	if neg {
		return "-" + out
	}
	return out
}
