package engine

import "fmt"

// BuildSlip assembles a slip from the top n of an already-ranked list. The
// caller must have verified len(ranked) >= n; violating that is a bug, so it
// panics instead of truncating silently.
func BuildSlip(ranked []ScoredProp, n int, slipType string, stake float64) Slip {
	if len(ranked) < n {
		panic(fmt.Sprintf("engine: BuildSlip wants %d legs from %d props", n, len(ranked)))
	}
	legs := make([]Leg, 0, n)
	for _, sp := range ranked[:n] {
		legs = append(legs, Leg{
			Player: sp.Player,
			Sport:  sp.Sport,
			Market: sp.Market,
			Line:   sp.EffectiveLine(),
			Pick:   sp.Pick,
			Score:  sp.Score,
			Grade:  sp.Grade,
			Last5:  sp.Last5,
		})
	}
	return Slip{SlipType: slipType, Legs: legs, Stake: stake}
}

func slipLabel(n int) string {
	return fmt.Sprintf("%d-PICK FLEX", n)
}
