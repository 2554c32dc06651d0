package engine

// Bankroll bands and their gates are locked. Stakes are the venue's $5
// minimum across every band; only slip count and allowed sizes widen.
const minStake = 5.0

// ResolveGate maps a bankroll to its locked risk policy. Bankroll <= 0 is not
// a band; Recommend short-circuits to SKIP before resolving.
func ResolveGate(bankroll float64) Gate {
	switch {
	case bankroll < 50:
		return Gate{
			MaxSlipsPerDay: 1,
			AllowedSizes:   []int{2},
			StakePerSlip:   minStake,
			MaxDailyRisk:   minStake,
		}
	case bankroll < 85:
		return Gate{
			MaxSlipsPerDay: 1,
			AllowedSizes:   []int{3, 2},
			StakePerSlip:   minStake,
			MaxDailyRisk:   minStake,
		}
	case bankroll < 150:
		return Gate{
			MaxSlipsPerDay: 2,
			AllowedSizes:   []int{3, 2},
			StakePerSlip:   minStake,
			MaxDailyRisk:   2 * minStake,
			Allow4Pick:     true,
		}
	default:
		return Gate{
			MaxSlipsPerDay: 2,
			AllowedSizes:   []int{3, 4, 5, 2},
			StakePerSlip:   minStake,
			MaxDailyRisk:   2 * minStake,
			Allow4Pick:     true,
			Allow6Pick:     true,
		}
	}
}
