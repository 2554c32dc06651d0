package engine

import "fmt"

// eliteMin holds the per-size score floors for an elite board. Size 2 and 3
// additionally have their own shape (see IsElite).
var eliteMin = map[int]float64{4: 78, 5: 80, 6: 82}

// IsElite reports whether the top n of an already-ranked list clear the locked
// elite thresholds for that slip size. Fewer than n props is never elite.
func IsElite(ranked []ScoredProp, n int) bool {
	if len(ranked) < n {
		return false
	}
	top := ranked[:n]
	switch n {
	case 2:
		return top[0].Score >= 74 && top[1].Score >= 70
	case 3:
		anyElite := false
		for _, sp := range top {
			if sp.Score < 70 {
				return false
			}
			if sp.Score >= 78 {
				anyElite = true
			}
		}
		return anyElite
	case 4, 5, 6:
		floor := eliteMin[n]
		for _, sp := range top {
			if sp.Score < floor {
				return false
			}
		}
		return true
	}
	return false
}

// Recommend is the locked PLAY/SKIP decision over a scored board. It is a
// pure function: same inputs, same decision, leg for leg.
func Recommend(scored []ScoredProp, bankroll float64, demonsBlocked bool, slipsAlreadySaved int) Decision {
	if bankroll <= 0 {
		return Decision{Action: ActionSkip, Reason: "bankroll is zero"}
	}
	gate := ResolveGate(bankroll)
	if slipsAlreadySaved >= gate.MaxSlipsPerDay {
		return Decision{Action: ActionSkip, Reason: "daily slip limit reached"}
	}

	eligible := RankByScore(FilterEligible(scored, nil, demonsBlocked))
	if len(eligible) < 2 {
		return Decision{Action: ActionSkip, Reason: "not enough eligible props"}
	}

	// Primary size by band. Under $50 a 2-pick is the default and 3 is a
	// promotion; every other band requires an elite board or skips.
	var size int
	var reason string
	if bankroll < 50 {
		size = 2
		reason = "default 2-pick"
		if IsElite(eligible, 3) {
			size = 3
			reason = "promoted to 3-pick, top-3 elite"
		}
	} else {
		switch {
		case IsElite(eligible, 3):
			size = 3
			reason = "top-3 elite"
		case IsElite(eligible, 2):
			size = 2
			reason = "fallback 2-pick, top-2 elite"
		default:
			return Decision{Action: ActionSkip, Reason: "board not strong enough"}
		}
	}

	slips := []Slip{BuildSlip(eligible, size, slipLabel(size), gate.StakePerSlip)}

	// The insane-board 6-pick outranks an ordinary second slip. It is judged
	// on the full ranked list, not the post-primary remainder, and counts as
	// slip #2.
	if gate.Allow6Pick && bankroll >= 150 && gate.MaxSlipsPerDay >= 2 &&
		len(slips) == 1 && IsElite(eligible, 6) {
		slips = append(slips, BuildSlip(eligible, 6, "6-PICK FLEX (BONUS)", gate.StakePerSlip))
		reason += "; bonus 6-pick, top-6 elite"
	} else if gate.MaxSlipsPerDay >= 2 && slipsAlreadySaved == 0 {
		remainder := eligible[size:]
		switch {
		case bankroll >= 85 && IsElite(remainder, 3):
			slips = append(slips, BuildSlip(remainder, 3, slipLabel(3), gate.StakePerSlip))
			reason += "; second 3-pick from remainder"
		case IsElite(remainder, 2):
			slips = append(slips, BuildSlip(remainder, 2, slipLabel(2), gate.StakePerSlip))
			reason += "; second 2-pick from remainder"
		}
	}

	// Hard daily-risk ceiling: drop later slips, never shrink stakes.
	total := 0.0
	for _, s := range slips {
		total += s.Stake
	}
	if total > gate.MaxDailyRisk {
		keep := int(gate.MaxDailyRisk / gate.StakePerSlip)
		slips = slips[:keep]
		total = 0.0
		for _, s := range slips {
			total += s.Stake
		}
	}

	summary := fmt.Sprintf("%d slip(s), total stake $%.2f, max %d slip(s)/day", len(slips), total, gate.MaxSlipsPerDay)
	return Decision{Action: ActionPlay, Reason: reason, Summary: summary, Slips: slips}
}
