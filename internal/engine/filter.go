package engine

import (
	"sort"
	"strings"
)

// FilterEligible drops props that fail hard policy constraints: sport outside
// the allow-list (empty list allows all), demons while blocked, and anything
// scoring left as PASS. Relative order is preserved.
func FilterEligible(scored []ScoredProp, sportsAllowed []Sport, demonsBlocked bool) []ScoredProp {
	allowed := map[string]bool{}
	for _, s := range sportsAllowed {
		allowed[strings.ToUpper(string(s))] = true
	}
	out := make([]ScoredProp, 0, len(scored))
	for _, sp := range scored {
		if len(allowed) > 0 && !allowed[strings.ToUpper(string(sp.Sport))] {
			continue
		}
		if demonsBlocked && sp.IsDemon {
			continue
		}
		if sp.Pick == SidePass {
			continue
		}
		out = append(out, sp)
	}
	return out
}

// RankByScore sorts descending by score. The sort is stable so equal scores
// keep their board order.
func RankByScore(scored []ScoredProp) []ScoredProp {
	ranked := make([]ScoredProp, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
