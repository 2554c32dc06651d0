package engine

import (
	"fmt"
	"math"
	"strings"
)

const (
	baseScore        = 50.0
	perHitBonus      = 8.0
	cushionPerUnit   = 6.0
	cushionCap       = 18.0
	goblinBonus      = 6.0
	demonPenalty     = 30.0
	spikyMarketMalus = 4.0
	volumeMarketBump = 2.0
)

// spikyMarkets are low-frequency, high-variance stat categories.
var spikyMarkets = []string{"goals", "3pt", "3-pt", "3 pt", "threes", "steals", "blocks", "aces"}

// volumeMarkets are high-volume categories that settle close to their average.
var volumeMarkets = []string{"rebounds", "passes attempted", "minutes", "assists", "pra", "pts+reb+ast", "fantasy"}

func gradeFor(score float64) Grade {
	switch {
	case score >= 78:
		return GradeElite
	case score >= 70:
		return GradeStrong
	case score >= 62:
		return GradeOK
	}
	return GradeFade
}

// Score turns a Prop into a ScoredProp. Props with an invalid line or without
// exactly 5 samples floor at score 0 / FADE / PASS and can never be
// recommended. demonsBlocked does not change the demon penalty; blocking
// happens upstream in FilterEligible.
func Score(p Prop, demonsBlocked bool) ScoredProp {
	line := p.EffectiveLine()
	sp := ScoredProp{Prop: p, Pick: SidePass, Grade: GradeFade}

	if line <= 0 || len(p.Last5) != 5 {
		sp.Why = "no recent data or invalid line"
		return sp
	}

	side, hitsMore, hitsLess := DecideSide(p.Last5, line)
	avg := mean(p.Last5)
	sp.Pick = side
	sp.HitsMore = hitsMore
	sp.HitsLess = hitsLess
	sp.Avg = &avg

	hits := hitsMore
	if side == SideLess {
		hits = hitsLess
	}

	score := baseScore + perHitBonus*float64(hits)
	notes := []string{fmt.Sprintf("%s %d/5 hit, avg %.1f vs line %.1f", side, hits, avg, line)}

	cushion := math.Min(cushionPerUnit*math.Abs(avg-line), cushionCap)
	if cushion > 0 {
		score += cushion
		notes = append(notes, fmt.Sprintf("cushion +%.1f", cushion))
	}
	if p.IsGoblin {
		score += goblinBonus
		notes = append(notes, "goblin +6")
	}
	if p.IsDemon {
		score -= demonPenalty
		notes = append(notes, "demon -30")
	}
	market := strings.ToLower(p.Market)
	if containsAny(market, spikyMarkets) {
		score -= spikyMarketMalus
		notes = append(notes, "spiky market -4")
	}
	if containsAny(market, volumeMarkets) {
		score += volumeMarketBump
		notes = append(notes, "volume market +2")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	sp.Score = score
	sp.Grade = gradeFor(score)
	sp.Why = strings.Join(notes, ", ")
	return sp
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
