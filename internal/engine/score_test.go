package engine

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreKnownBoard(t *testing.T) {
	// 3/5 over, mean 12.2 vs line 10.5: 50 + 24 + 10.2 = 84.2, ELITE.
	p := Prop{Sport: SportNBA, Player: "A. Sengun", Market: "Points", Line: 10.5, Last5: []float64{13, 14, 16, 9, 9}}
	sp := Score(p, true)
	if sp.Pick != SideMore || sp.HitsMore != 3 || sp.HitsLess != 2 {
		t.Fatalf("expected MORE 3/2, got %s %d/%d", sp.Pick, sp.HitsMore, sp.HitsLess)
	}
	if !almostEqual(sp.Score, 84.2) {
		t.Fatalf("expected score 84.2, got %v", sp.Score)
	}
	if sp.Grade != GradeElite {
		t.Fatalf("expected ELITE, got %s", sp.Grade)
	}
	if sp.Avg == nil || !almostEqual(*sp.Avg, 12.2) {
		t.Fatalf("expected avg 12.2, got %v", sp.Avg)
	}
}

func TestScoreUnknownDataFloors(t *testing.T) {
	for _, p := range []Prop{
		{Market: "Points", Line: 22.5},
		{Market: "Points", Line: 22.5, Last5: []float64{1, 2, 3}},
		{Market: "Points", Line: 0, Last5: []float64{1, 2, 3, 4, 5}},
		{Market: "Points", Line: -3, Last5: []float64{1, 2, 3, 4, 5}, IsGoblin: true},
	} {
		sp := Score(p, true)
		if sp.Score != 0 || sp.Grade != GradeFade || sp.Pick != SidePass {
			t.Fatalf("expected 0/FADE/PASS floor for %+v, got %v/%s/%s", p, sp.Score, sp.Grade, sp.Pick)
		}
	}
}

func TestScoreGoblinAndDemonAdjustments(t *testing.T) {
	base := Prop{Market: "Points", Line: 10.5, Last5: []float64{13, 14, 16, 9, 9}}
	plain := Score(base, true).Score

	goblin := base
	goblin.IsGoblin = true
	if got := Score(goblin, true).Score; !almostEqual(got, plain+6) {
		t.Fatalf("expected goblin +6 (%v), got %v", plain+6, got)
	}

	demon := base
	demon.IsDemon = true
	// The demon penalty applies whether or not demons are blocked; blocking
	// removes the prop upstream instead.
	for _, blocked := range []bool{true, false} {
		if got := Score(demon, blocked).Score; !almostEqual(got, plain-30) {
			t.Fatalf("expected demon -30 with blocked=%v, got %v", blocked, got)
		}
	}
}

func TestScoreMarketAdjustments(t *testing.T) {
	base := Prop{Market: "Points", Line: 10.5, Last5: []float64{13, 14, 16, 9, 9}}
	plain := Score(base, true).Score

	spiky := base
	spiky.Market = "3PT Made"
	if got := Score(spiky, true).Score; !almostEqual(got, plain-4) {
		t.Fatalf("expected spiky market -4, got %v vs %v", got, plain)
	}

	volume := base
	volume.Market = "Rebounds"
	if got := Score(volume, true).Score; !almostEqual(got, plain+2) {
		t.Fatalf("expected volume market +2, got %v vs %v", got, plain)
	}
}

func TestScoreClampHolds(t *testing.T) {
	// Everything stacked upward: 50 + 40 + 18 + 6 + 2 would be 116.
	high := Prop{Market: "Rebounds", Line: 5, Last5: []float64{20, 21, 22, 23, 24}, IsGoblin: true}
	if got := Score(high, true).Score; got != 100 {
		t.Fatalf("expected clamp at 100, got %v", got)
	}
	// Stacked downward: 0 hits beats the floor only via demon penalty.
	low := Prop{Market: "3PT Made", Line: 100, Last5: []float64{1, 1, 1, 1, 200}, IsDemon: true}
	sp := Score(low, true)
	if sp.Score < 0 || sp.Score > 100 {
		t.Fatalf("score out of range: %v", sp.Score)
	}
}

func TestScoreUsesAltLine(t *testing.T) {
	alt := 8.5
	p := Prop{Market: "Points", Line: 10.5, AltLine: &alt, Last5: []float64{13, 14, 16, 9, 9}}
	sp := Score(p, true)
	// 5/5 over 8.5, cushion capped at 18: 50 + 40 + 18 = 100 clamp... 108 -> 100.
	if sp.HitsMore != 5 {
		t.Fatalf("expected 5 hits against alt line, got %d", sp.HitsMore)
	}
	if sp.Score != 100 {
		t.Fatalf("expected clamped 100, got %v", sp.Score)
	}
}

func TestScoreIdempotent(t *testing.T) {
	p := Prop{Market: "Assists", Line: 7.5, Last5: []float64{8, 9, 6, 7, 10}, IsGoblin: true}
	a := Score(p, true)
	b := Score(p, true)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("scoring is not idempotent: %+v vs %+v", a, b)
	}
}
