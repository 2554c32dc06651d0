package tracking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"slipdesk/internal/engine"
	"slipdesk/internal/store"
	"slipdesk/internal/testutil"
)

func playDecision() engine.Decision {
	return engine.Decision{
		Action: engine.ActionPlay,
		Reason: "top-3 elite",
		Slips: []engine.Slip{
			{
				SlipType: "2-PICK FLEX",
				Stake:    5,
				Legs: []engine.Leg{
					{Player: "A", Sport: engine.SportNBA, Market: "Points", Line: 10.5, Pick: engine.SideMore, Score: 84.2, Grade: engine.GradeElite},
					{Player: "B", Sport: engine.SportNBA, Market: "Rebounds", Line: 8.5, Pick: engine.SideLess, Score: 75, Grade: engine.GradeStrong},
				},
			},
		},
	}
}

func TestSaveDecisionRejectsSkip(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.SaveDecision(context.Background(), engine.Decision{Action: engine.ActionSkip}, 20); !errors.Is(err, ErrNothingToSave) {
		t.Fatalf("expected ErrNothingToSave, got %v", err)
	}
}

func TestResultValidation(t *testing.T) {
	svc := NewService(nil)
	if err := svc.UpdateSlipResult(context.Background(), "x", "BOGUS", "", ""); !errors.Is(err, ErrBadResult) {
		t.Fatalf("expected ErrBadResult, got %v", err)
	}
	if err := svc.UpdatePropResult(context.Background(), "x-1", "MAYBE"); !errors.Is(err, ErrBadResult) {
		t.Fatalf("expected ErrBadResult, got %v", err)
	}
}

func TestSaveDecisionPersistsLegsWithDerivedIDs(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	svc := NewService(st)
	ctx := context.Background()

	res, err := svc.SaveDecision(ctx, playDecision(), 100)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(res.Saved) != 1 {
		t.Fatalf("expected 1 saved slip, got %+v", res)
	}
	saved := res.Saved[0]
	if len(saved.PropIDs) != 2 {
		t.Fatalf("expected 2 leg ids, got %+v", saved.PropIDs)
	}
	for i, id := range saved.PropIDs {
		want := saved.SlipID + "-" + string(rune('1'+i))
		if id != want {
			t.Fatalf("leg id = %q, want %q", id, want)
		}
	}

	hist, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist.Slips) != 1 || len(hist.Legs) != 2 {
		t.Fatalf("unexpected history: %d slips %d legs", len(hist.Slips), len(hist.Legs))
	}
	if hist.Slips[0].Aggression != 1 || hist.Slips[0].Action != "PLAY" {
		t.Fatalf("unexpected slip row: %+v", hist.Slips[0])
	}

	if err := svc.UpdatePropResult(ctx, saved.PropIDs[0], "WIN"); err != nil {
		t.Fatalf("update leg: %v", err)
	}
	if err := svc.UpdateSlipResult(ctx, saved.SlipID, "W", "17.50", ""); err != nil {
		t.Fatalf("update slip: %v", err)
	}
	if err := svc.UpdateSlipResult(ctx, "nope0000", "W", "", ""); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteCSVColumns(t *testing.T) {
	svc := NewService(nil)
	resp := &HistoryResponse{
		Slips: []store.SlipRow{{SlipID: "ab12cd34", CreatedAt: "2026-01-02T00:00:00Z", Bankroll: 100, Aggression: 1, Stake: 5, SlipType: "3-PICK FLEX", Action: "PLAY", LegsJSON: "[]"}},
		Legs:  []store.PropLegRow{{SlipID: "ab12cd34", PropID: "ab12cd34-1", CreatedAt: "2026-01-02T00:00:00Z", Player: "A", Market: "Points", Side: "MORE", Line: 10.5, Score: 84.2}},
	}

	var slipsOut strings.Builder
	if err := svc.WriteSlipsCSV(&slipsOut, resp); err != nil {
		t.Fatalf("slips csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(slipsOut.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "slip_id,created_at,bankroll") {
		t.Fatalf("unexpected slips csv:\n%s", slipsOut.String())
	}

	var legsOut strings.Builder
	if err := svc.WriteLegsCSV(&legsOut, resp); err != nil {
		t.Fatalf("legs csv: %v", err)
	}
	if !strings.Contains(legsOut.String(), "ab12cd34-1") {
		t.Fatalf("legs csv missing leg row:\n%s", legsOut.String())
	}
}
