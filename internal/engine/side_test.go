package engine

import "testing"

func TestDecideSideMoreWins(t *testing.T) {
	side, more, less := DecideSide([]float64{13, 14, 16, 9, 9}, 10.5)
	if side != SideMore || more != 3 || less != 2 {
		t.Fatalf("expected MORE 3/2, got %s %d/%d", side, more, less)
	}
}

func TestDecideSideLessWins(t *testing.T) {
	side, more, less := DecideSide([]float64{4, 5, 6, 20, 3}, 10.5)
	if side != SideLess || more != 1 || less != 4 {
		t.Fatalf("expected LESS 1/4, got %s %d/%d", side, more, less)
	}
}

func TestDecideSideTieBreaksOnMean(t *testing.T) {
	// 2 over, 2 under, 1 push; mean 10.2 >= 10 so MORE.
	side, _, _ := DecideSide([]float64{12, 11, 9, 9, 10}, 10)
	if side != SideMore {
		t.Fatalf("expected MORE on mean tie-break, got %s", side)
	}
	// Mean below the line breaks to LESS.
	side, _, _ = DecideSide([]float64{12, 11, 5, 5, 10}, 10)
	if side != SideLess {
		t.Fatalf("expected LESS on mean tie-break, got %s", side)
	}
}

func TestDecideSideAllPushesNeverPass(t *testing.T) {
	side, more, less := DecideSide([]float64{10, 10, 10, 10, 10}, 10)
	if side == SidePass || more != 0 || less != 0 {
		t.Fatalf("expected decided side with 0/0 counts, got %s %d/%d", side, more, less)
	}
	if side != SideMore {
		t.Fatalf("mean equals line, expected MORE, got %s", side)
	}
}

func TestDecideSideInvalidInputs(t *testing.T) {
	if side, more, less := DecideSide(nil, 10.5); side != SidePass || more != 0 || less != 0 {
		t.Fatalf("expected PASS 0/0 for missing samples, got %s %d/%d", side, more, less)
	}
	if side, _, _ := DecideSide([]float64{1, 2, 3}, 10.5); side != SidePass {
		t.Fatalf("expected PASS for short sample list, got %s", side)
	}
	if side, _, _ := DecideSide([]float64{1, 2, 3, 4, 5}, 0); side != SidePass {
		t.Fatalf("expected PASS for invalid line, got %s", side)
	}
}
