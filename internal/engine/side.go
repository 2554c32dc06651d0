package engine

// DecideSide recommends a side from the recent samples against the line and
// returns it with the strict over/under counts. Without exactly 5 samples and
// a positive line it is PASS with zero counts. Ties (including 0-0 when every
// sample equals the line) break on the mean: mean >= line picks MORE. A valid
// 5-sample input therefore never yields PASS.
func DecideSide(last5 []float64, line float64) (Side, int, int) {
	if len(last5) != 5 || line <= 0 {
		return SidePass, 0, 0
	}
	more, less := 0, 0
	for _, v := range last5 {
		switch {
		case v > line:
			more++
		case v < line:
			less++
		}
	}
	switch {
	case more > less:
		return SideMore, more, less
	case less > more:
		return SideLess, more, less
	}
	if mean(last5) >= line {
		return SideMore, more, less
	}
	return SideLess, more, less
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
