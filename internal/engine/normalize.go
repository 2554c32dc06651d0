package engine

import (
	"strconv"
	"strings"
)

// ParseLast5 parses a free-text "last 5" field ("13 14 16 9 9", commas and
// pipes also accepted) into exactly 5 samples. Non-numeric tokens are dropped
// before the count check; anything that does not leave exactly 5 numbers
// yields nil. Parsing never fails loudly; nil means unknown.
func ParseLast5(raw string) []float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	cleaned := strings.NewReplacer(",", " ", "|", " ").Replace(raw)
	vals := make([]float64, 0, 5)
	for _, tok := range strings.Fields(cleaned) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) != 5 {
		return nil
	}
	return vals
}
