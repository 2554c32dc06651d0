package board

import "slipdesk/internal/engine"

// AddPropInput is a manual board entry. Last5Raw is the pasted free-text
// "13 14 16 9 9" field; it degrades to unknown when it does not parse.
type AddPropInput struct {
	Sport    engine.Sport `json:"sport"`
	Player   string       `json:"player"`
	Market   string       `json:"market"`
	Line     float64      `json:"line"`
	AltLine  *float64     `json:"alt_line,omitempty"`
	Last5Raw string       `json:"last5"`
	IsGoblin bool         `json:"is_goblin"`
	IsDemon  bool         `json:"is_demon"`
	Team     string       `json:"team,omitempty"`
	Opponent string       `json:"opponent,omitempty"`
	GameTime string       `json:"game_time,omitempty"`
}

// Snapshot is the downloadable board backup.
type Snapshot struct {
	SavedAt  string        `json:"saved_at"`
	Bankroll float64       `json:"bankroll"`
	Board    []engine.Prop `json:"board"`
}

// DefaultMarkets is the manual-entry market list, volume categories first.
var DefaultMarkets = []string{
	"Points", "Rebounds", "Assists", "PRA", "3PT Made",
	"Passes Attempted", "Shots", "Goals", "Saves", "Aces",
	"Minutes", "Fantasy Score",
}
