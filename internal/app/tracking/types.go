package tracking

import "slipdesk/internal/store"

// SavedSlip reports what one persisted slip was assigned.
type SavedSlip struct {
	SlipID  string   `json:"slip_id"`
	PropIDs []string `json:"prop_ids"`
}

type SaveResult struct {
	Saved []SavedSlip `json:"saved"`
}

type HistoryResponse struct {
	Slips []store.SlipRow    `json:"slips"`
	Legs  []store.PropLegRow `json:"legs"`
}
