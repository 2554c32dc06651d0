package store

// SlipRow mirrors the slips table: one saved recommendation slip.
type SlipRow struct {
	SlipID     string  `json:"slip_id"`
	CreatedAt  string  `json:"created_at"`
	Bankroll   float64 `json:"bankroll"`
	Aggression int     `json:"aggression"`
	Stake      float64 `json:"stake"`
	SlipType   string  `json:"slip_type"`
	Action     string  `json:"action"`
	Reason     string  `json:"reason"`
	Result     string  `json:"result"`
	Payout     string  `json:"payout"`
	Notes      string  `json:"notes"`
	LegsJSON   string  `json:"legs_json"`
}

// PropLegRow mirrors the prop_legs table: one independently trackable leg,
// keyed <slip_id>-<index>.
type PropLegRow struct {
	PropID    string  `json:"prop_id"`
	SlipID    string  `json:"slip_id"`
	CreatedAt string  `json:"created_at"`
	Player    string  `json:"player"`
	Market    string  `json:"market"`
	Side      string  `json:"side"`
	Line      float64 `json:"line"`
	Score     float64 `json:"score"`
	Result    string  `json:"result"`
}

// Slip results: '' (open), W, L, PARTIAL. Leg results: '' (open), WIN, LOSS,
// PUSH, DNP.
var (
	SlipResults = []string{"", "W", "L", "PARTIAL"}
	LegResults  = []string{"", "WIN", "LOSS", "PUSH", "DNP"}
)
