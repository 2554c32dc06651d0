package engine

type Sport string

const (
	SportNBA    Sport = "NBA"
	SportSoccer Sport = "SOCCER"
	SportTennis Sport = "TENNIS"
	SportNFL    Sport = "NFL"
	SportNHL    Sport = "NHL"
	SportMLB    Sport = "MLB"
	SportOther  Sport = "OTHER"
)

type Side string

const (
	SideMore Side = "MORE"
	SideLess Side = "LESS"
	SidePass Side = "PASS"
)

type Grade string

const (
	GradeFade   Grade = "FADE"
	GradeOK     Grade = "OK"
	GradeStrong Grade = "STRONG"
	GradeElite  Grade = "ELITE"
)

// Prop is a single bettable proposition. Last5 is either exactly 5 recent
// samples or nil (unknown).
type Prop struct {
	ID       string    `json:"prop_id"`
	Sport    Sport     `json:"sport"`
	Player   string    `json:"player"`
	Market   string    `json:"market"`
	Line     float64   `json:"line"`
	AltLine  *float64  `json:"alt_line,omitempty"`
	Last5    []float64 `json:"last5,omitempty"`
	IsGoblin bool      `json:"is_goblin"`
	IsDemon  bool      `json:"is_demon"`
	Team     string    `json:"team,omitempty"`
	Opponent string    `json:"opponent,omitempty"`
	GameTime string    `json:"game_time,omitempty"`
}

// EffectiveLine is the line the engine scores against: the alternate line when
// one is selected, the main line otherwise.
func (p Prop) EffectiveLine() float64 {
	if p.AltLine != nil {
		return *p.AltLine
	}
	return p.Line
}

// ScoredProp is a Prop plus everything scoring derives from it. It is
// recomputed on every pass and never persisted on its own.
type ScoredProp struct {
	Prop
	Pick     Side     `json:"pick"`
	HitsMore int      `json:"hits_more"`
	HitsLess int      `json:"hits_less"`
	Avg      *float64 `json:"avg,omitempty"`
	Score    float64  `json:"score"`
	Grade    Grade    `json:"grade"`
	Why      string   `json:"why"`
}

// Leg is one prop's snapshot inside a built slip.
type Leg struct {
	Player string    `json:"player"`
	Sport  Sport     `json:"sport"`
	Market string    `json:"market"`
	Line   float64   `json:"line"`
	Pick   Side      `json:"pick"`
	Score  float64   `json:"score"`
	Grade  Grade     `json:"grade"`
	Last5  []float64 `json:"last5,omitempty"`
}

// Slip is an immutable recommended parlay. Leg count always equals the pick
// count encoded in SlipType.
type Slip struct {
	SlipType string  `json:"slip_type"`
	Legs     []Leg   `json:"legs"`
	Stake    float64 `json:"stake"`
}

// Gate is the risk policy derived purely from the bankroll band. Never
// persisted; resolved fresh on every decision.
type Gate struct {
	MaxSlipsPerDay int     `json:"max_slips_per_day"`
	AllowedSizes   []int   `json:"allowed_sizes"`
	StakePerSlip   float64 `json:"stake_per_slip"`
	MaxDailyRisk   float64 `json:"max_daily_risk"`
	Allow4Pick     bool    `json:"allow_4_pick"`
	Allow6Pick     bool    `json:"allow_6_pick"`
}

const (
	ActionPlay = "PLAY"
	ActionSkip = "SKIP"
)

// Decision is the engine's final answer for one board.
type Decision struct {
	Action  string `json:"action"`
	Reason  string `json:"reason"`
	Summary string `json:"summary,omitempty"`
	Slips   []Slip `json:"slips,omitempty"`
}
