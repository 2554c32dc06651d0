package board

import (
	"strings"
	"sync"
	"time"

	"slipdesk/internal/engine"
	"slipdesk/internal/store"
)

// Service owns the session state the engine deliberately does not: the
// current board of props and the count of slips saved today. The engine
// stays a pure function; this is the single writer that threads state
// through it.
type Service struct {
	mu         sync.Mutex
	props      []engine.Prop
	savedToday int

	sportsAllowed []engine.Sport
}

func NewService(sportsAllowed []string) *Service {
	allowed := make([]engine.Sport, 0, len(sportsAllowed))
	for _, s := range sportsAllowed {
		allowed = append(allowed, engine.Sport(strings.ToUpper(strings.TrimSpace(s))))
	}
	return &Service{sportsAllowed: allowed}
}

func (s *Service) Add(in AddPropInput) (engine.Prop, error) {
	if strings.TrimSpace(in.Player) == "" {
		return engine.Prop{}, ErrPlayerRequired
	}
	if in.Line == 0 {
		return engine.Prop{}, ErrLineRequired
	}
	p := engine.Prop{
		ID:       store.NewShortID(),
		Sport:    in.Sport,
		Player:   strings.TrimSpace(in.Player),
		Market:   in.Market,
		Line:     in.Line,
		AltLine:  in.AltLine,
		Last5:    engine.ParseLast5(in.Last5Raw),
		IsGoblin: in.IsGoblin,
		IsDemon:  in.IsDemon,
		Team:     in.Team,
		Opponent: in.Opponent,
		GameTime: in.GameTime,
	}
	s.mu.Lock()
	s.props = append(s.props, p)
	s.mu.Unlock()
	return p, nil
}

// AddExtracted bulk-adds vision-extracted props. Entries without a player or
// line are dropped rather than failing the whole batch; extraction output is
// noisy by contract.
func (s *Service) AddExtracted(props []engine.Prop) []engine.Prop {
	added := make([]engine.Prop, 0, len(props))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range props {
		if strings.TrimSpace(p.Player) == "" || p.Line == 0 {
			continue
		}
		p.ID = store.NewShortID()
		s.props = append(s.props, p)
		added = append(added, p)
	}
	return added
}

func (s *Service) List() []engine.Prop {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]engine.Prop, len(s.props))
	copy(out, s.props)
	return out
}

func (s *Service) Remove(propID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.props {
		if p.ID == propID {
			s.props = append(s.props[:i], s.props[i+1:]...)
			return nil
		}
	}
	return ErrPropNotFound
}

// Clear wipes the board and the daily counter together (the original's
// board-reset behavior).
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props = nil
	s.savedToday = 0
}

// ScoreBoard scores every prop and returns them ranked best first.
func (s *Service) ScoreBoard(demonsBlocked bool) []engine.ScoredProp {
	props := s.List()
	scored := make([]engine.ScoredProp, 0, len(props))
	for _, p := range props {
		scored = append(scored, engine.Score(p, demonsBlocked))
	}
	return engine.RankByScore(scored)
}

// Recommend runs the locked decision over the current board. The sports
// allow-list is applied here, before the engine's own eligibility pass.
func (s *Service) Recommend(bankroll float64, demonsBlocked bool) engine.Decision {
	props := s.List()
	scored := make([]engine.ScoredProp, 0, len(props))
	for _, p := range props {
		scored = append(scored, engine.Score(p, demonsBlocked))
	}
	scored = engine.FilterEligible(scored, s.sportsAllowed, false)
	return engine.Recommend(scored, bankroll, demonsBlocked, s.SlipsSavedToday())
}

func (s *Service) SlipsSavedToday() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savedToday
}

func (s *Service) MarkSaved(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedToday += n
}

func (s *Service) Export(bankroll float64) Snapshot {
	return Snapshot{
		SavedAt:  time.Now().UTC().Format(time.RFC3339),
		Bankroll: bankroll,
		Board:    s.List(),
	}
}
