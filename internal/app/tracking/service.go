package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slipdesk/internal/engine"
	"slipdesk/internal/store"
)

// The locked aggression level; recorded on every saved slip.
const aggressionLocked = 1

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// SaveDecision persists every slip of a PLAY decision. Legs become
// independently trackable rows keyed <slip_id>-<index> (1-based).
func (s *Service) SaveDecision(ctx context.Context, d engine.Decision, bankroll float64) (*SaveResult, error) {
	if d.Action != engine.ActionPlay || len(d.Slips) == 0 {
		return nil, ErrNothingToSave
	}
	createdAt := time.Now().UTC().Format(time.RFC3339)
	out := &SaveResult{}
	for _, slip := range d.Slips {
		slipID := store.NewShortID()
		legsJSON, err := json.Marshal(slip.Legs)
		if err != nil {
			return nil, err
		}
		row := store.SlipRow{
			SlipID:     slipID,
			CreatedAt:  createdAt,
			Bankroll:   bankroll,
			Aggression: aggressionLocked,
			Stake:      slip.Stake,
			SlipType:   slip.SlipType,
			Action:     d.Action,
			Reason:     d.Reason,
			LegsJSON:   string(legsJSON),
		}
		if err := s.store.InsertSlip(ctx, row); err != nil {
			return nil, err
		}
		saved := SavedSlip{SlipID: slipID}
		for i, leg := range slip.Legs {
			legRow := store.PropLegRow{
				PropID:    fmt.Sprintf("%s-%d", slipID, i+1),
				SlipID:    slipID,
				CreatedAt: createdAt,
				Player:    leg.Player,
				Market:    leg.Market,
				Side:      string(leg.Pick),
				Line:      leg.Line,
				Score:     leg.Score,
			}
			if err := s.store.InsertPropLeg(ctx, legRow); err != nil {
				return nil, err
			}
			saved.PropIDs = append(saved.PropIDs, legRow.PropID)
		}
		out.Saved = append(out.Saved, saved)
	}
	return out, nil
}

func (s *Service) UpdateSlipResult(ctx context.Context, slipID, result, payout, notes string) error {
	if !validResult(result, store.SlipResults) {
		return ErrBadResult
	}
	return s.store.UpdateSlipResult(ctx, slipID, result, payout, notes)
}

func (s *Service) UpdatePropResult(ctx context.Context, propID, result string) error {
	if !validResult(result, store.LegResults) {
		return ErrBadResult
	}
	return s.store.UpdatePropResult(ctx, propID, result)
}

func (s *Service) History(ctx context.Context) (*HistoryResponse, error) {
	slips, err := s.store.ListSlips(ctx)
	if err != nil {
		return nil, err
	}
	legs, err := s.store.ListPropLegs(ctx)
	if err != nil {
		return nil, err
	}
	return &HistoryResponse{Slips: slips, Legs: legs}, nil
}

func (s *Service) ResetAll(ctx context.Context) error {
	return s.store.ResetAll(ctx)
}

func validResult(result string, allowed []string) bool {
	for _, a := range allowed {
		if result == a {
			return true
		}
	}
	return false
}
