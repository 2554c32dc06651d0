package store

import (
	"context"
)

func (s *Store) InsertSlip(ctx context.Context, row SlipRow) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO slips
		(slip_id, created_at, bankroll, aggression, stake, slip_type, action, reason, result, payout, notes, legs_json)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		row.SlipID, row.CreatedAt, row.Bankroll, row.Aggression, row.Stake,
		row.SlipType, row.Action, row.Reason, row.Result, row.Payout, row.Notes, row.LegsJSON)
	return err
}

func (s *Store) InsertPropLeg(ctx context.Context, row PropLegRow) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO prop_legs
		(prop_id, slip_id, created_at, player, market, side, line, score, result)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		row.PropID, row.SlipID, row.CreatedAt, row.Player, row.Market,
		row.Side, row.Line, row.Score, row.Result)
	return err
}

// UpdateSlipResult updates a saved slip by id. ErrNotFound when no row
// matches; the caller shows it, never swallows it.
func (s *Store) UpdateSlipResult(ctx context.Context, slipID, result, payout, notes string) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE slips SET result = $1, payout = $2, notes = $3 WHERE slip_id = $4`,
		result, payout, notes, slipID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePropResult(ctx context.Context, propID, result string) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE prop_legs SET result = $1 WHERE prop_id = $2`, result, propID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListSlips(ctx context.Context) ([]SlipRow, error) {
	rows, err := s.Pool.Query(ctx, `SELECT slip_id, created_at, bankroll, aggression, stake, slip_type,
		action, reason, result, payout, notes, legs_json
		FROM slips ORDER BY created_at DESC, slip_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []SlipRow{}
	for rows.Next() {
		var r SlipRow
		if err := rows.Scan(&r.SlipID, &r.CreatedAt, &r.Bankroll, &r.Aggression, &r.Stake,
			&r.SlipType, &r.Action, &r.Reason, &r.Result, &r.Payout, &r.Notes, &r.LegsJSON); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) ListPropLegs(ctx context.Context) ([]PropLegRow, error) {
	rows, err := s.Pool.Query(ctx, `SELECT prop_id, slip_id, created_at, player, market, side, line, score, result
		FROM prop_legs ORDER BY created_at DESC, prop_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []PropLegRow{}
	for rows.Next() {
		var r PropLegRow
		if err := rows.Scan(&r.PropID, &r.SlipID, &r.CreatedAt, &r.Player, &r.Market,
			&r.Side, &r.Line, &r.Score, &r.Result); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ResetAll wipes both history tables. Day-1 reset only, behind the admin key.
func (s *Store) ResetAll(ctx context.Context) error {
	if _, err := s.Pool.Exec(ctx, `DELETE FROM prop_legs`); err != nil {
		return err
	}
	_, err := s.Pool.Exec(ctx, `DELETE FROM slips`)
	return err
}
