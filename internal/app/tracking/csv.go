package tracking

import (
	"encoding/csv"
	"io"
	"strconv"
)

var slipColumns = []string{
	"slip_id", "created_at", "bankroll", "aggression", "stake", "slip_type",
	"action", "reason", "result", "payout", "notes", "legs_json",
}

var legColumns = []string{
	"slip_id", "prop_id", "created_at", "player", "market", "side", "line", "score", "result",
}

// WriteSlipsCSV renders slip history as CSV for the backup download.
func (s *Service) WriteSlipsCSV(w io.Writer, resp *HistoryResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(slipColumns); err != nil {
		return err
	}
	for _, r := range resp.Slips {
		rec := []string{
			r.SlipID, r.CreatedAt,
			strconv.FormatFloat(r.Bankroll, 'f', 2, 64),
			strconv.Itoa(r.Aggression),
			strconv.FormatFloat(r.Stake, 'f', 2, 64),
			r.SlipType, r.Action, r.Reason, r.Result, r.Payout, r.Notes, r.LegsJSON,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLegsCSV renders prop-leg history as CSV.
func (s *Service) WriteLegsCSV(w io.Writer, resp *HistoryResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(legColumns); err != nil {
		return err
	}
	for _, r := range resp.Legs {
		rec := []string{
			r.SlipID, r.PropID, r.CreatedAt, r.Player, r.Market, r.Side,
			strconv.FormatFloat(r.Line, 'f', 2, 64),
			strconv.FormatFloat(r.Score, 'f', 2, 64),
			r.Result,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
