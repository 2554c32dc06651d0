package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"slipdesk/internal/app/board"
	"slipdesk/internal/app/tracking"
	"slipdesk/internal/store"

	"github.com/go-chi/chi/v5"
)

type SlipHandlers struct {
	board    *board.Service
	tracking *tracking.Service
}

func NewSlipHandlers(b *board.Service, t *tracking.Service) *SlipHandlers {
	return &SlipHandlers{board: b, tracking: t}
}

type recommendRequest struct {
	Bankroll      float64 `json:"bankroll"`
	DemonsBlocked *bool   `json:"demons_blocked,omitempty"`
}

func (req recommendRequest) demonsBlocked() bool {
	if req.DemonsBlocked == nil {
		return true
	}
	return *req.DemonsBlocked
}

func (h *SlipHandlers) Recommend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body recommendRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.Bankroll < 0 {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		metricRecommendTotal.Add(1)
		decision := h.board.Recommend(body.Bankroll, body.demonsBlocked())
		_ = json.NewEncoder(w).Encode(decision)
	}
}

// SaveSlips recomputes the decision for the posted bankroll and persists its
// slips. The decision is deterministic for a fixed board, so the recompute
// saves exactly what the client was last shown.
func (h *SlipHandlers) SaveSlips() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body recommendRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.Bankroll < 0 {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		decision := h.board.Recommend(body.Bankroll, body.demonsBlocked())
		result, err := h.tracking.SaveDecision(r.Context(), decision, body.Bankroll)
		if err != nil {
			if errors.Is(err, tracking.ErrNothingToSave) {
				WriteHTTPError(w, http.StatusConflict, "nothing_to_save")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		h.board.MarkSaved(len(result.Saved))
		metricSlipsSaved.Add(int64(len(result.Saved)))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":          true,
			"saved":       result.Saved,
			"decision":    decision,
			"saved_today": h.board.SlipsSavedToday(),
		})
	}
}

func (h *SlipHandlers) HistorySlips() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.tracking.History(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": resp.Slips})
	}
}

func (h *SlipHandlers) HistoryProps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.tracking.History(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": resp.Legs})
	}
}

func (h *SlipHandlers) SlipResult() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slipID := chi.URLParam(r, "slip_id")
		var body struct {
			Result string `json:"result"`
			Payout string `json:"payout"`
			Notes  string `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		err := h.tracking.UpdateSlipResult(r.Context(), slipID, body.Result, body.Payout, body.Notes)
		if err != nil {
			writeResultError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func (h *SlipHandlers) PropResult() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propID := chi.URLParam(r, "prop_id")
		var body struct {
			Result string `json:"result"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if err := h.tracking.UpdatePropResult(r.Context(), propID, body.Result); err != nil {
			writeResultError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

// ExportCSV streams slip or leg history as a CSV download; ?kind=props selects
// the per-leg file.
func (h *SlipHandlers) ExportCSV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.tracking.History(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		kind := r.URL.Query().Get("kind")
		w.Header().Set("Content-Type", "text/csv")
		if kind == "props" {
			w.Header().Set("Content-Disposition", `attachment; filename="prop_legs.csv"`)
			_ = h.tracking.WriteLegsCSV(w, resp)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="slips.csv"`)
		_ = h.tracking.WriteSlipsCSV(w, resp)
	}
}

func writeResultError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracking.ErrBadResult):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, store.ErrNotFound):
		WriteHTTPError(w, http.StatusNotFound, "not_found")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
