package httptransport

import (
	"encoding/json"
	"net/http"

	"slipdesk/internal/app/board"
	"slipdesk/internal/app/tracking"
	"slipdesk/internal/store"
)

type AdminHandlers struct {
	store    *store.Store
	board    *board.Service
	tracking *tracking.Service
}

func NewAdminHandlers(st *store.Store, b *board.Service, t *tracking.Service) *AdminHandlers {
	return &AdminHandlers{store: st, board: b, tracking: t}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "db": "down"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "up"})
	}
}

// Reset wipes the ledger and the in-memory board together. There is no undo.
func (h *AdminHandlers) Reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.tracking.ResetAll(r.Context()); err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		h.board.Clear()
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
