package httptransport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"slipdesk/internal/app/board"
	"slipdesk/internal/engine"
	"slipdesk/internal/vision"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 10 << 20

// PropExtractor is what the extract endpoint needs from the vision package.
type PropExtractor interface {
	Extract(ctx context.Context, image []byte) ([]vision.ExtractedProp, error)
}

type BoardHandlers struct {
	board     *board.Service
	extractor PropExtractor
}

// NewBoardHandlers wires the board endpoints. extractor may be nil when no
// vision API key is configured; the extract route then answers 503.
func NewBoardHandlers(svc *board.Service, extractor PropExtractor) *BoardHandlers {
	return &BoardHandlers{board: svc, extractor: extractor}
}

func (h *BoardHandlers) AddProp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body board.AddPropInput
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		p, err := h.board.Add(body)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "prop": p})
	}
}

func (h *BoardHandlers) RemoveProp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propID := chi.URLParam(r, "prop_id")
		if err := h.board.Remove(propID); err != nil {
			WriteHTTPError(w, http.StatusNotFound, "not_found")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func (h *BoardHandlers) Board() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		props := h.board.List()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"props":             props,
			"slips_saved_today": h.board.SlipsSavedToday(),
		})
	}
}

func (h *BoardHandlers) ClearBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.board.Clear()
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func (h *BoardHandlers) ExportBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bankroll := parseQueryFloat(r, "bankroll")
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="board_backup.json"`)
		_ = json.NewEncoder(w).Encode(h.board.Export(bankroll))
	}
}

func (h *BoardHandlers) Scored() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		demonsBlocked := r.URL.Query().Get("demons_blocked") != "false"
		scored := h.board.ScoreBoard(demonsBlocked)
		_ = json.NewEncoder(w).Encode(map[string]any{"props": scored})
	}
}

// Extract accepts a screenshot as a multipart "image" part or as JSON
// {"image_base64": ...}, runs vision extraction, and appends the usable
// entries to the board.
func (h *BoardHandlers) Extract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.extractor == nil {
			WriteHTTPError(w, http.StatusServiceUnavailable, "vision_unavailable")
			return
		}
		image, err := readImage(r)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		metricExtractTotal.Add(1)
		extracted, err := h.extractor.Extract(r.Context(), image)
		if err != nil {
			metricExtractErrors.Add(1)
			if errors.Is(err, context.Canceled) {
				WriteHTTPError(w, http.StatusBadRequest, "request_canceled")
				return
			}
			WriteHTTPError(w, http.StatusBadGateway, "extraction_failed")
			return
		}
		props := make([]engine.Prop, 0, len(extracted))
		for _, e := range extracted {
			props = append(props, e.Prop())
		}
		added := h.board.AddExtracted(props)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":        true,
			"extracted": len(extracted),
			"added":     added,
		})
	}
}

func readImage(r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		file, _, err := r.FormFile("image")
		if err != nil {
			return nil, err
		}
		defer file.Close()
		image, err := io.ReadAll(file)
		if err != nil || len(image) == 0 {
			return nil, errors.New("empty image")
		}
		return image, nil
	}
	var body struct {
		ImageBase64 string `json:"image_base64"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	image, err := base64.StdEncoding.DecodeString(body.ImageBase64)
	if err != nil || len(image) == 0 {
		return nil, errors.New("empty image")
	}
	return image, nil
}

func parseQueryFloat(r *http.Request, key string) float64 {
	if v := r.URL.Query().Get(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}
