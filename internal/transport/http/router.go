package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"slipdesk/internal/app/board"
	"slipdesk/internal/app/tracking"
	"slipdesk/internal/config"
	"slipdesk/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.ServerConfig, boardSvc *board.Service, trackSvc *tracking.Service, extractor PropExtractor) *chi.Mux {
	boardHandlers := NewBoardHandlers(boardSvc, extractor)
	slipHandlers := NewSlipHandlers(boardSvc, trackSvc)
	adminHandlers := NewAdminHandlers(st, boardSvc, trackSvc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Get("/board", boardHandlers.Board())
		r.Delete("/board", boardHandlers.ClearBoard())
		r.Post("/board/props", boardHandlers.AddProp())
		r.Delete("/board/props/{prop_id}", boardHandlers.RemoveProp())
		r.Get("/board/export", boardHandlers.ExportBoard())
		r.Post("/board/extract", boardHandlers.Extract())
		r.Get("/board/scored", boardHandlers.Scored())

		r.Post("/recommend", slipHandlers.Recommend())
		r.Post("/slips/save", slipHandlers.SaveSlips())
		r.Get("/history/slips", slipHandlers.HistorySlips())
		r.Get("/history/props", slipHandlers.HistoryProps())
		r.Get("/history/export", slipHandlers.ExportCSV())
		r.Post("/slips/{slip_id}/result", slipHandlers.SlipResult())
		r.Post("/props/{prop_id}/result", slipHandlers.PropResult())

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Post("/admin/reset", adminHandlers.Reset())

			r.Route("/admin/debug", func(r chi.Router) {
				r.Use(BodyCaptureMiddleware(4096))
				r.Get("/vars", expvar.Handler().ServeHTTP)
			})
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 64)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
