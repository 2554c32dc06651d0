package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"slipdesk/internal/app/board"
	"slipdesk/internal/app/tracking"
	"slipdesk/internal/config"
	"slipdesk/internal/logging"
	"slipdesk/internal/store"
	httptransport "slipdesk/internal/transport/http"
	"slipdesk/internal/vision"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)

	st, err := store.New(cfg.Server.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	boardSvc := board.NewService(cfg.Server.SportsAllowed)
	trackSvc := tracking.NewService(st)

	var extractor *vision.Extractor
	ext, err := vision.New(cfg.Vision)
	switch {
	case err == nil:
		extractor = ext
	case errors.Is(err, vision.ErrMissingAPIKey):
		log.Warn().Msg("no vision api key; screenshot extraction disabled")
	default:
		log.Fatal().Err(err).Msg("vision init failed")
	}

	var ex httptransport.PropExtractor
	if extractor != nil {
		ex = extractor
	}
	r := httptransport.NewRouter(st, cfg.Server, boardSvc, trackSvc, ex)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
