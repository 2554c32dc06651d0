package logging

import (
	"io"
	"os"
	"strings"

	"slipdesk/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var sink io.Writer = os.Stdout

// Init configures the global zerolog logger. When cfg.File is set the sink is
// a size-limited file that truncates instead of growing unbounded.
func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && cfg.Level != "" {
		level = parsed
	}

	sink = os.Stdout
	if cfg.File != "" {
		if w, err := openCappedFile(cfg.File, cfg.MaxMB); err == nil {
			sink = w
		}
	}

	var output = sink
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: sink}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
}

// Writer returns the raw log sink, shared with the HTTP request logger so all
// output lands in one place.
func Writer() io.Writer {
	return sink
}
