package vision

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"slipdesk/internal/config"
	"slipdesk/internal/engine"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

var ErrMissingAPIKey = errors.New("missing_api_key")

const systemPrompt = `You extract sports prop card data from screenshots.

Return ONLY valid JSON: an array of objects, each object with keys:
- sport (string, e.g. "NBA", "SOCCER", "TENNIS")
- player (string)
- team (string or "")
- opponent (string or "")
- market (string, e.g. "Points", "Rebounds", "PRA", "Passes Attempted")
- line (number)
- alt_line (number or null)
- sides (array of offered sides, e.g. ["MORE","LESS"])
- last5 (array of the last 5 shown values, or [])
- is_demon (true/false)
- is_goblin (true/false)
- game_time (string or "")

Rules:
- If a field is not visible, use "" or null or [].
- Convert strings like "23.5" to number 23.5.
- If multiple props are visible in one screenshot, output multiple objects.`

// ExtractedProp is one prop card as read off a screenshot.
type ExtractedProp struct {
	Sport    string    `json:"sport"`
	Player   string    `json:"player"`
	Team     string    `json:"team"`
	Opponent string    `json:"opponent"`
	Market   string    `json:"market"`
	Line     float64   `json:"line"`
	AltLine  *float64  `json:"alt_line"`
	Sides    []string  `json:"sides"`
	Last5    []float64 `json:"last5"`
	IsDemon  bool      `json:"is_demon"`
	IsGoblin bool      `json:"is_goblin"`
	GameTime string    `json:"game_time"`
}

// Prop converts an extracted record into a board prop (id assigned later).
func (e ExtractedProp) Prop() engine.Prop {
	last5 := e.Last5
	if len(last5) != 5 {
		last5 = nil
	}
	return engine.Prop{
		Sport:    engine.Sport(e.Sport),
		Player:   e.Player,
		Market:   e.Market,
		Line:     e.Line,
		AltLine:  e.AltLine,
		Last5:    last5,
		IsGoblin: e.IsGoblin,
		IsDemon:  e.IsDemon,
		Team:     e.Team,
		Opponent: e.Opponent,
		GameTime: e.GameTime,
	}
}

// completer is the single remote call the extractor makes; swapped out in
// tests.
type completer interface {
	complete(ctx context.Context, mediaType, imageB64 string) (string, error)
}

type anthropicCompleter struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func (c *anthropicCompleter) complete(ctx context.Context, mediaType, imageB64 string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock("Extract all prop cards from this screenshot."),
				anthropic.NewImageBlockBase64(mediaType, imageB64),
			),
		},
	}
	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}
	out := collectText(resp.Content)
	if out == "" {
		return "", errors.New("empty response")
	}
	return out, nil
}

// collectText joins the text blocks of a response; Type is a plain string in
// this SDK.
func collectText(blocks []anthropic.ContentBlockUnion) string {
	var out string
	for _, block := range blocks {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return out
}

// Extractor turns screenshot bytes into prop records. Results are cached by
// the exact image bytes, so resubmitting the same screenshot never re-invokes
// the remote call.
type Extractor struct {
	completer   completer
	limiter     *rate.Limiter
	maxAttempts int
	baseBackoff time.Duration
	maxBackoff  time.Duration

	mu    sync.Mutex
	cache map[string][]ExtractedProp
}

func New(cfg config.VisionConfig) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	c := &anthropicCompleter{client: client, model: cfg.Model, maxTokens: int64(cfg.MaxTokens)}
	return newWith(c, cfg), nil
}

func newWith(c completer, cfg config.VisionConfig) *Extractor {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	rpm := cfg.RequestsPerMinute
	if rpm < 1 {
		rpm = 10
	}
	return &Extractor{
		completer:   c,
		limiter:     rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		maxAttempts: attempts,
		baseBackoff: time.Duration(cfg.BaseBackoffMS) * time.Millisecond,
		maxBackoff:  time.Duration(cfg.MaxBackoffMS) * time.Millisecond,
		cache:       map[string][]ExtractedProp{},
	}
}

// Extract runs the remote extraction with bounded retries. Rate-limit and
// transient connectivity failures back off exponentially; anything else, or
// exhausting the attempt budget, is a hard error for the caller to show.
func (e *Extractor) Extract(ctx context.Context, image []byte) ([]ExtractedProp, error) {
	key := cacheKey(image)
	e.mu.Lock()
	if cached, ok := e.cache[key]; ok {
		e.mu.Unlock()
		return cached, nil
	}
	e.mu.Unlock()

	mediaType := http.DetectContentType(image)
	imageB64 := base64.StdEncoding.EncodeToString(image)

	var lastErr error
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		text, err := e.completer.complete(ctx, mediaType, imageB64)
		if err == nil {
			props, perr := parseProps(text)
			if perr != nil {
				return nil, fmt.Errorf("extraction returned unusable output: %w", perr)
			}
			e.mu.Lock()
			e.cache[key] = props
			e.mu.Unlock()
			return props, nil
		}
		lastErr = err
		if !isRetryable(err) {
			return nil, err
		}
		if attempt == e.maxAttempts-1 {
			break
		}
		wait := e.backoff(attempt)
		log.Warn().Err(err).Int("attempt", attempt+1).Dur("backoff", wait).Msg("vision extraction retrying")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("extraction failed after %d attempts: %w", e.maxAttempts, lastErr)
}

// backoff doubles per attempt from the base, capped per attempt.
func (e *Extractor) backoff(attempt int) time.Duration {
	d := e.baseBackoff
	if d <= 0 {
		d = time.Second
	}
	for i := 0; i < attempt; i++ {
		d *= 2
		if e.maxBackoff > 0 && d >= e.maxBackoff {
			return e.maxBackoff
		}
	}
	if e.maxBackoff > 0 && d > e.maxBackoff {
		return e.maxBackoff
	}
	return d
}

func cacheKey(image []byte) string {
	h := sha256.Sum256(image)
	return hex.EncodeToString(h[:])
}
