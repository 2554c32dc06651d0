package config

import "github.com/caarlos0/env/v11"

type VisionConfig struct {
	APIKey    string `env:"ANTHROPIC_API_KEY"`
	Model     string `env:"VISION_MODEL" envDefault:"claude-sonnet-4-20250514"`
	MaxTokens int    `env:"VISION_MAX_TOKENS" envDefault:"4096"`

	MaxAttempts   int `env:"VISION_MAX_ATTEMPTS" envDefault:"6"`
	BaseBackoffMS int `env:"VISION_BASE_BACKOFF_MS" envDefault:"1000"`
	MaxBackoffMS  int `env:"VISION_MAX_BACKOFF_MS" envDefault:"30000"`

	RequestsPerMinute int `env:"VISION_REQUESTS_PER_MINUTE" envDefault:"10"`
}

func LoadVision() (VisionConfig, error) {
	var cfg VisionConfig
	err := env.Parse(&cfg)
	return cfg, err
}
