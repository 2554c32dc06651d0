package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	// Empty allow-list admits every sport.
	SportsAllowed []string `env:"SPORTS_ALLOWED" envSeparator:","`
	DemonsBlocked bool     `env:"DEMONS_BLOCKED" envDefault:"true"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
