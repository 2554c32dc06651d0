package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/slipdesk?sslmode=disable")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if !cfg.DemonsBlocked {
		t.Fatalf("DemonsBlocked = false, want true by default")
	}
	if len(cfg.SportsAllowed) != 0 {
		t.Fatalf("SportsAllowed = %v, want empty", cfg.SportsAllowed)
	}
}

func TestLoadServerRequiresPostgresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	_, err := LoadServer()
	if err == nil {
		t.Fatal("LoadServer() expected error, got nil")
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/slipdesk?sslmode=disable")
	t.Setenv("SPORTS_ALLOWED", "NBA,SOCCER")
	t.Setenv("DEMONS_BLOCKED", "false")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if len(cfg.SportsAllowed) != 2 || cfg.SportsAllowed[0] != "NBA" || cfg.SportsAllowed[1] != "SOCCER" {
		t.Fatalf("SportsAllowed = %v", cfg.SportsAllowed)
	}
	if cfg.DemonsBlocked {
		t.Fatalf("DemonsBlocked = true, want false")
	}
}
