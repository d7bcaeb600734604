package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "./data/tereverde.db" {
		t.Errorf("DBPath = %q; want default", cfg.DBPath)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d; want 8080", cfg.ServerPort)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
}

func TestServerAddr(t *testing.T) {
	cfg := Config{ServerHost: "localhost", ServerPort: 9000}
	if got := cfg.ServerAddr(); got != "localhost:9000" {
		t.Errorf("ServerAddr() = %q; want localhost:9000", got)
	}
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("TEREVERDE_SESSION_SECRET", "short")

	if _, err := Load(); err == nil {
		t.Error("Load should reject a session secret shorter than 32 bytes")
	}
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("TEREVERDE_ENV", "production")

	if _, err := Load(); err == nil {
		t.Error("Load should reject the development default secret in production")
	}
}
