package config

import (
	"os"
	"path/filepath"
	"testing"

	"pet-adoption-api/internal/platform/logger"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "BCRYPT_COST", "SEED_ON_START"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != ":8080" || cfg.DBDSN != "" || cfg.SeedOnStart {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("unexpected bcrypt cost: %d", cfg.BcryptCost)
	}
	opts := logger.OptionsFromEnv()
	if opts.Level != logger.Info || opts.Format != logger.FormatText {
		t.Fatalf("unexpected logger defaults: %+v", opts)
	}
}

func TestLoad_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	unsetEnv(t, "SEED_ON_START")
	unsetEnv(t, "LOG_FORMAT")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "PORT=7000\nSEED_ON_START=true\nLOG_FORMAT=json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("environment must win over .env, got %q", cfg.Port)
	}
	if !cfg.SeedOnStart {
		t.Fatalf("expected SEED_ON_START from .env, got %+v", cfg)
	}
	if f := logger.OptionsFromEnv().Format; f != logger.FormatJSON {
		t.Fatalf("expected LOG_FORMAT from .env, got %q", f)
	}
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "99")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for invalid BCRYPT_COST")
	}
}

// unsetEnv borra key durante el test. godotenv no pisa variables ya definidas,
// aunque estén vacías, así que t.Setenv(key, "") no alcanza.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, had := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}
