package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"pet-adoption-api/internal/platform/logger"
)

type Config struct {
	Port string

	// DBDSN vacío = store en memoria.
	DBDSN string

	BcryptCost  int
	SeedOnStart bool
}

// Load lee .env (si existe) y después las variables de entorno.
// Las variables de logging las interpreta logger.OptionsFromEnv.
// Las variables ya definidas en el entorno tienen prioridad sobre .env.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("invalid BCRYPT_COST %q", os.Getenv("BCRYPT_COST"))
	}

	seedOnStart, err := strconv.ParseBool(getEnv("SEED_ON_START", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_ON_START %q", os.Getenv("SEED_ON_START"))
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBDSN:       strings.TrimSpace(os.Getenv("DB_DSN")),
		BcryptCost:  cost,
		SeedOnStart: seedOnStart,
	}, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

// Logger arma el logger desde LOG_LEVEL, LOG_FORMAT y APP_NAME; Load ya
// volcó el .env al entorno.
func (c *Config) Logger() logger.Logger {
	return logger.NewFromEnv()
}
