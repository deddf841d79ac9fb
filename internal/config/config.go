// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load.
const Prefix = "DASHBOARD"

// Config is the dashboard service configuration.
type Config struct {
	Port        string        `envconfig:"PORT" default:"8084"`
	Timezone    string        `envconfig:"TIMEZONE" default:"America/Sao_Paulo"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	MaxSessions int           `envconfig:"MAX_SESSIONS" default:"200"`
	MaxUploadMB int64         `envconfig:"MAX_UPLOAD_MB" default:"20"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	GinMode     string        `envconfig:"GIN_MODE" default:"release"`
}

// Load reads an optional .env file and then the DASHBOARD_* variables.
// Variables already set in the environment win over the .env file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("erro ao carregar %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("erro ao ler variáveis de ambiente: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location resolves the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// MaxUploadBytes returns the upload limit in bytes.
func (c Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func (c Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("DASHBOARD_PORT não pode ser vazio")
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("DASHBOARD_MAX_UPLOAD_MB deve ser positivo, recebido %d", c.MaxUploadMB)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
