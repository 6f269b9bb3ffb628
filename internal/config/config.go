package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config se arma una sola vez en main y se pasa explícito a cada componente.
// Todo sale de variables de entorno (opcionalmente desde un .env local).
type Config struct {
	Port    string `env:"PORT" env-default:"8080"`
	AppName string `env:"APP_NAME" env-default:"pet-namer"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"60s"`

	Log      LogConfig
	Database DatabaseConfig
	Naming   NamingConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

type DatabaseConfig struct {
	// DSN vacío => store en memoria.
	DSN     string `env:"DB_DSN"`
	Migrate bool   `env:"DB_MIGRATE" env-default:"true"`
}

type NamingConfig struct {
	Provider string        `env:"NAMING_PROVIDER" env-default:"gemini"`
	Timeout  time.Duration `env:"NAMING_TIMEOUT" env-default:"30s"`

	Gemini    ProviderConfig `env-prefix:"GEMINI_"`
	OpenAI    ProviderConfig `env-prefix:"OPENAI_"`
	Anthropic ProviderConfig `env-prefix:"ANTHROPIC_"`
}

// ProviderConfig es la config de un proveedor de texto generativo.
// Model vacío => default del adapter.
type ProviderConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`
	BaseURL string `env:"BASE_URL"`
}

// Load lee envPath (si existe) y luego el entorno del proceso.
// Las variables ya presentes en el entorno no se pisan.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Naming.Provider = strings.ToLower(strings.TrimSpace(c.Naming.Provider))
	switch c.Naming.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("invalid NAMING_PROVIDER %q (use gemini, openai or anthropic)", c.Naming.Provider)
	}

	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

// Addr es la dirección de escucha del servidor HTTP.
func (c *Config) Addr() string {
	return ":" + strings.TrimSpace(c.Port)
}
