package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "8080"
	defaultDogAPIURL    = "https://api.thedogapi.com/v1"
	defaultAPIKeyHeader = "x-api-key"
	defaultTimeout      = 10 * time.Second
)

// Config es la configuración de runtime, leída de variables de entorno.
type Config struct {
	Port string

	DogAPIBaseURL   string
	DogAPIKey       string // opcional: sin key las requests salen sin header
	DogAPIKeyHeader string
	DogAPITimeout   time.Duration

	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	EnableSwagger     bool
}

// DogAPI es la parte de la configuración que comparten el server y el CLI.
type DogAPI struct {
	BaseURL   string
	APIKey    string
	KeyHeader string
	Timeout   time.Duration
}

// LoadDogAPI lee solo las variables del cliente de The Dog API.
func LoadDogAPI() (DogAPI, error) {
	d := DogAPI{
		BaseURL:   getEnv("DOG_API_BASE_URL", defaultDogAPIURL),
		APIKey:    firstEnv("DOG_API_KEY", "VITE_DOG_API_KEY"),
		KeyHeader: getEnv("DOG_API_KEY_HEADER", defaultAPIKeyHeader),
	}
	timeout, err := parseDurationEnv("DOG_API_TIMEOUT", defaultTimeout)
	if err != nil {
		return DogAPI{}, fmt.Errorf("parse DOG_API_TIMEOUT: %w", err)
	}
	d.Timeout = timeout
	return d, nil
}

// LoadDotEnv carga .env.local y .env si existen. Las variables ya definidas
// en el entorno no se pisan.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env.local", ".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Load lee el entorno y aplica defaults.
func Load() (Config, error) {
	api, err := LoadDogAPI()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Port:            getEnv("PORT", defaultPort),
		DogAPIBaseURL:   api.BaseURL,
		DogAPIKey:       api.APIKey,
		DogAPIKeyHeader: api.KeyHeader,
		DogAPITimeout:   api.Timeout,
	}

	if cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
	}
	if cfg.ReadHeaderTimeout, err = parseDurationEnv("READ_HEADER_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, fmt.Errorf("parse READ_HEADER_TIMEOUT: %w", err)
	}
	// el listado completo + render de PNG entra cómodo en 30s
	if cfg.WriteTimeout, err = parseDurationEnv("WRITE_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, fmt.Errorf("parse WRITE_TIMEOUT: %w", err)
	}
	cfg.EnableSwagger = !strings.EqualFold(strings.TrimSpace(os.Getenv("SWAGGER")), "off")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate verifica los campos obligatorios.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	u, err := url.ParseRequestURI(c.DogAPIBaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("DOG_API_BASE_URL is not a valid url: %q", c.DogAPIBaseURL)
	}
	if c.DogAPITimeout <= 0 {
		return errors.New("DOG_API_TIMEOUT must be positive")
	}
	return nil
}

// HasAPIKey indica si hay API key configurada.
func (c Config) HasAPIKey() bool {
	return c.DogAPIKey != ""
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if val := strings.TrimSpace(os.Getenv(k)); val != "" {
			return val
		}
	}
	return ""
}

func parseDurationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(val)
}
