// Package config loads service configuration from the environment (VIN_*),
// an optional config file and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full service configuration. Every collaborator is optional;
// an empty address disables it.
type Config struct {
	HTTP struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"http"`
	GRPC struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"grpc"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	NATS struct {
		URL     string `mapstructure:"url"`
		Subject string `mapstructure:"subject"`
		Events  string `mapstructure:"events"`
	} `mapstructure:"nats"`
	Redis struct {
		Addr     string        `mapstructure:"addr"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
	Postgres struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"postgres"`
	Neo4j struct {
		URL  string `mapstructure:"url"`
		User string `mapstructure:"user"`
		Pass string `mapstructure:"pass"`
	} `mapstructure:"neo4j"`
	NHTSA struct {
		Enabled bool   `mapstructure:"enabled"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"nhtsa"`
	Commercial struct {
		URL    string `mapstructure:"url"`
		APIKey string `mapstructure:"api_key"`
	} `mapstructure:"commercial"`
	Provider struct {
		Timeout time.Duration `mapstructure:"timeout"`
		Rate    float64       `mapstructure:"rate"`
		Burst   int           `mapstructure:"burst"`
	} `mapstructure:"provider"`
	Patterns struct {
		File    string `mapstructure:"file"`
		Replace bool   `mapstructure:"replace"`
	} `mapstructure:"patterns"`
	CORS struct {
		Origin string `mapstructure:"origin"`
	} `mapstructure:"cors"`
}

var defaults = map[string]any{
	"http.port":          8080,
	"grpc.port":          9090,
	"log.level":          "info",
	"log.format":         "json",
	"nats.url":           "",
	"nats.subject":       "vin.decode",
	"nats.events":        "vin.decoded",
	"redis.addr":         "",
	"redis.password":     "",
	"redis.db":           0,
	"redis.ttl":          24 * time.Hour,
	"postgres.dsn":       "",
	"neo4j.url":          "",
	"neo4j.user":         "neo4j",
	"neo4j.pass":         "",
	"nhtsa.enabled":      true,
	"nhtsa.base_url":     "https://vpic.nhtsa.dot.gov/api",
	"commercial.url":     "",
	"commercial.api_key": "",
	"provider.timeout":   5 * time.Second,
	"provider.rate":      5.0,
	"provider.burst":     5,
	"patterns.file":      "",
	"patterns.replace":   false,
	"cors.origin":        "*",
}

// Load reads .env (if present), then file (if non-empty), then VIN_*
// environment variables, in increasing precedence.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix("VIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port %d out of range", c.HTTP.Port))
	}
	if c.GRPC.Port < 0 || c.GRPC.Port > 65535 {
		errs = append(errs, fmt.Errorf("grpc.port %d out of range", c.GRPC.Port))
	}
	if c.Provider.Timeout <= 0 {
		errs = append(errs, errors.New("provider.timeout must be positive"))
	}
	if c.Redis.TTL < 0 {
		errs = append(errs, errors.New("redis.ttl must not be negative"))
	}
	if c.Commercial.URL != "" && c.Commercial.APIKey == "" {
		errs = append(errs, errors.New("commercial.api_key required when commercial.url is set"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
