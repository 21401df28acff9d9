package global

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/nathanieltooley/pokeroster/cache"
	"github.com/nathanieltooley/pokeroster/pokeapi"
	"github.com/nathanieltooley/pokeroster/roster"
)

const (
	DEFAULT_HTTP_TIMEOUT = 30 * time.Second
	ENV_PREFIX           = "POKEROSTER_"
)

// GlobalConfig is stored as json in the config dir. Durations are strings like "30s".
type GlobalConfig struct {
	TeamSaveLocation string
	Debug            bool
	BaseURL          string
	Language         string
	VersionGroup     string
	HTTPTimeout      string
	CacheBackend     string
	CacheLocation    string
	RedisAddr        string
	CacheTTL         string
	AllowPartialEVs  bool
}

// configEnv holds overrides from the environment. Nil means not set.
type configEnv struct {
	TeamSaveLocation *string        `env:"TEAM_SAVE_LOCATION"`
	Debug            *bool          `env:"DEBUG"`
	BaseURL          *string        `env:"BASE_URL"`
	Language         *string        `env:"LANGUAGE"`
	VersionGroup     *string        `env:"VERSION_GROUP"`
	HTTPTimeout      *time.Duration `env:"HTTP_TIMEOUT"`
	CacheBackend     *string        `env:"CACHE_BACKEND"`
	CacheLocation    *string        `env:"CACHE_LOCATION"`
	RedisAddr        *string        `env:"REDIS_ADDR"`
	CacheTTL         *time.Duration `env:"CACHE_TTL"`
	AllowPartialEVs  *bool          `env:"ALLOW_PARTIAL_EVS"`
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "pokeroster")
}

func ConfigLocation(configDir string) string {
	return filepath.Join(configDir, "config.json")
}

// LoadConfig reads the config file in configDir, creating it with defaults when it's missing or empty
func LoadConfig(configDir string) (GlobalConfig, error) {
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return populateConfig(GlobalConfig{}, configDir), err
	}

	configContents, err := os.ReadFile(ConfigLocation(configDir))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return populateConfig(GlobalConfig{}, configDir), err
	}

	if len(configContents) == 0 {
		config := populateConfig(GlobalConfig{}, configDir)
		return config, SaveConfig(configDir, config)
	}

	config := GlobalConfig{}
	if err := json.Unmarshal(configContents, &config); err != nil {
		return populateConfig(GlobalConfig{}, configDir), fmt.Errorf("reading %s: %w", ConfigLocation(configDir), err)
	}

	return populateConfig(config, configDir), nil
}

func SaveConfig(configDir string, config GlobalConfig) error {
	configJson, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigLocation(configDir), configJson, 0644)
}

// ApplyEnv overrides config with any POKEROSTER_* variables that are set
func ApplyEnv(config GlobalConfig) (GlobalConfig, error) {
	overrides := configEnv{}
	if err := env.ParseWithOptions(&overrides, env.Options{Prefix: ENV_PREFIX}); err != nil {
		return config, fmt.Errorf("parse env: %w", err)
	}

	setIf(&config.TeamSaveLocation, overrides.TeamSaveLocation)
	setIf(&config.Debug, overrides.Debug)
	setIf(&config.BaseURL, overrides.BaseURL)
	setIf(&config.Language, overrides.Language)
	setIf(&config.VersionGroup, overrides.VersionGroup)
	setIf(&config.CacheBackend, overrides.CacheBackend)
	setIf(&config.CacheLocation, overrides.CacheLocation)
	setIf(&config.RedisAddr, overrides.RedisAddr)
	setIf(&config.AllowPartialEVs, overrides.AllowPartialEVs)

	if overrides.HTTPTimeout != nil {
		config.HTTPTimeout = overrides.HTTPTimeout.String()
	}
	if overrides.CacheTTL != nil {
		config.CacheTTL = overrides.CacheTTL.String()
	}

	return config, nil
}

func setIf[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}

func (c GlobalConfig) Timeout() time.Duration {
	return parseDuration(c.HTTPTimeout, DEFAULT_HTTP_TIMEOUT)
}

// TTL is how long cached responses live. Zero keeps them forever.
func (c GlobalConfig) TTL() time.Duration {
	return parseDuration(c.CacheTTL, 0)
}

func (c GlobalConfig) CacheConfig() cache.Config {
	return cache.Config{
		Backend:   c.CacheBackend,
		Location:  c.CacheLocation,
		RedisAddr: c.RedisAddr,
		TTL:       c.TTL(),
	}
}

func (c GlobalConfig) ClientConfig(store cache.Store) pokeapi.Config {
	return pokeapi.Config{
		BaseURL:     c.BaseURL,
		HTTPTimeout: c.Timeout(),
		Cache:       store,
	}
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed < 0 {
		initLogger.Warn().Str("value", value).Msg("bad duration in config, using default")
		return fallback
	}

	return parsed
}

func populateConfig(config GlobalConfig, configDir string) GlobalConfig {
	if config.TeamSaveLocation == "" {
		config.TeamSaveLocation = filepath.Join(configDir, "teams")
	}
	if config.BaseURL == "" {
		config.BaseURL = pokeapi.DEFAULT_BASE_URL
	}
	if config.Language == "" {
		config.Language = roster.DEFAULT_LANGUAGE
	}
	if config.VersionGroup == "" {
		config.VersionGroup = roster.DEFAULT_VERSION_GROUP
	}
	if config.HTTPTimeout == "" {
		config.HTTPTimeout = DEFAULT_HTTP_TIMEOUT.String()
	}
	if config.CacheBackend == "" {
		config.CacheBackend = cache.BACKEND_SQLITE
	}
	if config.CacheLocation == "" {
		config.CacheLocation = filepath.Join(configDir, "cache", "responses.db")
	}

	return config
}
