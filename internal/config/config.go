package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/Waddenn/movie-detail/internal/appinfo"
)

const fileName = "config.toml"

type Config struct {
	TMDB   TMDB   `toml:"tmdb"`
	Layout Layout `toml:"layout"`
	Loader Loader `toml:"loader"`
	Log    Log    `toml:"log"`
}

type TMDB struct {
	APIKey       string   `toml:"api_key"`
	AccessToken  string   `toml:"access_token"`
	BaseURL      string   `toml:"base_url"`
	ImageBaseURL string   `toml:"image_base_url"`
	Language     string   `toml:"language"`
	Timeout      Duration `toml:"timeout"`
	RetryMax     int      `toml:"retry_max"`
}

// Layout holds the screen-relative sizing of the detail view.
type Layout struct {
	ImageHeightRatio float64 `toml:"image_height_ratio"`
	MaxStars         int     `toml:"max_stars"`
}

type Loader struct {
	// AutoRetrySeconds starts a countdown after a failed fetch. 0 disables it.
	AutoRetrySeconds int `toml:"auto_retry_seconds"`
}

type Log struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Duration lets TOML carry values like "10s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	return &Config{
		TMDB: TMDB{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p/original",
			Language:     "en-US",
			Timeout:      Duration{10 * time.Second},
			RetryMax:     2,
		},
		Layout: Layout{
			ImageHeightRatio: 0.33,
			MaxStars:         5,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, appinfo.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func CacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cacheDir, appinfo.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultPath returns the config file location inside ConfigDir.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the config at path (DefaultPath when empty), applies the
// environment on top and validates the result. A missing file yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}

	// .env is optional; variables already set in the process win.
	_ = godotenv.Load()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readFile decodes path over the defaults, without the environment.
func readFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		cfg.TMDB.APIKey = v
	}
	if v := os.Getenv("TMDB_ACCESS_TOKEN"); v != "" {
		cfg.TMDB.AccessToken = v
	}
	if v := os.Getenv("MOVIE_DETAIL_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MOVIE_DETAIL_AUTO_RETRY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MOVIE_DETAIL_AUTO_RETRY: %w", err)
		}
		cfg.Loader.AutoRetrySeconds = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c.TMDB.BaseURL == "" {
		return errors.New("config: tmdb.base_url is empty")
	}
	if c.TMDB.ImageBaseURL == "" {
		return errors.New("config: tmdb.image_base_url is empty")
	}
	if c.TMDB.RetryMax < 0 {
		return fmt.Errorf("config: tmdb.retry_max must be >= 0, got %d", c.TMDB.RetryMax)
	}
	if c.TMDB.Timeout.Duration < 0 {
		return fmt.Errorf("config: tmdb.timeout must be >= 0, got %s", c.TMDB.Timeout)
	}
	if c.Layout.ImageHeightRatio <= 0 || c.Layout.ImageHeightRatio > 1 {
		return fmt.Errorf("config: layout.image_height_ratio must be in (0, 1], got %v", c.Layout.ImageHeightRatio)
	}
	if c.Layout.MaxStars < 1 {
		return fmt.Errorf("config: layout.max_stars must be >= 1, got %d", c.Layout.MaxStars)
	}
	if c.Loader.AutoRetrySeconds < 0 {
		return fmt.Errorf("config: loader.auto_retry_seconds must be >= 0, got %d", c.Loader.AutoRetrySeconds)
	}
	return nil
}

// HasCredentials reports whether any TMDB credential is configured.
func (c *Config) HasCredentials() bool {
	return c.TMDB.APIKey != "" || c.TMDB.AccessToken != ""
}

// Save writes cfg to path (DefaultPath when empty).
func Save(path string, cfg *Config) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	// The file holds credentials; tighten files created by older versions.
	if err := f.Chmod(0600); err != nil {
		return err
	}
	return toml.NewEncoder(f).Encode(cfg)
}

// Update applies fn to the config stored at path (DefaultPath when empty) and
// writes it back. Values from .env or the process environment never reach the
// file.
func Update(path string, fn func(*Config)) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := readFile(path)
	if err != nil {
		return err
	}
	fn(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	return Save(path, cfg)
}
