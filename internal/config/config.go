// Package config handles reading and writing .recruit/config.yaml and the
// environment overrides applied on top of it.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvWebhookURL    = "RECRUIT_WEBHOOK_URL"
	EnvAdvanceDelay  = "RECRUIT_ADVANCE_DELAY"
	EnvSubmitTimeout = "RECRUIT_SUBMIT_TIMEOUT"
	EnvLogFile       = "RECRUIT_LOG_FILE"
)

// ErrNoWebhookURL is returned by Validate when no endpoint is configured.
var ErrNoWebhookURL = errors.New("webhook url not configured (set " + EnvWebhookURL + " or webhook.url)")

// Config is the top-level structure for .recruit/config.yaml.
type Config struct {
	Version  int            `yaml:"version"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Form     FormConfig     `yaml:"form"`
	Branding BrandingConfig `yaml:"branding"`
	Log      LogConfig      `yaml:"log"`
	Stub     StubConfig     `yaml:"stub"`
}

// WebhookConfig points at the spreadsheet script receiving applications.
type WebhookConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"` // 0 leaves the transport default
}

// FormConfig controls the questionnaire pacing.
type FormConfig struct {
	AdvanceDelay time.Duration `yaml:"advance_delay"`
}

// BrandingConfig holds the texts shown around the form.
type BrandingConfig struct {
	WindowTitle string `yaml:"window_title"`
	Banner      string `yaml:"banner"`
	Welcome     string `yaml:"welcome"`
	Completion  string `yaml:"completion"`
	Motto       string `yaml:"motto"`
}

// LogConfig controls the diagnostic and event logs.
type LogConfig struct {
	File       string `yaml:"file"`
	EventsFile string `yaml:"events_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// StubConfig configures the development webhook served by "recruit stub".
type StubConfig struct {
	Addr string `yaml:"addr"`
}

const configDir = ".recruit"
const configFile = "config.yaml"

// Path returns the config file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, configDir, configFile)
}

// ReadConfig reads .recruit/config.yaml from the given directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	return ReadFile(Path(dir))
}

// ReadFile reads a config from an explicit path. Fields missing from the
// file keep their DefaultConfig values.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// WriteConfig writes cfg to .recruit/config.yaml in the given directory.
// Creates the .recruit/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
// The webhook URL has no default and must come from the file or environment.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Form: FormConfig{
			AdvanceDelay: 500 * time.Millisecond,
		},
		Branding: BrandingConfig{
			WindowTitle: "Tezos-JH-recruitment.sh",
			Banner:      "Tezos Club JH Recruitment Terminal v1.0.0",
			Welcome:     "Welcome to the Tezos Club JH application process!",
			Completion:  "Welcome to the Tezos Club JH family! Your application has been recorded and our team will review it shortly.",
			Motto:       "Take this as your first step towards innovation, collaboration, and personal growth. We can't wait to see what you'll bring to the table!",
		},
		Log: LogConfig{
			File:       filepath.Join(configDir, "recruit.log"),
			EventsFile: filepath.Join(configDir, "events.jsonl"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
		Stub: StubConfig{
			Addr: "127.0.0.1:8787",
		},
	}
}

// Load builds the effective configuration: defaults, then the config file if
// present, then variables from envFile (if non-empty and present), then the
// process environment. path may be empty to use .recruit/config.yaml in the
// working directory.
func Load(path, envFile string) (*Config, error) {
	if path == "" {
		path = Path(".")
	}

	cfg, err := ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = DefaultConfig()
	}

	if envFile != "" {
		// godotenv.Load never overrides variables already set in the process.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays environment values read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvWebhookURL); v != "" {
		c.Webhook.URL = v
	}
	if v := getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := getenv(EnvAdvanceDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvAdvanceDelay, err)
		}
		c.Form.AdvanceDelay = d
	}
	if v := getenv(EnvSubmitTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvSubmitTimeout, err)
		}
		c.Webhook.Timeout = d
	}
	return nil
}

// Validate checks the settings needed to run the form.
func (c *Config) Validate() error {
	if c.Webhook.URL == "" {
		return ErrNoWebhookURL
	}
	u, err := url.Parse(c.Webhook.URL)
	if err != nil {
		return fmt.Errorf("parsing webhook url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("webhook url must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("webhook url %q has no host", c.Webhook.URL)
	}
	if c.Form.AdvanceDelay < 0 {
		return fmt.Errorf("advance delay must not be negative")
	}
	if c.Webhook.Timeout < 0 {
		return fmt.Errorf("webhook timeout must not be negative")
	}
	return nil
}
