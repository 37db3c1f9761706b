package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL      = "https://jsonplaceholder.typicode.com"
	DefaultUsersSource = "./data/users.json"
	DefaultAvatarHost  = "picsum.photos"
)

// Config holds application-level configuration.
type Config struct {
	APIURL      string        // Base URL serving /posts and /comments
	UsersSource string        // Local path or http(s) URL of the users JSON
	AvatarHost  string        // Host of the seed-based avatar service
	LogFile     string        // Diagnostic log destination
	HTTPTimeout time.Duration // Zero means no timeout
}

// Overrides carries command-line values. Empty fields leave Config untouched.
type Overrides struct {
	APIURL      string
	UsersSource string
	AvatarHost  string
	LogFile     string
}

// fileConfig is the on-disk YAML shape.
type fileConfig struct {
	APIURL      string `yaml:"api_url"`
	Users       string `yaml:"users"`
	AvatarHost  string `yaml:"avatar_host"`
	LogFile     string `yaml:"log_file"`
	HTTPTimeout string `yaml:"http_timeout"`
}

// Load builds configuration from defaults, the YAML file at path (optional),
// and environment variables, in increasing precedence.
//
//	TERMINALFEED_API_URL       API base URL (default: jsonplaceholder)
//	TERMINALFEED_USERS         users JSON path or URL (default: ./data/users.json)
//	TERMINALFEED_AVATAR_HOST   avatar host (default: picsum.photos)
//	TERMINALFEED_LOG_FILE      log file (default: <tmp>/terminalfeed.log)
//	TERMINALFEED_HTTP_TIMEOUT  request timeout, Go duration (default: none)
func Load(path string) (Config, error) {
	cfg := Config{
		APIURL:      DefaultAPIURL,
		UsersSource: DefaultUsersSource,
		AvatarHost:  DefaultAvatarHost,
		LogFile:     filepath.Join(os.TempDir(), "terminalfeed.log"),
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFilePath()
	}
	if path != "" {
		fc, err := readFile(path)
		switch {
		case err == nil:
			if err := cfg.applyFile(fc); err != nil {
				return Config{}, fmt.Errorf("config file %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultFilePath returns $XDG_CONFIG_HOME/terminalfeed/config.yaml,
// or "" when no config directory can be determined.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "terminalfeed", "config.yaml")
}

// LoadEnvFile loads KEY=VALUE pairs into the process environment without
// overriding variables that are already set. An empty path tries ./.env and
// ignores its absence.
func LoadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Apply returns a copy of c with non-empty overrides applied and validated.
func (c Config) Apply(o Overrides) (Config, error) {
	if v := strings.TrimSpace(o.APIURL); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(o.UsersSource); v != "" {
		c.UsersSource = v
	}
	if v := strings.TrimSpace(o.AvatarHost); v != "" {
		c.AvatarHost = v
	}
	if v := strings.TrimSpace(o.LogFile); v != "" {
		c.LogFile = v
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate normalizes and checks the configuration.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.APIURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid api url %q: must be an absolute URL", c.APIURL)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("invalid api url %q: only http and https are allowed", c.APIURL)
	}
	c.APIURL = strings.TrimRight(parsed.String(), "/")

	if strings.TrimSpace(c.UsersSource) == "" {
		return fmt.Errorf("users source cannot be empty")
	}

	host := strings.TrimSpace(c.AvatarHost)
	if host == "" || strings.ContainsAny(host, "/?# ") {
		return fmt.Errorf("invalid avatar host %q", c.AvatarHost)
	}
	c.AvatarHost = host

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout cannot be negative")
	}
	return nil
}

func readFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return fc, nil
}

func (c *Config) applyFile(fc fileConfig) error {
	if fc.APIURL != "" {
		c.APIURL = fc.APIURL
	}
	if fc.Users != "" {
		c.UsersSource = fc.Users
	}
	if fc.AvatarHost != "" {
		c.AvatarHost = fc.AvatarHost
	}
	if fc.LogFile != "" {
		c.LogFile = fc.LogFile
	}
	if fc.HTTPTimeout != "" {
		d, err := time.ParseDuration(fc.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("invalid http_timeout: %w", err)
		}
		c.HTTPTimeout = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TERMINALFEED_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("TERMINALFEED_USERS"); v != "" {
		c.UsersSource = v
	}
	if v := os.Getenv("TERMINALFEED_AVATAR_HOST"); v != "" {
		c.AvatarHost = v
	}
	if v := os.Getenv("TERMINALFEED_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("TERMINALFEED_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TERMINALFEED_HTTP_TIMEOUT: %w", err)
		}
		c.HTTPTimeout = d
	}
	return nil
}
