package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"bavatarinee.dev/internal/field"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string
	DataPath   string
	LogLevel   string
	GitHub     GitHubConfig
	Field      FieldConfig
	Site       *SiteConfig
}

// GitHubConfig holds repository sync settings
type GitHubConfig struct {
	Account     string
	Token       string
	APIURL      string
	SyncTimeout time.Duration // zero means no explicit timeout
}

// FieldConfig holds particle field settings
type FieldConfig struct {
	Width, Height int
	FPS           int
	Seed          uint64
}

// SiteConfig is read from data/site.yaml
type SiteConfig struct {
	Owner      string       `yaml:"owner"`
	Account    string       `yaml:"account"`
	Tagline    string       `yaml:"tagline"`
	Theme      *field.Theme `yaml:"theme"`
	CursorEase float64      `yaml:"cursor_ease"`
	Stats      []Stat       `yaml:"stats"`
}

// Stat is one hero meta counter
type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Defaults
const (
	DefaultAccount = "Bavatarinee"
	DefaultAddr    = ":8080"
	DefaultFPS     = 60
)

// FrameInterval returns the time between field frames
func (f FieldConfig) FrameInterval() time.Duration {
	if f.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(f.FPS)
}

// ProfileURL returns the account's public profile page
func (g GitHubConfig) ProfileURL() string {
	return "https://github.com/" + g.Account
}

// Load reads the environment and the optional site file
func Load() (*Config, error) {
	dataPath := getEnv("DATA_PATH", "data")

	site, err := loadSite(filepath.Join(dataPath, "site.yaml"))
	if err != nil {
		return nil, err
	}

	account := getEnv("GITHUB_ACCOUNT", "")
	if account == "" {
		account = site.Account
	}
	if account == "" {
		account = DefaultAccount
	}

	timeout, err := getDuration("SYNC_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	width, err := getInt("FIELD_WIDTH", 1280)
	if err != nil {
		return nil, err
	}
	height, err := getInt("FIELD_HEIGHT", 720)
	if err != nil {
		return nil, err
	}
	fps, err := getInt("FIELD_FPS", DefaultFPS)
	if err != nil {
		return nil, err
	}
	seed, err := getInt("FIELD_SEED", int(time.Now().UnixNano()&0x7fffffff))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", DefaultAddr),
		DataPath:   dataPath,
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		GitHub: GitHubConfig{
			Account:     account,
			Token:       os.Getenv("GITHUB_TOKEN"),
			APIURL:      os.Getenv("GITHUB_API_URL"),
			SyncTimeout: timeout,
		},
		Field: FieldConfig{
			Width:  width,
			Height: height,
			FPS:    fps,
			Seed:   uint64(seed),
		},
		Site: site,
	}, nil
}

// loadSite reads the site file. A missing file yields an empty config.
func loadSite(path string) (*SiteConfig, error) {
	site := &SiteConfig{}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return site, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return site, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
