package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvBudget overrides the configured point budget.
const EnvBudget = "POINTPLAN_BUDGET"

// Config holds all pointplan configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Student    StudentConfig    `toml:"student"`
	Appearance AppearanceConfig `toml:"appearance"`
	TUI        TUIConfig        `toml:"tui"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Budget      int    `toml:"budget"`
	DataDir     string `toml:"data_dir,omitempty"`
	CatalogPath string `toml:"catalog_path,omitempty"`
}

// StudentConfig holds the default report author.
type StudentConfig struct {
	Name string `toml:"name,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// TUIConfig holds dashboard behavior.
type TUIConfig struct {
	ConfirmReset bool `toml:"confirm_reset"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Budget: 100,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		TUI: TUIConfig{
			ConfirmReset: true,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pointplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pointplan")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns where the project database lives: the configured
// data_dir, else the XDG data directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "pointplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "pointplan")
}

// DBPath returns the full path to the project database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "pointplan.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, applyEnv(&cfg)
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.General.Budget <= 0 {
		cfg.General.Budget = DefaultConfig().General.Budget
	}

	return cfg, applyEnv(&cfg)
}

func applyEnv(cfg *Config) error {
	v := strings.TrimSpace(os.Getenv(EnvBudget))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fmt.Errorf("%s must be a positive integer, got %q", EnvBudget, v)
	}
	cfg.General.Budget = n
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
