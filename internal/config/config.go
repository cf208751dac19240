package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrConfigExists reports a refused overwrite of an existing config file.
var ErrConfigExists = errors.New("config file already exists")

// Config holds every persisted runtime option.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
	Seed    SeedConfig    `toml:"seed"`
}

// LoggingConfig controls runtime log level and the dev-file sink.
type LoggingConfig struct {
	Level   string        `toml:"level"`
	DevFile DevFileConfig `toml:"dev_file"`
}

// DevFileConfig controls the dev-mode logfmt file sink. A blank Dir selects
// the per-app log directory resolved by the platform package.
type DevFileConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	AltScreen      bool   `toml:"alt_screen"`
	ShowHelp       bool   `toml:"show_help"`
	AccentColor    string `toml:"accent_color"`
	HighlightColor string `toml:"highlight_color"`
	MutedColor     string `toml:"muted_color"`
}

// SeedConfig lists the items both collections start with.
type SeedConfig struct {
	Todo []string `toml:"todo"`
	Done []string `toml:"done"`
}

// knownLevels stores accepted logging levels.
var knownLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
			DevFile: DevFileConfig{
				Enabled: true,
				Dir:     "",
			},
		},
		UI: UIConfig{
			AltScreen:      true,
			ShowHelp:       true,
			AccentColor:    "62",
			HighlightColor: "3",
			MutedColor:     "241",
		},
		Seed: SeedConfig{
			Todo: []string{"make a todo tui app", "learning rust", "make a cup of tea"},
			Done: []string{"read a rust manual", "read arch linux wiki"},
		},
	}
}

// Load reads path over defaults; a missing or empty file yields defaults.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	valid := false
	for _, known := range knownLevels {
		if level == known {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	colors := map[string]string{
		"ui.accent_color":    c.UI.AccentColor,
		"ui.highlight_color": c.UI.HighlightColor,
		"ui.muted_color":     c.UI.MutedColor,
	}
	for name, value := range colors {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

// EnsureConfigDir creates the parent directory of path.
func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// WriteDefault encodes cfg to path, refusing to replace an existing file unless force is set.
func WriteDefault(path string, cfg Config, force bool) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("config path is required")
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	encoded, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
