package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName is the lower-case application name used for directories and the
// desktop entry. DisplayName is what users see.
const (
	AppName     = "ripple"
	DisplayName = "Ripple"
)

const (

	defaultIcons          = "unicode"
	defaultVolume         = 1.0
	defaultTimeUpdateMs   = 250
	minTimeUpdateMs       = 50
	defaultLogLevel       = "info"
	defaultLogFileName    = "ripple.log"
	defaultConfigFileName = "config.toml"
)

type Config struct {
	Icons    string  `koanf:"icons"`    // "nerd", "unicode", or "none"
	Volume   float64 `koanf:"volume"`   // initial volume in [0, 1]
	Autoplay bool    `koanf:"autoplay"` // start loaded tracks on their own
	Repeat   bool    `koanf:"repeat"`   // loop the current track at startup
	Shuffle  bool    `koanf:"shuffle"`  // shuffle the playlist at startup

	// TimeUpdateIntervalMs is the progress refresh period while playing.
	TimeUpdateIntervalMs int `koanf:"time_update_interval_ms"`

	// Desktop integrations. Pointers so that an absent key means "default on".
	Notifications *bool `koanf:"notifications"`
	MPRIS         *bool `koanf:"mpris"`
	AlbumArt      *bool `koanf:"album_art"`

	Log LogConfig `koanf:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // zerolog level name (default: "info")
	File  string `koanf:"file"`  // log file path (default: XDG state dir)
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		Icons:                defaultIcons,
		Volume:               defaultVolume,
		TimeUpdateIntervalMs: defaultTimeUpdateMs,
		Log: LogConfig{
			Level: defaultLogLevel,
		},
	}
}

// Load reads the configuration. When path is set only that file is read and
// it must exist. Otherwise the XDG config file and ./config.toml are read in
// that order, later files overriding earlier ones; missing files are skipped.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	} else {
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", p, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	switch c.Icons {
	case "nerd", "unicode", "none":
	default:
		c.Icons = defaultIcons
	}

	c.Volume = max(0, min(1, c.Volume))

	if c.TimeUpdateIntervalMs <= 0 {
		c.TimeUpdateIntervalMs = defaultTimeUpdateMs
	}
	c.TimeUpdateIntervalMs = max(c.TimeUpdateIntervalMs, minTimeUpdateMs)

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	c.Log.File = expandPath(c.Log.File)
}

func getConfigPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, AppName, defaultConfigFileName),
		// ./config.toml (pwd, highest priority)
		defaultConfigFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// TimeUpdateInterval returns the progress refresh period.
func (c *Config) TimeUpdateInterval() time.Duration {
	return time.Duration(c.TimeUpdateIntervalMs) * time.Millisecond
}

// NotificationsEnabled reports whether track changes raise desktop
// notifications.
func (c *Config) NotificationsEnabled() bool {
	return enabled(c.Notifications)
}

// MPRISEnabled reports whether the MPRIS media controls are exported.
func (c *Config) MPRISEnabled() bool {
	return enabled(c.MPRIS)
}

// AlbumArtEnabled reports whether covers are drawn.
func (c *Config) AlbumArtEnabled() bool {
	return enabled(c.AlbumArt)
}

// LogFile returns the log file path, defaulting to the XDG state dir.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(xdg.StateHome, AppName, defaultLogFileName)
}

func enabled(b *bool) bool {
	return b == nil || *b
}
