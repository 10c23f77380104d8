// Package config loads graphview settings from a TOML file.
//
// # File Location
//
// The CLI reads the file named by --config, or else
// $XDG_CONFIG_HOME/graphview/config.toml (see [DefaultPath]) when it
// exists. Missing sections and keys keep their defaults; unknown keys are
// an INVALID_CONFIG error so typos do not go unnoticed.
//
//	[render]
//	height = "900px"
//	width = "100%"
//	buttons = true
//	export = true
//
//	[physics]
//	gravity = -20000.0
//	central_gravity = 0.2
//	spring_length = 180.0
//	spring_strength = 0.02
//	damping = 0.09
//
//	[palette]
//	colors = ["#4C78A8", "#F58518"]
//	neutral = "#999999"
//
//	[cache]
//	backend = "file"   # file, redis or none
//	ttl = "168h"
//	redis_url = "redis://localhost:6379/0"
//
// Command-line flags override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphview/pkg/errors"
	"github.com/matzehuels/graphview/pkg/palette"
	"github.com/matzehuels/graphview/pkg/render/visnet"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// DefaultCacheTTL bounds how long parsed graphs are kept.
const DefaultCacheTTL = 7 * 24 * time.Hour

// Config is the complete settings tree.
type Config struct {
	Render  Render  `toml:"render"`
	Physics Physics `toml:"physics"`
	Palette Palette `toml:"palette"`
	Cache   Cache   `toml:"cache"`
}

// Render configures the HTML page.
type Render struct {
	Title   string `toml:"title"`
	Height  string `toml:"height"`
	Width   string `toml:"width"`
	Buttons bool   `toml:"buttons"`
	Export  bool   `toml:"export"`
}

// Physics configures the barnes-hut layout.
type Physics struct {
	Gravity        float64 `toml:"gravity"`
	CentralGravity float64 `toml:"central_gravity"`
	SpringLength   float64 `toml:"spring_length"`
	SpringStrength float64 `toml:"spring_strength"`
	Damping        float64 `toml:"damping"`
}

// Palette configures type colors.
type Palette struct {
	Colors  []string `toml:"colors"`
	Neutral string   `toml:"neutral"`
}

// Cache configures the parsed-graph cache.
type Cache struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	TTL      Duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url"`
	Prefix   string   `toml:"prefix"`
}

// Duration is a time.Duration written as a string such as "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	p := visnet.DefaultPhysics()
	return Config{
		Render: Render{
			Title:   visnet.DefaultTitle,
			Height:  visnet.DefaultHeight,
			Width:   visnet.DefaultWidth,
			Buttons: true,
			Export:  true,
		},
		Physics: Physics{
			Gravity:        p.Gravity,
			CentralGravity: p.CentralGravity,
			SpringLength:   p.SpringLength,
			SpringStrength: p.SpringStrength,
			Damping:        p.Damping,
		},
		Palette: Palette{
			Colors:  slices.Clone(palette.Default),
			Neutral: palette.Neutral,
		},
		Cache: Cache{
			Backend: BackendFile,
			TTL:     Duration{DefaultCacheTTL},
		},
	}
}

// DefaultPath returns the per-user config file location. It returns ""
// when no user config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "graphview", "config.toml")
}

// DefaultCacheDir returns the per-user cache directory for [BackendFile].
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "graphview-cache")
	}
	return filepath.Join(dir, "graphview")
}

// Load reads the config file at path over the defaults. An empty path
// loads [DefaultPath] if that file exists and the defaults otherwise.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, cfg.Validate()
}

// Decode parses TOML data into cfg, keeping values for absent keys.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

// Validate checks every value that later stages rely on.
func (c Config) Validate() error {
	if err := errors.ValidateCSSLength(c.Render.Height); err != nil {
		return err
	}
	if err := errors.ValidateCSSLength(c.Render.Width); err != nil {
		return err
	}
	if c.Physics.SpringLength <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "physics.spring_length must be positive")
	}
	if c.Physics.Damping < 0 || c.Physics.Damping > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "physics.damping must be between 0 and 1")
	}

	if len(c.Palette.Colors) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "palette.colors must not be empty")
	}
	for _, color := range c.Palette.Colors {
		if err := errors.ValidateColor(color); err != nil {
			return err
		}
	}
	if err := errors.ValidateColor(c.Palette.Neutral); err != nil {
		return err
	}

	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if err := errors.ValidateRedisURL(c.Cache.RedisURL); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be %q, %q or %q, got %q",
			BackendFile, BackendRedis, BackendNone, c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}

// VisnetOptions returns the page options described by c.
func (c Config) VisnetOptions() visnet.Options {
	return visnet.Options{
		Title:   c.Render.Title,
		Height:  c.Render.Height,
		Width:   c.Render.Width,
		Buttons: c.Render.Buttons,
		Physics: visnet.Physics{
			Gravity:        c.Physics.Gravity,
			CentralGravity: c.Physics.CentralGravity,
			SpringLength:   c.Physics.SpringLength,
			SpringStrength: c.Physics.SpringStrength,
			Damping:        c.Physics.Damping,
		},
	}
}

// Colors returns the configured palette.
func (c Config) Colors() palette.Palette {
	return palette.Palette(slices.Clone(c.Palette.Colors))
}

// CacheDir returns the configured cache directory or the default one.
func (c Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	return DefaultCacheDir()
}
