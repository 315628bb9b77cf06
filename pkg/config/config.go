// Package config loads ripple's runtime configuration.
//
// Values come, in increasing precedence, from built-in defaults, a
// ripple.toml file, RIPPLE_* environment variables and finally command-line
// flags (applied by the CLI). Nested keys map to environment variables with
// underscores: scatter.max_trials is RIPPLE_SCATTER_MAX_TRIALS.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/matzehuels/ripple/pkg/engine"
	apperrors "github.com/matzehuels/ripple/pkg/errors"
	"github.com/matzehuels/ripple/pkg/radial"
	"github.com/matzehuels/ripple/pkg/scatter"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RIPPLE"

// ServerConfig holds settings for `ripple serve`.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
	MaxSessions  int           `mapstructure:"max_sessions"`
	// PreviewCache is the number of rendered previews kept in memory.
	// Zero disables the cache.
	PreviewCache int           `mapstructure:"preview_cache"`
	PreviewTTL   time.Duration `mapstructure:"preview_ttl"`
}

// RedisConfig holds settings for `ripple stream`.
type RedisConfig struct {
	Addr           string `mapstructure:"addr"`
	Password       string `mapstructure:"password"`
	DB             int    `mapstructure:"db"`
	TopicsChannel  string `mapstructure:"topics_channel"`
	LayoutsChannel string `mapstructure:"layouts_channel"`
}

// Config holds all runtime configuration.
type Config struct {
	Viewport engine.Viewport `mapstructure:"viewport"`
	Scatter  scatter.Options `mapstructure:"scatter"`
	Radial   radial.Options  `mapstructure:"radial"`
	Palette  []string        `mapstructure:"palette"`
	Server   ServerConfig    `mapstructure:"server"`
	Redis    RedisConfig     `mapstructure:"redis"`
}

// Engine returns the layout tuning as engine options.
func (c Config) Engine() engine.Options {
	return engine.Options{Scatter: c.Scatter, Radial: c.Radial, Palette: c.Palette}
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	if err := apperrors.ValidateViewport(c.Viewport.Width, c.Viewport.Height); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "viewport")
	}
	if c.Scatter.MaxSize < c.Scatter.BaseSize {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "scatter.max_size (%v) below scatter.base_size (%v)", c.Scatter.MaxSize, c.Scatter.BaseSize)
	}
	if c.Scatter.MaxTrials <= 0 || c.Scatter.RelaxPasses <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "scatter.max_trials and scatter.relax_passes must be positive")
	}
	if c.Radial.PushFactor <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "radial.push_factor must be positive, got %v", c.Radial.PushFactor)
	}
	if len(c.Palette) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "palette must not be empty")
	}
	return nil
}

// Load reads configuration. An empty path searches for ripple.toml in the
// working directory and then in the user config directory; a missing file is
// not an error. An explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ripple")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "ripple"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	vp := engine.DefaultViewport()
	v.SetDefault("viewport.width", vp.Width)
	v.SetDefault("viewport.height", vp.Height)

	s := scatter.DefaultOptions()
	v.SetDefault("scatter.base_size", s.BaseSize)
	v.SetDefault("scatter.max_size", s.MaxSize)
	v.SetDefault("scatter.clearance", s.Clearance)
	v.SetDefault("scatter.max_trials", s.MaxTrials)
	v.SetDefault("scatter.stack_gap", s.StackGap)
	v.SetDefault("scatter.stack_jitter", s.StackJitter)
	v.SetDefault("scatter.relax_gap", s.RelaxGap)
	v.SetDefault("scatter.relax_passes", s.RelaxPasses)
	v.SetDefault("scatter.resize_tolerance", s.ResizeTolerance)

	r := radial.DefaultOptions()
	v.SetDefault("radial.topic_radius", r.TopicRadius)
	v.SetDefault("radial.keyword_radius", r.KeywordRadius)
	v.SetDefault("radial.margin_x", r.MarginX)
	v.SetDefault("radial.margin_y", r.MarginY)
	v.SetDefault("radial.min_width", r.MinWidth)
	v.SetDefault("radial.max_keywords", r.MaxKeywords)
	v.SetDefault("radial.push_factor", r.PushFactor)
	v.SetDefault("radial.push_retries", r.PushRetries)
	v.SetDefault("radial.push_gap", r.PushGap)
	v.SetDefault("radial.edge_pad", r.EdgePad)
	v.SetDefault("radial.seeded_trials", r.SeededTrials)
	v.SetDefault("radial.seeded_padding", r.SeededPadding)

	v.SetDefault("palette", engine.DefaultPalette)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.session_ttl", "1h")
	v.SetDefault("server.max_sessions", 1000)
	v.SetDefault("server.preview_cache", 256)
	v.SetDefault("server.preview_ttl", "10m")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.topics_channel", "ripple:topics")
	v.SetDefault("redis.layouts_channel", "ripple:layouts")
}
