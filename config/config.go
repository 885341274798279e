// Package config loads inspector settings from TOML.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/msdoc"
	"github.com/wippyai/msdoc/errors"
)

// DefaultPreviewChars is how much story text the inspector shows per story.
const DefaultPreviewChars = 2000

// Config holds caller settings for opening and inspecting documents.
type Config struct {
	MaxStreamSize int64   `toml:"max_stream_size"`
	Log           Log     `toml:"log"`
	Inspect       Inspect `toml:"inspect"`
}

type Log struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type Inspect struct {
	PreviewChars int `toml:"preview_chars"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		MaxStreamSize: msdoc.DefaultMaxStreamSize,
		Log:           Log{Level: "warn"},
		Inspect:       Inspect{PreviewChars: DefaultPreviewChars},
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config (%s): %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse is Load for in-memory TOML.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the inspector cannot honor.
func (c Config) Validate() error {
	if c.MaxStreamSize < 0 {
		return errors.New(errors.PhaseConfig, errors.KindOutOfRange).
			Path("max_stream_size").
			Value(c.MaxStreamSize).
			Detail("must not be negative, use 0 to disable the limit").
			Build()
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Inspect.PreviewChars <= 0 {
		return errors.New(errors.PhaseConfig, errors.KindOutOfRange).
			Path("inspect", "preview_chars").
			Value(c.Inspect.PreviewChars).
			Detail("must be positive").
			Build()
	}
	return nil
}

// Level parses the configured log level.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(c.Log.Level))
	if err != nil {
		return lvl, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("log", "level").
			Value(c.Log.Level).
			Cause(err).
			Detail("unknown log level %q", c.Log.Level).
			Build()
	}
	return lvl, nil
}

// NewLogger builds the zap logger the settings describe.
func (c Config) NewLogger() (*zap.Logger, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// OpenOptions converts the settings into msdoc.Open options.
func (c Config) OpenOptions(l *zap.Logger) []msdoc.Option {
	return []msdoc.Option{
		msdoc.WithMaxStreamSize(c.MaxStreamSize),
		msdoc.WithLogger(l),
	}
}
