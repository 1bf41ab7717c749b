// Package config resolves graphpoet settings from flags, environment and an
// optional YAML file through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Viper keys.
const (
	KeyCorpus       = "corpus"
	KeyLogLevel     = "log_level"
	KeyMaxTokenSize = "max_token_size"

	KeyMaxSentenceSize = "max_sentence_size"
)

// DefaultMaxSentenceSize caps one stdin sentence line in bytes.
const DefaultMaxSentenceSize = 1 << 20

// EnvPrefix namespaces environment overrides, e.g. GRAPHPOET_CORPUS.
const EnvPrefix = "GRAPHPOET"

const defaultLogLevel = "warn"

var (
	// ErrMissingCorpus is returned when no corpus path is configured.
	ErrMissingCorpus = errors.New("config: corpus path is required")

	// ErrBadLogLevel is returned for a log level zap does not recognise.
	ErrBadLogLevel = errors.New("config: invalid log level")

	// ErrBadTokenSize is returned for a non-positive max token size.
	ErrBadTokenSize = errors.New("config: max token size must be positive")

	// ErrBadSentenceSize is returned for a non-positive max sentence size.
	ErrBadSentenceSize = errors.New("config: max sentence size must be positive")
)

// Config holds the resolved settings for one CLI invocation.
type Config struct {
	// Corpus is the path of the corpus text file.
	Corpus string `mapstructure:"corpus" yaml:"corpus"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// MaxTokenSize bounds a single corpus token in bytes.
	MaxTokenSize int `mapstructure:"max_token_size" yaml:"max_token_size"`

	// MaxSentenceSize bounds one sentence line read from stdin, in bytes.
	MaxSentenceSize int `mapstructure:"max_sentence_size" yaml:"max_sentence_size"`
}

// SetDefaults registers defaults on v. maxTokenSize is passed in so the
// poet package stays the single owner of that constant.
func SetDefaults(v *viper.Viper, maxTokenSize int) {
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyMaxTokenSize, maxTokenSize)
	v.SetDefault(KeyMaxSentenceSize, DefaultMaxSentenceSize)
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	c.Corpus = strings.TrimSpace(c.Corpus)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks required fields and value ranges.
func (c Config) Validate() error {
	if c.Corpus == "" {
		return ErrMissingCorpus
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.MaxTokenSize <= 0 {
		return fmt.Errorf("%w: %d", ErrBadTokenSize, c.MaxTokenSize)
	}
	if c.MaxSentenceSize <= 0 {
		return fmt.Errorf("%w: %d", ErrBadSentenceSize, c.MaxSentenceSize)
	}

	return nil
}

// Level parses LogLevel; an empty value means the default level.
func (c Config) Level() (zapcore.Level, error) {
	name := c.LogLevel
	if name == "" {
		name = defaultLogLevel
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return lvl, nil
}

// Logger builds a production zap logger at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zc.Build()
}
