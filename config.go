package tempo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config configures a Director.
type Config struct {
	// TimeScale multiplies every frame's dt. Zero means 1.
	TimeScale float64 `toml:"time_scale" yaml:"time_scale"`

	// MaxDelta caps a single frame's dt in seconds so a long stall (window
	// drag, breakpoint) does not fast-forward every timer. Zero disables.
	MaxDelta float64 `toml:"max_delta" yaml:"max_delta"`

	// Debug enables per-frame stats and misuse checks.
	Debug bool `toml:"debug" yaml:"debug"`

	// FPSLogInterval logs FPS/TPS and engine counters every this many
	// seconds. Zero disables.
	FPSLogInterval float64 `toml:"fps_log_interval" yaml:"fps_log_interval"`

	Window  RunConfig     `toml:"window" yaml:"window"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// LoggingConfig selects the zap logger built by NewLogger.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		TimeScale: 1,
		MaxDelta:  0.25,
		Window: RunConfig{
			Title:  "tempo",
			Width:  640,
			Height: 480,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file on top of
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("parse config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TimeScale == 0 {
		cfg.TimeScale = 1
	}
	if cfg.TimeScale < 0 || cfg.MaxDelta < 0 || cfg.FPSLogInterval < 0 {
		return cfg, fmt.Errorf("parse config %s: time_scale, max_delta and fps_log_interval must not be negative", path)
	}
	return cfg, nil
}

// NewLogger builds a zap logger. Unknown levels fall back to info.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log.Named("tempo"), nil
}
