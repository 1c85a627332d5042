package cursorfx

import (
	"io"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvPrefix prefixes every environment variable read by LoadEnvConfig.
const EnvPrefix = "CURSORFX_"

// EnvConfig holds the settings that can come from the environment.
type EnvConfig struct {
	Trace           bool   `env:"TRACE"`
	LateBind        bool   `env:"LATE_BIND"`
	AllowUnregister bool   `env:"ALLOW_UNREGISTER"`
	LogFile         string `env:"LOG_FILE"`
	LogMaxSizeMB    int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups   int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
}

// LoadEnvConfig reads CURSORFX_* variables.
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return EnvConfig{}, errors.Wrap(err, "parse env config")
	}
	if cfg.LogMaxSizeMB < 0 || cfg.LogMaxBackups < 0 {
		return EnvConfig{}, errors.Errorf("parse env config: negative log rotation limits (size %d, backups %d)",
			cfg.LogMaxSizeMB, cfg.LogMaxBackups)
	}
	return cfg, nil
}

// Apply folds the environment settings into opts. Flags only turn features
// on; a Logger already set on opts is kept. The returned Closer releases the
// log file Apply opened, and is nil when it opened none.
func (c EnvConfig) Apply(opts *Options) io.Closer {
	opts.Trace = opts.Trace || c.Trace
	opts.LateBind = opts.LateBind || c.LateBind
	opts.AllowUnregister = opts.AllowUnregister || c.AllowUnregister
	if opts.Logger != nil || c.LogFile == "" {
		return nil
	}
	logger, closer := NewFileLogger(c.LogFile, c.LogMaxSizeMB, c.LogMaxBackups)
	opts.Logger = logger
	return closer
}

// NewFileLogger returns a logger writing to a size-rotated file, and the
// Closer for that file. Lines are also copied to stderr.
func NewFileLogger(path string, maxSizeMB, maxBackups int) (*log.Logger, io.Closer) {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}
	return NewLogger(io.MultiWriter(os.Stderr, rotator)), rotator
}
