package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/clubsphere/backend/pkg/logger/types"
)

// Log is the application-wide logger. Init must be called before use.
var Log *types.Logger

var base *zap.Logger

type Config struct {
	Debug     bool
	LogToFile bool
	LogsDir   string
}

// Init builds the global logger. Console output always, optional JSON file
// sink under cfg.LogsDir.
func Init(cfg Config) error {
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stdout),
			level,
		),
	}

	if cfg.LogToFile {
		if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
			return fmt.Errorf("create logs dir: %w", err)
		}
		f, err := os.OpenFile(
			filepath.Join(cfg.LogsDir, "clubsphere.log"),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY,
			0o644,
		)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(f),
			level,
		))
	}

	base = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Log = types.NewLogger(base)
	return nil
}

// Named returns a child logger for a subsystem.
func Named(name string) (*types.Logger, error) {
	if base == nil {
		return nil, fmt.Errorf("logger is not initialized")
	}
	return types.NewLogger(base.Named(name)), nil
}

// Cleanup flushes any buffered log entries.
func Cleanup() error {
	if base == nil {
		return nil
	}
	return base.Sync()
}
