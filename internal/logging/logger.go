// Package logging builds the process logger. Console output goes to stderr
// so reconciled rows on stdout stay clean for piping; an optional file sink
// mirrors everything.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"zoneremap/internal/config"
)

// New constructs a zap logger from cfg. Color applies to the console
// encoder only; the file sink always gets plain output.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	if colorEnabled(cfg.ColorMode) {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		plain := zap.NewDevelopmentEncoderConfig()
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(plain), zapcore.Lock(f), level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func parseLevel(l config.LogLevel) (zapcore.Level, error) {
	switch l {
	case config.LevelDebug:
		return zapcore.DebugLevel, nil
	case config.LevelInfo, "":
		return zapcore.InfoLevel, nil
	case config.LevelWarn:
		return zapcore.WarnLevel, nil
	case config.LevelError:
		return zapcore.ErrorLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q", l)
}

func colorEnabled(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return isTerminal(os.Stderr) && os.Getenv("NO_COLOR") == ""
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
