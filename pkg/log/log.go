package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options selects the level, the encoding and the sinks of the process logger.
type Options struct {
	Level   zap.AtomicLevel
	Format  string
	Outputs []string
}

// NewOptions parses level with ParseLevel. Without outputs the logger writes to stderr,
// which keeps stdout free for command output.
func NewOptions(level, format string, outputs ...string) Options {
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}
	return Options{
		Level:   ParseLevel(level),
		Format:  format,
		Outputs: outputs,
	}
}

// InitLog builds the process logger. Callers usually install it with zap.ReplaceGlobals.
func InitLog(opts Options) (*zap.Logger, error) {
	if opts.Format != FormatConsole && opts.Format != FormatJSON {
		return nil, fmt.Errorf("unknown log format %q, expected %s or %s", opts.Format, FormatConsole, FormatJSON)
	}

	loggerCfg := &zap.Config{
		Level:    opts.Level,
		Encoding: opts.Format,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      opts.Outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// ParseLevel returns the level named by lvl, falling back to info.
func ParseLevel(lvl string) zap.AtomicLevel {
	level, err := zap.ParseAtomicLevel(lvl)
	if err != nil {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return level
}
