// Package logger builds the application's zap logger.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/festy23/footballdb/internal/config"
)

// New builds a logger from cfg. Production setups (JSON above debug) sample
// repeated entries; everything else runs in development mode with stack
// traces from warn upwards.
func New(cfg appConfig.LoggerConfig) (*zap.SugaredLogger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		level = parsed
	}

	sink, err := openSink(cfg)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder(cfg.Format), sink, zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if cfg.Production() {
		core = zapcore.NewSamplerWithOptions(core, time.Second, 100, 100)
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	} else {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	return zap.New(core, opts...).Sugar(), nil
}

func encoder(format string) zapcore.Encoder {
	if format == appConfig.FormatConsole {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(ec)
	}
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(ec)
}

// openSink resolves stdout, stderr or a file path, creating missing
// parent directories for files.
func openSink(cfg appConfig.LoggerConfig) (zapcore.WriteSyncer, error) {
	output := cfg.Output
	if output == "" {
		output = "stdout"
	}
	if cfg.IsFile() {
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log directory: %w", err)
		}
	}
	sink, _, err := zap.Open(output)
	if err != nil {
		return nil, fmt.Errorf("logger: open %s: %w", output, err)
	}
	return sink, nil
}
