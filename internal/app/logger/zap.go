package logger

import (
	"fmt"

	"github.com/avGenie/go-order-tracker/internal/app/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

func Initialize(config config.Config) error {
	level, err := zap.ParseAtomicLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("error while setting atomic level to zap logger: %w", err)
	}

	zapConfig, err := newZapConfig(config.LogFormat)
	if err != nil {
		return err
	}
	zapConfig.Level = level

	// every transition is worth a line when debugging
	if level.Enabled(zapcore.DebugLevel) {
		zapConfig.Sampling = nil
	}

	log, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("error while building zap logger: %w", err)
	}

	zap.ReplaceGlobals(log)

	return nil
}

func newZapConfig(format string) (zap.Config, error) {
	switch format {
	case "", FormatJSON:
		return zap.NewProductionConfig(), nil
	case FormatConsole:
		zapConfig := zap.NewProductionConfig()
		zapConfig.Encoding = FormatConsole
		zapConfig.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		return zapConfig, nil
	}

	return zap.Config{}, fmt.Errorf("unknown log format %q", format)
}
