package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/campreserv/keepr/internal/config"
)

func NewLogger(cfg config.Config) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevelAt(parseLevel(cfg.Observability.LogLevel))

	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config.OnReload(applyLogLevel(lvl))

	return zcfg.Build()
}

func parseLevel(s string) zapcore.Level {
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// applyLogLevel returns the reload hook that retargets the logger's
// level when the config file changes.
func applyLogLevel(lvl zap.AtomicLevel) func(config.Config) {
	return func(next config.Config) {
		lvl.SetLevel(parseLevel(next.Observability.LogLevel))
	}
}
